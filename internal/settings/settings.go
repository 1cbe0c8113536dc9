package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ragadecode/ragadecode/internal/geo"
	"github.com/ragadecode/ragadecode/internal/timeline"
)

// Settings tunes the read-side composition of the site: how wide the
// browsing timeline stretches, which hashtag decks the home page shows
// and which incident tags feed the state heatmap.
type Settings struct {
	Timeline struct {
		DaysBefore int `yaml:"daysBefore"`
		DaysAfter  int `yaml:"daysAfter"`
	} `yaml:"timeline"`
	Decks struct {
		Hashtags []string `yaml:"hashtags"`
		Limit    int      `yaml:"limit"`
	} `yaml:"decks"`
	Heatmap struct {
		Tags []string `yaml:"tags"`
	} `yaml:"heatmap"`
}

func Default() *Settings {
	var s Settings
	applyDefaults(&s)
	return &s
}

func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	applyDefaults(&s)
	return &s, nil
}

func validate(s *Settings) error {
	if s.Timeline.DaysBefore < 0 {
		return fmt.Errorf("timeline.daysBefore must not be negative")
	}
	if s.Timeline.DaysAfter < 0 {
		return fmt.Errorf("timeline.daysAfter must not be negative")
	}
	if s.Decks.Limit < 0 {
		return fmt.Errorf("decks.limit must not be negative")
	}
	return nil
}

func applyDefaults(s *Settings) {
	if s.Timeline.DaysBefore == 0 {
		s.Timeline.DaysBefore = timeline.DefaultDaysBefore
	}
	if s.Timeline.DaysAfter == 0 {
		s.Timeline.DaysAfter = timeline.DefaultDaysAfter
	}
	if len(s.Decks.Hashtags) == 0 {
		s.Decks.Hashtags = geo.DefaultTags
	}
	if s.Decks.Limit == 0 {
		s.Decks.Limit = 12
	}
	if len(s.Heatmap.Tags) == 0 {
		s.Heatmap.Tags = geo.DefaultTags
	}
}
