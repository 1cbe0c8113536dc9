package upstream

import (
	"errors"
	"os"
	"strings"
)

// Config holds the two required settings for the content API. Both come from
// the environment; absence of either is reported as an error value so views
// can render a degraded state instead of crashing.
type Config struct {
	BaseURL string
	APIKey  string
}

func LoadConfig() (Config, error) {
	base := strings.TrimRight(os.Getenv("RAGA_API_BASE"), "/")
	if base == "" {
		return Config{}, errors.New("RAGA_API_BASE not set")
	}

	key := os.Getenv("RAGA_API_KEY")
	if key == "" {
		return Config{}, errors.New("RAGA_API_KEY not set")
	}

	return Config{BaseURL: base, APIKey: key}, nil
}
