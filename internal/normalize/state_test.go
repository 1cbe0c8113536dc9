package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates_FlatShape(t *testing.T) {
	payload := decode(t, `{"data":[
		{"id":1,"title":"Kerala","slug":"kerala","country":{"title":"India","slug":"india"}},
		{"id":2,"title":"","slug":"dropped-no-name"},
		{"id":3,"title":"No Slug"}
	]}`)

	states := States(payload)
	require.Len(t, states, 1)
	assert.Equal(t, "Kerala", states[0].Name)
	assert.Equal(t, "kerala", states[0].Slug)
	assert.Equal(t, "india", states[0].Country, "country slug preferred over title")
}

func TestStates_AttributesEnvelope(t *testing.T) {
	payload := decode(t, `{"data":[
		{"id":9,"attributes":{"title":"Goa","slug":"goa","country":{"data":{"attributes":{"slug":"india"}}}}}
	]}`)

	states := States(payload)
	require.Len(t, states, 1)
	assert.Equal(t, "Goa", states[0].Name)
	assert.Equal(t, "india", states[0].Country)
}

func TestCategories(t *testing.T) {
	payload := decode(t, `{"data":[
		{"id":1,"name":"Accident","slug":"accident","short_description":"sd"},
		{"id":2,"name":"Missing slug"},
		{"id":3,"slug":"missing-name"}
	]}`)

	cats := Categories(payload)
	require.Len(t, cats, 1)
	assert.Equal(t, "Accident", cats[0].Name)
	assert.Equal(t, "accident", cats[0].Slug)
}

func TestArticleDetailRecord(t *testing.T) {
	payload := decode(t, `{"data":{
		"Title":"Big story",
		"slug":"big-story",
		"short_description":"sd",
		"Description_in_detail":"# markdown body",
		"coverimage":{"formats":{"small":{"url":"https://x/s.png"}}},
		"author":{"name":"Arun","documentId":"auth-1"},
		"category":{"slug":"murder"},
		"countries":[{"title":"India"}],
		"states":[{"title":"Tamil Nadu"}],
		"cities":[{"title":"Chennai"}]
	}}`)

	d, ok := ArticleDetailRecord(payload)
	require.True(t, ok)
	assert.Equal(t, "Big story", d.Title)
	assert.Equal(t, "# markdown body", d.Body)
	assert.Equal(t, "https://x/s.png", d.CoverURL)
	assert.Equal(t, "Arun", d.Author)
	assert.Equal(t, "auth-1", d.AuthorID)
	assert.Equal(t, "murder", d.CategorySlug)
	assert.Equal(t, "India • Tamil Nadu • Chennai", d.LocationLine)
}

func TestArticleDetailRecord_MissingTitle(t *testing.T) {
	_, ok := ArticleDetailRecord(decode(t, `{"data":{"slug":"x"}}`))
	assert.False(t, ok)

	_, ok = ArticleDetailRecord(decode(t, `null`))
	assert.False(t, ok)
}

func TestAuthorRecord(t *testing.T) {
	payload := decode(t, `{"data":{
		"name":"Arun","nick":"AR","bio":"**md**",
		"profile_image":{"formats":{"thumbnail":{"url":"https://x/p.png"}}}
	}}`)

	a, ok := AuthorRecord(payload)
	require.True(t, ok)
	assert.Equal(t, "Arun", a.Name)
	assert.Equal(t, "https://x/p.png", a.ProfileImage)

	_, ok = AuthorRecord(decode(t, `{"data":{"nick":"nameless"}}`))
	assert.False(t, ok)
}

func TestStaticPages(t *testing.T) {
	pages := StaticPages(decode(t, `{"data":[
		{"title":"About","slug":"about","content":"body"},
		{"title":"No slug page"}
	]}`))

	require.Len(t, pages, 1)
	assert.Equal(t, "about", pages[0].Slug)
}
