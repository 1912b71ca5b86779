package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mediatext/mediatext/internal/catalog"
)

func TestConvert(t *testing.T) {
	payload := []byte(`{"id": 372058, "title": "Your Name.", "original_title": "君の名は。",
		"original_language": "ja", "overview": "Two strangers find themselves linked."}`)

	rec, err := convert("movie", "en", payload)
	require.NoError(t, err)
	require.Len(t, rec.Titles, 3)
	assert.Equal(t, catalog.TitleTypeMain, rec.Titles[0].Type)

	out, err := yaml.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: main")
	assert.Contains(t, string(out), "descriptionLanguage: en")

	var back catalog.ProviderRecord
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, rec, back)
}

func TestConvert_Errors(t *testing.T) {
	_, err := convert("season", "en", []byte(`{}`))
	assert.Error(t, err)

	_, err = convert("tv", "en", []byte(`{not json`))
	assert.Error(t, err)
}
