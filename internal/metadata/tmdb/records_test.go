package tmdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatext/mediatext/internal/catalog"
)

const seriesPayload = `{
  "id": 1429,
  "name": "Attack on Titan",
  "original_name": "進撃の巨人",
  "original_language": "ja",
  "overview": "Several hundred years ago, humans were nearly exterminated by titans.",
  "first_air_date": "2013-04-07",
  "origin_country": ["JP"],
  "translations": {
    "translations": [
      {"iso_3166_1": "JP", "iso_639_1": "ja", "name": "日本語", "english_name": "Japanese",
       "data": {"name": "進撃の巨人", "overview": "巨人がすべてを支配する世界。"}},
      {"iso_3166_1": "FR", "iso_639_1": "fr", "name": "Français", "english_name": "French",
       "data": {"name": "L'Attaque des Titans", "overview": "Il y a plus d'un siècle..."}},
      {"iso_3166_1": "TW", "iso_639_1": "zh", "name": "普通话", "english_name": "Mandarin",
       "data": {"name": "進擊的巨人", "overview": ""}},
      {"iso_3166_1": "CN", "iso_639_1": "zh", "name": "普通话", "english_name": "Mandarin",
       "data": {"name": "进击的巨人", "overview": ""}},
      {"iso_3166_1": "DE", "iso_639_1": "de", "name": "Deutsch", "english_name": "German",
       "data": {"name": "", "overview": ""}}
    ]
  }
}`

func TestSeriesRecord(t *testing.T) {
	var details TVDetails
	require.NoError(t, json.Unmarshal([]byte(seriesPayload), &details))

	rec := SeriesRecord(&details, "en")

	assert.Equal(t, []catalog.Title{
		{Value: "進撃の巨人", LanguageCode: "ja", Type: catalog.TitleTypeMain},
		{Value: "進撃の巨人", LanguageCode: "ja", Type: catalog.TitleTypeOfficial},
		{Value: "Attack on Titan", LanguageCode: "en", Type: catalog.TitleTypeOfficial},
		{Value: "L'Attaque des Titans", LanguageCode: "fr", Type: catalog.TitleTypeOfficial},
		{Value: "進擊的巨人", LanguageCode: "zh-hant", Type: catalog.TitleTypeOfficial},
		{Value: "进击的巨人", LanguageCode: "zh-hans", Type: catalog.TitleTypeOfficial},
	}, rec.Titles)
	assert.Equal(t, "Several hundred years ago, humans were nearly exterminated by titans.", rec.Description)
	assert.Equal(t, "en", rec.DescriptionLanguage)
}

func TestSeriesRecord_OverviewFromTranslation(t *testing.T) {
	var details TVDetails
	require.NoError(t, json.Unmarshal([]byte(seriesPayload), &details))
	details.Overview = ""

	rec := SeriesRecord(&details, "fr")
	assert.Equal(t, "Il y a plus d'un siècle...", rec.Description)
	assert.Equal(t, "fr", rec.DescriptionLanguage)

	rec = SeriesRecord(&details, "de")
	assert.Empty(t, rec.Description)
	assert.Empty(t, rec.DescriptionLanguage)
}

func TestMovieRecord(t *testing.T) {
	details := &MovieDetails{
		ID:               372058,
		Title:            "Your Name.",
		OriginalTitle:    "君の名は。",
		OriginalLanguage: "JA",
		Overview:         "High schoolers Mitsuha and Taki are complete strangers.",
		Translations: &TranslationsResponse{Translations: []Translation{
			{CountryCode: "ES", LanguageCode: "es", Data: TranslationData{Title: "Your Name"}},
			{CountryCode: "US", LanguageCode: "en", Data: TranslationData{Title: "Your Name."}},
		}},
	}

	rec := MovieRecord(details, "en")
	assert.Equal(t, []catalog.Title{
		{Value: "君の名は。", LanguageCode: "ja", Type: catalog.TitleTypeMain},
		{Value: "君の名は。", LanguageCode: "ja", Type: catalog.TitleTypeOfficial},
		{Value: "Your Name.", LanguageCode: "en", Type: catalog.TitleTypeOfficial},
		{Value: "Your Name", LanguageCode: "es", Type: catalog.TitleTypeOfficial},
	}, rec.Titles)
	assert.Equal(t, "en", rec.DescriptionLanguage)
}

func TestEpisodeRecord(t *testing.T) {
	details := &EpisodeDetails{
		ID:            63056,
		Name:          "To You, in 2000 Years: The Fall of Shiganshina, Part 1",
		Overview:      "",
		EpisodeNumber: 1,
		SeasonNumber:  1,
	}

	rec := EpisodeRecord(details, "en")
	require.Len(t, rec.Titles, 1)
	assert.Equal(t, catalog.TitleTypeOfficial, rec.Titles[0].Type)
	assert.Empty(t, rec.Description)

	rec = EpisodeRecord(details, "")
	assert.Empty(t, rec.Titles)
}

func TestTranslationLanguage(t *testing.T) {
	tests := []struct {
		lang, country string
		want          string
	}{
		{"en", "US", "en"},
		{"PT", "BR", "pt"},
		{"zh", "CN", "zh-hans"},
		{"zh", "sg", "zh-hans"},
		{"zh", "HK", "zh-hant"},
		{"zh", "", "zh"},
		{"", "US", ""},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"-"+tt.country, func(t *testing.T) {
			got := TranslationLanguage(Translation{LanguageCode: tt.lang, CountryCode: tt.country})
			assert.Equal(t, tt.want, got)
		})
	}
}
