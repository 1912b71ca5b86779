// Package tmdb maps TMDB payloads onto catalog provider records.
package tmdb

import (
	"strings"

	"github.com/mediatext/mediatext/internal/catalog"
)

// SeriesRecord maps a TMDB series fetched in language to a catalog record.
// The original-language name becomes the main title.
func SeriesRecord(details *TVDetails, language string) catalog.ProviderRecord {
	b := newRecordBuilder(language)
	b.original(details.OriginalName, details.OriginalLanguage)
	b.localized(details.Name, details.Overview)
	b.translations(details.Translations)
	return b.rec
}

// MovieRecord maps a TMDB movie fetched in language to a catalog record.
func MovieRecord(details *MovieDetails, language string) catalog.ProviderRecord {
	b := newRecordBuilder(language)
	b.original(details.OriginalTitle, details.OriginalLanguage)
	b.localized(details.Title, details.Overview)
	b.translations(details.Translations)
	return b.rec
}

// EpisodeRecord maps a TMDB episode fetched in language to a catalog record.
// TMDB has no original-language episode names, so no main title is set.
func EpisodeRecord(details *EpisodeDetails, language string) catalog.ProviderRecord {
	b := newRecordBuilder(language)
	b.localized(details.Name, details.Overview)
	b.translations(details.Translations)
	return b.rec
}

// TranslationLanguage returns the catalog language code for a translation.
// Chinese translations are told apart by region.
func TranslationLanguage(t Translation) string {
	lang := strings.ToLower(strings.TrimSpace(t.LanguageCode))
	if lang != "zh" {
		return lang
	}
	switch strings.ToUpper(t.CountryCode) {
	case "CN", "SG":
		return "zh-hans"
	case "TW", "HK", "MO":
		return "zh-hant"
	default:
		return lang
	}
}

type recordBuilder struct {
	language string
	rec      catalog.ProviderRecord
	seen     map[catalog.Title]struct{}
}

func newRecordBuilder(language string) *recordBuilder {
	return &recordBuilder{
		language: strings.TrimSpace(language),
		seen:     make(map[catalog.Title]struct{}),
	}
}

func (b *recordBuilder) add(value, language string, titleType catalog.TitleType) {
	t := catalog.Title{
		Value:        strings.TrimSpace(value),
		LanguageCode: language,
		Type:         titleType,
	}
	if t.Value == "" || t.LanguageCode == "" {
		return
	}
	if _, ok := b.seen[t]; ok {
		return
	}
	b.seen[t] = struct{}{}
	b.rec.Titles = append(b.rec.Titles, t)
}

// original records the original-language title as both the main title and
// the official title in that language.
func (b *recordBuilder) original(value, language string) {
	language = strings.ToLower(strings.TrimSpace(language))
	b.add(value, language, catalog.TitleTypeMain)
	b.add(value, language, catalog.TitleTypeOfficial)
}

func (b *recordBuilder) localized(name, overview string) {
	b.add(name, b.language, catalog.TitleTypeOfficial)
	b.describe(overview)
}

func (b *recordBuilder) translations(resp *TranslationsResponse) {
	if resp == nil {
		return
	}
	for _, t := range resp.Translations {
		lang := TranslationLanguage(t)
		b.add(t.Data.DisplayName(), lang, catalog.TitleTypeOfficial)
		if b.rec.Description == "" && strings.EqualFold(lang, b.language) {
			b.describe(t.Data.Overview)
		}
	}
}

func (b *recordBuilder) describe(overview string) {
	if overview = strings.TrimSpace(overview); overview == "" {
		return
	}
	b.rec.Description = overview
	b.rec.DescriptionLanguage = b.language
}
