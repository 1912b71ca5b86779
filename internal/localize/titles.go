package localize

import (
	"regexp"
	"strings"

	"github.com/mediatext/mediatext/internal/catalog"
)

// structuralLabelPattern matches titles that only describe an entry's
// position or format ("Episode 3", "Part 1 of 2", "OVA") rather than naming it.
var structuralLabelPattern = regexp.MustCompile(`(?i)^(?:Special|Episode) \d+$|^Part \d+ of \d+$|^Volume \d$|^(?:OVA|OAD|Movie|Complete Movie|Short Movie|TV Special|Music Video|Web|Volume)$`)

// IsStructuralLabel reports whether title is a placeholder label.
func IsStructuralLabel(title string) bool {
	return structuralLabelPattern.MatchString(strings.TrimSpace(title))
}

// TitleForLanguage returns the first usable title in any of the given
// languages, trying them in order. With usingTypes, only an official title
// is accepted unless allowAny is set, in which case any title in the
// language will do. Structural labels are never returned.
func TitleForLanguage(titles []catalog.Title, usingTypes, allowAny bool, languages ...string) string {
	for _, lang := range languages {
		if lang == "" {
			continue
		}

		matches := titlesInLanguage(titles, lang)
		if len(matches) == 0 {
			continue
		}

		var title string
		if usingTypes {
			title = firstOfType(matches, catalog.TitleTypeOfficial)
			if title == "" && allowAny {
				title = matches[0].Value
			}
		} else {
			title = matches[0].Value
		}

		if strings.TrimSpace(title) != "" && !IsStructuralLabel(title) {
			return title
		}
	}
	return ""
}

func titlesInLanguage(titles []catalog.Title, lang string) []catalog.Title {
	var matches []catalog.Title
	for _, t := range titles {
		if strings.EqualFold(t.LanguageCode, lang) {
			matches = append(matches, t)
		}
	}
	return matches
}

func firstOfType(titles []catalog.Title, titleType catalog.TitleType) string {
	for _, t := range titles {
		if t.Type == titleType {
			return t.Value
		}
	}
	return ""
}

func firstInLanguage(titles []catalog.Title, lang string) string {
	for _, t := range titles {
		if strings.EqualFold(t.LanguageCode, lang) {
			return t.Value
		}
	}
	return ""
}

// titleMethod is how a title provider looks up its title.
type titleMethod int

const (
	methodDefault titleMethod = iota
	methodLibraryLanguage
	methodCountryOfOrigin
)

func splitTitleProvider(p TitleProvider) (catalog.Provider, titleMethod, bool) {
	switch p {
	case TitleShokoDefault:
		return catalog.ProviderShoko, methodDefault, true
	case TitleAniDBDefault:
		return catalog.ProviderAniDB, methodDefault, true
	case TitleAniDBLibraryLanguage:
		return catalog.ProviderAniDB, methodLibraryLanguage, true
	case TitleAniDBCountryOfOrigin:
		return catalog.ProviderAniDB, methodCountryOfOrigin, true
	case TitleTMDBDefault:
		return catalog.ProviderTMDB, methodDefault, true
	case TitleTMDBLibraryLanguage:
		return catalog.ProviderTMDB, methodLibraryLanguage, true
	case TitleTMDBCountryOfOrigin:
		return catalog.ProviderTMDB, methodCountryOfOrigin, true
	default:
		return "", 0, false
	}
}

// titleLookup carries the inputs for one title resolution.
type titleLookup struct {
	defaultName string
	// records are the entity's own external records.
	records catalog.Records
	// seriesRecords are the owning season's records; their main title
	// language decides the origin language.
	seriesRecords catalog.Records
	// episode switches to the untyped episode rules.
	episode  bool
	language string
}

func (r *Resolver) resolveTitle(lookup titleLookup, titleType TitleType) string {
	for _, p := range r.settings.OrderedTitleProviders(titleType) {
		provider, method, ok := splitTitleProvider(p)
		if !ok {
			continue
		}

		var title string
		if provider == catalog.ProviderShoko {
			title = lookup.defaultName
		} else {
			title = r.providerTitle(lookup, provider, method)
		}

		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	return ""
}

func (r *Resolver) providerTitle(lookup titleLookup, provider catalog.Provider, method titleMethod) string {
	titles := lookup.records.Get(provider).Titles
	usingTypes := !lookup.episode

	switch method {
	case methodDefault:
		if title := firstOfType(titles, catalog.TitleTypeMain); title != "" || usingTypes {
			return title
		}
		return firstInLanguage(titles, "en")
	case methodLibraryLanguage:
		return TitleForLanguage(titles, usingTypes, r.settings.TitleAllowAny, lookup.language)
	case methodCountryOfOrigin:
		origin := GuessOriginLanguage(MainLanguage(lookup.seriesRecords.Get(provider).Titles))
		return TitleForLanguage(titles, usingTypes, r.settings.TitleAllowAny, origin...)
	default:
		return ""
	}
}
