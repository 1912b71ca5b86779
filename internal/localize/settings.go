package localize

import (
	"fmt"
	"slices"
	"strings"
)

// DescriptionProvider selects where a description is taken from.
type DescriptionProvider int

const (
	// DescriptionShoko uses the primary catalog description (for shows built
	// from groups, the group description).
	DescriptionShoko DescriptionProvider = iota + 1
	DescriptionAniDB
	// DescriptionTvDB is accepted for older configurations but never yields a
	// description.
	DescriptionTvDB
	DescriptionTMDB
)

var descriptionProviderNames = map[DescriptionProvider]string{
	DescriptionShoko: "Shoko",
	DescriptionAniDB: "AniDB",
	DescriptionTvDB:  "TvDB",
	DescriptionTMDB:  "TMDB",
}

func (p DescriptionProvider) String() string {
	if name, ok := descriptionProviderNames[p]; ok {
		return name
	}
	return fmt.Sprintf("DescriptionProvider(%d)", int(p))
}

// ParseDescriptionProvider parses a provider name case-insensitively.
func ParseDescriptionProvider(name string) (DescriptionProvider, bool) {
	name = strings.TrimSpace(name)
	for p, n := range descriptionProviderNames {
		if strings.EqualFold(n, name) {
			return p, true
		}
	}
	return 0, false
}

// TitleProvider selects a provider and a look-up method for titles.
type TitleProvider int

const (
	// TitleShokoDefault uses the primary catalog's default name.
	TitleShokoDefault TitleProvider = iota + 1
	// TitleAniDBDefault uses AniDB's main title.
	TitleAniDBDefault
	// TitleAniDBLibraryLanguage uses AniDB's title in the library language.
	TitleAniDBLibraryLanguage
	// TitleAniDBCountryOfOrigin uses AniDB's title in the guessed origin language.
	TitleAniDBCountryOfOrigin
	TitleTMDBDefault
	TitleTMDBLibraryLanguage
	TitleTMDBCountryOfOrigin
)

var titleProviderNames = map[TitleProvider]string{
	TitleShokoDefault:         "Shoko_Default",
	TitleAniDBDefault:         "AniDB_Default",
	TitleAniDBLibraryLanguage: "AniDB_LibraryLanguage",
	TitleAniDBCountryOfOrigin: "AniDB_CountryOfOrigin",
	TitleTMDBDefault:          "TMDB_Default",
	TitleTMDBLibraryLanguage:  "TMDB_LibraryLanguage",
	TitleTMDBCountryOfOrigin:  "TMDB_CountryOfOrigin",
}

func (p TitleProvider) String() string {
	if name, ok := titleProviderNames[p]; ok {
		return name
	}
	return fmt.Sprintf("TitleProvider(%d)", int(p))
}

// ParseTitleProvider parses a provider name case-insensitively.
func ParseTitleProvider(name string) (TitleProvider, bool) {
	name = strings.TrimSpace(name)
	for p, n := range titleProviderNames {
		if strings.EqualFold(n, name) {
			return p, true
		}
	}
	return 0, false
}

// TitleType selects which of the two resolved titles is being looked up.
type TitleType int

const (
	TitleMain TitleType = iota
	TitleAlternate
)

// SanitizeOptions toggles the individual description cleanup passes.
type SanitizeOptions struct {
	// StripMarkup reduces HTML to text. It only applies when the description
	// contains a tag; entity-only text such as "a &amp;lt;b&amp;gt; c" is
	// left untouched.
	StripMarkup          bool
	CleanLinks           bool
	CleanMiscLines       bool
	RemoveSummary        bool
	CleanMultiEmptyLines bool
}

// Settings is the configuration snapshot a Resolver works from.
//
// Each *Order list gives the priority order; only entries also present in
// the matching *List (the enabled set) are used.
type Settings struct {
	TitleMainOrder      []TitleProvider
	TitleMainList       []TitleProvider
	TitleAlternateOrder []TitleProvider
	TitleAlternateList  []TitleProvider

	// TitleAllowAny allows any title in the requested language when no
	// official title exists.
	TitleAllowAny bool

	DescriptionSourceOrder []DescriptionProvider
	DescriptionSourceList  []DescriptionProvider

	Synopsis SanitizeOptions
}

// AllTitleProviders returns every title provider in declaration order.
func AllTitleProviders() []TitleProvider {
	return []TitleProvider{
		TitleShokoDefault,
		TitleAniDBDefault,
		TitleAniDBLibraryLanguage,
		TitleAniDBCountryOfOrigin,
		TitleTMDBDefault,
		TitleTMDBLibraryLanguage,
		TitleTMDBCountryOfOrigin,
	}
}

// AllDescriptionProviders returns every description provider in declaration order.
func AllDescriptionProviders() []DescriptionProvider {
	return []DescriptionProvider{DescriptionShoko, DescriptionAniDB, DescriptionTvDB, DescriptionTMDB}
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TitleMainOrder:      AllTitleProviders(),
		TitleMainList:       []TitleProvider{TitleShokoDefault},
		TitleAlternateOrder: AllTitleProviders(),
		TitleAlternateList:  []TitleProvider{TitleAniDBCountryOfOrigin},
		TitleAllowAny:       false,

		DescriptionSourceOrder: AllDescriptionProviders(),
		DescriptionSourceList:  []DescriptionProvider{DescriptionShoko, DescriptionAniDB},

		Synopsis: SanitizeOptions{
			StripMarkup:          false,
			CleanLinks:           true,
			CleanMiscLines:       true,
			RemoveSummary:        true,
			CleanMultiEmptyLines: true,
		},
	}
}

// OrderedTitleProviders returns the enabled title providers for the type,
// in priority order.
func (s *Settings) OrderedTitleProviders(titleType TitleType) []TitleProvider {
	switch titleType {
	case TitleMain:
		return filterEnabled(s.TitleMainOrder, s.TitleMainList)
	case TitleAlternate:
		return filterEnabled(s.TitleAlternateOrder, s.TitleAlternateList)
	default:
		return nil
	}
}

// OrderedDescriptionProviders returns the enabled description providers in
// priority order.
func (s *Settings) OrderedDescriptionProviders() []DescriptionProvider {
	return filterEnabled(s.DescriptionSourceOrder, s.DescriptionSourceList)
}

func filterEnabled[T comparable](order, enabled []T) []T {
	out := make([]T, 0, len(order))
	for _, p := range order {
		if slices.Contains(enabled, p) {
			out = append(out, p)
		}
	}
	return out
}
