// Package catalog holds the in-memory entity aggregates (shows, seasons,
// episodes) built from upstream provider records once per sync cycle.
//
// Aggregates are read-only once loaded. Resolution code never mutates them,
// so a loaded Catalog can be shared across goroutines.
package catalog

import (
	"fmt"
	"strings"
)

// Provider identifies an upstream metadata source.
type Provider string

const (
	ProviderShoko Provider = "shoko"
	ProviderAniDB Provider = "anidb"
	ProviderTMDB  Provider = "tmdb"
)

// TitleType is the provider-assigned classification of a title.
type TitleType int

const (
	TitleTypeNone TitleType = iota
	TitleTypeMain
	TitleTypeOfficial
	TitleTypeSynonym
	TitleTypeShort
	TitleTypeCard
	TitleTypeKana
)

var titleTypeNames = map[TitleType]string{
	TitleTypeNone:     "none",
	TitleTypeMain:     "main",
	TitleTypeOfficial: "official",
	TitleTypeSynonym:  "synonym",
	TitleTypeShort:    "short",
	TitleTypeCard:     "card",
	TitleTypeKana:     "kana",
}

func (t TitleType) String() string {
	if name, ok := titleTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TitleType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t TitleType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to
// TitleTypeNone so a new upstream classification never breaks a catalog load.
func (t *TitleType) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for k, v := range titleTypeNames {
		if v == name {
			*t = k
			return nil
		}
	}
	*t = TitleTypeNone
	return nil
}

// EpisodeType classifies an episode within its season.
type EpisodeType string

const (
	EpisodeTypeNormal  EpisodeType = "normal"
	EpisodeTypeSpecial EpisodeType = "special"
	EpisodeTypeCredits EpisodeType = "credits"
	EpisodeTypeTrailer EpisodeType = "trailer"
	EpisodeTypeParody  EpisodeType = "parody"
	EpisodeTypeOther   EpisodeType = "other"
)

// SeasonKind tells the assembly layer whether a season's entries are
// episodes or movies.
type SeasonKind string

const (
	SeasonKindTV    SeasonKind = "tv"
	SeasonKindMovie SeasonKind = "movie"
)

// Title is a single title as recorded by a provider.
type Title struct {
	Value        string    `yaml:"value" json:"value"`
	LanguageCode string    `yaml:"language" json:"language"`
	Type         TitleType `yaml:"type" json:"type"`
}

// ProviderRecord is everything one provider knows about one entity.
type ProviderRecord struct {
	Titles      []Title `yaml:"titles,omitempty" json:"titles,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`

	// DescriptionLanguage is the language the description is written in, if
	// the provider reports one.
	DescriptionLanguage string `yaml:"descriptionLanguage,omitempty" json:"descriptionLanguage,omitempty"`
}

// Records maps external providers to their record for an entity.
type Records map[Provider]ProviderRecord

// Get returns the record for p, or an empty record.
func (r Records) Get(p Provider) ProviderRecord {
	if r == nil {
		return ProviderRecord{}
	}
	return r[p]
}

// Show is a show aggregate.
type Show struct {
	ID       string         `yaml:"id" json:"id"`
	Name     string         `yaml:"name" json:"name"`
	Primary  ProviderRecord `yaml:"primary" json:"primary"`
	External Records        `yaml:"external,omitempty" json:"external,omitempty"`

	DefaultSeasonID string    `yaml:"defaultSeason,omitempty" json:"defaultSeason,omitempty"`
	Seasons         []*Season `yaml:"seasons" json:"seasons"`

	// DefaultSeason is linked by Load from DefaultSeasonID.
	DefaultSeason *Season `yaml:"-" json:"-"`
}

// Season is a season aggregate.
type Season struct {
	ID   string     `yaml:"id" json:"id"`
	Name string     `yaml:"name" json:"name"`
	Kind SeasonKind `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Offset marks alternate versions of the same season (1 = alternate version).
	Offset int `yaml:"offset,omitempty" json:"offset,omitempty"`

	// TotalEpisodes is the number of entries in the season according to the
	// primary provider. Defaults to len(Episodes).
	TotalEpisodes int `yaml:"totalEpisodes,omitempty" json:"totalEpisodes,omitempty"`

	Primary  ProviderRecord `yaml:"primary" json:"primary"`
	External Records        `yaml:"external,omitempty" json:"external,omitempty"`
	Episodes []*Episode     `yaml:"episodes" json:"episodes"`
	Files    []File         `yaml:"files,omitempty" json:"files,omitempty"`
}

// Episode is an episode aggregate.
type Episode struct {
	ID       string         `yaml:"id" json:"id"`
	Number   int            `yaml:"number" json:"number"`
	Name     string         `yaml:"name" json:"name"`
	Type     EpisodeType    `yaml:"type,omitempty" json:"type,omitempty"`
	Primary  ProviderRecord `yaml:"primary" json:"primary"`
	External Records        `yaml:"external,omitempty" json:"external,omitempty"`
}

// File is a library file linked to one or more episodes of a season.
type File struct {
	Path       string   `yaml:"path" json:"path"`
	EpisodeIDs []string `yaml:"episodes" json:"episodes"`
}

// Catalog is the root of a loaded catalog file.
type Catalog struct {
	Shows []*Show `yaml:"shows" json:"shows"`
}

// Episode returns the episode with the given ID.
func (s *Season) Episode(id string) (*Episode, bool) {
	for _, ep := range s.Episodes {
		if ep != nil && ep.ID == id {
			return ep, true
		}
	}
	return nil, false
}

// FileEpisodes returns the episodes a file links to, in file order.
func (s *Season) FileEpisodes(f File) []*Episode {
	episodes := make([]*Episode, 0, len(f.EpisodeIDs))
	for _, id := range f.EpisodeIDs {
		if ep, ok := s.Episode(id); ok {
			episodes = append(episodes, ep)
		}
	}
	return episodes
}
