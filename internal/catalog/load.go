package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyPath      = errors.New("catalog path is empty")
	ErrUnknownSeason  = errors.New("unknown season")
	ErrUnknownEpisode = errors.New("unknown episode")
	ErrNilEntry       = errors.New("empty list entry")
)

// Load reads a catalog file from disk. Both YAML and JSON are accepted.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes catalog data and links the aggregates together.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, show := range cat.Shows {
		if show == nil {
			return nil, fmt.Errorf("show %d: %w", i, ErrNilEntry)
		}
		if err := link(show); err != nil {
			return nil, fmt.Errorf("show %q: %w", show.ID, err)
		}
	}

	return &cat, nil
}

// link resolves the default season reference and fills in defaults.
func link(show *Show) error {
	for i, season := range show.Seasons {
		if season == nil {
			return fmt.Errorf("season %d: %w", i, ErrNilEntry)
		}
		if season.Kind == "" {
			season.Kind = SeasonKindTV
		}
		if season.TotalEpisodes == 0 {
			season.TotalEpisodes = len(season.Episodes)
		}
		for i, ep := range season.Episodes {
			if ep == nil {
				return fmt.Errorf("season %q episode %d: %w", season.ID, i, ErrNilEntry)
			}
			if ep.Type == "" {
				ep.Type = EpisodeTypeNormal
			}
		}
		for _, f := range season.Files {
			for _, id := range f.EpisodeIDs {
				if _, ok := season.Episode(id); !ok {
					return fmt.Errorf("season %q file %q: %w %q", season.ID, f.Path, ErrUnknownEpisode, id)
				}
			}
		}
	}

	if show.DefaultSeasonID == "" {
		if len(show.Seasons) > 0 {
			show.DefaultSeason = show.Seasons[0]
		}
		return nil
	}

	for _, season := range show.Seasons {
		if season.ID == show.DefaultSeasonID {
			show.DefaultSeason = season
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownSeason, show.DefaultSeasonID)
}
