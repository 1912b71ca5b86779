// Package metadata assembles resolved titles and descriptions for a catalog.
package metadata

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sourcegraph/conc/iter"

	"github.com/mediatext/mediatext/internal/catalog"
	"github.com/mediatext/mediatext/internal/localize"
	"github.com/mediatext/mediatext/internal/logger"
)

var ErrNoCatalog = errors.New("no catalog loaded")

// Service resolves catalog entities into metadata results. The settings
// snapshot can be swapped while the service is in use; each call works from
// the snapshot current when it started.
type Service struct {
	resolver atomic.Pointer[localize.Resolver]
	logger   *logger.Logger
}

// NewService creates a new metadata service.
func NewService(settings localize.Settings, log *logger.Logger) *Service {
	s := &Service{
		logger: log.WithComponent("metadata"),
	}
	s.resolver.Store(localize.NewResolver(settings))
	return s
}

// SetSettings replaces the settings snapshot used by later calls.
func (s *Service) SetSettings(settings localize.Settings) {
	s.resolver.Store(localize.NewResolver(settings))
	s.logger.Info().Msg("Resolution settings updated")
}

// Settings returns the current settings snapshot.
func (s *Service) Settings() localize.Settings {
	return s.resolver.Load().Settings()
}

// Library resolves every show in the catalog.
func (s *Service) Library(ctx context.Context, cat *catalog.Catalog, language string) (*Library, error) {
	if cat == nil {
		return nil, ErrNoCatalog
	}

	r := s.resolver.Load()
	lib := &Library{
		Language: language,
		Series:   make([]SeriesResult, 0, len(cat.Shows)),
	}
	for _, show := range cat.Shows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if show == nil {
			s.logger.Warn().Msg("Skipping empty show entry")
			continue
		}
		lib.Series = append(lib.Series, s.series(r, show, language))
	}

	s.logger.Info().
		Str("language", language).
		Int("series", len(lib.Series)).
		Msg("Resolved library metadata")
	return lib, nil
}

// Series resolves a single show.
func (s *Service) Series(ctx context.Context, show *catalog.Show, language string) (SeriesResult, error) {
	if err := ctx.Err(); err != nil {
		return SeriesResult{}, err
	}
	return s.series(s.resolver.Load(), show, language), nil
}

func (s *Service) series(r *localize.Resolver, show *catalog.Show, language string) SeriesResult {
	title, alt := r.ShowTitles(show, language)
	result := SeriesResult{
		ID:             show.ID,
		Title:          title,
		AlternateTitle: alt,
		Overview:       r.ShowDescription(show, language),
	}
	if title == "" {
		s.logger.Warn().Str("series", show.ID).Msg("Series has no title in any enabled provider")
	}

	for _, season := range show.Seasons {
		if season == nil {
			s.logger.Warn().Str("series", show.ID).Msg("Skipping empty season entry")
			continue
		}
		if season.Kind == catalog.SeasonKindMovie {
			result.Movies = append(result.Movies, movies(r, season, language)...)
			continue
		}
		result.Seasons = append(result.Seasons, seasonResult(r, season, language))
	}

	s.logger.Debug().
		Str("series", show.ID).
		Str("title", title).
		Int("seasons", len(result.Seasons)).
		Int("movies", len(result.Movies)).
		Msg("Resolved series")
	return result
}

func seasonResult(r *localize.Resolver, season *catalog.Season, language string) SeasonResult {
	title, alt := r.SeasonTitles(season, language)
	result := SeasonResult{
		ID:             season.ID,
		Title:          title,
		AlternateTitle: alt,
		Overview:       r.SeasonDescription(season, language),
	}

	result.Episodes = iter.Map(presentEpisodes(season), func(ep **catalog.Episode) EpisodeResult {
		return episodeResult(r, *ep, season, language)
	})

	for _, f := range season.Files {
		result.Files = append(result.Files, fileResult(r, f, season, language))
	}
	return result
}

func episodeResult(r *localize.Resolver, ep *catalog.Episode, season *catalog.Season, language string) EpisodeResult {
	title, alt := r.EpisodeTitles(ep, season, language)
	return EpisodeResult{
		ID:             ep.ID,
		Number:         ep.Number,
		Type:           string(ep.Type),
		Title:          title,
		AlternateTitle: alt,
		Overview:       r.EpisodeDescription(ep, language),
	}
}

func fileResult(r *localize.Resolver, f catalog.File, season *catalog.Season, language string) FileResult {
	episodes := season.FileEpisodes(f)
	result := FileResult{
		Path:       f.Path,
		EpisodeIDs: f.EpisodeIDs,
	}

	if len(episodes) == 1 {
		ep := episodes[0]
		result.Title, result.AlternateTitle = r.EpisodeTitles(ep, season, language)
		result.Overview = r.EpisodeDescription(ep, language)
		return result
	}

	titles := make([]string, 0, len(episodes))
	altTitles := make([]string, 0, len(episodes))
	for _, ep := range episodes {
		title, alt := r.EpisodeTitles(ep, season, language)
		titles = append(titles, title)
		altTitles = append(altTitles, alt)
	}
	result.Title, _ = localize.JoinText(titles)
	result.AlternateTitle, _ = localize.JoinText(altTitles)
	result.Overview = r.EpisodeListDescription(episodes, language)
	return result
}

func movies(r *localize.Resolver, season *catalog.Season, language string) []MovieResult {
	return iter.Map(presentEpisodes(season), func(ep **catalog.Episode) MovieResult {
		title, alt := r.MovieTitles(*ep, season, language)
		return MovieResult{
			ID:             (*ep).ID,
			SeasonID:       season.ID,
			Title:          title,
			AlternateTitle: alt,
			Overview:       r.MovieDescription(*ep, season, language),
		}
	})
}

func presentEpisodes(season *catalog.Season) []*catalog.Episode {
	episodes := make([]*catalog.Episode, 0, len(season.Episodes))
	for _, ep := range season.Episodes {
		if ep != nil {
			episodes = append(episodes, ep)
		}
	}
	return episodes
}
