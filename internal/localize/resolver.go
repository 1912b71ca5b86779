// Package localize resolves display titles and descriptions for catalog
// entities from their provider records.
//
// Everything here is a pure function of the catalog aggregates, a Settings
// snapshot and the target language. A Resolver never mutates its inputs and
// is safe for concurrent use.
package localize

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mediatext/mediatext/internal/catalog"
)

// ignoredSubTitles are episode titles that add nothing when appended to a
// movie's title. Stored case-folded.
var ignoredSubTitles = foldSet(
	"Complete Movie",
	"Music Video",
	"OAD",
	"OVA",
	"Short Movie",
	"Special",
	"TV Special",
	"Web",
)

func foldSet(values ...string) map[string]struct{} {
	fold := cases.Fold()
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[fold.String(v)] = struct{}{}
	}
	return set
}

// IsIgnoredSubTitle reports whether a movie sub-title should be dropped.
func IsIgnoredSubTitle(title string) bool {
	_, ok := ignoredSubTitles[cases.Fold().String(title)]
	return ok
}

// seasonOffsetSuffix labels alternate versions of a season.
var seasonOffsetSuffix = map[int]string{
	1: "Alternate Version",
}

// Resolver resolves titles and descriptions using a fixed settings snapshot.
type Resolver struct {
	settings Settings
}

// NewResolver creates a Resolver for the given settings.
func NewResolver(settings Settings) *Resolver {
	return &Resolver{settings: settings}
}

// Settings returns the snapshot the resolver works from.
func (r *Resolver) Settings() Settings {
	return r.settings
}

// ShowTitles returns the main and alternate titles for a show.
func (r *Resolver) ShowTitles(show *catalog.Show, language string) (string, string) {
	lookup := seriesLookup(show.DefaultSeason, show.Name, language)
	return r.resolveTitle(lookup, TitleMain), r.resolveTitle(lookup, TitleAlternate)
}

// SeasonTitles returns the main and alternate titles for a season, labelled
// with the season's variant offset.
func (r *Resolver) SeasonTitles(season *catalog.Season, language string) (string, string) {
	return r.SeasonTitlesWithOffset(season, season.Offset, language)
}

// SeasonTitlesWithOffset is SeasonTitles with an explicit variant offset.
func (r *Resolver) SeasonTitlesWithOffset(season *catalog.Season, baseSeasonOffset int, language string) (string, string) {
	lookup := seriesLookup(season, season.Name, language)
	displayTitle := r.resolveTitle(lookup, TitleMain)
	alternateTitle := r.resolveTitle(lookup, TitleAlternate)

	if suffix, ok := seasonOffsetSuffix[baseSeasonOffset]; ok {
		if displayTitle != "" {
			displayTitle += " (" + suffix + ")"
		}
		if alternateTitle != "" {
			alternateTitle += " (" + suffix + ")"
		}
	}
	return displayTitle, alternateTitle
}

// EpisodeTitles returns the main and alternate titles for an episode.
func (r *Resolver) EpisodeTitles(ep *catalog.Episode, season *catalog.Season, language string) (string, string) {
	lookup := episodeLookup(ep, season, language)
	return r.resolveTitle(lookup, TitleMain), r.resolveTitle(lookup, TitleAlternate)
}

// MovieTitles returns the main and alternate titles for a movie entry: the
// season title, followed by the episode title unless that is boilerplate.
func (r *Resolver) MovieTitles(ep *catalog.Episode, season *catalog.Season, language string) (string, string) {
	return r.movieTitle(ep, season, TitleMain, language), r.movieTitle(ep, season, TitleAlternate, language)
}

func (r *Resolver) movieTitle(ep *catalog.Episode, season *catalog.Season, titleType TitleType, language string) string {
	mainTitle := r.resolveTitle(seriesLookup(season, seasonName(season), language), titleType)
	subTitle := r.resolveTitle(episodeLookup(ep, season, language), titleType)

	if subTitle == "" || IsIgnoredSubTitle(subTitle) {
		return mainTitle
	}
	if mainTitle == "" {
		return subTitle
	}
	return strings.TrimSpace(mainTitle + ": " + subTitle)
}

// ShowDescription returns the description for a show. The show's own
// primary description wins over the default season's.
func (r *Resolver) ShowDescription(show *catalog.Show, language string) string {
	season := show.DefaultSeason
	primary := show.Primary.Description
	if primary == "" && season != nil {
		primary = season.Primary.Description
	}

	records := show.External
	if season != nil {
		records = mergeRecords(season.External, show.External)
	}
	return r.resolveDescription(entityDescriptions(primary, records, language))
}

// SeasonDescription returns the description for a season.
func (r *Resolver) SeasonDescription(season *catalog.Season, language string) string {
	return r.resolveDescription(entityDescriptions(season.Primary.Description, season.External, language))
}

// EpisodeDescription returns the description for an episode.
func (r *Resolver) EpisodeDescription(ep *catalog.Episode, language string) string {
	return r.resolveDescription(entityDescriptions(ep.Primary.Description, ep.External, language))
}

// EpisodeListDescription joins the descriptions of several episodes, as used
// for a file that spans more than one episode.
func (r *Resolver) EpisodeListDescription(episodes []*catalog.Episode, language string) string {
	texts := make([]string, 0, len(episodes))
	for _, ep := range episodes {
		texts = append(texts, r.EpisodeDescription(ep, language))
	}
	joined, _ := JoinText(texts)
	return joined
}

// MovieDescription returns the description for a movie entry. Only the
// complete movie of a multi-entry season inherits the season description;
// extras and alternate cuts get their own.
func (r *Resolver) MovieDescription(ep *catalog.Episode, season *catalog.Season, language string) string {
	if season == nil {
		return r.EpisodeDescription(ep, language)
	}
	isMultiEntry := season.TotalEpisodes > 1
	if isMultiEntry && !isCompleteMovie(ep) {
		return r.EpisodeDescription(ep, language)
	}
	return r.SeasonDescription(season, language)
}

func seriesLookup(season *catalog.Season, defaultName, language string) titleLookup {
	var records catalog.Records
	if season != nil {
		records = season.External
	}
	return titleLookup{
		defaultName:   defaultName,
		records:       records,
		seriesRecords: records,
		language:      language,
	}
}

func episodeLookup(ep *catalog.Episode, season *catalog.Season, language string) titleLookup {
	var seriesRecords catalog.Records
	if season != nil {
		seriesRecords = season.External
	}
	return titleLookup{
		defaultName:   ep.Name,
		records:       ep.External,
		seriesRecords: seriesRecords,
		episode:       true,
		language:      language,
	}
}

func seasonName(season *catalog.Season) string {
	if season == nil {
		return ""
	}
	return season.Name
}

// mergeRecords returns base with any provider missing from it taken from
// fallback.
func mergeRecords(base, fallback catalog.Records) catalog.Records {
	if len(fallback) == 0 {
		return base
	}
	merged := make(catalog.Records, len(base)+len(fallback))
	for p, rec := range fallback {
		merged[p] = rec
	}
	for p, rec := range base {
		merged[p] = rec
	}
	return merged
}
