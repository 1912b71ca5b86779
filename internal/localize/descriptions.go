package localize

import (
	"strings"

	"github.com/mediatext/mediatext/internal/catalog"
)

// completeMovieName is the primary name of the canonical full-length entry
// of a movie season.
const completeMovieName = "Complete Movie"

// descriptions holds the candidate description per provider. A missing key
// means the provider has nothing to offer for the entity.
type descriptions map[DescriptionProvider]string

func (r *Resolver) resolveDescription(candidates descriptions) string {
	for _, p := range r.settings.OrderedDescriptionProviders() {
		var overview string
		switch p {
		case DescriptionShoko, DescriptionAniDB, DescriptionTMDB:
			if desc, ok := candidates[p]; ok {
				overview = SanitizeDescription(desc, r.settings.Synopsis)
			}
		case DescriptionTvDB:
			// deprecated, kept so old configurations still parse
		}
		if overview != "" {
			return overview
		}
	}
	return ""
}

// entityDescriptions collects the per-provider descriptions for one entity.
// AniDB only writes English descriptions, so they are offered to English
// libraries only. TMDB descriptions are offered when their language is
// unknown or matches.
func entityDescriptions(primary string, records catalog.Records, language string) descriptions {
	candidates := descriptions{DescriptionShoko: primary}
	if language == "en" {
		candidates[DescriptionAniDB] = records.Get(catalog.ProviderAniDB).Description
	}
	if tmdb, ok := records[catalog.ProviderTMDB]; ok {
		if tmdb.DescriptionLanguage == "" || strings.EqualFold(tmdb.DescriptionLanguage, language) {
			candidates[DescriptionTMDB] = tmdb.Description
		}
	}
	return candidates
}

// isCompleteMovie reports whether ep is the canonical full-length entry.
func isCompleteMovie(ep *catalog.Episode) bool {
	return ep.Type == catalog.EpisodeTypeNormal && strings.TrimSpace(ep.Name) == completeMovieName
}
