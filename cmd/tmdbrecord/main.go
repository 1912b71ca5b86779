// Command tmdbrecord converts a TMDB details payload into a catalog
// provider record, ready to paste under an entity's external.tmdb key.
//
//	tmdbrecord -kind tv -language en tv_1429.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mediatext/mediatext/internal/catalog"
	"github.com/mediatext/mediatext/internal/metadata/tmdb"
)

func main() {
	kind := flag.String("kind", "tv", "Payload kind: tv, movie or episode")
	language := flag.String("language", "en", "Language the payload was fetched in")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tmdbrecord [-kind tv|movie|episode] [-language code] payload.json")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	rec, err := convert(*kind, *language, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing record: %v\n", err)
		os.Exit(1)
	}
}

func convert(kind, language string, data []byte) (catalog.ProviderRecord, error) {
	switch kind {
	case "tv":
		var details tmdb.TVDetails
		if err := json.Unmarshal(data, &details); err != nil {
			return catalog.ProviderRecord{}, err
		}
		return tmdb.SeriesRecord(&details, language), nil
	case "movie":
		var details tmdb.MovieDetails
		if err := json.Unmarshal(data, &details); err != nil {
			return catalog.ProviderRecord{}, err
		}
		return tmdb.MovieRecord(&details, language), nil
	case "episode":
		var details tmdb.EpisodeDetails
		if err := json.Unmarshal(data, &details); err != nil {
			return catalog.ProviderRecord{}, err
		}
		return tmdb.EpisodeRecord(&details, language), nil
	default:
		return catalog.ProviderRecord{}, fmt.Errorf("unknown kind %q", kind)
	}
}
