package tmdb

// MovieDetails is the detailed movie info from TMDB.
type MovieDetails struct {
	ID               int                   `json:"id"`
	Title            string                `json:"title"`
	OriginalTitle    string                `json:"original_title"`
	OriginalLanguage string                `json:"original_language"`
	Overview         string                `json:"overview"`
	ReleaseDate      string                `json:"release_date"`
	Runtime          int                   `json:"runtime"`
	Translations     *TranslationsResponse `json:"translations,omitempty"`
}

// TVDetails is the detailed TV series info from TMDB.
type TVDetails struct {
	ID               int                   `json:"id"`
	Name             string                `json:"name"`
	OriginalName     string                `json:"original_name"`
	OriginalLanguage string                `json:"original_language"`
	Overview         string                `json:"overview"`
	FirstAirDate     string                `json:"first_air_date"`
	OriginCountry    []string              `json:"origin_country"`
	NumberOfSeasons  int                   `json:"number_of_seasons"`
	NumberOfEpisodes int                   `json:"number_of_episodes"`
	Translations     *TranslationsResponse `json:"translations,omitempty"`
}

// EpisodeDetails is the episode info from TMDB.
type EpisodeDetails struct {
	ID            int                   `json:"id"`
	Name          string                `json:"name"`
	Overview      string                `json:"overview"`
	AirDate       string                `json:"air_date"`
	EpisodeNumber int                   `json:"episode_number"`
	SeasonNumber  int                   `json:"season_number"`
	Runtime       int                   `json:"runtime"`
	Translations  *TranslationsResponse `json:"translations,omitempty"`
}

// TranslationsResponse is the response from the TMDB translations endpoints,
// also embedded in details via append_to_response=translations.
type TranslationsResponse struct {
	ID           int           `json:"id"`
	Translations []Translation `json:"translations"`
}

// Translation is one localized variant of an entity.
type Translation struct {
	CountryCode  string          `json:"iso_3166_1"`
	LanguageCode string          `json:"iso_639_1"`
	Name         string          `json:"name"`
	EnglishName  string          `json:"english_name"`
	Data         TranslationData `json:"data"`
}

// TranslationData holds the translated fields. Movies use Title, series and
// episodes use Name.
type TranslationData struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Overview string `json:"overview"`
	Tagline  string `json:"tagline"`
}

// DisplayName returns the translated title of the entity.
func (d TranslationData) DisplayName() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}
