package metadata

// Library is the resolved metadata for a whole catalog.
type Library struct {
	Language string         `json:"language"`
	Series   []SeriesResult `json:"series"`
}

// SeriesResult represents a resolved show.
type SeriesResult struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	AlternateTitle string         `json:"alternateTitle,omitempty"`
	Overview       string         `json:"overview,omitempty"`
	Seasons        []SeasonResult `json:"seasons,omitempty"`
	Movies         []MovieResult  `json:"movies,omitempty"`
}

// SeasonResult represents a resolved season with its episodes.
type SeasonResult struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	AlternateTitle string          `json:"alternateTitle,omitempty"`
	Overview       string          `json:"overview,omitempty"`
	Episodes       []EpisodeResult `json:"episodes,omitempty"`
	Files          []FileResult    `json:"files,omitempty"`
}

// EpisodeResult represents a resolved episode.
type EpisodeResult struct {
	ID             string `json:"id"`
	Number         int    `json:"number"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	AlternateTitle string `json:"alternateTitle,omitempty"`
	Overview       string `json:"overview,omitempty"`
}

// FileResult represents a library file. A file spanning several episodes
// carries their joined titles and descriptions.
type FileResult struct {
	Path           string   `json:"path"`
	EpisodeIDs     []string `json:"episodeIds"`
	Title          string   `json:"title"`
	AlternateTitle string   `json:"alternateTitle,omitempty"`
	Overview       string   `json:"overview,omitempty"`
}

// MovieResult represents a resolved entry of a movie season.
type MovieResult struct {
	ID             string `json:"id"`
	SeasonID       string `json:"seasonId"`
	Title          string `json:"title"`
	AlternateTitle string `json:"alternateTitle,omitempty"`
	Overview       string `json:"overview,omitempty"`
}
