package metadata

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatext/mediatext/internal/catalog"
	"github.com/mediatext/mediatext/internal/localize"
	"github.com/mediatext/mediatext/internal/testutil"
)

const testCatalog = `
shows:
  - id: "1"
    name: Attack on Titan
    defaultSeason: "10"
    seasons:
      - id: "10"
        name: Shingeki no Kyojin
        primary:
          description: "Humanity fights back.\n\n\nSource: ANN"
        external:
          anidb:
            titles:
              - {value: Shingeki no Kyojin, language: x-jat, type: main}
              - {value: 進撃の巨人, language: ja, type: official}
        episodes:
          - id: "100"
            number: 1
            name: To You, in 2000 Years
            primary: {description: "The wall falls."}
            external:
              anidb:
                titles:
                  - {value: 二千年後の君へ, language: ja}
          - id: "101"
            number: 2
            name: That Day
            primary: {description: "Eren makes a vow"}
        files:
          - path: /library/aot/01.mkv
            episodes: ["100"]
          - path: /library/aot/01-02.mkv
            episodes: ["100", "101"]
      - id: "20"
        name: Shingeki no Kyojin Movie
        kind: movie
        primary: {description: "The story so far."}
        episodes:
          - id: "200"
            number: 1
            name: Complete Movie
            primary: {description: "Movie part."}
          - id: "201"
            number: 2
            name: Director's Cut
            type: other
            primary: {description: "Extended cut."}
`

func loadTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return testutil.NewTestCatalog(t, testCatalog).Catalog
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(localize.DefaultSettings(), testutil.NewTestLogger(t))
}

func TestService_Library(t *testing.T) {
	svc := newTestService(t)

	lib, err := svc.Library(context.Background(), loadTestCatalog(t), "en")
	require.NoError(t, err)
	require.Len(t, lib.Series, 1)
	assert.Equal(t, "en", lib.Language)

	series := lib.Series[0]
	assert.Equal(t, "Attack on Titan", series.Title)
	assert.Equal(t, "進撃の巨人", series.AlternateTitle)
	assert.Equal(t, "Humanity fights back.", series.Overview)

	require.Len(t, series.Seasons, 1)
	season := series.Seasons[0]
	assert.Equal(t, "Shingeki no Kyojin", season.Title)

	require.Len(t, season.Episodes, 2)
	assert.Equal(t, "To You, in 2000 Years", season.Episodes[0].Title)
	assert.Equal(t, "二千年後の君へ", season.Episodes[0].AlternateTitle)
	assert.Equal(t, "That Day", season.Episodes[1].Title)
	assert.Equal(t, "normal", season.Episodes[1].Type)

	require.Len(t, season.Files, 2)
	assert.Equal(t, "To You, in 2000 Years", season.Files[0].Title)
	assert.Equal(t, "The wall falls.", season.Files[0].Overview)
	assert.Equal(t, "To You, in 2000 Years. That Day", season.Files[1].Title)
	assert.Equal(t, "The wall falls. Eren makes a vow", season.Files[1].Overview)
	assert.Equal(t, []string{"100", "101"}, season.Files[1].EpisodeIDs)
}

func TestService_Library_Movies(t *testing.T) {
	svc := newTestService(t)

	lib, err := svc.Library(context.Background(), loadTestCatalog(t), "en")
	require.NoError(t, err)

	movies := lib.Series[0].Movies
	require.Len(t, movies, 2)

	assert.Equal(t, "Shingeki no Kyojin Movie", movies[0].Title)
	assert.Equal(t, "The story so far.", movies[0].Overview)
	assert.Equal(t, "20", movies[0].SeasonID)

	assert.Equal(t, "Shingeki no Kyojin Movie: Director's Cut", movies[1].Title)
	assert.Equal(t, "Extended cut.", movies[1].Overview)
}

func TestService_Library_Errors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Library(context.Background(), nil, "en")
	assert.ErrorIs(t, err, ErrNoCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Library(ctx, loadTestCatalog(t), "en")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.Series(ctx, loadTestCatalog(t).Shows[0], "en")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Library_SkipsEmptyEntries(t *testing.T) {
	svc := newTestService(t)
	cat := loadTestCatalog(t)

	show := cat.Shows[0]
	show.Seasons = append(show.Seasons, nil)
	show.Seasons[0].Episodes = append(show.Seasons[0].Episodes, nil)
	show.Seasons[1].Episodes = append([]*catalog.Episode{nil}, show.Seasons[1].Episodes...)
	cat.Shows = append([]*catalog.Show{nil}, cat.Shows...)

	lib, err := svc.Library(context.Background(), cat, "en")
	require.NoError(t, err)
	require.Len(t, lib.Series, 1)

	series := lib.Series[0]
	require.Len(t, series.Seasons, 1)
	assert.Len(t, series.Seasons[0].Episodes, 2)
	assert.Len(t, series.Seasons[0].Files, 2)
	assert.Len(t, series.Movies, 2)

	_, err = svc.Series(context.Background(), show, "en")
	assert.NoError(t, err)
}

func TestService_SetSettings(t *testing.T) {
	svc := newTestService(t)
	cat := loadTestCatalog(t)

	s := localize.DefaultSettings()
	s.TitleMainList = []localize.TitleProvider{localize.TitleAniDBLibraryLanguage, localize.TitleShokoDefault}
	svc.SetSettings(s)
	assert.Equal(t, s, svc.Settings())

	series, err := svc.Series(context.Background(), cat.Shows[0], "ja")
	require.NoError(t, err)
	assert.Equal(t, "進撃の巨人", series.Title)
	assert.Equal(t, "二千年後の君へ", series.Seasons[0].Episodes[0].Title)
	assert.Equal(t, "That Day", series.Seasons[0].Episodes[1].Title)
}

func TestService_ConcurrentSettingsSwap(t *testing.T) {
	svc := newTestService(t)
	cat := loadTestCatalog(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Library(context.Background(), cat, "en")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			svc.SetSettings(localize.DefaultSettings())
		}()
	}
	wg.Wait()
}
