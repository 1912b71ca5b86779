package localize

import (
	"slices"
	"testing"
)

func TestParseTitleProvider(t *testing.T) {
	for _, p := range AllTitleProviders() {
		got, ok := ParseTitleProvider(p.String())
		if !ok || got != p {
			t.Errorf("ParseTitleProvider(%q) = %v, %v", p.String(), got, ok)
		}
	}

	if got, ok := ParseTitleProvider(" anidb_libraryLANGUAGE "); !ok || got != TitleAniDBLibraryLanguage {
		t.Errorf("ParseTitleProvider case-insensitive = %v, %v", got, ok)
	}
	if _, ok := ParseTitleProvider("TvDB_Default"); ok {
		t.Error("ParseTitleProvider accepted an unknown name")
	}
}

func TestParseDescriptionProvider(t *testing.T) {
	tests := []struct {
		input  string
		want   DescriptionProvider
		wantOK bool
	}{
		{"Shoko", DescriptionShoko, true},
		{"anidb", DescriptionAniDB, true},
		{"TVDB", DescriptionTvDB, true},
		{"tmdb", DescriptionTMDB, true},
		{"imdb", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDescriptionProvider(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDescriptionProvider(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSettings_OrderedTitleProviders(t *testing.T) {
	s := Settings{
		TitleMainOrder:      []TitleProvider{TitleTMDBDefault, TitleAniDBDefault, TitleShokoDefault},
		TitleMainList:       []TitleProvider{TitleShokoDefault, TitleTMDBDefault},
		TitleAlternateOrder: AllTitleProviders(),
		TitleAlternateList:  nil,
	}

	main := s.OrderedTitleProviders(TitleMain)
	want := []TitleProvider{TitleTMDBDefault, TitleShokoDefault}
	if !slices.Equal(main, want) {
		t.Errorf("OrderedTitleProviders(main) = %v, want %v", main, want)
	}

	if alt := s.OrderedTitleProviders(TitleAlternate); len(alt) != 0 {
		t.Errorf("OrderedTitleProviders(alternate) = %v, want empty", alt)
	}
}

func TestSettings_OrderedDescriptionProviders(t *testing.T) {
	s := Settings{
		DescriptionSourceOrder: []DescriptionProvider{DescriptionTMDB, DescriptionAniDB, DescriptionShoko},
		DescriptionSourceList:  []DescriptionProvider{DescriptionShoko, DescriptionTMDB, DescriptionTvDB},
	}

	got := s.OrderedDescriptionProviders()
	want := []DescriptionProvider{DescriptionTMDB, DescriptionShoko}
	if !slices.Equal(got, want) {
		t.Errorf("OrderedDescriptionProviders() = %v, want %v", got, want)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if got := s.OrderedTitleProviders(TitleMain); !slices.Equal(got, []TitleProvider{TitleShokoDefault}) {
		t.Errorf("default main providers = %v", got)
	}
	if got := s.OrderedTitleProviders(TitleAlternate); !slices.Equal(got, []TitleProvider{TitleAniDBCountryOfOrigin}) {
		t.Errorf("default alternate providers = %v", got)
	}
	if got := s.OrderedDescriptionProviders(); !slices.Equal(got, []DescriptionProvider{DescriptionShoko, DescriptionAniDB}) {
		t.Errorf("default description providers = %v", got)
	}
	if s.Synopsis.StripMarkup {
		t.Error("markup stripping should be off by default")
	}
}
