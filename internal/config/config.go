package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mediatext/mediatext/internal/localize"
)

// ErrNoConfigFile is returned by Watch when there is no config file to watch.
var ErrNoConfigFile = errors.New("no config file in use")

// Config holds all application configuration.
type Config struct {
	Logging      LoggingConfig      `mapstructure:"logging"`
	Catalog      CatalogConfig      `mapstructure:"catalog"`
	Metadata     MetadataConfig     `mapstructure:"metadata"`
	Titles       TitlesConfig       `mapstructure:"titles"`
	Descriptions DescriptionsConfig `mapstructure:"descriptions"`
	Synopsis     SynopsisConfig     `mapstructure:"synopsis"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// CatalogConfig holds catalog file configuration.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// MetadataConfig holds library-wide metadata configuration.
type MetadataConfig struct {
	// Language is the library's metadata language.
	Language string `mapstructure:"language"`
}

// TitlesConfig holds title provider names. The order lists give priority,
// the enabled lists say which providers take part.
type TitlesConfig struct {
	MainOrder        []string `mapstructure:"main_order"`
	MainEnabled      []string `mapstructure:"main_enabled"`
	AlternateOrder   []string `mapstructure:"alternate_order"`
	AlternateEnabled []string `mapstructure:"alternate_enabled"`
	AllowAny         bool     `mapstructure:"allow_any"`
}

// DescriptionsConfig holds description provider names.
type DescriptionsConfig struct {
	Order   []string `mapstructure:"order"`
	Enabled []string `mapstructure:"enabled"`
}

// SynopsisConfig toggles description cleanup passes.
type SynopsisConfig struct {
	StripMarkup          bool `mapstructure:"strip_markup"`
	CleanLinks           bool `mapstructure:"clean_links"`
	CleanMiscLines       bool `mapstructure:"clean_misc_lines"`
	RemoveSummary        bool `mapstructure:"remove_summary"`
	CleanMultiEmptyLines bool `mapstructure:"clean_multi_empty_lines"`
}

// Default returns a Config with default values.
func Default() *Config {
	s := localize.DefaultSettings()
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Catalog: CatalogConfig{
			Path: "./catalog.yaml",
		},
		Metadata: MetadataConfig{
			Language: "en",
		},
		Titles: TitlesConfig{
			MainOrder:        providerNames(s.TitleMainOrder),
			MainEnabled:      providerNames(s.TitleMainList),
			AlternateOrder:   providerNames(s.TitleAlternateOrder),
			AlternateEnabled: providerNames(s.TitleAlternateList),
			AllowAny:         s.TitleAllowAny,
		},
		Descriptions: DescriptionsConfig{
			Order:   providerNames(s.DescriptionSourceOrder),
			Enabled: providerNames(s.DescriptionSourceList),
		},
		Synopsis: SynopsisConfig{
			StripMarkup:          s.Synopsis.StripMarkup,
			CleanLinks:           s.Synopsis.CleanLinks,
			CleanMiscLines:       s.Synopsis.CleanMiscLines,
			RemoveSummary:        s.Synopsis.RemoveSummary,
			CleanMultiEmptyLines: s.Synopsis.CleanMultiEmptyLines,
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v, err := read(configPath)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Watch loads the configuration like Load and then calls onChange with the
// reloaded configuration every time the config file is written. It blocks
// until ctx is done and releases the file watcher before returning. It
// returns ErrNoConfigFile right away when defaults and environment are all
// there is.
func Watch(ctx context.Context, configPath string, onChange func(*Config, error)) error {
	v, err := read(configPath)
	if err != nil {
		return err
	}
	if v.ConfigFileUsed() == "" {
		return ErrNoConfigFile
	}

	file, err := filepath.Abs(v.ConfigFileUsed())
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it in place, so the
	// directory is watched rather than the file.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watching config directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := v.ReadInConfig(); err != nil {
				onChange(nil, fmt.Errorf("reloading config: %w", err))
				continue
			}
			onChange(decode(v))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("config watcher: %w", err))
		}
	}
}

func read(configPath string) (*viper.Viper, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.mediatext")
	}

	v.SetEnvPrefix("MEDIATEXT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.path", d.Logging.Path)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.compress", d.Logging.Compress)

	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("metadata.language", d.Metadata.Language)

	v.SetDefault("titles.main_order", d.Titles.MainOrder)
	v.SetDefault("titles.main_enabled", d.Titles.MainEnabled)
	v.SetDefault("titles.alternate_order", d.Titles.AlternateOrder)
	v.SetDefault("titles.alternate_enabled", d.Titles.AlternateEnabled)
	v.SetDefault("titles.allow_any", d.Titles.AllowAny)

	v.SetDefault("descriptions.order", d.Descriptions.Order)
	v.SetDefault("descriptions.enabled", d.Descriptions.Enabled)

	v.SetDefault("synopsis.strip_markup", d.Synopsis.StripMarkup)
	v.SetDefault("synopsis.clean_links", d.Synopsis.CleanLinks)
	v.SetDefault("synopsis.clean_misc_lines", d.Synopsis.CleanMiscLines)
	v.SetDefault("synopsis.remove_summary", d.Synopsis.RemoveSummary)
	v.SetDefault("synopsis.clean_multi_empty_lines", d.Synopsis.CleanMultiEmptyLines)
}

// ResolutionSettings converts the configured provider names into a
// localize.Settings snapshot. Names that match no provider are skipped and
// returned so the caller can report them.
func (c *Config) ResolutionSettings() (localize.Settings, []string) {
	var unknown []string

	titles := func(names []string) []localize.TitleProvider {
		return parseNames(names, localize.ParseTitleProvider, &unknown)
	}
	descs := func(names []string) []localize.DescriptionProvider {
		return parseNames(names, localize.ParseDescriptionProvider, &unknown)
	}

	s := localize.Settings{
		TitleMainOrder:      titles(c.Titles.MainOrder),
		TitleMainList:       titles(c.Titles.MainEnabled),
		TitleAlternateOrder: titles(c.Titles.AlternateOrder),
		TitleAlternateList:  titles(c.Titles.AlternateEnabled),
		TitleAllowAny:       c.Titles.AllowAny,

		DescriptionSourceOrder: descs(c.Descriptions.Order),
		DescriptionSourceList:  descs(c.Descriptions.Enabled),

		Synopsis: localize.SanitizeOptions{
			StripMarkup:          c.Synopsis.StripMarkup,
			CleanLinks:           c.Synopsis.CleanLinks,
			CleanMiscLines:       c.Synopsis.CleanMiscLines,
			RemoveSummary:        c.Synopsis.RemoveSummary,
			CleanMultiEmptyLines: c.Synopsis.CleanMultiEmptyLines,
		},
	}
	return s, unknown
}

func parseNames[T comparable](names []string, parse func(string) (T, bool), unknown *[]string) []T {
	out := make([]T, 0, len(names))
	for _, name := range names {
		p, ok := parse(name)
		if !ok {
			*unknown = append(*unknown, name)
			continue
		}
		out = append(out, p)
	}
	return out
}

func providerNames[T fmt.Stringer](providers []T) []string {
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.String()
	}
	return names
}
