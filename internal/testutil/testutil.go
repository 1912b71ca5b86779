// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mediatext/mediatext/internal/catalog"
	"github.com/mediatext/mediatext/internal/logger"
)

// TestCatalog is a catalog written to and loaded from a temp directory.
type TestCatalog struct {
	Catalog *catalog.Catalog
	Path    string
}

// NewTestCatalog writes content as a catalog file and loads it back.
func NewTestCatalog(t *testing.T, content string) *TestCatalog {
	t.Helper()

	path := WriteFile(t, t.TempDir(), "catalog.yaml", content)
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Failed to load test catalog: %v", err)
	}
	return &TestCatalog{Catalog: cat, Path: path}
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// NewTestLogger creates a test logger that outputs to t.Log.
func NewTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return &logger.Logger{
		Logger: zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel),
	}
}
