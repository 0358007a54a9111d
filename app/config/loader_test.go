package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefault(t *testing.T) {
	loader := NewLoader(t.TempDir())
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(config.Feeds) != 1 {
		t.Fatalf("Expected 1 default feed, got: %d", len(config.Feeds))
	}
	if config.Feeds[0].URL != ArchNewsURL {
		t.Errorf("Expected default feed URL '%s', got '%s'", ArchNewsURL, config.Feeds[0].URL)
	}
	// The default feed must be usable as-is: a zero timeout would
	// expire every fetch immediately.
	if config.Feeds[0].Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", config.Feeds[0].Timeout)
	}
}

func TestLoadLookupOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	data := `{"feeds": [{"url": "https://example.com/second", "name": "Second"}]}`
	if err := os.WriteFile(filepath.Join(second, "config.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	// Only the second directory has a config file.
	loader := NewLoader(first, second)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config.Feeds[0].URL != "https://example.com/second" {
		t.Errorf("Expected fallback directory to be searched, got '%s'", config.Feeds[0].URL)
	}

	// A file in the first directory wins over the second.
	data = `{"feeds": [{"url": "https://example.com/first", "name": "First"}]}`
	if err := os.WriteFile(filepath.Join(first, "config.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	config, err = loader.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config.Feeds[0].URL != "https://example.com/first" {
		t.Errorf("Expected the first directory to win, got '%s'", config.Feeds[0].URL)
	}
}

func TestDefaultDirs(t *testing.T) {
	dirs := DefaultDirs()
	if len(dirs) == 0 || dirs[0] != "." {
		t.Errorf("Expected the working directory to be searched first, got: %v", dirs)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	data := `{"feeds": [{"url": "https://archlinux.org/feeds/news", "name": "Arch News"}]}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(config.Feeds) != 1 {
		t.Fatalf("Expected 1 feed, got: %d", len(config.Feeds))
	}
	if config.Feeds[0].Name != "Arch News" {
		t.Errorf("Expected name 'Arch News', got '%s'", config.Feeds[0].Name)
	}
	if config.Feeds[0].Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", config.Feeds[0].Timeout)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	data := `feeds:
  - url: https://archlinux.org/feeds/news
    name: Arch News
  - url: https://archlinux.org/feeds/planet
    name: Planet Arch
    timeout: 10
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(config.Feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got: %d", len(config.Feeds))
	}
	if config.Feeds[1].Timeout != 10 {
		t.Errorf("Expected timeout 10, got %d", config.Feeds[1].Timeout)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	if _, err := loader.Load(); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestLoadMissingURL(t *testing.T) {
	dir := t.TempDir()
	data := `{"feeds": [{"name": "No URL"}]}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	if _, err := loader.Load(); err == nil {
		t.Error("Expected an error for a feed without a URL")
	}
}
