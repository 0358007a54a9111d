package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestLoadCheck(t *testing.T) {
	cfg, err := Load([]string{"check"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Command != CommandCheck {
		t.Errorf("Expected command 'check', got '%s'", cfg.Command)
	}
	if cfg.Debug || cfg.Raw || cfg.NoCache {
		t.Error("Expected all global options off by default")
	}
}

func TestLoadGlobalOptions(t *testing.T) {
	cfg, err := Load([]string{"-d", "-r", "-f", "/tmp/informant.dat", "--no-cache", "check"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if !cfg.Raw {
		t.Error("Expected raw to be enabled")
	}
	if !cfg.NoCache {
		t.Error("Expected no-cache to be enabled")
	}
	if cfg.File != "/tmp/informant.dat" {
		t.Errorf("Expected file '/tmp/informant.dat', got '%s'", cfg.File)
	}
}

func TestLoadListOptions(t *testing.T) {
	cfg, err := Load([]string{"list", "--reverse", "--unread"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Command != CommandList {
		t.Errorf("Expected command 'list', got '%s'", cfg.Command)
	}
	if !cfg.Reverse {
		t.Error("Expected reverse to be enabled")
	}
	if !cfg.Unread {
		t.Error("Expected unread to be enabled")
	}
}

func TestLoadReadItem(t *testing.T) {
	cfg, err := Load([]string{"read", "Linux 6.1 requires manual intervention"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Command != CommandRead {
		t.Errorf("Expected command 'read', got '%s'", cfg.Command)
	}
	if cfg.Item != "Linux 6.1 requires manual intervention" {
		t.Errorf("Expected item argument, got '%s'", cfg.Item)
	}
	if cfg.ReadAll {
		t.Error("Expected read-all to be disabled")
	}
}

func TestLoadReadAll(t *testing.T) {
	cfg, err := Load([]string{"read", "--all"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !cfg.ReadAll {
		t.Error("Expected read-all to be enabled")
	}
}

func TestLoadReadAllWithItemFails(t *testing.T) {
	_, err := Load([]string{"read", "--all", "3"})
	if err == nil {
		t.Error("Expected an error combining --all with an item argument")
	}
}

func TestLoadNoCommandFails(t *testing.T) {
	_, err := Load([]string{"-d"})
	if err == nil {
		t.Error("Expected an error when no command is given")
	}
}
