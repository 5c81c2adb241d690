package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creativehubiion/roadforge/internal/model"
)

func TestSaveLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	s := model.DefaultSettings()
	s.Strategy = model.StrategyFrontier
	s.PieceCount = 77
	s.Seed = 42
	s.IntersectionProbability = 0.35

	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded != s {
		t.Errorf("settings round trip mismatch:\n got  %+v\n want %+v", loaded, s)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if s != model.DefaultSettings() {
		t.Error("missing file should load defaults")
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Error("corrupt file should error")
	}
}
