package shotplan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 800 {
		t.Errorf("Window = %dx%d, want 1280x800", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.History.Limit != DefaultHistoryLimit {
		t.Errorf("History.Limit = %d, want %d", cfg.History.Limit, DefaultHistoryLimit)
	}
	if cfg.History.DebounceMillis != 300 {
		t.Errorf("History.DebounceMillis = %d, want 300", cfg.History.DebounceMillis)
	}
	if cfg.Trail.TapThreshold != DefaultTapThreshold {
		t.Errorf("Trail.TapThreshold = %v, want %v", cfg.Trail.TapThreshold, DefaultTapThreshold)
	}
	if cfg.Arrow.InsertMinDist != DefaultInsertMinDist {
		t.Errorf("Arrow.InsertMinDist = %v, want %v", cfg.Arrow.InsertMinDist, DefaultInsertMinDist)
	}
	if cfg.Gesture.LongPressMillis != 500 {
		t.Errorf("Gesture.LongPressMillis = %d, want 500", cfg.Gesture.LongPressMillis)
	}
}

func TestLoadConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	data := `{
		"logLevel": "debug",
		"window": {"width": 1920},
		"history": {"limit": 10},
		"arrow": {"insertMinDist": 30}
	}`
	if err := os.WriteFile(filepath.Join(dir, "shotplan.cfg.json"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("Window.Width = %d, want 1920", cfg.Window.Width)
	}
	if cfg.Window.Height != 800 {
		t.Errorf("Window.Height = %d, want the 800 default", cfg.Window.Height)
	}
	if cfg.History.Limit != 10 {
		t.Errorf("History.Limit = %d, want 10", cfg.History.Limit)
	}
	if cfg.Arrow.InsertMinDist != 30 {
		t.Errorf("Arrow.InsertMinDist = %v, want 30", cfg.Arrow.InsertMinDist)
	}
}

func TestLoadConfigMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "shotplan.cfg.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("malformed config file should be an error")
	}
}
