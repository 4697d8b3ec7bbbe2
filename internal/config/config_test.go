package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Animation.Frames != 10 {
		t.Errorf("expected 10 frames, got %d", cfg.Animation.Frames)
	}
	if cfg.Animation.FPS != 60 {
		t.Errorf("expected 60 fps, got %d", cfg.Animation.FPS)
	}
	if !cfg.View.BackfaceCulling {
		t.Error("expected back-face culling on by default")
	}
	if cfg.View.Wireframe || cfg.View.Axes {
		t.Error("expected wireframe and axes off by default")
	}
	if cfg.History.Enabled {
		t.Error("expected history off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cubeview.yaml")

	yamlContent := `
window:
  width: 1024
  height: 768
animation:
  frames: 20
view:
  wireframe: true
  axes: true
keys:
  j: "U'"
  space: scramble
history:
  enabled: true
  db_path: /tmp/cv.db
logging:
  level: debug
  log_file: cubeview.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath, Overrides{})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "cubeview" {
		t.Errorf("unset title should keep default, got %q", cfg.Window.Title)
	}
	if cfg.Animation.Frames != 20 {
		t.Errorf("expected 20 frames, got %d", cfg.Animation.Frames)
	}
	if cfg.Animation.FPS != 60 {
		t.Errorf("unset fps should keep default, got %d", cfg.Animation.FPS)
	}
	if !cfg.View.Wireframe || !cfg.View.Axes {
		t.Error("expected wireframe and axes on")
	}
	if !cfg.View.BackfaceCulling {
		t.Error("unset culling should keep default")
	}
	if cfg.Keys["j"] != "U'" || cfg.Keys["space"] != "scramble" {
		t.Errorf("unexpected keys %v", cfg.Keys)
	}
	if !cfg.History.Enabled || cfg.History.DBPath != "/tmp/cv.db" {
		t.Errorf("unexpected history %+v", cfg.History)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "cubeview.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestOverridesWin(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cubeview.yaml")
	if err := os.WriteFile(configPath, []byte("animation:\n  frames: 20\n  fps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath, Overrides{Debug: true, Frames: 5, Record: true, DBPath: "x.db"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Animation.Frames != 5 {
		t.Errorf("flag frames should win, got %d", cfg.Animation.Frames)
	}
	if cfg.Animation.FPS != 30 {
		t.Errorf("file fps should stay, got %d", cfg.Animation.FPS)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug flag should set level, got %s", cfg.Logging.Level)
	}
	if !cfg.History.Enabled || cfg.History.DBPath != "x.db" {
		t.Errorf("unexpected history %+v", cfg.History)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{}); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Animation.Frames = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero frames")
	}

	cfg = Default()
	cfg.Palette.Faces = cfg.Palette.Faces[:5]
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for short palette")
	}

	cfg = Default()
	cfg.Palette.Override = "grey"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	rgb, err := ParseHexColor("#b71234")
	if err != nil {
		t.Fatal(err)
	}
	if rgb != [3]uint8{183, 18, 52} {
		t.Errorf("got %v", rgb)
	}
	if _, err := ParseHexColor("#12345"); err == nil {
		t.Error("expected error for short color")
	}
	if _, err := ParseHexColor("#zzzzzz"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Animation.Frames = 15
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path, Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Animation.Frames != 15 {
		t.Errorf("expected 15 frames after save, got %d", loaded.Animation.Frames)
	}
}
