package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Map.Width != 80 || cfg.Map.Height != 43 {
		t.Errorf("map %dx%d, want 80x43", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Map.MinRoomSize != 6 || cfg.Map.MaxRoomSize != 12 {
		t.Errorf("room sizes %d..%d, want 6..12", cfg.Map.MinRoomSize, cfg.Map.MaxRoomSize)
	}
	if cfg.Vision.Radius != 12 {
		t.Errorf("vision radius = %d, want 12", cfg.Vision.Radius)
	}
	if cfg.Player.InventoryCapacity != 26 {
		t.Errorf("inventory capacity = %d, want 26", cfg.Player.InventoryCapacity)
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, want 0 (derive from clock)", cfg.Seed)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `
map:
  width: 50
  height: 30
  min_room_size: 4
vision:
  radius: 6
player:
  name: Tester
seed: 99
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Map.Width != 50 || cfg.Map.Height != 30 {
		t.Errorf("map %dx%d, want 50x30", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Vision.Radius != 6 {
		t.Errorf("vision radius = %d, want 6", cfg.Vision.Radius)
	}
	if cfg.Player.Name != "Tester" {
		t.Errorf("player name = %q, want Tester", cfg.Player.Name)
	}
	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("a missing explicit config path must be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("map: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("unparseable YAML at an explicit path must be an error")
	}
}

func TestEmbeddedDefaultMatchesFallback(t *testing.T) {
	// The embedded default.yaml and the hardcoded fallback must agree, or
	// behavior shifts depending on which one wins at load time.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Map != def.Map {
		t.Errorf("embedded map config %+v differs from fallback %+v", cfg.Map, def.Map)
	}
	if cfg.Vision != def.Vision {
		t.Errorf("embedded vision config %+v differs from fallback %+v", cfg.Vision, def.Vision)
	}
}
