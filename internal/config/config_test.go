package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ticklist")
	path := filepath.Join(dir, DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if cfg.StatePath != filepath.Join(dir, DefaultStateName) {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
	if cfg.Backend != "json" || cfg.TickMS != DefaultTickMS || cfg.LogFormat != "text" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(cfg, again) {
		t.Fatalf("reload mismatch:\nwant: %+v\ngot:  %+v", cfg, again)
	}
}

func TestLoadOrCreateOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	content := `
backend = "sqlite"
db_path = "/var/tmp/tasks.db"
state_path = "lists/mine.json"
tick_ms = 0
log_format = "json"

[keys]
quit = ["x"]
next = []
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.Backend != "sqlite" || cfg.DBPath != "/var/tmp/tasks.db" {
		t.Errorf("backend settings not applied: %+v", cfg)
	}
	if cfg.StatePath != filepath.Join(dir, "lists", "mine.json") {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
	if cfg.TickMS != DefaultTickMS {
		t.Errorf("TickMS = %d, want default", cfg.TickMS)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"x"}) {
		t.Errorf("Quit = %v", cfg.Keys.Quit)
	}
	if !reflect.DeepEqual(cfg.Keys.Next, []string{"j", "down"}) {
		t.Errorf("empty Next not re-defaulted: %v", cfg.Keys.Next)
	}
	if !reflect.DeepEqual(cfg.Keys.MoveUp, []string{"K"}) {
		t.Errorf("MoveUp = %v", cfg.Keys.MoveUp)
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte("backend = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResolveConfigPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := ResolveConfigPath()
	if err != nil {
		t.Fatalf("ResolveConfigPath: %v", err)
	}
	want := filepath.Join(dir, AppDirName, DefaultConfigFileName)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
