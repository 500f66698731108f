package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ampdesign/internal/engine3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "design.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[engine]
binary = "/usr/local/bin/primer3_core"
thermo_params = "/opt/primer3_config"
min_version = "2.5.0"

[settings]
"1_PRIMER_MIN_SIZE" = 18
"1_PRIMER_MIN_TM" = 57.5
"2_PRIMER_MIN_SIZE" = 20
"PRIMER_NUM_RETURN" = "5"
`)
	engCfg, cs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if engCfg.Binary != "/usr/local/bin/primer3_core" || engCfg.MinVersion != "2.5.0" {
		t.Errorf("engine config: %+v", engCfg)
	}
	if cs["1_PRIMER_MIN_SIZE"] != "18" || cs["1_PRIMER_MIN_TM"] != "57.5" {
		t.Errorf("settings: %v", cs)
	}
	sel := cs.Select("1")
	if len(sel) != 2 || sel["PRIMER_MIN_SIZE"] != "18" {
		t.Errorf("Select(1): %v", sel)
	}
}

func TestLoadRejectsNestedSettings(t *testing.T) {
	path := writeConfig(t, `
[settings]
[settings.nested]
x = "y"
`)
	_, _, err := Load(path)
	var cerr *engine3.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *ConfigError, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	var cerr *engine3.ConfigError
	if !errors.As(err, &cerr) || cerr.Stage != "config" {
		t.Fatalf("want config ConfigError, got %v", err)
	}
}
