package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"ampdesign-core/design"
	"ampdesign/internal/engine3"
)

// File is the on-disk TOML shape:
//
//	[engine]
//	binary = "/usr/local/bin/primer3_core"
//	thermo_params = "/opt/primer3_config"
//	min_version = "2.5.0"
//
//	[settings]
//	"1_PRIMER_MIN_SIZE" = 18
//	"1_PRIMER_MAX_SIZE" = 25
//	"2_PRIMER_MIN_SIZE" = 20
//
// Settings values must be scalars; group-prefixed keys select the numbered
// settings group at design time.
type File struct {
	Engine   engine3.Config `toml:"engine"`
	Settings map[string]any `toml:"settings"`
}

// Load reads a config file and returns the engine selection plus the flat
// constraint mapping. A non-flat [settings] table is a *engine3.ConfigError.
func Load(path string) (engine3.Config, design.ConstraintSet, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return engine3.Config{}, nil, &engine3.ConfigError{
			Stage: "config", Message: "cannot load " + path, Cause: err,
		}
	}
	cs, err := design.ConstraintsFromMap(f.Settings)
	if err != nil {
		return engine3.Config{}, nil, &engine3.ConfigError{
			Stage: "config", Message: fmt.Sprintf("%s: settings not flat", path), Cause: err,
		}
	}
	return f.Engine, cs, nil
}
