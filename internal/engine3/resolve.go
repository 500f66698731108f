package engine3

import (
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Resolution order for the binary and parameter directory: explicit config
// value, environment variable, then (binary only) installed-PATH lookup.
const (
	DefaultBinaryName = "primer3_core"
	EnvBinary         = "PRIMER3_EXE"
	EnvThermoParams   = "PRIMER3_CONFIG"
)

// Config selects the engine installation to use.
type Config struct {
	Binary       string `toml:"binary"`        // path to the engine binary; "" = env/PATH lookup
	ThermoParams string `toml:"thermo_params"` // thermodynamic parameters directory; "" = env lookup
	MinVersion   string `toml:"min_version"`   // lowest acceptable engine version; "" = no gate
}

// Engine is a resolved, version-checked design engine. Construct with
// Resolve; each Run is one synchronous request/response cycle and Engines
// hold no per-invocation state, so one Engine may serve concurrent batches.
type Engine struct {
	bin          string
	thermoParams string
	version      string
	log          zerolog.Logger
}

// Resolve locates and validates the engine once, before any design request
// is processed. Every failure is a *ConfigError.
func Resolve(cfg Config, log zerolog.Logger) (*Engine, error) {
	bin := cfg.Binary
	if bin == "" {
		bin = os.Getenv(EnvBinary)
	}
	if bin == "" {
		p, err := exec.LookPath(DefaultBinaryName)
		if err != nil {
			return nil, &ConfigError{Stage: "binary", Message: DefaultBinaryName + " not found in PATH", Cause: err}
		}
		bin = p
	} else if _, err := os.Stat(bin); err != nil {
		return nil, &ConfigError{Stage: "binary", Message: "cannot stat " + bin, Cause: err}
	}

	params := cfg.ThermoParams
	if params == "" {
		params = os.Getenv(EnvThermoParams)
	}
	if params == "" {
		return nil, &ConfigError{Stage: "params", Message: "thermodynamic parameters directory not configured (set " + EnvThermoParams + " or [engine] thermo_params)"}
	}
	if fi, err := os.Stat(params); err != nil {
		return nil, &ConfigError{Stage: "params", Message: "cannot stat " + params, Cause: err}
	} else if !fi.IsDir() {
		return nil, &ConfigError{Stage: "params", Message: params + " is not a directory"}
	}
	// The engine wants a trailing separator on the parameters path.
	if !strings.HasSuffix(params, "/") {
		params += "/"
	}

	ver, err := reportedVersion(bin)
	if err != nil {
		return nil, &ConfigError{Stage: "version", Message: "engine version probe failed", Cause: err}
	}
	if cfg.MinVersion != "" && compareVersions(ver, cfg.MinVersion) < 0 {
		return nil, &ConfigError{Stage: "version", Message: "engine version " + ver + " below required minimum " + cfg.MinVersion}
	}

	log.Info().Str("binary", bin).Str("version", ver).Str("params", params).Msg("engine resolved")
	return &Engine{bin: bin, thermoParams: params, version: ver, log: log}, nil
}

// reportedVersion asks the binary to identify itself. Older engine builds
// only know -about; newer ones accept -version too, so -about is used.
func reportedVersion(bin string) (string, error) {
	out, err := exec.Command(bin, "-about").CombinedOutput()
	if err != nil && len(out) == 0 {
		return "", err
	}
	return parseReportedVersion(string(out))
}

// ThermoParamsPath is the resolved parameters directory, with the trailing
// separator the engine expects.
func (e *Engine) ThermoParamsPath() string { return e.thermoParams }

// Version is the engine's self-reported version.
func (e *Engine) Version() string { return e.version }
