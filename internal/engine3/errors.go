package engine3

import "fmt"

// ConfigError is a fatal setup failure: engine binary, parameter directory
// or version could not be resolved or is incompatible. It is raised once,
// before any design request is processed, and never retried.
type ConfigError struct {
	Stage   string // resolution stage (binary, params, version)
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("engine %s: %s", e.Stage, e.Message)
}

// Unwrap enables errors.Is / errors.As over the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}
