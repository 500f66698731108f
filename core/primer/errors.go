// core/primer/errors.go
package primer

import "fmt"

// ValidationError reports an entity field that violates its invariant
// (alphabet, strand, closed enum). It is raised at construction time and
// never retried.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
