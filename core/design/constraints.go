// core/design/constraints.go
package design

import (
	"fmt"
	"strconv"
	"strings"
)

// Namespace is the token every usable design-parameter key starts with once
// its settings-group prefix is stripped.
const Namespace = "PRIMER"

// ConstraintSet is a flat string-to-string configuration mapping. Keys that
// belong to a numbered settings group carry a "<group>_" prefix
// (e.g. "1_PRIMER_MIN_SIZE"); unprefixed keys are group-independent.
type ConstraintSet map[string]string

// ConstraintsFromMap builds a ConstraintSet from an untyped decoded mapping,
// stringifying scalar values. Nested tables or arrays make the configuration
// non-flat and are rejected.
func ConstraintsFromMap(m map[string]any) (ConstraintSet, error) {
	cs := make(ConstraintSet, len(m))
	for k, v := range m {
		switch x := v.(type) {
		case string:
			cs[k] = x
		case bool:
			cs[k] = strconv.FormatBool(x)
		case int:
			cs[k] = strconv.Itoa(x)
		case int64:
			cs[k] = strconv.FormatInt(x, 10)
		case float64:
			cs[k] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("settings key %q: value %T is not flat", k, v)
		}
	}
	return cs, nil
}

// Select returns every entry whose key is prefixed "<groupID>_", with that
// prefix stripped, restricted to stripped keys inside the PRIMER namespace.
// Entries for other groups never appear. Iteration order of the result is
// not significant.
func (cs ConstraintSet) Select(groupID string) ConstraintSet {
	prefix := groupID + "_"
	out := ConstraintSet{}
	for k, v := range cs {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		stripped := strings.TrimPrefix(k, prefix)
		if !strings.HasPrefix(stripped, Namespace) {
			continue
		}
		out[stripped] = v
	}
	return out
}
