// core/primer/pair.go
package primer

import "strings"

// PairType is the closed set of assay roles a designed pair can be tagged
// with by the orchestration layer.
type PairType string

const (
	TypeExt            PairType = "ext"
	TypeInt            PairType = "int"
	TypeIllumina       PairType = "illumina"
	TypeIlluminaTailed PairType = "illumina_tailed"
	TypeHRM            PairType = "hrm"
	TypeFlag           PairType = "flag"
	TypeFlagRevcom     PairType = "flag_revcom"
	TypeHA             PairType = "ha"
	TypeHARevcom       PairType = "ha_revcom"
)

var pairTypes = map[PairType]bool{
	TypeExt: true, TypeInt: true,
	TypeIllumina: true, TypeIlluminaTailed: true,
	TypeHRM:  true,
	TypeFlag: true, TypeFlagRevcom: true,
	TypeHA: true, TypeHARevcom: true,
}

// ParsePairType matches s case-insensitively against the closed enum.
func ParsePairType(s string) (PairType, error) {
	t := PairType(strings.ToLower(s))
	if !pairTypes[t] {
		return "", &ValidationError{Field: "type", Msg: "unknown pair type " + s}
	}
	return t, nil
}

// Pair is one left/right primer combination bounding an amplicon, plus the
// pair-level metrics reported by the engine. Pairs are constructed atomically
// by the response parser; only Name and Type may be mutated afterwards (by
// the coordinate-annotation layer).
type Pair struct {
	Name         string // mutable
	AmpliconName string
	Target       string // opaque "pos,len" spec as echoed by the engine
	Explain      string // engine diagnostic, e.g. "considered 1, ok 1"

	ProductSizeRange string   // "min-max"
	ExcludedRegions  []string // nil = absent; order preserved
	ProductSize      int

	// Optional slice of the submitted template that this pair was designed
	// against; set by the orchestration layer, not the parser.
	QuerySliceStart *int
	QuerySliceEnd   *int

	Left  Primer
	Right Primer

	Type PairType // mutable; "" until tagged

	ComplEnd float64
	ComplAny float64
	Penalty  float64

	Warnings string // "" = absent
}

// SetType tags the pair, enforcing the closed enum.
func (pp *Pair) SetType(s string) error {
	t, err := ParsePairType(s)
	if err != nil {
		return err
	}
	pp.Type = t
	return nil
}
