// core/design/response_fields.go
package design

import (
	"fmt"
	"strconv"
	"strings"

	"ampdesign-core/primer"
)

// primerAcc accumulates the per-rank fields of one LEFT or RIGHT namespace
// until the record flushes.
type primerAcc struct {
	sequence string
	input    string // fixed-primer echo; used when sequence is absent

	indexPos int
	length   int

	selfEnd      float64
	penalty      float64
	selfAny      float64
	endStability float64
	tm           float64
	gc           float64
}

// build materializes the accumulator into a Primer entity. When the engine
// echoed back a caller-fixed primer unchanged it emits no SEQUENCE field, so
// the input echo stands in for it.
func (a *primerAcc) build() (primer.Primer, error) {
	seq := a.sequence
	if seq == "" {
		seq = a.input
	}
	return primer.New(primer.Primer{
		Sequence:     seq,
		IndexPos:     a.indexPos,
		Length:       a.length,
		SelfEnd:      a.selfEnd,
		Penalty:      a.penalty,
		SelfAny:      a.selfAny,
		EndStability: a.endStability,
		Tm:           a.tm,
		GCPercent:    a.gc,
	})
}

// pairAcc accumulates PAIR-namespace fields.
type pairAcc struct {
	productSize int
	warnings    string
	penalty     float64
	complAny    float64
	complEnd    float64
}

// Setter tables. The map keys reproduce the stored field names exactly:
// LEFT/RIGHT fields are the bare field name lower-cased, while a PAIR field
// is re-prefixed with "PAIR_" before lower-casing ("PENALTY" is stored as
// "pair_penalty"). Downstream consumers key off these names, so the
// asymmetry must not be normalized away. Unmapped names are ignored.
var primerSetters = map[string]func(*primerAcc, string) error{
	"sequence":      func(a *primerAcc, v string) error { a.sequence = v; return nil },
	"input":         func(a *primerAcc, v string) error { a.input = v; return nil },
	"tm":            floatField(func(a *primerAcc) *float64 { return &a.tm }),
	"gc_percent":    floatField(func(a *primerAcc) *float64 { return &a.gc }),
	"penalty":       floatField(func(a *primerAcc) *float64 { return &a.penalty }),
	"self_any":      floatField(func(a *primerAcc) *float64 { return &a.selfAny }),
	"self_any_th":   floatField(func(a *primerAcc) *float64 { return &a.selfAny }),
	"self_end":      floatField(func(a *primerAcc) *float64 { return &a.selfEnd }),
	"self_end_th":   floatField(func(a *primerAcc) *float64 { return &a.selfEnd }),
	"end_stability": floatField(func(a *primerAcc) *float64 { return &a.endStability }),
}

var pairSetters = map[string]func(*pairAcc, string) error{
	"pair_penalty":      pairFloat(func(a *pairAcc) *float64 { return &a.penalty }),
	"pair_compl_any":    pairFloat(func(a *pairAcc) *float64 { return &a.complAny }),
	"pair_compl_any_th": pairFloat(func(a *pairAcc) *float64 { return &a.complAny }),
	"pair_compl_end":    pairFloat(func(a *pairAcc) *float64 { return &a.complEnd }),
	"pair_compl_end_th": pairFloat(func(a *pairAcc) *float64 { return &a.complEnd }),
}

func floatField(slot func(*primerAcc) *float64) func(*primerAcc, string) error {
	return func(a *primerAcc, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("bad numeric field value %q: %v", v, err)
		}
		*slot(a) = f
		return nil
	}
}

func pairFloat(slot func(*pairAcc) *float64) func(*pairAcc, string) error {
	return func(a *pairAcc, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("bad numeric field value %q: %v", v, err)
		}
		*slot(a) = f
		return nil
	}
}
