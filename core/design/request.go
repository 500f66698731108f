// core/design/request.go
package design

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ampdesign-core/boulder"
)

// Region is a pos,len window on a template (0-based position).
type Region struct {
	Pos int
	Len int
}

func (r Region) String() string { return fmt.Sprintf("%d,%d", r.Pos, r.Len) }

// ParseRegion reads the engine's "pos,len" syntax.
func ParseRegion(s string) (Region, error) {
	p, l, ok := strings.Cut(s, ",")
	if !ok {
		return Region{}, fmt.Errorf("bad region %q (want pos,len)", s)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(p))
	if err != nil {
		return Region{}, fmt.Errorf("bad region %q: %v", s, err)
	}
	ln, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return Region{}, fmt.Errorf("bad region %q: %v", s, err)
	}
	return Region{Pos: pos, Len: ln}, nil
}

// Amplicon is one design request: a template plus the windows constraining
// where primers may land.
type Amplicon struct {
	ID         string
	Template   string
	FixedLeft  string // pre-chosen left primer to echo, "" = design freely
	FixedRight string
	Targets    []Region
	Excluded   []Region
	Included   *Region
	// ProductSizeOffset shifts the batch-wide product-size range for this
	// amplicon only (added to both ends of "min-max").
	ProductSizeOffset *int
}

// RequestSpec carries the batch-level inputs of one request document.
type RequestSpec struct {
	BatchID          string
	GroupID          string
	Round            string // tagging only; not part of the document
	OutDir           string
	ThermoParamsPath string
	ProductSizeRange string  // global "min-max", "" = omit
	GlobalTarget     *Region // overrides every amplicon's own targets
	Constraints      ConstraintSet
}

// RequestPath is the deterministic document name for a batch/group pair.
// Callers running batches concurrently must pick disjoint identifiers.
func RequestPath(dir, batchID, groupID string) string {
	return filepath.Join(dir, fmt.Sprintf("AmpForDesign_%s_%s.txt", batchID, groupID))
}

// BuildRequest serializes amps plus the selected constraints into the
// engine's input document and returns its path.
func BuildRequest(spec RequestSpec, amps []Amplicon) (string, error) {
	path := RequestPath(spec.OutDir, spec.BatchID, spec.GroupID)
	fh, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create request document: %w", err)
	}
	defer func() { _ = fh.Close() }()

	doc := boulder.NewDocWriter(fh)
	doc.KV("PRIMER_THERMODYNAMIC_PARAMETERS_PATH", spec.ThermoParamsPath)

	// Constraint emission order is not significant; sort for stable files.
	keys := make([]string, 0, len(spec.Constraints))
	for k := range spec.Constraints {
		if strings.HasPrefix(k, Namespace) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		doc.KV(k, spec.Constraints[k])
	}

	for _, amp := range amps {
		if amp.Template == "" {
			return "", fmt.Errorf("amplicon %s: empty template", amp.ID)
		}
		if spec.ProductSizeRange != "" {
			rng := spec.ProductSizeRange
			if amp.ProductSizeOffset != nil {
				rng, err = shiftRange(rng, *amp.ProductSizeOffset)
				if err != nil {
					return "", fmt.Errorf("amplicon %s: %w", amp.ID, err)
				}
			}
			doc.KV("PRIMER_PRODUCT_SIZE_RANGE", rng)
		}
		doc.KV("SEQUENCE_ID", amp.ID)
		doc.KV("SEQUENCE_TEMPLATE", amp.Template)
		if amp.FixedLeft != "" {
			doc.KV("PRIMER_LEFT_INPUT", amp.FixedLeft)
		}
		if amp.FixedRight != "" {
			doc.KV("PRIMER_RIGHT_INPUT", amp.FixedRight)
		}
		if amp.Included != nil {
			doc.KV("INCLUDED_REGION", amp.Included.String())
		}
		if spec.GlobalTarget != nil {
			doc.KV("SEQUENCE_TARGET", spec.GlobalTarget.String())
		} else {
			for _, t := range amp.Targets {
				doc.KV("SEQUENCE_TARGET", t.String())
			}
		}
		for _, x := range amp.Excluded {
			doc.KV("SEQUENCE_EXCLUDED_REGION", x.String())
		}
		doc.EndRecord()
	}

	if err := doc.Flush(); err != nil {
		return "", fmt.Errorf("write request document: %w", err)
	}
	return path, nil
}

// shiftRange adds off to both ends of a "min-max" range.
func shiftRange(rng string, off int) (string, error) {
	lo, hi, ok := strings.Cut(rng, "-")
	if !ok {
		return "", fmt.Errorf("bad product size range %q (want min-max)", rng)
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return "", fmt.Errorf("bad product size range %q: %v", rng, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return "", fmt.Errorf("bad product size range %q: %v", rng, err)
	}
	return fmt.Sprintf("%d-%d", min+off, max+off), nil
}
