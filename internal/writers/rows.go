// internal/writers/rows.go
package writers

import (
	"fmt"
	"strings"

	"ampdesign-core/primer"
	"ampdesign/pkg/api"
)

// PairHeader is the TSV column line.
const PairHeader = "amplicon\tpair\ttype\tproduct_size\tsize_range\t" +
	"left_seq\tleft_pos\tleft_len\tleft_tm\tleft_gc\t" +
	"right_seq\tright_pos\tright_len\tright_tm\tright_gc\t" +
	"penalty\tcompl_any\tcompl_end\texplain\twarnings"

// FormatPairRowTSV renders one pair as a TSV row (no trailing newline).
func FormatPairRowTSV(pp primer.Pair) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%s\t%s\t%d\t%d\t%.3f\t%.3f\t%s\t%d\t%d\t%.3f\t%.3f\t%.6f\t%.2f\t%.2f\t%s\t%s",
		pp.AmpliconName, pp.Name, string(pp.Type),
		pp.ProductSize, pp.ProductSizeRange,
		pp.Left.Sequence, pp.Left.IndexPos, pp.Left.Length, pp.Left.Tm, pp.Left.GCPercent,
		pp.Right.Sequence, pp.Right.IndexPos, pp.Right.Length, pp.Right.Tm, pp.Right.GCPercent,
		pp.Penalty, pp.ComplAny, pp.ComplEnd,
		sanitizeCol(pp.Explain), sanitizeCol(pp.Warnings),
	)
}

// sanitizeCol keeps free-text engine diagnostics from breaking the row shape.
func sanitizeCol(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ToAPIPair converts a domain pair to its stable wire form.
func ToAPIPair(pp primer.Pair) api.PairV1 {
	return api.PairV1{
		PairName:         pp.Name,
		AmpliconName:     pp.AmpliconName,
		Type:             string(pp.Type),
		Target:           pp.Target,
		Explain:          pp.Explain,
		ProductSizeRange: pp.ProductSizeRange,
		ExcludedRegions:  pp.ExcludedRegions,
		ProductSize:      pp.ProductSize,
		Left:             toAPIPrimer(pp.Left),
		Right:            toAPIPrimer(pp.Right),
		PairPenalty:      pp.Penalty,
		PairComplAny:     pp.ComplAny,
		PairComplEnd:     pp.ComplEnd,
		Warnings:         pp.Warnings,
	}
}

func toAPIPrimer(p primer.Primer) api.PrimerV1 {
	return api.PrimerV1{
		Seq:          p.Sequence,
		Name:         p.Name,
		Chrom:        p.Chrom,
		Strand:       p.Strand,
		Start:        p.Start,
		End:          p.End,
		IndexPos:     p.IndexPos,
		Length:       p.Length,
		Tm:           p.Tm,
		GCPercent:    p.GCPercent,
		Penalty:      p.Penalty,
		SelfAny:      p.SelfAny,
		SelfEnd:      p.SelfEnd,
		EndStability: p.EndStability,
	}
}
