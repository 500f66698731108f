// pkg/api/pairs_v1.go
package api

// PrimerV1 is the stable JSON schema for one designed primer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PrimerV1 struct {
	Seq          string  `json:"seq,omitempty"`
	Name         string  `json:"name,omitempty"`
	Chrom        string  `json:"chrom,omitempty"`
	Strand       int     `json:"strand,omitempty"`
	Start        int     `json:"start,omitempty"`
	End          int     `json:"end,omitempty"`
	IndexPos     int     `json:"index_pos"`
	Length       int     `json:"length"`
	Tm           float64 `json:"tm"`
	GCPercent    float64 `json:"gc_percent"`
	Penalty      float64 `json:"penalty"`
	SelfAny      float64 `json:"self_any"`
	SelfEnd      float64 `json:"self_end"`
	EndStability float64 `json:"end_stability"`
}

// PairV1 is the stable JSON/JSONL schema for one designed primer pair.
type PairV1 struct {
	PairName         string   `json:"pair_name,omitempty"`
	AmpliconName     string   `json:"amplicon_name"`
	Type             string   `json:"type,omitempty"`
	Target           string   `json:"target,omitempty"`
	Explain          string   `json:"explain,omitempty"`
	ProductSizeRange string   `json:"product_size_range,omitempty"`
	ExcludedRegions  []string `json:"excluded_regions,omitempty"`
	ProductSize      int      `json:"product_size"`
	Left             PrimerV1 `json:"left"`
	Right            PrimerV1 `json:"right"`
	PairPenalty      float64  `json:"pair_penalty"`
	PairComplAny     float64  `json:"pair_compl_any"`
	PairComplEnd     float64  `json:"pair_compl_end"`
	Warnings         string   `json:"warnings,omitempty"`
}
