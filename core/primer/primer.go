// core/primer/primer.go
package primer

// Primer describes one designed (or caller-fixed) primer as reported by the
// design engine. Sequence, index position and the six design metrics are set
// once at construction; Name and the region fields are annotated later by the
// coordinate-mapping layer once genomic positions are resolved.
type Primer struct {
	Sequence string // IUPAC DNA, "" = absent
	Name     string // mutable

	// Genomic region, mutable, independent of Sequence.
	Chrom  string
	Strand int // +1 or -1; 0 until annotated
	Start  int
	End    int

	IndexPos int // 0-based 5' offset within the submitted template
	Length   int

	// Design metrics (read-only after construction).
	SelfEnd      float64
	Penalty      float64
	SelfAny      float64
	EndStability float64
	Tm           float64
	GCPercent    float64
}

// New validates p's sequence invariant and returns the value unchanged on
// success. An empty Sequence means "absent" and is allowed; a present
// sequence must be non-empty IUPAC DNA.
func New(p Primer) (Primer, error) {
	if p.Sequence != "" {
		if err := checkSeq(p.Sequence); err != nil {
			return Primer{}, err
		}
	}
	return p, nil
}

// SetRegion annotates the primer's genomic placement. Strand must be +1 or -1.
func (p *Primer) SetRegion(chrom string, strand, start, end int) error {
	if strand != +1 && strand != -1 {
		return &ValidationError{Field: "strand", Msg: "must be +1 or -1"}
	}
	p.Chrom, p.Strand, p.Start, p.End = chrom, strand, start, end
	return nil
}
