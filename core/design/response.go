// core/design/response.go
package design

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"ampdesign-core/boulder"
	"ampdesign-core/primer"
)

// rankNone is the sentinel pair rank before any indexed key has been seen in
// the current sequence block.
const rankNone = -1

// first "_<N>" run embedded in a response key carries the pair rank
var rankRE = regexp.MustCompile(`_(\d+)`)

// extractRank pulls the embedded pair rank out of key and returns the key
// with the matched "_<N>" removed. Keys without an index report ok=false.
func extractRank(key string) (stripped string, rank int, ok bool) {
	m := rankRE.FindStringSubmatchIndex(key)
	if m == nil {
		return key, 0, false
	}
	n, err := strconv.Atoi(key[m[2]:m[3]])
	if err != nil {
		return key, 0, false
	}
	return key[:m[0]] + key[m[1]:], n, true
}

// Parser folds the engine's multiplexed output stream into Pair entities.
// Feed it one line at a time; completed records are appended to the result
// in engine emission order. All state is local to one Parser value, so
// independent invocations need no coordination.
type Parser struct {
	rank      int
	recording bool

	left  primerAcc
	right primerAcc
	pair  pairAcc

	// Sequence-level state persists across pair ranks within one block and
	// is cleared only at a lone "=" terminator.
	seqID            string
	target           string
	productSizeRange string
	explainLeft      string
	explainRight     string
	explainPair      string
	excluded         []string

	out []primer.Pair
}

func NewParser() *Parser {
	return &Parser{rank: rankNone}
}

// Feed consumes one line of engine output. Unrecognized lines are ignored by
// design: unknown or future engine fields must not abort parsing.
func (p *Parser) Feed(line string) error {
	if boulder.IsTerminator(line) {
		if err := p.flush(); err != nil {
			return err
		}
		p.rank = rankNone
		p.recording = false
		p.seqID, p.target, p.productSizeRange = "", "", ""
		p.explainLeft, p.explainRight, p.explainPair = "", "", ""
		p.excluded = nil
		return nil
	}

	key, value, ok := boulder.Split(line)
	if !ok {
		return nil
	}

	key, rank, indexed := extractRank(key)
	if indexed && rank != p.rank {
		if err := p.flush(); err != nil {
			return err
		}
		p.rank = rank
	}

	switch {
	case key == "SEQUENCE_ID":
		p.seqID = value
		p.recording = true
	case strings.HasPrefix(key, "SEQUENCE"):
		p.recording = true
	}

	// Sequence-level captures apply regardless of recording state.
	switch key {
	case "PRIMER_PRODUCT_SIZE_RANGE":
		p.productSizeRange = value
	case "PRIMER_LEFT_EXPLAIN":
		p.explainLeft = value
	case "PRIMER_RIGHT_EXPLAIN":
		p.explainRight = value
	case "PRIMER_PAIR_EXPLAIN":
		p.explainPair = value
	case "TARGET":
		p.target = value
	case "EXCLUDED_REGION":
		p.excluded = append(p.excluded, value)
	}

	// Pair-field captures need an active record under a concrete rank; the
	// template and fixed-primer echoes in the SEQUENCE namespace never feed
	// the accumulators.
	if !p.recording || p.rank == rankNone || strings.HasPrefix(key, "SEQUENCE") {
		return nil
	}
	return p.capture(key, value)
}

// capture routes an index-stripped key into the matching accumulator.
func (p *Parser) capture(key, value string) error {
	ns, field, acc := splitPrimerKey(p, key)
	switch ns {
	case "LEFT", "RIGHT":
		if field == "" {
			// Bare "<NAMESPACE>=pos,len" line. RIGHT primers are reported by
			// their rightmost template coordinate; the entity records the
			// 5'-most offset on the template strand.
			r, err := ParseRegion(value)
			if err != nil {
				return fmt.Errorf("%s rank %d: %w", key, p.rank, err)
			}
			if ns == "RIGHT" {
				acc.indexPos = r.Pos - r.Len + 1
			} else {
				acc.indexPos = r.Pos
			}
			acc.length = r.Len
			return nil
		}
		if set, ok := primerSetters[strings.ToLower(field)]; ok {
			if err := set(acc, value); err != nil {
				return fmt.Errorf("%s rank %d: %w", key, p.rank, err)
			}
		}
	case "PAIR":
		switch field {
		case "PRODUCT_SIZE":
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return fmt.Errorf("%s rank %d: %v", key, p.rank, err)
			}
			p.pair.productSize = n
		case "WARNING":
			p.pair.warnings = value
		default:
			if set, ok := pairSetters[strings.ToLower("PAIR_"+field)]; ok {
				if err := set(&p.pair, value); err != nil {
					return fmt.Errorf("%s rank %d: %w", key, p.rank, err)
				}
			}
		}
	}
	return nil
}

// splitPrimerKey classifies an index-stripped key into its namespace and
// remaining field name. Keys outside PRIMER_{LEFT,RIGHT,PAIR} yield ns="".
func splitPrimerKey(p *Parser, key string) (ns, field string, acc *primerAcc) {
	switch {
	case key == "PRIMER_LEFT":
		return "LEFT", "", &p.left
	case key == "PRIMER_RIGHT":
		return "RIGHT", "", &p.right
	case strings.HasPrefix(key, "PRIMER_LEFT_"):
		return "LEFT", strings.TrimPrefix(key, "PRIMER_LEFT_"), &p.left
	case strings.HasPrefix(key, "PRIMER_RIGHT_"):
		return "RIGHT", strings.TrimPrefix(key, "PRIMER_RIGHT_"), &p.right
	case strings.HasPrefix(key, "PRIMER_PAIR_"):
		return "PAIR", strings.TrimPrefix(key, "PRIMER_PAIR_"), nil
	}
	return "", "", nil
}

// flush materializes the pending record, if any, into one Pair. A record is
// pending only while recording under a concrete rank; the transition from
// the sentinel to the first indexed key must not emit.
func (p *Parser) flush() error {
	if !p.recording || p.rank == rankNone {
		return nil
	}
	left, err := p.left.build()
	if err != nil {
		return err
	}
	right, err := p.right.build()
	if err != nil {
		return err
	}
	pp := primer.Pair{
		AmpliconName:     p.seqID,
		Target:           p.target,
		Explain:          p.explainPair,
		ProductSizeRange: p.productSizeRange,
		ProductSize:      p.pair.productSize,
		Left:             left,
		Right:            right,
		ComplEnd:         p.pair.complEnd,
		ComplAny:         p.pair.complAny,
		Penalty:          p.pair.penalty,
		Warnings:         p.pair.warnings,
	}
	if len(p.excluded) > 0 {
		pp.ExcludedRegions = append([]string(nil), p.excluded...)
	}
	p.out = append(p.out, pp)
	p.left, p.right, p.pair = primerAcc{}, primerAcc{}, pairAcc{}
	return nil
}

// Pairs returns the completed records. A stream that ended without a final
// terminator simply leaves its last pending record unflushed; that record is
// dropped here, by design.
func (p *Parser) Pairs() []primer.Pair {
	return p.out
}

// ExplainLeft and ExplainRight expose the per-side diagnostics of the block
// being parsed; the pair entity itself carries only the PAIR explain.
func (p *Parser) ExplainLeft() string  { return p.explainLeft }
func (p *Parser) ExplainRight() string { return p.explainRight }

// ParseStream folds r's lines through a Parser and returns the ordered
// result: ascending rank within a sequence block, blocks in submission order.
func ParseStream(r io.Reader) ([]primer.Pair, error) {
	p := NewParser()
	sc := bufio.NewScanner(r)
	// Template echoes can be very long single lines.
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for sc.Scan() {
		if err := p.Feed(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read engine output: %w", err)
	}
	return p.Pairs(), nil
}
