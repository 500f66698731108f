package design

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestExtractRank(t *testing.T) {
	for _, tc := range []struct {
		key      string
		stripped string
		rank     int
		ok       bool
	}{
		{"PRIMER_LEFT_0_SEQUENCE", "PRIMER_LEFT_SEQUENCE", 0, true},
		{"PRIMER_PAIR_12_PENALTY", "PRIMER_PAIR_PENALTY", 12, true},
		{"PRIMER_RIGHT_3", "PRIMER_RIGHT", 3, true},
		{"PRIMER_PRODUCT_SIZE_RANGE", "PRIMER_PRODUCT_SIZE_RANGE", 0, false},
		{"SEQUENCE_ID", "SEQUENCE_ID", 0, false},
	} {
		s, r, ok := extractRank(tc.key)
		if s != tc.stripped || ok != tc.ok || (tc.ok && r != tc.rank) {
			t.Errorf("extractRank(%q) = %q,%d,%v want %q,%d,%v",
				tc.key, s, r, ok, tc.stripped, tc.rank, tc.ok)
		}
	}
}

func TestIndexTransform(t *testing.T) {
	pairs, err := ParseStream(strings.NewReader(strings.Join([]string{
		"SEQUENCE_ID=s1",
		"PRIMER_LEFT_0=14,20",
		"PRIMER_RIGHT_0=120,23",
		"=",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	p := pairs[0]
	if p.Left.IndexPos != 14 || p.Left.Length != 20 {
		t.Errorf("left index: got %d,%d want 14,20", p.Left.IndexPos, p.Left.Length)
	}
	// RIGHT primers are reported by rightmost coordinate: 120-23+1 = 98.
	if p.Right.IndexPos != 98 || p.Right.Length != 23 {
		t.Errorf("right index: got %d,%d want 98,23", p.Right.IndexPos, p.Right.Length)
	}
}

func TestFlushOnRankBoundary(t *testing.T) {
	pairs, err := ParseStream(strings.NewReader(strings.Join([]string{
		"SEQUENCE_ID=s1",
		"PRIMER_LEFT_0_SEQUENCE=ACGT",
		"PRIMER_PAIR_0_PENALTY=0.5",
		"PRIMER_LEFT_1_SEQUENCE=TTTT",
		"PRIMER_PAIR_1_PENALTY=1.5",
		"=",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0].Left.Sequence != "ACGT" || pairs[0].Penalty != 0.5 {
		t.Errorf("rank 0 mismatch: %+v", pairs[0])
	}
	if pairs[1].Left.Sequence != "TTTT" || pairs[1].Penalty != 1.5 {
		t.Errorf("rank 1 mismatch: %+v", pairs[1])
	}
	for _, p := range pairs {
		if p.AmpliconName != "s1" {
			t.Errorf("amplicon name not persisted across ranks: %+v", p)
		}
	}
}

func TestTruncatedStreamDropsPendingRecord(t *testing.T) {
	// No trailing "=": rank 0 flushes when rank 1 begins, rank 1 is dropped.
	pairs, err := ParseStream(strings.NewReader(strings.Join([]string{
		"SEQUENCE_ID=s1",
		"PRIMER_LEFT_0_SEQUENCE=ACGT",
		"PRIMER_LEFT_1_SEQUENCE=TTTT",
		"PRIMER_PAIR_1_PENALTY=9.9",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Left.Sequence != "ACGT" {
		t.Errorf("wrong record survived: %+v", pairs[0])
	}
}

func TestFixedPrimerEchoDefaultsSequence(t *testing.T) {
	pairs, err := ParseStream(strings.NewReader(strings.Join([]string{
		"SEQUENCE_ID=s1",
		"PRIMER_LEFT_0=14,20",
		"PRIMER_LEFT_INPUT=CATCTGTGTTCTGCTGAATG",
		"PRIMER_RIGHT_0_SEQUENCE=CTTCAGGAAACTCAGACG",
		"=",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0].Left.Sequence != "CATCTGTGTTCTGCTGAATG" {
		t.Errorf("fixed input not used as sequence: %q", pairs[0].Left.Sequence)
	}
	if pairs[0].Right.Sequence != "CTTCAGGAAACTCAGACG" {
		t.Errorf("explicit sequence clobbered: %q", pairs[0].Right.Sequence)
	}
}

func TestUnknownKeyRobustness(t *testing.T) {
	base := []string{
		"SEQUENCE_ID=s1",
		"PRIMER_LEFT_0_SEQUENCE=ACGT",
		"PRIMER_PAIR_0_PENALTY=0.25",
		"=",
	}
	withNoise := append([]string{base[0], "PRIMER_FOO_BAR=1"}, base[1:]...)

	clean, err := ParseStream(strings.NewReader(strings.Join(base, "\n")))
	if err != nil {
		t.Fatalf("clean stream: %v", err)
	}
	noisy, err := ParseStream(strings.NewReader(strings.Join(withNoise, "\n")))
	if err != nil {
		t.Fatalf("noisy stream: %v", err)
	}
	if !reflect.DeepEqual(clean, noisy) {
		t.Fatalf("unknown key changed the output:\nclean: %+v\nnoisy: %+v", clean, noisy)
	}
}

func TestSequenceStateClearsAtTerminator(t *testing.T) {
	pairs, err := ParseStream(strings.NewReader(strings.Join([]string{
		"SEQUENCE_ID=s1",
		"EXCLUDED_REGION=14,20",
		"PRIMER_LEFT_0_SEQUENCE=ACGT",
		"=",
		"SEQUENCE_ID=s2",
		"PRIMER_LEFT_0_SEQUENCE=TTTT",
		"=",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[0].ExcludedRegions == nil || pairs[0].ExcludedRegions[0] != "14,20" {
		t.Errorf("excluded regions missing on first block: %+v", pairs[0])
	}
	if pairs[1].ExcludedRegions != nil {
		t.Errorf("excluded regions leaked into second block: %+v", pairs[1])
	}
	if pairs[1].AmpliconName != "s2" {
		t.Errorf("sequence id not rebound: %q", pairs[1].AmpliconName)
	}
}

// End-to-end scenario over a realistic engine response block.
func TestParseEngineBlock(t *testing.T) {
	stream := strings.Join([]string{
		"SEQUENCE_ID=test_amp1",
		"SEQUENCE_TEMPLATE=ACGTACGTACGT",
		"TARGET=150,1",
		"EXCLUDED_REGION=14,20",
		"PRIMER_PRODUCT_SIZE_RANGE=50-300",
		"PRIMER_LEFT_EXPLAIN=considered 4311, ok 93",
		"PRIMER_RIGHT_EXPLAIN=considered 4593, ok 108",
		"PRIMER_PAIR_EXPLAIN=considered 1, ok 1",
		"PRIMER_PAIR_0_PENALTY=1.777278",
		"PRIMER_LEFT_0_PENALTY=0.958613",
		"PRIMER_RIGHT_0_PENALTY=0.818665",
		"PRIMER_LEFT_0_SEQUENCE=CATCTGTGTTCTGCTGAATGATG",
		"PRIMER_RIGHT_0_SEQUENCE=CTTCAGGAAACTCAGACGACTG",
		"PRIMER_LEFT_0=100,23",
		"PRIMER_RIGHT_0=280,22",
		"PRIMER_LEFT_0_TM=59.041",
		"PRIMER_RIGHT_0_TM=58.181",
		"PRIMER_LEFT_0_GC_PERCENT=43.478",
		"PRIMER_RIGHT_0_GC_PERCENT=50.000",
		"PRIMER_LEFT_0_SELF_ANY_TH=0.00",
		"PRIMER_RIGHT_0_SELF_ANY_TH=11.49",
		"PRIMER_LEFT_0_SELF_END_TH=0.00",
		"PRIMER_RIGHT_0_SELF_END_TH=0.00",
		"PRIMER_LEFT_0_END_STABILITY=3.8600",
		"PRIMER_RIGHT_0_END_STABILITY=3.1200",
		"PRIMER_PAIR_0_COMPL_ANY_TH=0.00",
		"PRIMER_PAIR_0_COMPL_END_TH=0.00",
		"PRIMER_PAIR_0_PRODUCT_SIZE=181",
		"=",
	}, "\n")

	pairs, err := ParseStream(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("ParseStream: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	p := pairs[0]
	if p.AmpliconName != "test_amp1" {
		t.Errorf("amplicon name: %q", p.AmpliconName)
	}
	if p.ProductSizeRange != "50-300" {
		t.Errorf("product size range: %q", p.ProductSizeRange)
	}
	if p.Left.Sequence != "CATCTGTGTTCTGCTGAATGATG" {
		t.Errorf("left sequence: %q", p.Left.Sequence)
	}
	if p.Right.Sequence != "CTTCAGGAAACTCAGACGACTG" {
		t.Errorf("right sequence: %q", p.Right.Sequence)
	}
	if math.Abs(p.Penalty-1.777278) > 1e-9 {
		t.Errorf("pair penalty: %v", p.Penalty)
	}
	if p.Explain != "considered 1, ok 1" {
		t.Errorf("explain: %q", p.Explain)
	}
	if p.Target != "150,1" {
		t.Errorf("target: %q", p.Target)
	}
	if p.ProductSize != 181 {
		t.Errorf("product size: %d", p.ProductSize)
	}
	if p.Left.IndexPos != 100 || p.Right.IndexPos != 280-22+1 {
		t.Errorf("index positions: %d %d", p.Left.IndexPos, p.Right.IndexPos)
	}
	if p.Left.Tm != 59.041 || p.Right.GCPercent != 50.0 {
		t.Errorf("metrics: %+v %+v", p.Left, p.Right)
	}
	if len(p.ExcludedRegions) != 1 || p.ExcludedRegions[0] != "14,20" {
		t.Errorf("excluded regions: %v", p.ExcludedRegions)
	}
}
