// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"ampdesign-core/design"
	"ampdesign/internal/cliutil"
	"ampdesign/internal/version"
	"ampdesign/internal/writers"
)

// Options holds all CLI flags and arguments of the design app.
type Options struct {
	// Input
	ConfigFile   string
	AmpliconFile string
	SeqFiles     []string // FASTA template files (positionals allowed)

	// Design
	Group            string
	Round            string
	BatchID          string // "" = generated
	ProductSizeRange string
	TargetPos        int // global target override; -1 = none
	TargetSize       int

	// Output
	OutDir  string
	Output  string // text | json | jsonl
	Header  bool   // true unless --no-header
	KeepRaw bool

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, `%s: PCR primer pair design via an external Primer3-style engine

Version: %s

Usage:
  %s --config design.toml --amplicons amps.tsv --group 1 templates.fa
  %s --config design.toml --amplicons amps.tsv --group 2 --output jsonl *.fa.gz

Input:
      --config string      TOML config ([engine] + [settings]) (required)
      --amplicons string   amplicon spec TSV (required)
      --fasta string       FASTA template file (repeatable; positionals work too)

Design:
      --group string       settings group to select (required)
      --round string       design round tag [1]
      --batch string       batch identifier (generated if empty)
      --size-range string  global product size range "min-max"
      --target-pos int     global target override position [-1]
      --target-size int    global target override length [-1]

Output:
      --out-dir string     directory for request/raw documents [.]
      --output string      output: text | json | jsonl [text]
      --no-header          suppress TSV header line
      --keep-raw           keep a verbatim copy of the engine output

Misc:
  -q, --quiet              suppress non-essential logging
  -v, --version            print version and exit
  -h                       show this help
`, name, version.Version, name, name)
	}
	return fs
}

// ParseArgs parses argv into Options (flags may be interleaved with
// positional FASTA paths; globs are expanded).
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	o := Options{
		Round:      "1",
		OutDir:     ".",
		Output:     "text",
		TargetPos:  -1,
		TargetSize: -1,
	}
	var help, noHeader bool

	fs.StringVar(&o.ConfigFile, "config", "", "TOML config file")
	fs.StringVar(&o.AmpliconFile, "amplicons", "", "amplicon spec TSV")
	seqVal := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqVal, "fasta", "FASTA template file (repeatable)")

	fs.StringVar(&o.Group, "group", "", "settings group id")
	fs.StringVar(&o.Round, "round", "1", "design round tag")
	fs.StringVar(&o.BatchID, "batch", "", "batch identifier")
	fs.StringVar(&o.ProductSizeRange, "size-range", "", "global product size range")
	fs.IntVar(&o.TargetPos, "target-pos", -1, "global target override position")
	fs.IntVar(&o.TargetSize, "target-size", -1, "global target override length")

	fs.StringVar(&o.OutDir, "out-dir", ".", "directory for request/raw documents")
	fs.StringVar(&o.Output, "output", "text", "output format")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.BoolVar(&o.KeepRaw, "keep-raw", false, "keep raw engine output")

	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential logging")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	o.Header = !noHeader
	if o.Version {
		return o, nil
	}

	exp, err := cliutil.ExpandGlobs(posArgs)
	if err != nil {
		return o, err
	}
	o.SeqFiles = append(o.SeqFiles, exp...)

	return o, Validate(&o)
}

// Validate enforces cross-flag invariants.
func Validate(o *Options) error {
	if o.ConfigFile == "" {
		return errors.New("--config is required")
	}
	if o.AmpliconFile == "" {
		return errors.New("--amplicons is required")
	}
	if o.Group == "" {
		return errors.New("--group is required")
	}
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one FASTA template file is required")
	}
	if !writers.ValidFormat(o.Output) {
		return fmt.Errorf("unsupported output %q (want %s)", o.Output, strings.Join(writers.Formats(), " | "))
	}
	if (o.TargetPos >= 0) != (o.TargetSize >= 0) {
		return errors.New("--target-pos and --target-size must be given together")
	}
	return nil
}

// GlobalTarget returns the override region, or nil when none was given.
func (o *Options) GlobalTarget() *design.Region {
	if o.TargetPos < 0 || o.TargetSize < 0 {
		return nil
	}
	return &design.Region{Pos: o.TargetPos, Len: o.TargetSize}
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}
