package parsecli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"ampdesign/internal/cliutil"
	"ampdesign/internal/version"
	"ampdesign/internal/writers"
)

// Options for the reparse app: feed a saved engine output stream straight
// through the response parser.
type Options struct {
	Input   string // raw engine output file, or "-" for stdin
	Output  string // text | json | jsonl
	Header  bool
	Quiet   bool
	Version bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, `%s: reparse a saved engine output stream into tabular pairs

Version: %s

Usage:
  %s RawDesign_b7_1_1.txt
  %s --output jsonl - < engine.out

Flags:
  -o, --output string   output: text | json | jsonl [text]
      --no-header       suppress TSV header line
  -q, --quiet           suppress non-essential logging
  -v, --version         print version and exit
  -h                    show this help
`, name, version.Version, name, name)
	}
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	o := Options{Output: "text"}
	var help, noHeader bool

	fs.StringVar(&o.Output, "output", "text", "output format")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
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

	switch len(posArgs) {
	case 0:
		return o, errors.New("input file required (or '-' for stdin)")
	case 1:
		o.Input = posArgs[0]
	default:
		return o, errors.New("exactly one input file expected")
	}
	if !writers.ValidFormat(o.Output) {
		return o, fmt.Errorf("unsupported output %q (want %s)", o.Output, strings.Join(writers.Formats(), " | "))
	}
	return o, nil
}
