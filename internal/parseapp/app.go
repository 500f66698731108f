// internal/parseapp/app.go
package parseapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"ampdesign-core/design"
	"ampdesign/internal/logutil"
	"ampdesign/internal/parsecli"
	"ampdesign/internal/version"
	"ampdesign/internal/writers"
)

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := parsecli.NewFlagSet("ampdesign-parse")
	fs.SetOutput(io.Discard)

	opts, err := parsecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "ampdesign-parse version %s\n", version.Version)
		return 0
	}

	log := logutil.New("ampdesign-parse", stderr, opts.Quiet)

	var in io.ReadCloser
	if opts.Input == "-" {
		in = io.NopCloser(os.Stdin)
	} else {
		in, err = os.Open(opts.Input)
		if err != nil {
			log.Error().Err(err).Msg("open input")
			return 2
		}
	}
	defer func() { _ = in.Close() }()

	pairs, err := design.ParseStream(in)
	if err != nil {
		log.Error().Err(err).Msg("parse")
		return 3
	}

	ch, errCh := writers.StartPairWriter(stdout, opts.Output, opts.Header, len(pairs))
	for _, pp := range pairs {
		ch <- pp
	}
	close(ch)
	if err := <-errCh; err != nil {
		log.Error().Err(err).Msg("write output")
		return 3
	}

	if len(pairs) == 0 {
		log.Warn().Msg("no completed pairs in stream")
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
