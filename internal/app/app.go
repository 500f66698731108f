// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"ampdesign-core/design"
	"ampdesign-core/fasta"
	"ampdesign/internal/cli"
	"ampdesign/internal/config"
	"ampdesign/internal/engine3"
	"ampdesign/internal/logutil"
	"ampdesign/internal/version"
	"ampdesign/internal/writers"
)

// Exit codes follow the usual tool convention: 0 pairs found, 1 clean run
// with no pairs, 2 usage/config error, 3 runtime failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("ampdesign")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "ampdesign version %s\n", version.Version)
		return 0
	}

	log := logutil.New("ampdesign", stderr, opts.Quiet)

	engCfg, settings, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Error().Err(err).Msg("configuration")
		return 2
	}
	eng, err := engine3.Resolve(engCfg, log)
	if err != nil {
		log.Error().Err(err).Msg("engine resolution")
		return 2
	}

	amps, err := design.LoadAmplicons(opts.AmpliconFile)
	if err != nil {
		log.Error().Err(err).Msg("amplicon spec")
		return 2
	}
	if err := attachTemplates(amps, opts.SeqFiles); err != nil {
		log.Error().Err(err).Msg("templates")
		return 2
	}

	batch := opts.BatchID
	if batch == "" {
		batch = uuid.NewString()[:8]
	}

	spec := design.RequestSpec{
		BatchID:          batch,
		GroupID:          opts.Group,
		Round:            opts.Round,
		OutDir:           opts.OutDir,
		ThermoParamsPath: eng.ThermoParamsPath(),
		ProductSizeRange: opts.ProductSizeRange,
		GlobalTarget:     opts.GlobalTarget(),
		Constraints:      settings.Select(opts.Group),
	}
	reqPath, err := design.BuildRequest(spec, amps)
	if err != nil {
		log.Error().Err(err).Msg("request document")
		return 3
	}
	log.Info().Str("request", reqPath).Str("group", opts.Group).Str("round", opts.Round).
		Int("amplicons", len(amps)).Msg("request document written")

	rawPath := ""
	if opts.KeepRaw {
		rawPath = filepath.Join(opts.OutDir,
			fmt.Sprintf("RawDesign_%s_%s_%s.txt", batch, opts.Group, opts.Round))
	}

	pairs, err := eng.Run(parent, reqPath, rawPath)
	if err != nil {
		log.Error().Err(err).Msg("engine run")
		return 3
	}

	in, errCh := writers.StartPairWriter(stdout, opts.Output, opts.Header, len(pairs))
	for _, pp := range pairs {
		in <- pp
	}
	close(in)
	if err := <-errCh; err != nil {
		log.Error().Err(err).Msg("write output")
		return 3
	}

	if len(pairs) == 0 {
		log.Warn().Msg("no primer pairs designed")
		return 1
	}
	return 0
}

// attachTemplates resolves every amplicon's template from the FASTA inputs.
func attachTemplates(amps []design.Amplicon, seqFiles []string) error {
	var recs []fasta.Record
	for _, f := range seqFiles {
		r, err := fasta.ReadAll(f)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		recs = append(recs, r...)
	}
	byID, err := fasta.Index(recs)
	if err != nil {
		return err
	}
	for i := range amps {
		seq, ok := byID[amps[i].ID]
		if !ok {
			return fmt.Errorf("no template sequence for amplicon %q", amps[i].ID)
		}
		amps[i].Template = seq
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
