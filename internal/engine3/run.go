package engine3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"ampdesign-core/design"
	"ampdesign-core/primer"
)

// Run performs one synchronous design cycle: the request document at
// requestPath is piped to the engine's stdin and its output stream is parsed
// into ordered pairs. When rawCopyPath is non-empty a verbatim copy of the
// output is persisted there. There is no internal timeout; callers needing
// bounded latency cancel ctx.
func (e *Engine) Run(ctx context.Context, requestPath, rawCopyPath string) ([]primer.Pair, error) {
	req, err := os.Open(requestPath)
	if err != nil {
		return nil, fmt.Errorf("open request document: %w", err)
	}
	defer func() { _ = req.Close() }()

	cmd := exec.CommandContext(ctx, e.bin)
	cmd.Stdin = req
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout: %w", err)
	}

	var stream io.Reader = stdout
	var rawCopy *os.File
	if rawCopyPath != "" {
		rawCopy, err = os.Create(rawCopyPath)
		if err != nil {
			return nil, fmt.Errorf("create raw output copy: %w", err)
		}
		defer func() { _ = rawCopy.Close() }()
		stream = io.TeeReader(stdout, rawCopy)
	}

	e.log.Info().Str("request", requestPath).Msg("invoking engine")
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}

	pairs, perr := design.ParseStream(stream)
	if perr != nil {
		// Drain so Wait can reap the process before we report the parse error.
		_, _ = io.Copy(io.Discard, stdout)
	}
	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("engine exited: %w (stderr: %s)", err, firstLine(stderr.String()))
	}
	if perr != nil {
		return nil, perr
	}

	e.log.Info().Int("pairs", len(pairs)).Msg("engine output parsed")
	return pairs, nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
