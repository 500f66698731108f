// internal/writers/pairs.go
package writers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"syscall"

	"ampdesign-core/primer"
	"ampdesign/internal/jsonlutil"
	"ampdesign/pkg/api"
)

// Formats lists the supported output formats.
func Formats() []string { return []string{"text", "json", "jsonl"} }

// ValidFormat reports whether format names a registered writer.
func ValidFormat(format string) bool {
	for _, f := range Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// StartPairWriter spins up a writer goroutine for primer.Pair items.
// Close the returned channel, then receive the terminal error.
func StartPairWriter(out io.Writer, format string, header bool, bufSize int) (chan<- primer.Pair, <-chan error) {
	switch format {
	case "jsonl":
		return jsonlutil.Start[primer.Pair](out, bufSize,
			func(enc *json.Encoder, pp primer.Pair) error {
				return enc.Encode(ToAPIPair(pp))
			},
			IsBrokenPipe,
		)
	case "json":
		if bufSize <= 0 {
			bufSize = 64
		}
		in := make(chan primer.Pair, bufSize)
		errCh := make(chan error, 1)
		go func() {
			buf := []api.PairV1{}
			for pp := range in {
				buf = append(buf, ToAPIPair(pp))
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(buf); err != nil && !IsBrokenPipe(err) {
				errCh <- err
				return
			}
			errCh <- nil
		}()
		return in, errCh
	case "text":
		if bufSize <= 0 {
			bufSize = 64
		}
		in := make(chan primer.Pair, bufSize)
		errCh := make(chan error, 1)
		go func() {
			bw := bufio.NewWriter(out)
			if header {
				if _, err := fmt.Fprintln(bw, PairHeader); err != nil {
					errCh <- err
					return
				}
			}
			for pp := range in {
				if _, err := fmt.Fprintln(bw, FormatPairRowTSV(pp)); err != nil {
					errCh <- err
					return
				}
			}
			if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
				errCh <- err
				return
			}
			errCh <- nil
		}()
		return in, errCh
	default:
		in := make(chan primer.Pair)
		errCh := make(chan error, 1)
		go func() {
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output %q", format)
		}()
		return in, errCh
	}
}
