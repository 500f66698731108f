// core/boulder/boulder.go
//
// Package boulder covers the observed shape of the engine's line-oriented
// KEY=VALUE protocol: newline-terminated ASCII, no escaping, logical records
// closed by a line containing exactly "=".
package boulder

import (
	"bufio"
	"io"
	"strings"
)

// Terminator closes a logical record.
const Terminator = "="

// IsTerminator reports whether line is a lone record terminator.
func IsTerminator(line string) bool { return line == Terminator }

// Split divides a KEY=VALUE line at its first '='. A terminator line or a
// line without '=' yields ok=false.
func Split(line string) (key, value string, ok bool) {
	if IsTerminator(line) {
		return "", "", false
	}
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	return line[:i], line[i+1:], true
}

// DocWriter emits a request document. Errors stick: the first write failure
// is retained and reported by Flush.
type DocWriter struct {
	w   *bufio.Writer
	err error
}

func NewDocWriter(w io.Writer) *DocWriter {
	return &DocWriter{w: bufio.NewWriter(w)}
}

// KV writes one KEY=VALUE line.
func (d *DocWriter) KV(key, value string) {
	if d.err != nil {
		return
	}
	_, d.err = d.w.WriteString(key + "=" + value + "\n")
}

// EndRecord closes the current logical record.
func (d *DocWriter) EndRecord() {
	if d.err != nil {
		return
	}
	_, d.err = d.w.WriteString(Terminator + "\n")
}

// Flush drains the buffer and returns the first error seen.
func (d *DocWriter) Flush() error {
	if d.err != nil {
		return d.err
	}
	return d.w.Flush()
}
