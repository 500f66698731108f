// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadAll parses every record from path. "-" reads stdin; gzip input is
// detected by magic number or a .gz suffix.
func ReadAll(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Parse(rc)
}

// Parse reads FASTA records from r. Record ids are the first whitespace
// delimited token of the header line.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	// Allow very long single-line sequences.
	sc.Buffer(make([]byte, 64<<10), 64<<20)

	var (
		out []Record
		id  string
		seq bytes.Buffer
	)
	flush := func() {
		if id != "" {
			out = append(out, Record{ID: id, Seq: seq.String()})
		}
		seq.Reset()
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id = strings.Fields(line[1:])[0]
			continue
		}
		if id == "" {
			return nil, fmt.Errorf("sequence data before first header")
		}
		seq.WriteString(strings.ToUpper(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

// Index maps record id to sequence; duplicate ids are an error since
// templates are looked up by amplicon id.
func Index(recs []Record) (map[string]string, error) {
	m := make(map[string]string, len(recs))
	for _, r := range recs {
		if _, dup := m[r.ID]; dup {
			return nil, fmt.Errorf("duplicate sequence id %q", r.ID)
		}
		m[r.ID] = r.Seq
	}
	return m, nil
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles gzip and "-" for stdin.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// Detect gzip by magic number (1F 8B) or by .gz suffix.
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
