// core/design/loader.go
package design

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadAmplicons reads an amplicon spec TSV. Columns:
//
//	id  targets  excluded  included  offset  fixed_left  fixed_right
//
// Region columns use "pos,len" syntax, ';'-separated for lists. Trailing
// columns may be omitted; "-" marks an empty column. Lines starting with '#'
// and blank lines are skipped. Templates are attached separately from FASTA.
func LoadAmplicons(path string) ([]Amplicon, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Amplicon
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 1 || len(f) > 7 {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		a := Amplicon{ID: f[0]}
		if v := col(f, 1); v != "" {
			if a.Targets, err = parseRegionList(v); err != nil {
				return nil, fmt.Errorf("%s:%d targets: %v", path, ln, err)
			}
		}
		if v := col(f, 2); v != "" {
			if a.Excluded, err = parseRegionList(v); err != nil {
				return nil, fmt.Errorf("%s:%d excluded: %v", path, ln, err)
			}
		}
		if v := col(f, 3); v != "" {
			r, err := ParseRegion(v)
			if err != nil {
				return nil, fmt.Errorf("%s:%d included: %v", path, ln, err)
			}
			a.Included = &r
		}
		if v := col(f, 4); v != "" {
			off, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad offset: %v", path, ln, err)
			}
			a.ProductSizeOffset = &off
		}
		a.FixedLeft = strings.ToUpper(col(f, 5))
		a.FixedRight = strings.ToUpper(col(f, 6))
		list = append(list, a)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// col returns field i, treating missing fields and "-" as empty.
func col(f []string, i int) string {
	if i >= len(f) || f[i] == "-" {
		return ""
	}
	return f[i]
}

func parseRegionList(s string) ([]Region, error) {
	var out []Region
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := ParseRegion(part)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
