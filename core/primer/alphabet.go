// core/primer/alphabet.go
package primer

import "fmt"

// Allowed IUPAC DNA codes and their base sets.
var iupac = map[rune]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
}

// ValidSeq reports whether s is a non-empty string of IUPAC DNA codes.
// Lower-case bases are not accepted; the engine always emits upper case.
func ValidSeq(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := iupac[r]; !ok {
			return false
		}
	}
	return true
}

// checkSeq returns a ValidationError naming the first offending position.
func checkSeq(s string) error {
	if s == "" {
		return &ValidationError{Field: "sequence", Msg: "empty sequence"}
	}
	for i, r := range s {
		if _, ok := iupac[r]; !ok {
			return &ValidationError{
				Field: "sequence",
				Msg:   fmt.Sprintf("invalid base %q at %d; allowed: A C G T S W M K Y R B D H V N", r, i+1),
			}
		}
	}
	return nil
}
