package engine3

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The engine reports itself as e.g. "libprimer3 release 2.6.1"; the last
// dotted number run on the line is taken as the version.
var versionRE = regexp.MustCompile(`(\d+(?:\.\d+)+)`)

// parseReportedVersion extracts the version string from the engine's
// -about/-version output.
func parseReportedVersion(out string) (string, error) {
	all := versionRE.FindAllString(out, -1)
	if len(all) == 0 {
		return "", fmt.Errorf("no version in engine output %q", strings.TrimSpace(out))
	}
	return all[len(all)-1], nil
}

// compareVersions orders dotted numeric versions: -1, 0, +1.
// Missing components count as zero, so "2.6" == "2.6.0".
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
