package app

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const cannedResponse = `SEQUENCE_ID=test_amp1
SEQUENCE_TEMPLATE=ACGTACGTACGT
PRIMER_PAIR_EXPLAIN=considered 1, ok 1
PRIMER_LEFT_0_SEQUENCE=CATCTGTGTTCTGCTGAATGATG
PRIMER_RIGHT_0_SEQUENCE=CTTCAGGAAACTCAGACGACTG
PRIMER_LEFT_0=100,23
PRIMER_RIGHT_0=280,22
PRIMER_PAIR_0_PENALTY=1.777278
PRIMER_PAIR_0_PRODUCT_SIZE=181
=
`

// fixture lays out a complete working directory: fake engine script, TOML
// config, amplicon spec and template FASTA. Returns the argv prefix.
func fixture(t *testing.T) (dir string, argv []string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine script needs /bin/sh")
	}
	dir = t.TempDir()

	bin := filepath.Join(dir, "primer3_core")
	script := "#!/bin/sh\n" +
		"if [ \"$1\" = \"-about\" ]; then\n" +
		"  echo \"libprimer3 release 2.6.1\"\n" +
		"  exit 0\n" +
		"fi\n" +
		"cat >/dev/null\n" +
		"cat <<'EOF'\n" +
		cannedResponse +
		"EOF\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	params := filepath.Join(dir, "primer3_config")
	if err := os.Mkdir(params, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := filepath.Join(dir, "design.toml")
	body := "[engine]\n" +
		"binary = \"" + bin + "\"\n" +
		"thermo_params = \"" + params + "\"\n\n" +
		"[settings]\n" +
		"\"1_PRIMER_MIN_SIZE\" = 18\n" +
		"\"1_PRIMER_OPT_TM\" = 60.0\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	amps := filepath.Join(dir, "amps.tsv")
	if err := os.WriteFile(amps, []byte("test_amp1\t120,40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fa := filepath.Join(dir, "templates.fa")
	if err := os.WriteFile(fa, []byte(">test_amp1\nACGTACGTACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	argv = []string{
		"--config", cfg,
		"--amplicons", amps,
		"--group", "1",
		"--batch", "b7",
		"--out-dir", dir,
		"--quiet",
		fa,
	}
	return dir, argv
}

func TestRunEndToEnd(t *testing.T) {
	dir, argv := fixture(t)
	argv = append(argv, "--keep-raw")

	var stdout, stderr bytes.Buffer
	code := Run(argv, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr.String())
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got:\n%s", stdout.String())
	}
	row := strings.Split(lines[1], "\t")
	if row[0] != "test_amp1" || row[3] != "181" || row[5] != "CATCTGTGTTCTGCTGAATGATG" {
		t.Errorf("row: %v", row)
	}

	req, err := os.ReadFile(filepath.Join(dir, "AmpForDesign_b7_1.txt"))
	if err != nil {
		t.Fatalf("request document: %v", err)
	}
	doc := string(req)
	for _, want := range []string{
		"PRIMER_MIN_SIZE=18",
		"SEQUENCE_ID=test_amp1",
		"SEQUENCE_TEMPLATE=ACGTACGTACGT",
		"SEQUENCE_TARGET=120,40",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("request document missing %q:\n%s", want, doc)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "RawDesign_b7_1_1.txt"))
	if err != nil {
		t.Fatalf("raw copy: %v", err)
	}
	if string(raw) != cannedResponse {
		t.Errorf("raw copy not verbatim:\n%s", raw)
	}
}

func TestRunJSONLOutput(t *testing.T) {
	_, argv := fixture(t)
	argv = append(argv, "--output", "jsonl")

	var stdout, stderr bytes.Buffer
	if code := Run(argv, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr.String())
	}
	out := strings.TrimRight(stdout.String(), "\n")
	if strings.Count(out, "\n") != 0 || !strings.Contains(out, `"amplicon_name":"test_amp1"`) {
		t.Errorf("jsonl output: %q", out)
	}
}

func TestRunMissingTemplate(t *testing.T) {
	dir, argv := fixture(t)
	amps := filepath.Join(dir, "amps.tsv")
	if err := os.WriteFile(amps, []byte("test_amp1\ntest_amp2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := Run(argv, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "test_amp2") {
		t.Errorf("stderr should name the amplicon: %q", stderr.String())
	}
}

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"--group", "1"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"-v"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout.String(), "ampdesign version") {
		t.Errorf("stdout: %q", stdout.String())
	}
}
