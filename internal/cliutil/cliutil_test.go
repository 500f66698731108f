package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var s string
	fs.BoolVar(&b, "keep-raw", false, "")
	fs.StringVar(&s, "group", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"--keep-raw", "amps.fa", "--group", "1", "--", "more.fa"})
	if len(flagArgs) != 3 {
		t.Fatalf("flag args: %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "amps.fa" || posArgs[1] != "more.fa" {
		t.Fatalf("positionals: %v", posArgs)
	}
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandGlobs([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil || len(got) != 3 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandGlobs([]string{filepath.Join(dir, "*.xyz")}); err == nil {
		t.Fatal("empty glob accepted")
	}
}
