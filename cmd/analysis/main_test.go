package main

import (
	"testing"

	"github.com/jcalabro/cloom"
)

func TestDigesterOption(t *testing.T) {
	for _, name := range []string{"murmur3", "xxh3"} {
		if _, err := digesterOption(name); err != nil {
			t.Errorf("digester %q: unexpected error: %v", name, err)
		}
	}
	if _, err := digesterOption("md5"); err == nil {
		t.Error("expected error for unknown digester")
	}
}

func TestObserveFalsePositives(t *testing.T) {
	f := cloom.MustNew(5000, 0.01)
	fn, fp := observeFalsePositives(f, 5000)
	if fn != 0 {
		t.Errorf("expected no false negatives, got %d", fn)
	}
	if rate := float64(fp) / 5000; rate > 0.02 {
		t.Errorf("false positive rate too high: %.4f", rate)
	}
}

func TestRunChurn(t *testing.T) {
	if err := runChurn(1000, 0.01, 3); err != nil {
		t.Fatalf("runChurn failed: %v", err)
	}
	if err := runChurn(1000, 1.5, 3); err == nil {
		t.Error("expected error for invalid rate")
	}
}
