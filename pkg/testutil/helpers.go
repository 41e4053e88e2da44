// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// AssertClose fails the test when got differs from expected by more than
// tolerance.
func AssertClose(t testing.TB, name string, got, expected, tolerance float64) {
	t.Helper()
	if math.IsNaN(got) || !mathutil.WithinTolerance(got, expected, tolerance) {
		t.Errorf("%s = %.4f, expected %.4f (±%g)", name, got, expected, tolerance)
	}
}

// WriteFile writes contents to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
