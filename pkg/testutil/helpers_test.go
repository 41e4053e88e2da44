package testutil

import (
	"math"
	"os"
	"testing"
)

type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.failed = true
}

func TestAssertClose(t *testing.T) {
	tests := []struct {
		name       string
		got        float64
		expected   float64
		tolerance  float64
		shouldFail bool
	}{
		{"Exact", 75, 75, 0, false},
		{"Within tolerance", 1438.921, 1438.92, 0.01, false},
		{"Outside tolerance", 1439, 1438.92, 0.01, true},
		{"NaN never matches", math.NaN(), 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingTB{TB: t}
			AssertClose(rec, tt.name, tt.got, tt.expected, tt.tolerance)
			if rec.failed != tt.shouldFail {
				t.Errorf("failed = %v, expected %v", rec.failed, tt.shouldFail)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "values.yaml", "basis: 1000\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(data) != "basis: 1000\n" {
		t.Errorf("unexpected contents %q", data)
	}
}
