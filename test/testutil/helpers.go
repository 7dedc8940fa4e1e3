// Package testutil holds small helpers shared across test packages.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadTestJSON reads a fixture from test/testdata, resolved relative to
// this source file so tests work from any package directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot resolve testutil source path")
	}

	root := filepath.Join(filepath.Dir(currentFile), "..", "..")
	data, err := os.ReadFile(filepath.Join(root, "test", "testdata", filename))
	if err != nil {
		t.Fatalf("load fixture %s: %v", filename, err)
	}
	return data
}

// Ptr returns a pointer to v, handy for literal-valued optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// FloatPtr returns a pointer to f, for filter options in tests.
func FloatPtr(f float64) *float64 {
	return &f
}
