// Package testutil holds helpers shared by package tests
package testutil

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/studytimer/internal/osutil"
)

// CompareGoldenFile verifies that output matches testdata/<name>.golden.
// Run the tests with -update to rewrite the golden file.
func CompareGoldenFile(t *testing.T, name string, output []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings before comparing
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}

// CopyFile copies a fixture into place, typically under t.TempDir().
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// Clock returns a clock that yields times in order and then keeps returning
// the last one.
func Clock(times ...time.Time) func() time.Time {
	var (
		mu sync.Mutex
		i  int
	)

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		if len(times) == 0 {
			return time.Time{}
		}

		t := times[min(i, len(times)-1)]
		i++

		return t
	}
}
