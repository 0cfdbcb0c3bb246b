//go:build targ

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// Check runs all checks on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,     // clean up the module dependencies
		FmtCheck, // gofmt drift makes every other diff noisy
		Test,
		Lint,
	)
}

// FmtCheck reports gofmt drift as unified diffs.
func FmtCheck() error {
	fmt.Println("Checking formatting...")

	drifted := 0

	err := filepath.WalkDir(".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		formatted, err := format.Source(content)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", path, err)
		}

		if !bytes.Equal(content, formatted) {
			drifted++

			diff := textdiff.Unified(path+" (current)", path+" (gofmt)", string(content), string(formatted))
			fmt.Printf("\n%s\n", diff)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if drifted > 0 {
		return fmt.Errorf("%d file(s) need gofmt", drifted)
	}

	return nil
}

// Lint runs the linter.
func Lint() error {
	fmt.Println("Linting...")

	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(Test); err != nil {
		return err
	}

	return sh.Run("go", "test", "-tags", "mutation", "-run", "TestMutation", "./dev")
}

// Test runs the unit tests with the race detector and coverage.
func Test() error {
	fmt.Println("Running unit tests...")

	return sh.Run("go", "test", "-race", "-count=1", "-coverprofile=coverage.out", "./...")
}

// Tidy tidies up the go.mod file.
func Tidy() error {
	fmt.Println("Tidying...")

	return sh.Run("go", "mod", "tidy")
}
