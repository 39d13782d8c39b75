//go:build mage

// Package main contains Mage build targets for passgen developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/passgen/internal/counter"
	"github.com/pdiddy/passgen/internal/wordlist"
	"github.com/pdiddy/passgen/pkg/types"
)

const (
	binDir  = "bin"
	binName = "passgen"
	cmdPkg  = "./cmd/passgen"
)

// Default target when mage runs without arguments.
var Default = Build

// Init creates the data directory with the seed wordlist and a zero usage
// counter.
func Init() error {
	cfg := types.DefaultAppConfig()
	if dir := os.Getenv("PASSGEN_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", cfg.DataDir, err)
	}
	if err := wordlist.EnsureFile(cfg.WordlistPath()); err != nil {
		return err
	}
	if err := counter.Ensure(cfg.CounterPath()); err != nil {
		return err
	}
	fmt.Println("  ", cfg.WordlistPath())
	fmt.Println("  ", cfg.CounterPath())
	fmt.Println("Data directory initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Check builds and tests.
func Check() {
	mg.SerialDeps(Build, Test)
}

// Clean removes build output and generated candidate files.
func Clean() error {
	for _, path := range []string{binDir, "passwords.txt"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints Go production and test line counts.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines counts non-blank lines in Go files, split into production and
// test files. Underscore-prefixed trees are skipped like the go tool does.
func countGoLines(root string) (prod, test int, err error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.go")
	if err != nil {
		return 0, 0, fmt.Errorf("listing Go files: %w", err)
	}
	for _, m := range matches {
		if strings.HasPrefix(m, "_") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, m))
		if err != nil {
			return 0, 0, fmt.Errorf("reading %s: %w", m, err)
		}
		n := 0
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) != "" {
				n++
			}
		}
		if strings.HasSuffix(m, "_test.go") {
			test += n
		} else {
			prod += n
		}
	}
	return prod, test, nil
}
