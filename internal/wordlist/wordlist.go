// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordlist loads the seed words used by the realistic-pattern
// strategy. A missing, unreadable, or empty file yields the built-in set.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultWords is the built-in seed set written on first run.
var defaultWords = []string{
	"admin", "user", "pass", "dev", "tech", "nexora", "next", "secure",
	"secret", "login", "qwerty", "alpha", "omega", "master", "access",
	"project", "cloud", "root", "sys", "data", "code", "node", "java",
}

// Default returns a copy of the built-in seed words.
func Default() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}

// EnsureFile writes the default words to path when no file exists there.
// An existing file is left untouched, even if empty.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking wordlist %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating wordlist directory: %w", err)
	}
	data := strings.Join(defaultWords, "\n")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing default wordlist %s: %w", path, err)
	}
	return nil
}

// Load reads one word per line from path, trimming whitespace and skipping
// blank lines. It never fails: on any error, or when the file holds no
// words, it returns Default.
func Load(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return Default()
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if scanner.Err() != nil || len(words) == 0 {
		return Default()
	}
	return words
}
