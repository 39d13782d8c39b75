// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package counter persists the program's usage count as a single
// plain-text integer. Reads never fail: a missing file, non-numeric
// content, or any I/O error reads as zero.
package counter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Read returns the stored count, or 0 if it cannot be read or parsed.
func Read(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Ensure creates the counter file holding 0 when it does not exist.
func Ensure(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating counter directory: %w", err)
	}
	if err := os.WriteFile(path, []byte("0"), 0o644); err != nil {
		return fmt.Errorf("initializing counter %s: %w", path, err)
	}
	return nil
}

// Increment adds one to the stored count, persists it immediately, and
// returns the new value. The returned value is valid even when the write
// fails; the error only reports that it was not persisted.
func Increment(path string) (int, error) {
	n := Read(path) + 1

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return n, fmt.Errorf("creating counter directory: %w", err)
	}

	// Write to a temp file and rename so an interrupted write never leaves
	// a truncated counter behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(n)), 0o644); err != nil {
		return n, fmt.Errorf("writing counter: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return n, fmt.Errorf("replacing counter %s: %w", path, err)
	}
	return n, nil
}
