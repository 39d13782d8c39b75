// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"path/filepath"
)

// File names inside the data directory.
const (
	WordlistFile = "wordlist.txt"
	CounterFile  = "users_count.txt"
	HistoryFile  = "history.db"
)

// ProgressStyle selects how the progress reporter renders updates.
type ProgressStyle string

const (
	ProgressBar   ProgressStyle = "bar"
	ProgressLines ProgressStyle = "lines"
	ProgressNone  ProgressStyle = "none"
)

// AppConfig holds the resolved settings for one passgen invocation. It is
// built once in the CLI and handed to every component that needs a path or
// a tunable; nothing reads these values from globals.
type AppConfig struct {
	// DataDir holds the wordlist, usage counter and history database.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// OutputPath is the candidate file, truncated at the start of each run.
	OutputPath string `json:"output" yaml:"output" mapstructure:"output"`

	// ArchiveDir receives archives created from OutputPath.
	ArchiveDir string `json:"archive_dir" yaml:"archive_dir" mapstructure:"archive_dir"`

	// BannerPath is an optional text file shown at the top of the menu.
	BannerPath string `json:"banner" yaml:"banner" mapstructure:"banner"`

	// RealisticRatio is the share of realistic-pattern candidates in random mode.
	RealisticRatio float64 `json:"realistic_ratio" yaml:"realistic_ratio" mapstructure:"realistic_ratio"`

	// ProgressEvery is the number of lines between progress updates.
	ProgressEvery int `json:"progress_every" yaml:"progress_every" mapstructure:"progress_every"`

	// Progress selects the progress display.
	Progress ProgressStyle `json:"progress" yaml:"progress" mapstructure:"progress"`

	// History enables the run ledger.
	History bool `json:"history" yaml:"history" mapstructure:"history"`
}

// DefaultAppConfig returns the settings used when nothing is configured.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DataDir:        "data",
		OutputPath:     "passwords.txt",
		ArchiveDir:     ".",
		BannerPath:     filepath.Join("assets", "banner.txt"),
		RealisticRatio: 0.36,
		ProgressEvery:  500,
		Progress:       ProgressBar,
		History:        true,
	}
}

// WordlistPath returns the seed word file path.
func (c AppConfig) WordlistPath() string { return filepath.Join(c.DataDir, WordlistFile) }

// CounterPath returns the usage counter file path.
func (c AppConfig) CounterPath() string { return filepath.Join(c.DataDir, CounterFile) }

// HistoryPath returns the run ledger database path.
func (c AppConfig) HistoryPath() string { return filepath.Join(c.DataDir, HistoryFile) }

// Validate reports the first invalid setting.
func (c AppConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory cannot be empty")
	}
	if c.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}
	if c.RealisticRatio < 0 || c.RealisticRatio > 1 {
		return fmt.Errorf("realistic ratio %v outside [0,1]", c.RealisticRatio)
	}
	if c.ProgressEvery <= 0 {
		return fmt.Errorf("progress interval must be greater than 0, got %d", c.ProgressEvery)
	}
	switch c.Progress {
	case ProgressBar, ProgressLines, ProgressNone:
	default:
		return fmt.Errorf("unknown progress style %q: use bar, lines or none", c.Progress)
	}
	return nil
}
