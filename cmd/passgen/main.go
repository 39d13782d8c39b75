// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the passgen CLI. With no subcommand it
// runs the interactive menu; the subcommands expose the same operations for
// scripts.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/passgen/internal/counter"
	"github.com/pdiddy/passgen/internal/wordlist"
	"github.com/pdiddy/passgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Resolved once per invocation by PersistentPreRunE.
var (
	appConfig  types.AppConfig
	usageCount int
)

// logger reports advisory failures. --verbose lowers it to debug.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// readOnlyCommands do not count as a use of the tool.
var readOnlyCommands = map[string]bool{
	"counter": true,
	"version": true,
}

// rootCmd is the base command for the passgen CLI.
var rootCmd = &cobra.Command{
	Use:   "passgen",
	Short: "Generate password candidate lists for development and testing",
	Long: `passgen writes large lists of password candidates to a text file, one per
line. Candidates mix strong random strings with deliberately weak,
human-looking patterns (word plus year, leet substitutions, common suffixes),
or are derived from a base password you supply.

Run without a subcommand for the interactive menu. The generate, variations,
archive and history subcommands do the same work non-interactively.

For development and testing only. Do not use it against accounts or systems
you are not authorized to test.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}
		appConfig = cfg

		if err := initDataDir(cfg); err != nil {
			return err
		}

		if readOnlyCommands[cmd.Name()] {
			usageCount = counter.Read(cfg.CounterPath())
			return nil
		}
		n, err := counter.Increment(cfg.CounterPath())
		if err != nil {
			logger.Warn("usage counter not persisted", "path", cfg.CounterPath(), "err", err)
		}
		usageCount = n
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return newSession(cmd).runMenu(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./passgen.yaml or ~/.config/passgen/passgen.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the wordlist, usage counter and history")
	rootCmd.PersistentFlags().String("output", "", "candidate output file")
	rootCmd.PersistentFlags().String("progress", "", "progress display: bar, lines or none")
	rootCmd.PersistentFlags().Bool("verbose", false, "log debug details to stderr")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("passgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "passgen"))
		}
	}

	viper.SetEnvPrefix("PASSGEN")
	viper.AutomaticEnv()

	defaults := types.DefaultAppConfig()
	viper.SetDefault("data_dir", defaults.DataDir)
	viper.SetDefault("output", defaults.OutputPath)
	viper.SetDefault("archive_dir", defaults.ArchiveDir)
	viper.SetDefault("banner", defaults.BannerPath)
	viper.SetDefault("realistic_ratio", defaults.RealisticRatio)
	viper.SetDefault("progress_every", defaults.ProgressEvery)
	viper.SetDefault("progress", string(defaults.Progress))
	viper.SetDefault("history", defaults.History)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadAppConfig resolves flags, environment and config file into an
// AppConfig.
func loadAppConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initDataDir creates the data directory with a seeded wordlist and a zero
// usage counter. A wordlist that cannot be written is not fatal; Load falls
// back to the built-in words.
func initDataDir(cfg types.AppConfig) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", cfg.DataDir, err)
	}
	if err := wordlist.EnsureFile(cfg.WordlistPath()); err != nil {
		logger.Warn("wordlist not seeded", "path", cfg.WordlistPath(), "err", err)
	}
	if err := counter.Ensure(cfg.CounterPath()); err != nil {
		logger.Warn("usage counter not created", "path", cfg.CounterPath(), "err", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
