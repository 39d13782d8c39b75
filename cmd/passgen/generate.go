// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/passgen/internal/generate"
	"github.com/pdiddy/passgen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a mix of strong and realistic password candidates",
	Long: `Generate writes --count candidates to the output file, replacing its
previous contents. Each line is a realistic pattern with probability
--ratio (word plus number, year, symbol or leet substitution) and a strong
random string of 8 to 16 characters otherwise.

Interrupting a run keeps every line written so far.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	req := types.GenerationRequest{
		Mode:           types.ModeRandom,
		Count:          count,
		RealisticRatio: viper.GetFloat64("realistic_ratio"),
	}
	return runRequest(cmd, req)
}

// runRequest runs req for a non-interactive command and reports the result.
func runRequest(cmd *cobra.Command, req types.GenerationRequest) error {
	if req.Count <= 0 {
		return fmt.Errorf("%w: --count must be at least 1", generate.ErrInvalidCount)
	}

	s := newSession(cmd)
	rec, err := s.generate(cmd.Context(), req)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(s.out, "Interrupted after %d of %d lines. Partial output kept in %s\n",
			rec.Written, rec.Requested, s.cfg.OutputPath)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Wrote %d candidates to %s in %s\n",
		rec.Written, s.cfg.OutputPath, rec.Duration().Round(time.Millisecond))
	return nil
}

func init() {
	generateCmd.Flags().Int("count", 0, "number of candidates to generate (required)")
	generateCmd.Flags().Float64("ratio", 0.36, "share of realistic-pattern candidates, 0 to 1")
	_ = generateCmd.MarkFlagRequired("count")
	_ = viper.BindPFlag("realistic_ratio", generateCmd.Flags().Lookup("ratio"))

	rootCmd.AddCommand(generateCmd)
}
