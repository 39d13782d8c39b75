// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/passgen/internal/generate"
	"github.com/pdiddy/passgen/pkg/types"
)

var variationsCmd = &cobra.Command{
	Use:   "variations",
	Short: "Generate variations of a base password",
	Long: `Variations writes --count candidates derived from --base to the output
file. Each line applies one transform: append digits and a symbol, prepend a
token, insert two digits, leet substitution, or concatenation with a fresh
realistic or strong string.`,
	RunE: runVariations,
}

func runVariations(cmd *cobra.Command, args []string) error {
	base, _ := cmd.Flags().GetString("base")
	if base == "" {
		return generate.ErrEmptyBase
	}
	count, _ := cmd.Flags().GetInt("count")
	return runRequest(cmd, types.GenerationRequest{
		Mode:  types.ModeVariation,
		Count: count,
		Base:  base,
	})
}

func init() {
	variationsCmd.Flags().String("base", "", "base password to vary (required)")
	variationsCmd.Flags().Int("count", 0, "number of variations to generate (required)")
	_ = variationsCmd.MarkFlagRequired("base")
	_ = variationsCmd.MarkFlagRequired("count")

	rootCmd.AddCommand(variationsCmd)
}
