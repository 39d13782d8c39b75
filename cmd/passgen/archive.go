// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/passgen/internal/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive the output file",
	Long: `Archive compresses the current output file into
<archive_dir>/passwords_<unix time>.zip, with a manifest.yaml recording the
line count, or into passwords_<unix time>.txt.lz4 with --format lz4.`,
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := archive.ParseFormat(name)
	if err != nil {
		return err
	}
	path, err := newSession(cmd).archiveOutput(format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Archived %s to %s\n", appConfig.OutputPath, path)
	return nil
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archives in the archive directory, newest first",
	RunE:  runArchiveList,
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	entries, err := archive.List(appConfig.ArchiveDir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No archives found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tFORMAT\tSIZE\tLINES\tPATH")
	for _, e := range entries {
		lines := "-"
		if e.Format == archive.FormatZip {
			if m, err := archive.ReadManifest(e.Path); err == nil {
				lines = fmt.Sprint(m.Lines)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.ModTime.Format("2006-01-02 15:04:05"), e.Format, e.Size, lines, e.Path)
	}
	return tw.Flush()
}

func init() {
	archiveCmd.PersistentFlags().String("archive-dir", "", "directory that receives archives")
	_ = viper.BindPFlag("archive_dir", archiveCmd.PersistentFlags().Lookup("archive-dir"))
	archiveCmd.Flags().String("format", "zip", "archive format: zip or lz4")

	archiveCmd.AddCommand(archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}
