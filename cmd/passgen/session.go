// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/passgen/internal/archive"
	"github.com/pdiddy/passgen/internal/generate"
	"github.com/pdiddy/passgen/internal/history"
	"github.com/pdiddy/passgen/internal/platform"
	"github.com/pdiddy/passgen/internal/progress"
	"github.com/pdiddy/passgen/internal/strategy"
	"github.com/pdiddy/passgen/internal/wordlist"
	"github.com/pdiddy/passgen/pkg/types"
)

// session carries everything one command needs. Tests build it directly
// with fakes in place of the platform capabilities.
type session struct {
	cfg    types.AppConfig
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
	caps   platform.Capabilities
	usage  int
	rng    *rand.Rand
	now    func() time.Time
}

func newSession(cmd *cobra.Command) *session {
	return &session{
		cfg:    appConfig,
		log:    logger,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		caps:   platform.Detect(),
		usage:  usageCount,
		now:    time.Now,
	}
}

// generate runs one request against the configured output file and records
// it in the history ledger. A cancelled run returns the lines written so far
// together with context.Canceled.
func (s *session) generate(ctx context.Context, req types.GenerationRequest) (types.RunRecord, error) {
	if err := generate.Validate(req); err != nil {
		return types.RunRecord{}, err
	}

	gen := strategy.New(s.rng, wordlist.Load(s.cfg.WordlistPath()))
	reporter := progress.New(s.cfg.Progress, s.errOut)
	driver := generate.NewDriver(gen, reporter, s.cfg.ProgressEvery)
	sink := generate.NewFileSink(s.cfg.OutputPath)

	rec := history.NewRecord(req, s.cfg.OutputPath, s.now())
	written, err := driver.Generate(ctx, req, sink)
	if closeErr := sink.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", s.cfg.OutputPath, closeErr)
	}
	rec.Written = written
	rec.FinishedAt = s.now()
	rec.Cancelled = errors.Is(err, context.Canceled)

	if err == nil || rec.Cancelled {
		s.record(context.WithoutCancel(ctx), rec)
	}
	return rec, err
}

// record appends rec to the ledger. Failures are logged and otherwise
// ignored.
func (s *session) record(ctx context.Context, rec types.RunRecord) {
	if !s.cfg.History {
		return
	}
	store, err := history.Open(s.cfg.HistoryPath())
	if err != nil {
		s.log.Warn("history unavailable", "path", s.cfg.HistoryPath(), "err", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, rec); err != nil {
		s.log.Warn("run not recorded", "id", rec.ID, "err", err)
		return
	}
	s.log.Debug("run recorded", "id", rec.ID, "written", rec.Written)
}

// copyOutput places the output file on the clipboard.
func (s *session) copyOutput() {
	if err := platform.CopyFile(s.caps.Clipboard, s.cfg.OutputPath); err != nil {
		s.log.Warn("clipboard copy failed", "err", err)
		fmt.Fprintln(s.out, "[!] Clipboard not available. Install termux-api, wl-clipboard or xclip to enable copy.")
		return
	}
	fmt.Fprintf(s.out, "[✔] Passwords copied to clipboard (%s).\n", s.caps.Clipboard.Name())
}

// openLink hands url to the platform opener, printing the URL when that
// fails.
func (s *session) openLink(label, url string) {
	fmt.Fprintf(s.out, "Opening %s ...\n", label)
	if err := s.caps.Opener.Open(url); err != nil {
		s.log.Warn("link not opened", "url", url, "err", err)
		fmt.Fprintf(s.out, "[!] Unable to open link automatically. URL: %s\n", url)
	}
}

// archiveOutput packs the output file into the archive directory.
func (s *session) archiveOutput(format archive.Format) (string, error) {
	return archive.Create(s.cfg.OutputPath, s.cfg.ArchiveDir, format, s.now())
}
