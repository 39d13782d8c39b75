// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/passgen/internal/archive"
	"github.com/pdiddy/passgen/internal/history"
	"github.com/pdiddy/passgen/internal/platform"
	"github.com/pdiddy/passgen/pkg/types"
)

type fakeClipboard struct {
	data []byte
	err  error
}

func (f *fakeClipboard) Name() string { return "fake-clip" }

func (f *fakeClipboard) WriteText(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.data = append([]byte(nil), data...)
	return nil
}

type fakeOpener struct {
	urls []string
}

func (f *fakeOpener) Name() string { return "fake-open" }

func (f *fakeOpener) Open(url string) error {
	f.urls = append(f.urls, url)
	return nil
}

var testNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func testSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	cfg := types.DefaultAppConfig()
	cfg.DataDir = filepath.Join(dir, "data")
	cfg.OutputPath = filepath.Join(dir, "passwords.txt")
	cfg.ArchiveDir = filepath.Join(dir, "archives")
	cfg.BannerPath = ""
	cfg.Progress = types.ProgressNone
	require.NoError(t, initDataDir(cfg))

	var out bytes.Buffer
	return &session{
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    &out,
		errOut: io.Discard,
		caps:   platform.Capabilities{Clipboard: &fakeClipboard{}, Opener: &fakeOpener{}},
		usage:  7,
		rng:    rand.New(rand.NewPCG(1, 2)),
		now:    func() time.Time { return testNow },
	}, &out
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestMenuRandomGeneration(t *testing.T) {
	s, out := testSession(t)

	err := s.runMenu(context.Background(), strings.NewReader("1\n25\n0\n0\n"))
	require.NoError(t, err)

	assert.Len(t, readLines(t, s.cfg.OutputPath), 25)
	assert.Contains(t, out.String(), "Generating 25 passwords")
	assert.Contains(t, out.String(), "[✔] Done. Saved to "+s.cfg.OutputPath)
	assert.Contains(t, out.String(), "Post-generation options:")
	assert.Contains(t, out.String(), "Exiting passgen. Bye.")
}

func TestMenuVariationGeneration(t *testing.T) {
	s, out := testSession(t)

	err := s.runMenu(context.Background(), strings.NewReader("2\nhunter\n10\n0\n0\n"))
	require.NoError(t, err)

	lines := readLines(t, s.cfg.OutputPath)
	assert.Len(t, lines, 10)
	assert.Contains(t, out.String(), "Generating 10 variations")
}

func TestMenuRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"non numeric count", "1\nlots\n0\n", "Invalid number. Try again."},
		{"zero count", "1\n0\n0\n", "Number must be positive."},
		{"negative count", "1\n-3\n0\n", "Number must be positive."},
		{"empty base", "2\n\n0\n", "Base password cannot be empty."},
		{"bad variation count", "2\npw\nx\n0\n", "Invalid number."},
		{"unknown option", "7\n0\n", "Invalid option. Choose 1, 2, or 0."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := testSession(t)
			require.NoError(t, s.runMenu(context.Background(), strings.NewReader(tt.input)))

			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, out.String(), "Exiting passgen. Bye.")
			_, err := os.Stat(s.cfg.OutputPath)
			assert.True(t, os.IsNotExist(err), "rejected input must not produce output")
		})
	}
}

func TestMenuPostGenerationActions(t *testing.T) {
	s, out := testSession(t)
	clip := s.caps.Clipboard.(*fakeClipboard)
	opener := s.caps.Opener.(*fakeOpener)

	input := "1\n5\n1\n2\n3\n4\n9\n0\n0\n"
	require.NoError(t, s.runMenu(context.Background(), strings.NewReader(input)))

	content, err := os.ReadFile(s.cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, content, clip.data)
	assert.Contains(t, out.String(), "copied to clipboard (fake-clip)")

	assert.Equal(t, []string{whatsAppChannelURL, youTubeChannelURL}, opener.urls)

	zipPath := filepath.Join(s.cfg.ArchiveDir, archive.Name(archive.FormatZip, testNow))
	assert.FileExists(t, zipPath)
	assert.Contains(t, out.String(), "Zipped passwords to: "+zipPath)
	m, err := archive.ReadManifest(zipPath)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Lines)

	assert.Contains(t, out.String(), "Invalid option. Try again.")
}

func TestMenuCapabilityFailuresAreAdvisory(t *testing.T) {
	s, out := testSession(t)
	s.caps = platform.Capabilities{
		Clipboard: &fakeClipboard{err: errors.New("no display")},
		Opener:    platform.NopOpener{},
	}

	require.NoError(t, s.runMenu(context.Background(), strings.NewReader("1\n3\n1\n2\n0\n0\n")))

	assert.Contains(t, out.String(), "[!] Clipboard not available")
	assert.Contains(t, out.String(), "URL: "+whatsAppChannelURL)
	assert.Contains(t, out.String(), "Exiting passgen. Bye.")
}

func TestMenuEndOfInputExits(t *testing.T) {
	s, out := testSession(t)
	require.NoError(t, s.runMenu(context.Background(), strings.NewReader("")))
	assert.Contains(t, out.String(), "Exiting passgen. Bye.")
}

func TestMenuCancellationExits(t *testing.T) {
	s, out := testSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	require.NoError(t, s.runMenu(ctx, pr))
	assert.Contains(t, out.String(), "Interrupted. Exiting.")
}

func TestMenuBanner(t *testing.T) {
	t.Run("built-in art", func(t *testing.T) {
		s, out := testSession(t)
		s.printBanner()
		assert.Contains(t, out.String(), "Password candidate generator")
		assert.Contains(t, out.String(), "Usage count: 7")
		assert.Contains(t, out.String(), "2026-05-04 10:30 UTC")
		assert.Contains(t, out.String(), "DISCLAIMER")
	})

	t.Run("banner file", func(t *testing.T) {
		s, out := testSession(t)
		s.cfg.BannerPath = filepath.Join(t.TempDir(), "banner.txt")
		require.NoError(t, os.WriteFile(s.cfg.BannerPath, []byte("CUSTOM ART\n"), 0o644))
		s.printBanner()
		assert.Contains(t, out.String(), "CUSTOM ART")
		assert.NotContains(t, out.String(), "Password candidate generator")
	})
}

func TestSessionGenerateRecordsHistory(t *testing.T) {
	s, _ := testSession(t)
	ctx := context.Background()

	rec, err := s.generate(ctx, types.GenerationRequest{Mode: types.ModeRandom, Count: 40, RealisticRatio: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 40, rec.Written)

	store, err := history.Open(s.cfg.HistoryPath())
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, rec.ID, runs[0].ID)
	assert.Equal(t, 40, runs[0].Written)
	assert.False(t, runs[0].Cancelled)
}

func TestSessionGenerateHistoryDisabled(t *testing.T) {
	s, _ := testSession(t)
	s.cfg.History = false

	_, err := s.generate(context.Background(), types.GenerationRequest{Mode: types.ModeRandom, Count: 1})
	require.NoError(t, err)
	assert.NoFileExists(t, s.cfg.HistoryPath())
}

func TestSessionGenerateRejectsInvalidRequest(t *testing.T) {
	s, _ := testSession(t)

	_, err := s.generate(context.Background(), types.GenerationRequest{Mode: types.ModeVariation, Count: 3})
	assert.Error(t, err)
	assert.NoFileExists(t, s.cfg.OutputPath)
	assert.NoFileExists(t, s.cfg.HistoryPath())
}

func TestSessionGenerateRecordsCancelledRun(t *testing.T) {
	s, _ := testSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := s.generate(ctx, types.GenerationRequest{Mode: types.ModeRandom, Count: 100})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, rec.Cancelled)
	assert.Zero(t, rec.Written)

	store, err := history.Open(s.cfg.HistoryPath())
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Cancelled)
}
