// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive packs the candidate file into timestamp-named archives
// and lists the archives already created.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/pierrec/lz4/v4"
	"go.yaml.in/yaml/v3"
)

// Format selects the archive container.
type Format string

const (
	FormatZip Format = "zip"
	FormatLZ4 Format = "lz4"
)

const (
	namePrefix   = "passwords_"
	manifestName = "manifest.yaml"
	listPattern  = namePrefix + "*.{zip,txt.lz4}"
)

// ErrNoOutput is returned when the file to archive does not exist.
var ErrNoOutput = errors.New("no generated passwords to archive")

// ParseFormat maps a flag value to a Format. The empty string means zip.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatZip, "":
		return FormatZip, nil
	case FormatLZ4:
		return FormatLZ4, nil
	}
	return "", fmt.Errorf("unsupported archive format %q: use zip or lz4", s)
}

// Manifest describes the contents of a zip archive. It is stored next to
// the candidate file inside the archive.
type Manifest struct {
	ID        string    `yaml:"id"`
	Source    string    `yaml:"source"`
	Lines     int       `yaml:"lines"`
	Bytes     int64     `yaml:"bytes"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Name returns the archive file name for format at time now.
func Name(format Format, now time.Time) string {
	stamp := strconv.FormatInt(now.Unix(), 10)
	if format == FormatLZ4 {
		return namePrefix + stamp + ".txt.lz4"
	}
	return namePrefix + stamp + ".zip"
}

// Create archives src into dir and returns the archive path.
func Create(src, dir string, format Format, now time.Time) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoOutput, src)
		}
		return "", fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}
	dest := filepath.Join(dir, Name(format, now))

	// A failed run never leaves a half-written archive under the final name.
	tmp := dest + ".partial"
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", tmp, err)
	}

	switch format {
	case FormatLZ4:
		err = writeLZ4(out, in)
	default:
		err = writeZip(out, in, filepath.Base(src), now)
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalizing %s: %w", dest, err)
	}
	return dest, nil
}

func writeZip(w io.Writer, src io.Reader, name string, now time.Time) error {
	zw := zip.NewWriter(w)

	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: now,
	})
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	counter := &lineCounter{}
	n, err := io.Copy(io.MultiWriter(entry, counter), src)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", name, err)
	}

	manifest := Manifest{
		ID:        uuid.New().String(),
		Source:    name,
		Lines:     counter.lines,
		Bytes:     n,
		CreatedAt: now.UTC(),
	}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	mw, err := zw.Create(manifestName)
	if err != nil {
		return fmt.Errorf("adding manifest: %w", err)
	}
	if _, err := mw.Write(data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return zw.Close()
}

func writeLZ4(w io.Writer, src io.Reader) error {
	zw := lz4.NewWriter(w)
	if _, err := io.Copy(zw, src); err != nil {
		return fmt.Errorf("compressing: %w", err)
	}
	return zw.Close()
}

// lineCounter counts newline bytes written through it.
type lineCounter struct {
	lines int
}

func (c *lineCounter) Write(p []byte) (int, error) {
	c.lines += bytes.Count(p, []byte{'\n'})
	return len(p), nil
}

// ReadManifest returns the manifest stored in a zip archive.
func ReadManifest(path string) (*Manifest, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()

	f, err := zr.Open(manifestName)
	if err != nil {
		return nil, fmt.Errorf("%s has no manifest: %w", path, err)
	}
	defer f.Close()

	var m Manifest
	if err := yaml.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest in %s: %w", path, err)
	}
	return &m, nil
}

// Entry is one archive found by List.
type Entry struct {
	Path    string
	Format  Format
	Size    int64
	ModTime time.Time
}

// List returns the archives in dir, newest first. A missing directory
// yields no entries.
func List(dir string) ([]Entry, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), listPattern)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing archives in %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		path := filepath.Join(dir, m)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		format := FormatZip
		if strings.HasSuffix(m, ".lz4") {
			format = FormatLZ4
		}
		entries = append(entries, Entry{
			Path:    path,
			Format:  format,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].ModTime.Equal(entries[j].ModTime) {
			return entries[i].ModTime.After(entries[j].ModTime)
		}
		return entries[i].Path > entries[j].Path
	})
	return entries, nil
}
