// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Sink is an ordered destination for generated lines. The driver calls
// Reset once at the start of each run, so a sink never carries lines over
// from a previous run.
type Sink interface {
	// Reset discards everything written so far.
	Reset() error

	// WriteLine appends one line. The sink supplies the line terminator.
	WriteLine(line string) error

	// Flush makes every line written so far durable in the destination.
	Flush() error
}

// FileSink writes newline-delimited lines to a file through a buffer.
// Only the buffer is held in memory, regardless of how many lines are
// written.
type FileSink struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

const fileSinkBuffer = 64 * 1024

// NewFileSink returns a sink for path. The file is created (or truncated)
// by Reset, not here.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the destination file path.
func (s *FileSink) Path() string { return s.path }

// Reset truncates the destination file, creating it and its directory if
// needed.
func (s *FileSink) Reset() error {
	if s.f != nil {
		if err := s.f.Truncate(0); err != nil {
			return fmt.Errorf("truncating %s: %w", s.path, err)
		}
		if _, err := s.f.Seek(0, 0); err != nil {
			return fmt.Errorf("rewinding %s: %w", s.path, err)
		}
		s.w.Reset(s.f)
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.path, err)
	}
	s.f = f
	s.w = bufio.NewWriterSize(f, fileSinkBuffer)
	return nil
}

func (s *FileSink) WriteLine(line string) error {
	if s.w == nil {
		return fmt.Errorf("sink %s: write before reset", s.path)
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *FileSink) Flush() error {
	if s.w == nil {
		return nil
	}
	return s.w.Flush()
}

// Close flushes pending lines and closes the file.
func (s *FileSink) Close() error {
	if s.f == nil {
		return nil
	}
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	s.f, s.w = nil, nil
	if flushErr != nil {
		return fmt.Errorf("flushing %s: %w", s.path, flushErr)
	}
	return closeErr
}

// MemorySink keeps lines in a slice. It exists for tests and small runs;
// bulk runs should use FileSink.
type MemorySink struct {
	lines   []string
	flushed int
}

func (m *MemorySink) Reset() error {
	m.lines = m.lines[:0]
	m.flushed = 0
	return nil
}

func (m *MemorySink) WriteLine(line string) error {
	m.lines = append(m.lines, line)
	return nil
}

func (m *MemorySink) Flush() error {
	m.flushed = len(m.lines)
	return nil
}

// Lines returns the lines written since the last Reset.
func (m *MemorySink) Lines() []string { return m.lines }

// Flushed returns how many lines had been written at the last Flush.
func (m *MemorySink) Flushed() int { return m.flushed }
