// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package platform detects best-effort clipboard and link-opening
// capabilities. Detection probes for platform tools once at startup; the
// generation core only ever sees the ClipboardWriter and LinkOpener
// interfaces.
package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ErrUnavailable is returned by capabilities that have no backing tool.
var ErrUnavailable = errors.New("capability not available on this platform")

// ClipboardWriter places text on the system clipboard.
type ClipboardWriter interface {
	// Name identifies the backing tool (e.g. "termux-clipboard-set").
	Name() string

	// WriteText replaces the clipboard contents with data.
	WriteText(data []byte) error
}

// LinkOpener opens a URL in the user's browser or handler app.
type LinkOpener interface {
	// Name identifies the backing tool (e.g. "xdg-open").
	Name() string

	// Open hands url to the platform handler.
	Open(url string) error
}

// Capabilities bundles the detected implementations.
type Capabilities struct {
	Clipboard ClipboardWriter
	Opener    LinkOpener
}

// CopyFile reads path and writes its contents to the clipboard.
func CopyFile(c ClipboardWriter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := c.WriteText(data); err != nil {
		return fmt.Errorf("copying via %s: %w", c.Name(), err)
	}
	return nil
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	return cmd.Run()
}

// commandClipboard pipes text into a clipboard binary.
type commandClipboard struct {
	bin  string
	args []string
	exec executor
}

func (c *commandClipboard) Name() string { return c.bin }

func (c *commandClipboard) WriteText(data []byte) error {
	if err := c.exec.RunPiped(c.bin, c.args, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("running %s: %w", c.bin, err)
	}
	return nil
}

// commandOpener passes a URL to an opener binary.
type commandOpener struct {
	bin  string
	exec executor
}

func (o *commandOpener) Name() string { return o.bin }

func (o *commandOpener) Open(url string) error {
	if err := o.exec.Run(o.bin, url); err != nil {
		return fmt.Errorf("running %s %s: %w", o.bin, url, err)
	}
	return nil
}

// clipboardTools lists clipboard binaries in probe order.
var clipboardTools = []struct {
	bin  string
	args []string
}{
	{"termux-clipboard-set", nil},
	{"wl-copy", nil},
	{"xclip", []string{"-selection", "clipboard"}},
	{"pbcopy", nil},
}

// openerTools lists URL opener binaries in probe order.
var openerTools = []string{"termux-open-url", "xdg-open", "open"}

var defaultExec = &osExecutor{}

// Detect probes the host once and returns the best available
// implementations. It never fails: missing tools fall back to library
// implementations, and to no-op implementations where even those cannot
// work.
func Detect() Capabilities {
	return detect(defaultExec, !clipboard.Unsupported)
}

func detect(exec executor, haveLib bool) Capabilities {
	caps := Capabilities{Clipboard: NopClipboard{}, Opener: libOpener{}}

	for _, tool := range clipboardTools {
		if _, err := exec.LookPath(tool.bin); err == nil {
			caps.Clipboard = &commandClipboard{bin: tool.bin, args: tool.args, exec: exec}
			break
		}
	}
	if _, isNop := caps.Clipboard.(NopClipboard); isNop && haveLib {
		caps.Clipboard = libClipboard{}
	}

	for _, bin := range openerTools {
		if _, err := exec.LookPath(bin); err == nil {
			caps.Opener = &commandOpener{bin: bin, exec: exec}
			break
		}
	}
	return caps
}

// libClipboard uses github.com/atotto/clipboard.
type libClipboard struct{}

func (libClipboard) Name() string { return "clipboard library" }

func (libClipboard) WriteText(data []byte) error {
	return clipboard.WriteAll(string(data))
}

// libOpener uses github.com/pkg/browser.
type libOpener struct{}

func (libOpener) Name() string { return "browser library" }

func (libOpener) Open(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenURL(url)
}

// NopClipboard reports ErrUnavailable for every write.
type NopClipboard struct{}

func (NopClipboard) Name() string { return "none" }
func (NopClipboard) WriteText([]byte) error { return ErrUnavailable }

// NopOpener reports ErrUnavailable for every URL.
type NopOpener struct{}

func (NopOpener) Name() string { return "none" }
func (NopOpener) Open(string) error { return ErrUnavailable }
