// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package platform

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runErr        error
	ran           []string
	piped         map[string]string // binary -> stdin contents
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(name string, args ...string) error {
	m.ran = append(m.ran, name+" "+strings.Join(args, " "))
	return m.runErr
}

func (m *mockExecutor) RunPiped(name string, args []string, stdin io.Reader) error {
	data, _ := io.ReadAll(stdin)
	if m.piped == nil {
		m.piped = map[string]string{}
	}
	m.piped[strings.TrimSpace(name+" "+strings.Join(args, " "))] = string(data)
	return m.runErr
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name          string
		bins          map[string]bool
		haveLib       bool
		wantClipboard string
		wantOpener    string
	}{
		{
			name:          "termux preferred",
			bins:          map[string]bool{"termux-clipboard-set": true, "termux-open-url": true, "xclip": true, "xdg-open": true},
			wantClipboard: "termux-clipboard-set",
			wantOpener:    "termux-open-url",
		},
		{
			name:          "desktop linux",
			bins:          map[string]bool{"xclip": true, "xdg-open": true},
			wantClipboard: "xclip",
			wantOpener:    "xdg-open",
		},
		{
			name:          "wayland before xclip",
			bins:          map[string]bool{"wl-copy": true, "xclip": true},
			wantClipboard: "wl-copy",
			wantOpener:    "browser library",
		},
		{
			name:          "macos",
			bins:          map[string]bool{"pbcopy": true, "open": true},
			wantClipboard: "pbcopy",
			wantOpener:    "open",
		},
		{
			name:          "no tools, library clipboard works",
			bins:          map[string]bool{},
			haveLib:       true,
			wantClipboard: "clipboard library",
			wantOpener:    "browser library",
		},
		{
			name:          "nothing available",
			bins:          map[string]bool{},
			wantClipboard: "none",
			wantOpener:    "browser library",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := detect(&mockExecutor{availableBins: tt.bins}, tt.haveLib)
			if got := caps.Clipboard.Name(); got != tt.wantClipboard {
				t.Errorf("clipboard = %q, want %q", got, tt.wantClipboard)
			}
			if got := caps.Opener.Name(); got != tt.wantOpener {
				t.Errorf("opener = %q, want %q", got, tt.wantOpener)
			}
		})
	}
}

func TestCommandClipboardPipesData(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"xclip": true}}
	caps := detect(exec, false)

	if err := caps.Clipboard.WriteText([]byte("pw1\npw2\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := exec.piped["xclip -selection clipboard"]; got != "pw1\npw2\n" {
		t.Errorf("piped %q, want %q", got, "pw1\npw2\n")
	}
}

func TestCommandOpenerRunsBinary(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"xdg-open": true}}
	caps := detect(exec, false)

	if err := caps.Opener.Open("https://example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exec.ran) != 1 || exec.ran[0] != "xdg-open https://example.com" {
		t.Errorf("ran %v", exec.ran)
	}
}

func TestCommandFailuresAreWrapped(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pbcopy": true, "open": true},
		runErr:        errors.New("exit status 1"),
	}
	caps := detect(exec, false)

	err := caps.Clipboard.WriteText([]byte("x"))
	if err == nil || !strings.Contains(err.Error(), "pbcopy") {
		t.Errorf("clipboard error should name the tool, got: %v", err)
	}
	err = caps.Opener.Open("https://example.com")
	if err == nil || !strings.Contains(err.Error(), "https://example.com") {
		t.Errorf("opener error should name the URL, got: %v", err)
	}
}

func TestNopImplementations(t *testing.T) {
	if err := (NopClipboard{}).WriteText([]byte("x")); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NopClipboard error = %v, want ErrUnavailable", err)
	}
	if err := (NopOpener{}).Open("https://example.com"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NopOpener error = %v, want ErrUnavailable", err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "passwords.txt")
	if err := os.WriteFile(path, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	exec := &mockExecutor{availableBins: map[string]bool{"wl-copy": true}}
	caps := detect(exec, false)
	if err := CopyFile(caps.Clipboard, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := exec.piped["wl-copy"]; got != "a\nb\n" {
		t.Errorf("piped %q", got)
	}

	if err := CopyFile(caps.Clipboard, filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
	if err := CopyFile(NopClipboard{}, path); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
