// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/passgen/internal/archive"
	"github.com/pdiddy/passgen/pkg/types"
)

// Links offered after a generation run.
const (
	whatsAppChannelURL = "https://whatsapp.com/channel/0029Vb6K4nw96H4LOMaOLF22"
	youTubeChannelURL  = "https://www.youtube.com/@nexoratechn"
)

const defaultBanner = `
 ____                  ____
|  _ \ __ _ ___ ___   / ___| ___ _ __
| |_) / _` + "`" + ` / __/ __| | |  _ / _ \ '_ \
|  __/ (_| \__ \__ \ | |_| |  __/ | | |
|_|   \__,_|___/___/  \____|\___|_| |_|
        Password candidate generator
`

// errQuit ends the menu loop without an error.
var errQuit = errors.New("quit")

// prompter reads trimmed input lines. Reading happens on a separate
// goroutine so a pending prompt still observes cancellation.
type prompter struct {
	w     io.Writer
	lines chan string
	done  chan struct{}
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	p := &prompter{w: w, lines: make(chan string), done: make(chan struct{})}
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case p.lines <- scanner.Text():
			case <-p.done:
				return
			}
		}
	}()
	return p
}

func (p *prompter) close() { close(p.done) }

// ask prints prompt and waits for a line. End of input is errQuit.
func (p *prompter) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", errQuit
		}
		return strings.TrimSpace(line), nil
	}
}

// askCount reads a positive integer. ok is false when the input was
// rejected and the caller should show the menu again.
func (p *prompter) askCount(ctx context.Context, prompt, invalid string) (count int, ok bool, err error) {
	val, err := p.ask(ctx, prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(val)
	if convErr != nil {
		fmt.Fprintln(p.w, invalid)
		return 0, false, nil
	}
	if n <= 0 {
		fmt.Fprintln(p.w, "Number must be positive.")
		return 0, false, nil
	}
	return n, true, nil
}

// runMenu runs the interactive menu until the user exits, input ends, or
// ctx is cancelled.
func (s *session) runMenu(ctx context.Context, in io.Reader) error {
	p := newPrompter(in, s.out)
	defer p.close()

	err := s.mainMenu(ctx, p)
	switch {
	case errors.Is(err, errQuit):
		fmt.Fprintln(s.out, "\nExiting passgen. Bye.")
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(s.out, "\nInterrupted. Exiting.")
		return nil
	}
	return err
}

func (s *session) mainMenu(ctx context.Context, p *prompter) error {
	for {
		s.printBanner()
		fmt.Fprintln(s.out, "\nMain features:")
		fmt.Fprintln(s.out, " [1] Generate random (Secure & Realistic mix)")
		fmt.Fprintln(s.out, " [2] Suggest / Create variations from my password")
		fmt.Fprintln(s.out, " [0] Exit")

		choice, err := p.ask(ctx, "\nChoose feature: ")
		if err != nil {
			return err
		}

		var req types.GenerationRequest
		switch choice {
		case "1":
			count, ok, err := p.askCount(ctx,
				"\nHow many passwords do you want to generate? (enter any positive number, e.g. 2000): ",
				"Invalid number. Try again.")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			req = types.GenerationRequest{Mode: types.ModeRandom, Count: count, RealisticRatio: s.cfg.RealisticRatio}
			fmt.Fprintf(s.out, "\nGenerating %d passwords. This may take a moment for very large numbers.\n", count)

		case "2":
			base, err := p.ask(ctx, "\nEnter your base password (will be used to create variations): ")
			if err != nil {
				return err
			}
			if base == "" {
				fmt.Fprintln(s.out, "Base password cannot be empty.")
				continue
			}
			count, ok, err := p.askCount(ctx,
				"How many variations to generate? (enter any positive number): ",
				"Invalid number.")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			req = types.GenerationRequest{Mode: types.ModeVariation, Count: count, Base: base}
			fmt.Fprintf(s.out, "\nGenerating %d variations based on your password ...\n", count)

		case "0":
			return errQuit

		default:
			fmt.Fprintln(s.out, "Invalid option. Choose 1, 2, or 0.")
			continue
		}

		if _, err := s.generate(ctx, req); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Fprintf(s.out, "[!] Generation failed: %v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "\n[✔] Done. Saved to %s\n", s.cfg.OutputPath)

		if err := s.postGenerationMenu(ctx, p); err != nil {
			return err
		}
	}
}

func (s *session) postGenerationMenu(ctx context.Context, p *prompter) error {
	for {
		fmt.Fprintln(s.out, "\nPost-generation options:")
		fmt.Fprintln(s.out, " [1] Copy passwords")
		fmt.Fprintln(s.out, " [2] Follow WhatsApp channel")
		fmt.Fprintln(s.out, " [3] See YouTube channel")
		fmt.Fprintln(s.out, " [4] Download as ZIP")
		fmt.Fprintln(s.out, " [0] Back to main menu")

		choice, err := p.ask(ctx, "\nSelect option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			s.copyOutput()
		case "2":
			s.openLink("WhatsApp channel", whatsAppChannelURL)
		case "3":
			s.openLink("YouTube channel", youTubeChannelURL)
		case "4":
			path, err := s.archiveOutput(archive.FormatZip)
			if err != nil {
				s.log.Warn("archive not created", "err", err)
				fmt.Fprintf(s.out, "[!] Could not create ZIP: %v\n", err)
				continue
			}
			fmt.Fprintf(s.out, "\n[✔] Zipped passwords to: %s\n", path)
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Try again.")
		}
	}
}

// printBanner shows the banner file when present, the built-in art
// otherwise, followed by the usage line and disclaimer.
func (s *session) printBanner() {
	art := defaultBanner
	if s.cfg.BannerPath != "" {
		if data, err := os.ReadFile(s.cfg.BannerPath); err == nil && strings.TrimSpace(string(data)) != "" {
			art = string(data)
		}
	}
	fmt.Fprintln(s.out, art)
	fmt.Fprintf(s.out, "Tool: passgen %s\n", version)
	fmt.Fprintf(s.out, "Usage count: %d  •  %s\n", s.usage, s.now().UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintln(s.out, "\nDISCLAIMER: This tool is for development/testing only. Do NOT use it to breach accounts, "+
		"attack systems, or for illegal activity. The author is not responsible for misuse.")
}
