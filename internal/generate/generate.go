// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate drives bulk candidate generation: it validates a
// request, picks a strategy per line, and streams each candidate to a Sink
// as soon as it is produced.
package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/passgen/internal/progress"
	"github.com/pdiddy/passgen/internal/strategy"
	"github.com/pdiddy/passgen/pkg/types"
)

// Request validation errors.
var (
	ErrInvalidCount = errors.New("count must be a positive number")
	ErrEmptyBase    = errors.New("base password cannot be empty")
	ErrInvalidRatio = errors.New("realistic ratio must be within [0,1]")
	ErrInvalidMode  = errors.New("unknown generation mode")
)

// Strong-random lengths used in random mode.
const (
	MinRandomLength = 8
	MaxRandomLength = 16
)

// DefaultProgressEvery is the progress cadence when none is configured.
const DefaultProgressEvery = 500

// Validate checks a request before any output is touched. A zero count is
// accepted and produces an empty sink; interactive callers that require at
// least one line check that themselves.
func Validate(req types.GenerationRequest) error {
	if req.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, req.Count)
	}
	switch req.Mode {
	case types.ModeRandom:
		if req.RealisticRatio < 0 || req.RealisticRatio > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidRatio, req.RealisticRatio)
		}
	case types.ModeVariation:
		if req.Base == "" {
			return ErrEmptyBase
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
	return nil
}

// Driver runs generation requests against one strategy Generator.
type Driver struct {
	gen      *strategy.Generator
	reporter progress.Reporter
	every    int
}

// NewDriver returns a driver reporting to reporter every `every` lines.
// A nil reporter discards updates; a non-positive interval uses
// DefaultProgressEvery.
func NewDriver(gen *strategy.Generator, reporter progress.Reporter, every int) *Driver {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if every <= 0 {
		every = DefaultProgressEvery
	}
	return &Driver{gen: gen, reporter: reporter, every: every}
}

// Generate writes req.Count candidates to sink, one per line, after
// resetting it. It returns the number of lines written.
//
// If ctx is cancelled the run stops before the next candidate; the sink is
// flushed so it holds exactly the lines counted, and ctx.Err() is returned
// with that count.
func (d *Driver) Generate(ctx context.Context, req types.GenerationRequest, sink Sink) (int, error) {
	if err := Validate(req); err != nil {
		return 0, err
	}
	if err := sink.Reset(); err != nil {
		return 0, fmt.Errorf("resetting sink: %w", err)
	}
	defer d.reporter.Finish()

	written := 0
	for written < req.Count {
		select {
		case <-ctx.Done():
			if err := sink.Flush(); err != nil {
				return written, fmt.Errorf("flushing after cancel: %w", err)
			}
			return written, ctx.Err()
		default:
		}

		if err := sink.WriteLine(d.next(req)); err != nil {
			_ = sink.Flush()
			return written, fmt.Errorf("writing line %d: %w", written+1, err)
		}
		written++

		if written%d.every == 0 {
			d.reporter.Report(written, req.Count)
		}
	}

	if err := sink.Flush(); err != nil {
		return written, fmt.Errorf("flushing sink: %w", err)
	}
	return written, nil
}

func (d *Driver) next(req types.GenerationRequest) string {
	if req.Mode == types.ModeVariation {
		return d.gen.Variation(req.Base)
	}
	if d.gen.Float64() < req.RealisticRatio {
		return d.gen.Realistic()
	}
	return d.gen.Strong(d.gen.Between(MinRandomLength, MaxRandomLength))
}
