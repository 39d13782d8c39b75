// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Mode selects how the bulk driver produces candidates.
type Mode string

const (
	// ModeRandom mixes realistic-pattern and strong-random candidates.
	ModeRandom Mode = "random"

	// ModeVariation derives every candidate from a user-supplied base.
	ModeVariation Mode = "variation"
)

// GenerationRequest describes one bulk generation run.
type GenerationRequest struct {
	// Mode is ModeRandom or ModeVariation.
	Mode Mode `json:"mode" yaml:"mode"`

	// Count is the number of candidates to write.
	Count int `json:"count" yaml:"count"`

	// Base is the seed string for ModeVariation. Ignored otherwise.
	Base string `json:"base,omitempty" yaml:"base,omitempty"`

	// RealisticRatio is the probability in [0,1] that a ModeRandom
	// iteration uses the realistic-pattern strategy.
	RealisticRatio float64 `json:"realistic_ratio" yaml:"realistic_ratio"`
}

// RunRecord is one row of the generation history ledger.
type RunRecord struct {
	ID         string    `json:"id" yaml:"id"`
	Mode       Mode      `json:"mode" yaml:"mode"`
	Requested  int       `json:"requested" yaml:"requested"`
	Written    int       `json:"written" yaml:"written"`
	OutputPath string    `json:"output_path" yaml:"output_path"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	Cancelled  bool      `json:"cancelled" yaml:"cancelled"`
}

// Duration returns how long the run took.
func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
