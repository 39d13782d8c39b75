// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/passgen/pkg/types"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name  string
		style types.ProgressStyle
		want  Reporter
	}{
		{"none discards", types.ProgressNone, Nop{}},
		{"lines", types.ProgressLines, NewLines(&buf)},
		{"bar off a terminal degrades to lines", types.ProgressBar, NewLines(&buf)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, New(tt.style, &buf))
		})
	}
}

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewLines(&buf)
	r.Report(500, 2000)
	r.Report(1000, 2000)
	r.Finish()

	assert.Equal(t, "generated 500/2000\ngenerated 1000/2000\n", buf.String())
}

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf)

	// Finish before any update is a no-op.
	b.Finish()
	assert.Empty(t, buf.String())

	b.Report(500, 1000)
	b.Report(1000, 1000)
	b.Finish()
	assert.Contains(t, buf.String(), "Generating")
	assert.Contains(t, buf.String(), "1000/1000")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		var r Reporter = Nop{}
		r.Report(1, 2)
		r.Finish()
	})
}
