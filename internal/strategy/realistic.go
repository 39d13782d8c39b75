// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import "strconv"

// RealisticStyle names one way of decorating a seed word.
type RealisticStyle int

const (
	StyleWordNumber RealisticStyle = iota // word + [1,9999]
	StyleWordYear                         // word + [1998,2025]
	StyleLeetNumber                       // leet(word) + [10,999]
	StyleWordSymbol                       // word + suffix
	StyleMixed                            // word + year + suffix

	numStyles = 5
)

var styleNames = [...]string{"word+num", "word+year", "leet+num", "word+symbol", "mixed"}

func (s RealisticStyle) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

const (
	minYear = 1998
	maxYear = 2025

	minLeetSuffix = 10
	maxLeetSuffix = 999
)

// suffixes lists the human-style endings. "!" appears twice so it is drawn
// twice as often.
var suffixes = []string{"!", "!", "123", "@", "#", "_", "2023", "2024", "01"}

// Suffixes returns a copy of the realistic suffix set.
func Suffixes() []string {
	out := make([]string, len(suffixes))
	copy(out, suffixes)
	return out
}

// Realistic picks a word and one of five styles uniformly and returns the
// decorated word.
func (g *Generator) Realistic() string {
	return g.RealisticStyled(RealisticStyle(g.rng.IntN(numStyles)))
}

// RealisticStyled returns a realistic candidate in the given style using a
// randomly chosen word. Unknown styles behave as StyleMixed.
func (g *Generator) RealisticStyled(style RealisticStyle) string {
	word := g.choose(g.words)

	switch style {
	case StyleWordNumber:
		return word + strconv.Itoa(g.Between(1, 9999))
	case StyleWordYear:
		return word + g.year()
	case StyleLeetNumber:
		return Leet(word) + strconv.Itoa(g.Between(minLeetSuffix, maxLeetSuffix))
	case StyleWordSymbol:
		return word + g.choose(suffixes)
	default:
		return word + g.year() + g.choose(suffixes)
	}
}

func (g *Generator) year() string {
	return strconv.Itoa(g.Between(minYear, maxYear))
}
