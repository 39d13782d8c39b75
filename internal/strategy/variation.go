// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import "strconv"

// VariationKind names a transform applied to a base string.
type VariationKind int

const (
	VariationAppend  VariationKind = iota // base + [0,9999] + one of !@#_
	VariationPrepend                      // one of $, dev, x, pro + base
	VariationInsert                       // two digits at a position in [0, len(base)]
	VariationLeet                         // Leet(base)
	VariationMix                          // base + Realistic() or base + Strong(4)

	numVariations = 5
)

var variationNames = [...]string{"append", "prepend", "insert", "leet", "mix"}

func (k VariationKind) String() string {
	if k < 0 || int(k) >= len(variationNames) {
		return "unknown"
	}
	return variationNames[k]
}

var (
	appendSymbols = []string{"!", "@", "#", "_"}
	prependTokens = []string{"$", "dev", "x", "pro"}
)

// Variation applies one uniformly chosen transform to base. The base must
// be non-empty; requests are validated before any generation starts.
func (g *Generator) Variation(base string) string {
	return g.VariationOf(VariationKind(g.rng.IntN(numVariations)), base)
}

// VariationOf applies the given transform to base. Unknown kinds behave as
// VariationMix.
func (g *Generator) VariationOf(kind VariationKind, base string) string {
	switch kind {
	case VariationAppend:
		return base + strconv.Itoa(g.Between(0, 9999)) + g.choose(appendSymbols)
	case VariationPrepend:
		return g.choose(prependTokens) + base
	case VariationInsert:
		out, _ := g.insertDigits(base)
		return out
	case VariationLeet:
		return Leet(base)
	default:
		if g.rng.IntN(2) == 0 {
			return base + g.Realistic()
		}
		return base + g.Strong(MinStrongLength)
	}
}

// insertDigits places a two-digit token at a uniform rune offset in
// [0, n] where n is the rune count of base, and returns the result with the
// offset used.
func (g *Generator) insertDigits(base string) (string, int) {
	runes := []rune(base)
	pos := g.rng.IntN(len(runes) + 1)
	token := strconv.Itoa(g.Between(10, 99))
	return string(runes[:pos]) + token + string(runes[pos:]), pos
}
