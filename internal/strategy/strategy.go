// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strategy builds individual password candidates. Three strategies
// are provided: strong-random, realistic-pattern (word plus human-style
// decoration), and variation-from-base. None of them fail on valid input.
//
// Randomness is best-effort and not suitable for real secrets: the
// realistic strategy deliberately produces weak, guessable strings for
// wordlist testing.
package strategy

import (
	"math/rand/v2"
	"strings"

	"github.com/pdiddy/passgen/internal/wordlist"
)

// Character classes for strong-random candidates.
const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = "!@#$%&*?-_"

	allChars = Lower + Upper + Digits + Symbols
)

// MinStrongLength is the shortest strong-random candidate; one character
// per class.
const MinStrongLength = 4

var leetReplacer = strings.NewReplacer(
	"a", "4",
	"e", "3",
	"i", "1",
	"o", "0",
	"s", "5",
)

// Leet substitutes lowercase vowels (and s) with look-alike digits.
// The result has the same length as s.
func Leet(s string) string {
	return leetReplacer.Replace(s)
}

// Generator produces candidates from one random source and one wordlist.
// It is not safe for concurrent use; the driver owns a single Generator.
type Generator struct {
	rng   *rand.Rand
	words []string
}

// New returns a Generator drawing from rng and words. A nil rng gets a
// freshly seeded source; an empty words slice falls back to the built-in
// wordlist.
func New(rng *rand.Rand, words []string) *Generator {
	if rng == nil {
		rng = NewRand()
	}
	if len(words) == 0 {
		words = wordlist.Default()
	}
	return &Generator{rng: rng, words: words}
}

// NewRand returns a PCG source seeded from the runtime's random state.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Words returns the wordlist the generator draws from.
func (g *Generator) Words() []string { return g.words }

// Float64 draws a uniform value in [0,1) from the generator's source.
func (g *Generator) Float64() float64 { return g.rng.Float64() }

// Between returns a uniform integer in [lo, hi].
func (g *Generator) Between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) pick(set string) byte {
	return set[g.rng.IntN(len(set))]
}

func (g *Generator) choose(items []string) string {
	return items[g.rng.IntN(len(items))]
}

// Strong returns a random string of the given length (raised to
// MinStrongLength if shorter) holding at least one lowercase letter, one
// uppercase letter, one digit, and one symbol. Class positions are shuffled.
func (g *Generator) Strong(length int) string {
	if length < MinStrongLength {
		length = MinStrongLength
	}

	buf := make([]byte, 0, length)
	for _, class := range []string{Lower, Upper, Digits, Symbols} {
		buf = append(buf, g.pick(class))
	}
	for len(buf) < length {
		buf = append(buf, g.pick(allChars))
	}
	g.rng.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return string(buf)
}
