// Package random provides seeded pseudo-random generators for tensor creation.
//
// A Generator is an explicit state object: there is no package-level default
// stream. Code that needs reproducible tensors creates a Generator, seeds it,
// and passes it to the creation functions.
package random

import (
	"errors"
	"fmt"
	"math"

	"github.com/seehuhn/mt19937"
)

// ErrInvalidSeed is returned when a seed is outside the accepted domain.
// Seeds must be non-negative.
var ErrInvalidSeed = errors.New("random: invalid seed")

// DefaultSeed is the seed used by NewDefault.
const DefaultSeed int64 = 67280421310721

// State captures a generator's position: the seed it was last reset with and
// the number of words drawn since.
type State struct {
	Seed   int64
	Offset uint64
}

// Generator is a MT19937-64 backed pseudo-random stream.
//
// The values produced after ManualSeed(s) are a pure function of s and the
// ordered sequence of draws. A Generator is not safe for concurrent use:
// callers sharing one across goroutines must serialize access themselves.
// Independent generators may be used concurrently.
type Generator struct {
	src    *mt19937.MT19937
	seed   int64
	offset uint64
}

// New creates a generator seeded with seed.
func New(seed int64) (*Generator, error) {
	g := &Generator{src: mt19937.New()}
	if err := g.ManualSeed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// NewDefault creates a generator seeded with DefaultSeed.
func NewDefault() *Generator {
	g := &Generator{src: mt19937.New()}
	g.reset(DefaultSeed)
	return g
}

// ManualSeed resets the stream deterministically from seed.
func (g *Generator) ManualSeed(seed int64) error {
	if seed < 0 {
		return fmt.Errorf("manual seed %d: %w", seed, ErrInvalidSeed)
	}
	g.reset(seed)
	return nil
}

func (g *Generator) reset(seed int64) {
	g.src.Seed(seed)
	g.seed = seed
	g.offset = 0
}

// InitialSeed returns the seed the stream was last reset with.
func (g *Generator) InitialSeed() int64 {
	return g.seed
}

// Offset returns the number of 64-bit words drawn since the last reset.
func (g *Generator) Offset() uint64 {
	return g.offset
}

// State returns the current stream position.
func (g *Generator) State() State {
	return State{Seed: g.seed, Offset: g.offset}
}

// SetState moves the stream to s by reseeding and replaying s.Offset draws.
func (g *Generator) SetState(s State) error {
	if err := g.ManualSeed(s.Seed); err != nil {
		return err
	}
	for g.offset < s.Offset {
		g.next()
	}
	return nil
}

// Fork returns an independent generator positioned where g is now.
func (g *Generator) Fork() *Generator {
	f := &Generator{src: mt19937.New()}
	f.reset(g.seed)
	for f.offset < g.offset {
		f.next()
	}
	return f
}

func (g *Generator) next() uint64 {
	g.offset++
	return g.src.Uint64()
}

// Uint64 returns the next raw 64-bit word.
func (g *Generator) Uint64() uint64 {
	return g.next()
}

// Float32 returns a uniform value in [0, 1) built from the top 24 bits of
// one word.
func (g *Generator) Float32() float32 {
	return float32(g.next()>>40) * (1.0 / (1 << 24))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits of
// one word.
func (g *Generator) Float64() float64 {
	return float64(g.next()>>11) * (1.0 / (1 << 53))
}

// FillFloat32 fills dst with uniform values in [0, 1), one word per element.
func (g *Generator) FillFloat32(dst []float32) {
	for i := range dst {
		dst[i] = g.Float32()
	}
}

// FillFloat64 fills dst with uniform values in [0, 1), one word per element.
func (g *Generator) FillFloat64(dst []float64) {
	for i := range dst {
		dst[i] = g.Float64()
	}
}

// NormFloat64 returns a standard normal value using the Box-Muller transform.
// Each call consumes two words.
func (g *Generator) NormFloat64() float64 {
	u1 := 1 - g.Float64() // (0, 1], keeps Log finite
	u2 := g.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
