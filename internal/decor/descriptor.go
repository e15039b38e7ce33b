// Package decor generates the ambient decoration field drawn behind the
// tour: a fixed set of particles with randomized position and timing.
//
// A Field is generated once when a page view mounts and never regenerates
// for that view's lifetime; re-rendering reads the same descriptors every
// frame. Animation is a pure function of elapsed time, so no descriptor is
// ever mutated after construction.
package decor

import (
	"math/rand/v2"
	"time"
)

// FieldSize is the number of descriptors in every field.
const FieldSize = 20

// Descriptor value ranges. Each field is drawn independently and uniformly
// from the half-open interval [min, max).
const (
	MinSize     = 2.0
	MaxSize     = 6.0
	MinPercent  = 0.0
	MaxPercent  = 100.0
	MinDuration = 10.0
	MaxDuration = 30.0
	MinDelay    = 0.0
	MaxDelay    = 5.0
)

// Descriptor is one particle's generated parameter set. Positions are
// percentages of the viewport; duration and delay are in seconds.
type Descriptor struct {
	// ID is the descriptor's sequence position within its field.
	ID       int
	Size     float64
	X        float64
	Y        float64
	Duration float64
	Delay    float64
}

// Field is an immutable set of FieldSize descriptors.
type Field struct {
	descriptors []Descriptor
	born        time.Time
}

// Option configures field generation.
type Option func(*fieldOptions)

type fieldOptions struct {
	rng *rand.Rand
	now time.Time
}

// WithRand supplies the random source used for generation. Tests use this
// to make fields deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(o *fieldOptions) {
		o.rng = rng
	}
}

// WithBirth overrides the field's mount time. Tests use this to drive the
// animation clock explicitly.
func WithBirth(t time.Time) Option {
	return func(o *fieldOptions) {
		o.now = t
	}
}

// NewField generates a field of FieldSize descriptors. Generation happens
// exactly once, here; every later read returns the same values.
func NewField(opts ...Option) *Field {
	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	born := o.now
	if born.IsZero() {
		born = time.Now()
	}

	descriptors := make([]Descriptor, FieldSize)
	for i := range descriptors {
		descriptors[i] = Descriptor{
			ID:       i,
			Size:     uniform(rng, MinSize, MaxSize),
			X:        uniform(rng, MinPercent, MaxPercent),
			Y:        uniform(rng, MinPercent, MaxPercent),
			Duration: uniform(rng, MinDuration, MaxDuration),
			Delay:    uniform(rng, MinDelay, MaxDelay),
		}
	}

	return &Field{descriptors: descriptors, born: born}
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Descriptors returns the field's descriptors in generation order. The
// returned slice is the field's backing storage; callers must not modify it.
func (f *Field) Descriptors() []Descriptor {
	return f.descriptors
}

// Len returns the number of descriptors in the field.
func (f *Field) Len() int {
	return len(f.descriptors)
}

// Born returns the field's mount time, the zero point of its animation clock.
func (f *Field) Born() time.Time {
	return f.born
}

// Age returns the elapsed animation time at now.
func (f *Field) Age(now time.Time) time.Duration {
	return now.Sub(f.born)
}
