package decor

import (
	"math"
	"time"
)

// Particle is one descriptor resolved to a viewport cell for a single frame.
type Particle struct {
	// ID matches the source descriptor.
	ID    int
	Col   int
	Row   int
	Glyph rune
	// Depth is the descriptor's vertical position as a ratio in [0,1).
	// The styles package blends particle color by depth.
	Depth float64
}

// Glyph ramps indexed by weight class. A particle pulses through its ramp
// once per animation cycle: faint, brighter, peak, brighter.
var glyphRamps = [3][4]rune{
	{'.', '·', '·', '.'},
	{'·', '∙', '•', '∙'},
	{'∙', '•', '●', '•'},
}

// weightClass buckets a size scalar from [MinSize, MaxSize) into a ramp index.
func weightClass(size float64) int {
	span := (MaxSize - MinSize) / float64(len(glyphRamps))
	class := int((size - MinSize) / span)
	if class < 0 {
		class = 0
	}
	if class >= len(glyphRamps) {
		class = len(glyphRamps) - 1
	}
	return class
}

// glyphAt picks the ramp glyph for a phase in [0,1).
func glyphAt(size, phase float64) rune {
	ramp := glyphRamps[weightClass(size)]
	idx := int(phase * float64(len(ramp)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}

// bob returns the vertical drift for a phase: one cell up at mid-cycle.
func bob(phase float64) int {
	return int(math.Round(math.Sin(2 * math.Pi * phase)))
}

// Frame resolves the field against a viewport at the given elapsed time.
// A particle whose delay has not elapsed is omitted; afterwards its phase
// loops over its duration. Particles that drift outside the viewport are
// dropped for the frame.
func (f *Field) Frame(width, height int, elapsed time.Duration) []Particle {
	if width <= 0 || height <= 0 {
		return nil
	}

	secs := elapsed.Seconds()
	particles := make([]Particle, 0, len(f.descriptors))

	for _, d := range f.descriptors {
		age := secs - d.Delay
		if age < 0 {
			continue
		}
		phase := math.Mod(age, d.Duration) / d.Duration

		col := int(d.X / MaxPercent * float64(width))
		row := int(d.Y/MaxPercent*float64(height)) + bob(phase)
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}

		particles = append(particles, Particle{
			ID:    d.ID,
			Col:   col,
			Row:   row,
			Glyph: glyphAt(d.Size, phase),
			Depth: d.Y / MaxPercent,
		})
	}

	return particles
}

// Static resolves the field with animation frozen: delays are ignored and
// every particle sits at its peak glyph with no drift. Used when reduced
// motion is configured.
func (f *Field) Static(width, height int) []Particle {
	if width <= 0 || height <= 0 {
		return nil
	}

	particles := make([]Particle, 0, len(f.descriptors))

	for _, d := range f.descriptors {
		col := int(d.X / MaxPercent * float64(width))
		row := int(d.Y / MaxPercent * float64(height))
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}

		ramp := glyphRamps[weightClass(d.Size)]
		particles = append(particles, Particle{
			ID:    d.ID,
			Col:   col,
			Row:   row,
			Glyph: ramp[2],
			Depth: d.Y / MaxPercent,
		})
	}

	return particles
}
