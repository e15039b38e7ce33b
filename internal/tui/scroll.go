package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring constants for section jumps. Critically damped so the viewport
// settles on the target without overshoot.
const (
	springFrequency = 7.0
	springDamping   = 1.0
)

// scrollState animates the viewport offset toward a target line with a
// damped spring. Section jumps glide; manual scrolling snaps the spring so
// single-line motion stays crisp. Under reduced motion every move is
// instant.
type scrollState struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	max     float64
	instant bool
}

func newScrollState(frameInterval time.Duration, reduceMotion bool) *scrollState {
	return &scrollState{
		spring:  harmonica.NewSpring(frameInterval.Seconds(), springFrequency, springDamping),
		instant: reduceMotion,
	}
}

// setMax re-clamps the scrollable range to [0, max]. Called whenever the
// composed content or the viewport changes size.
func (s *scrollState) setMax(max float64) {
	s.max = math.Max(max, 0)
	s.target = clampOffset(s.target, s.max)
	s.pos = clampOffset(s.pos, s.max)
}

// glideTo animates toward the given line offset.
func (s *scrollState) glideTo(offset float64) {
	s.target = clampOffset(offset, s.max)
	if s.instant {
		s.pos = s.target
		s.vel = 0
	}
}

// snapTo moves to the given line offset immediately, with no spring
// follow-through.
func (s *scrollState) snapTo(offset float64) {
	s.target = clampOffset(offset, s.max)
	s.pos = s.target
	s.vel = 0
}

// snapBy moves relative to the current target.
func (s *scrollState) snapBy(delta float64) {
	s.snapTo(s.target + delta)
}

// step advances the spring one frame and settles it once the remaining
// motion is below perceptible thresholds.
func (s *scrollState) step() {
	if s.pos == s.target && s.vel == 0 {
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.01 && math.Abs(s.vel) < 0.01 {
		s.pos = s.target
		s.vel = 0
	}
}

// settled reports whether the spring has reached its target.
func (s *scrollState) settled() bool {
	return s.pos == s.target && s.vel == 0
}

// offset is the whole-line offset to render the viewport at.
func (s *scrollState) offset() int {
	return int(math.Round(s.pos))
}

func clampOffset(v, max float64) float64 {
	return math.Min(math.Max(v, 0), max)
}
