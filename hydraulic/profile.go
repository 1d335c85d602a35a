package hydraulic

import (
	"fmt"
	"sort"
)

// Sample is one point of the continuous part of a head profile.
type Sample struct {
	X    float64 `json:"x"`    // m along the route
	Head float64 `json:"head"` // m of total head
}

// Jump is a pump discontinuity: the head rises by Delta at X.
type Jump struct {
	X     float64 `json:"x"`
	Delta float64 `json:"delta"`
}

// Profile is a stepped head profile: samples at strictly increasing positions
// plus jump discontinuities. A sample coinciding with a jump holds the
// pre-jump head; samples downstream of a jump already include its delta. The
// duplicate-x polyline form consumed by renderers is derived only by Polyline,
// never carried internally.
type Profile struct {
	Samples []Sample
	Jumps   []Jump
}

// StartHead is the head at the first sample, before any jump at that position.
func (p Profile) StartHead() float64 {
	return p.Samples[0].Head
}

// EndHead is the head at the downstream end of the profile, after any jump at
// the last position.
func (p Profile) EndHead() float64 {
	last := p.Samples[len(p.Samples)-1]

	return last.Head + p.jumpDelta(last.X)
}

// InsertPump returns a copy of the profile with a pump of the given head
// inserted at position. The head downstream of the pump rises by head, and the
// whole profile is then shifted by a constant so the head at the far end is
// unchanged: the far boundary condition stays fixed while the pump is
// absorbed. Positions outside the profile range are rejected.
func (p Profile) InsertPump(position, head float64) (Profile, error) {
	if len(p.Samples) == 0 {
		return Profile{}, ErrEmptyProfile
	}
	if position < p.Samples[0].X || position > p.Samples[len(p.Samples)-1].X {
		return Profile{}, fmt.Errorf("%w: position %g not in [%g, %g]",
			ErrPumpOutOfRange, position, p.Samples[0].X, p.Samples[len(p.Samples)-1].X)
	}

	out := p.clone()
	idx := sort.Search(len(out.Samples), func(i int) bool { return out.Samples[i].X >= position })
	if idx == len(out.Samples) || out.Samples[idx].X != position {
		pre := out.headBefore(position)
		out.Samples = append(out.Samples, Sample{})
		copy(out.Samples[idx+1:], out.Samples[idx:])
		out.Samples[idx] = Sample{X: position, Head: pre}
	}

	endBefore := out.EndHead()
	for i := idx + 1; i < len(out.Samples); i++ {
		out.Samples[i].Head += head
	}
	out.addJump(position, head)

	return out.shift(endBefore - out.EndHead()), nil
}

// Polyline renders the profile as parallel (x, head) slices, duplicating x at
// jump positions so each pump shows as a vertical step.
func (p Profile) Polyline() (xs, heads []float64) {
	xs = make([]float64, 0, len(p.Samples)+len(p.Jumps))
	heads = make([]float64, 0, len(p.Samples)+len(p.Jumps))
	for _, s := range p.Samples {
		xs = append(xs, s.X)
		heads = append(heads, s.Head)
		if d := p.jumpDelta(s.X); d != 0 {
			xs = append(xs, s.X)
			heads = append(heads, s.Head+d)
		}
	}

	return xs, heads
}

// shift returns a copy with every sample head moved by delta.
func (p Profile) shift(delta float64) Profile {
	if delta == 0 {
		return p
	}
	for i := range p.Samples {
		p.Samples[i].Head += delta
	}

	return p
}

// headBefore is the left limit of the head function at position, which must
// lie inside the sample range.
func (p Profile) headBefore(position float64) float64 {
	s := p.Samples
	i := sort.Search(len(s), func(i int) bool { return s[i].X >= position })
	if i < len(s) && s[i].X == position {
		return s[i].Head
	}
	if i == 0 {
		return s[0].Head
	}
	left, right := s[i-1], s[i]
	start := left.Head + p.jumpDelta(left.X)
	frac := (position - left.X) / (right.X - left.X)

	return start + (right.Head-start)*frac
}

// jumpDelta is the total jump at exactly x, 0 when no pump sits there.
func (p Profile) jumpDelta(x float64) float64 {
	for _, j := range p.Jumps {
		if j.X == x {
			return j.Delta
		}
	}

	return 0
}

// addJump records a jump at x, merging with an existing jump at the same
// position. Jumps stay sorted by position.
func (p *Profile) addJump(x, delta float64) {
	i := sort.Search(len(p.Jumps), func(i int) bool { return p.Jumps[i].X >= x })
	if i < len(p.Jumps) && p.Jumps[i].X == x {
		p.Jumps[i].Delta += delta
		return
	}
	p.Jumps = append(p.Jumps, Jump{})
	copy(p.Jumps[i+1:], p.Jumps[i:])
	p.Jumps[i] = Jump{X: x, Delta: delta}
}

func (p Profile) clone() Profile {
	return Profile{
		Samples: append([]Sample(nil), p.Samples...),
		Jumps:   append([]Jump(nil), p.Jumps...),
	}
}
