package game

import "math"

// Bouncer moves Value by Step each tick and reverses direction once it
// reaches or passes either bound.
type Bouncer struct {
	Value    float64
	Step     float64
	Min, Max float64
	dir      float64
}

func NewBouncer(start, step, min, max float64) Bouncer {
	return Bouncer{Value: start, Step: step, Min: min, Max: max, dir: 1}
}

func (b *Bouncer) Update() {
	if b.Value <= b.Min {
		b.dir = 1
	} else if b.Value >= b.Max {
		b.dir = -1
	}
	if b.dir == 0 {
		b.dir = 1
	}
	b.Value += b.dir * b.Step
}

// Direction is +1 while rising and -1 while falling.
func (b *Bouncer) Direction() float64 {
	if b.dir == 0 {
		return 1
	}
	return b.dir
}

// Wrapper advances Value by Step each tick, keeping it in [0, Period).
type Wrapper struct {
	Value  float64
	Step   float64
	Period float64
}

func NewWrapper(start, step, period float64) Wrapper {
	return Wrapper{Value: start, Step: step, Period: period}
}

func (w *Wrapper) Update() {
	v := math.Mod(w.Value+w.Step, w.Period)
	if v < 0 {
		v += w.Period
	}
	w.Value = v
}
