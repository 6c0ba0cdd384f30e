package clock

import "math"

// MaxSwing is the pendulum amplitude. The sign makes the bob start swinging
// toward -x.
const MaxSwing = -math.Pi / 12

// Stage ratios of the train. Each stage counter-rotates relative to the gear
// driving it, hence the negative signs.
const (
	SecondsRatio = -1.0 / 2
	Aux1Ratio    = -1.0 / 10
	MinutesRatio = -1.0 / 6
	Aux2Ratio    = -1.0 / 6
	HoursRatio   = -1.0 / 2
)

// PendulumAngle is the swing at elapsed seconds: one full oscillation per
// second.
func PendulumAngle(elapsed float64) float64 {
	return MaxSwing * math.Sin(2*math.Pi*elapsed)
}

// PseudoTime paces the escapement in beats. During the first half of each
// second it runs from the whole second to the next at double rate; during
// the second half it holds on the next whole second and hold is true.
func PseudoTime(elapsed float64) (pseudo float64, hold bool) {
	whole := math.Floor(elapsed)
	frac := elapsed - whole
	if frac >= 0.5 {
		return whole + 1, true
	}
	return whole + 2*frac, false
}

// EscapementAngle turns pseudo-time into a rotation that advances one tooth
// per second.
func EscapementAngle(pseudo float64, teeth int) float64 {
	return -2 * math.Pi * pseudo / float64(teeth)
}

// Angles is one frame's worth of part rotations, in radians.
type Angles struct {
	Pendulum   float64
	Escapement float64
	Seconds    float64
	// Aux1 includes the half-tooth phase offset; the chain continues from
	// the angle without it.
	Aux1    float64
	Minutes float64
	Aux2    float64
	Hours   float64
	// Hold reports that the escapement is resting on a beat.
	Hold bool
}

// Train holds the tooth counts the kinematics depend on.
type Train struct {
	EscapementTeeth int
	Aux1Teeth       int
}

// Chain derives the downstream angles from an escapement angle.
func (t Train) Chain(escapement float64) Angles {
	seconds := SecondsRatio * escapement
	aux1 := Aux1Ratio * seconds
	minutes := MinutesRatio * aux1
	aux2 := Aux2Ratio * minutes
	return Angles{
		Escapement: escapement,
		Seconds:    seconds,
		Aux1:       aux1 + math.Pi/float64(t.Aux1Teeth),
		Minutes:    minutes,
		Aux2:       aux2,
		Hours:      HoursRatio * aux2,
	}
}

// At returns every angle for elapsed seconds since midnight (or noon).
func (t Train) At(elapsed float64) Angles {
	pseudo, hold := PseudoTime(elapsed)
	a := t.Chain(EscapementAngle(pseudo, t.EscapementTeeth))
	a.Pendulum = PendulumAngle(elapsed)
	a.Hold = hold
	return a
}

// TickGate fires once per beat: on the first frame of each hold, and re-arms
// when the hold ends.
type TickGate struct {
	playing bool
}

// Observe reports whether the tick sound should start on this frame.
func (g *TickGate) Observe(hold bool) bool {
	if !hold {
		g.playing = false
		return false
	}
	if g.playing {
		return false
	}
	g.playing = true
	return true
}
