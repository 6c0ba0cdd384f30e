package clock

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iburimskiy/pendulum-clock/internal/config"
	"github.com/iburimskiy/pendulum-clock/internal/draw"
)

// Index of each train gear in Clock.train, matching config.Train.
const (
	idxSeconds = iota
	idxAux1
	idxMinutes
	idxAux2
	idxHours
)

// Clock owns the pendulum and the six gears and drives them from wall time.
type Clock struct {
	clk    clockwork.Clock
	start  time.Time
	offset float64

	kin        Train
	pendulum   *Pendulum
	escapement *Gear
	train      [5]*Gear

	gate   TickGate
	onBeat func()
	angles Angles
}

// Option configures a Clock.
type Option func(*Clock)

// WithClock sets the time source. Tests pass a clockwork.FakeClock.
func WithClock(clk clockwork.Clock) Option {
	return func(c *Clock) {
		c.clk = clk
	}
}

// OnBeat registers fn to run once per escapement beat, from Update's
// goroutine. fn must not block.
func OnBeat(fn func()) Option {
	return func(c *Clock) {
		c.onBeat = fn
	}
}

// New builds the clock from the fixed layout and captures the start time and
// the wall time of day (on a 12 hour dial).
func New(opts ...Option) *Clock {
	c := &Clock{clk: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(c)
	}

	c.pendulum = NewPendulum(config.Pendulum)
	c.escapement = NewGear(config.Escapement, EscapementVariant)
	for i, layout := range config.Train {
		c.train[i] = NewGear(layout, TrainVariant)
	}
	c.kin = Train{
		EscapementTeeth: c.escapement.OuterTeeth(),
		Aux1Teeth:       c.train[idxAux1].OuterTeeth(),
	}

	now := c.clk.Now()
	c.start = now
	c.offset = float64(now.Second()) + 60*float64(now.Minute()) + 3600*float64(now.Hour()%12)
	return c
}

// Elapsed returns simulated seconds: the time since New plus the time of day
// captured at startup.
func (c *Clock) Elapsed() float64 {
	return c.clk.Since(c.start).Seconds() + c.offset
}

// Update derives every angle for the current time, pushes them into the
// parts and fires the beat callback at most once per second.
func (c *Clock) Update() Angles {
	a := c.kin.At(c.Elapsed())

	c.pendulum.SetAngle(a.Pendulum)
	c.escapement.SetAngle(a.Escapement)
	c.train[idxSeconds].SetAngle(a.Seconds)
	c.train[idxAux1].SetAngle(a.Aux1)
	c.train[idxMinutes].SetAngle(a.Minutes)
	c.train[idxAux2].SetAngle(a.Aux2)
	c.train[idxHours].SetAngle(a.Hours)

	if c.gate.Observe(a.Hold) && c.onBeat != nil {
		c.onBeat()
	}
	c.angles = a
	return a
}

// Angles returns the angles from the last Update.
func (c *Clock) Angles() Angles {
	return c.angles
}

// Pendulum returns the pendulum.
func (c *Clock) Pendulum() *Pendulum {
	return c.pendulum
}

// Gears returns every gear in paint order: escapement, seconds, aux1,
// minutes, aux2, hours.
func (c *Clock) Gears() []*Gear {
	return append([]*Gear{c.escapement}, c.train[:]...)
}

// Draw paints the pendulum first and the gears over it.
func (c *Clock) Draw(cv draw.Canvas) {
	c.pendulum.Draw(cv)
	for _, g := range c.Gears() {
		g.Draw(cv)
	}
}
