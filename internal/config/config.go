package config

const (
	WindowWidth  = 1000
	WindowHeight = 1000
	WindowTitle  = "Pendulum Clock"

	// TicksPerSecond paces Update at one call every 20ms.
	TicksPerSecond = 50

	// Digital readout
	ReadoutY       = 120
	ReadoutSpacing = 60

	DefaultBackground = "#eeeeee"
	DefaultVolume     = 1.0
	// DefaultSoundFile is the tick asset, relative to the working directory.
	DefaultSoundFile = "assets/tick.wav"
)

// Readout field colors.
const (
	HoursColor   = "#003b6d"
	MinutesColor = "#b74a23"
	SecondsColor = "#879281"
)

// Pendulum colors.
const (
	RodColor   = "#6d3c11"
	ScapeColor = "#b88b5c"
	PivotColor = "#8e582c"
	BulbColor  = "#a06c3f"
)

// Escapement gear colors.
const (
	EscapementSpokeColor = "#d0ab7a"
	EscapementToothColor = "#8e582c"
)

// ArrowColor paints the hand drawn on the seconds, minutes and hours gears.
const ArrowColor = "#ea8760"

// PendulumLayout is the fixed geometry of the pendulum, in pixels.
type PendulumLayout struct {
	PivotX, PivotY   float64
	PivotRadius      float64
	RodLength        float64
	RodStroke        float64
	ScapeLength      float64
	ScapeShortLength float64
	BulbRadius       float64
}

// GearLayout is the fixed geometry and coloring of one gear.
type GearLayout struct {
	Name                     string
	CenterX, CenterY         float64
	OuterTeeth, InnerTeeth   int
	OuterRadius, InnerRadius float64
	Arms                     int
	ArmsStroke               float64
	HubRadius                float64
	Primary, Secondary       string
	Arrow                    bool
}

// Pendulum is the layout of the swinging pendulum.
var Pendulum = PendulumLayout{
	PivotX: 250, PivotY: 120, PivotRadius: 20,
	RodLength: 350, RodStroke: 10,
	ScapeLength: 78, ScapeShortLength: 15,
	BulbRadius: 30,
}

// Escapement is the layout of the escapement gear. Its colors are fixed.
var Escapement = GearLayout{
	Name:    "escapement",
	CenterX: 250, CenterY: 340,
	OuterTeeth: 30, InnerTeeth: 15,
	OuterRadius: 150, InnerRadius: 140,
	Arms: 6, ArmsStroke: 20, HubRadius: 50,
	Primary: EscapementToothColor, Secondary: EscapementSpokeColor,
}

// Train lists the time-train gears in drive order: seconds, aux1, minutes,
// aux2, hours.
var Train = [5]GearLayout{
	{
		Name:    "seconds",
		CenterX: 407, CenterY: 345,
		OuterTeeth: 30, InnerTeeth: 10,
		OuterRadius: 100, InnerRadius: 90,
		Arms: 3, ArmsStroke: 20, HubRadius: 25,
		Primary: "#879281", Secondary: "#bab78c",
		Arrow: true,
	},
	{
		Name:    "aux1",
		CenterX: 407, CenterY: 610,
		OuterTeeth: 100, InnerTeeth: 10,
		OuterRadius: 230, InnerRadius: 220,
		Arms: 8, ArmsStroke: 20, HubRadius: 25,
		Primary: "#767b8d", Secondary: "#a7adb2",
	},
	{
		Name:    "minutes",
		CenterX: 590, CenterY: 610,
		OuterTeeth: 60, InnerTeeth: 10,
		OuterRadius: 150, InnerRadius: 140,
		Arms: 4, ArmsStroke: 20, HubRadius: 25,
		Primary: "#b74a23", Secondary: "#d9633b",
		Arrow: true,
	},
	{
		Name:    "aux2",
		CenterX: 770, CenterY: 610,
		OuterTeeth: 60, InnerTeeth: 15,
		OuterRadius: 150, InnerRadius: 140,
		Arms: 6, ArmsStroke: 20, HubRadius: 50,
		Primary: "#777777", Secondary: "#999999",
	},
	{
		Name:    "hours",
		CenterX: 760, CenterY: 452,
		OuterTeeth: 30, InnerTeeth: 10,
		OuterRadius: 100, InnerRadius: 90,
		Arms: 5, ArmsStroke: 20, HubRadius: 25,
		Primary: "#003b6d", Secondary: "#6699cc",
		Arrow: true,
	},
}
