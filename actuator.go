package roverfactorytest

import "context"

// LightColor is a color for the unit's two status LEDs.
type LightColor int

const (
	LightOff LightColor = iota
	LightGreen
	LightOrange
	LightRed
)

func (c LightColor) String() string {
	switch c {
	case LightGreen:
		return "GREEN"
	case LightOrange:
		return "ORANGE"
	case LightRed:
		return "RED"
	default:
		return "OFF"
	}
}

// SoundID indexes the unit's built-in sound effects.
type SoundID int

const (
	SoundOn SoundID = iota
	SoundOff
	SoundRecharge
	SoundButton
	SoundError
	SoundCleaningStart
	SoundCleaningEnd
)

func (s SoundID) String() string {
	names := [...]string{"ON", "OFF", "RECHARGE", "BUTTON", "ERROR", "CLEANING START", "CLEANING END"}
	if int(s) < len(names) {
		return names[s]
	}
	return "UNKNOWN"
}

// Actuator is the outbound half of the transport: velocity, light pattern,
// sound and digital-output commands addressed to the unit under test.
type Actuator interface {
	// SetVelocity commands the drive base; linear in m/s, angular in rad/s.
	SetVelocity(ctx context.Context, linear, angular float64) error
	// SetLights drives both status LEDs to the given color.
	SetLights(ctx context.Context, color LightColor) error
	// PlaySound plays one of the unit's built-in sounds.
	PlaySound(ctx context.Context, sound SoundID) error
	// SetDigitalOutputs writes the test board's output channels; only
	// channels with a true mask bit are touched.
	SetDigitalOutputs(ctx context.Context, values, mask [4]bool) error
}

// PromptLevel is the severity of a user-facing prompt.
type PromptLevel int

const (
	PromptInfo PromptLevel = iota
	PromptWarn
	PromptError
)

// Prompter shows instructions to the tester. The presentation is opaque to
// the sequencer beyond show and hide.
type Prompter interface {
	Show(level PromptLevel, title, text string)
	Hide()
}

// YawEstimator is the external visual-reference sensor: a camera watching a
// fiducial on the unit. CurrentYaw returns NaN while no fiducial is
// recognized.
type YawEstimator interface {
	Init(ctx context.Context) error
	CurrentYaw(ctx context.Context) float64
}

// ResultSink persists one row per finalized unit. Rows are never rewritten.
type ResultSink interface {
	Append(rec *UnitRecord) error
}
