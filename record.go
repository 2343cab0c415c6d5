package roverfactorytest

import "math"

const numAnalogChannels = 4

// HealthState is the top-level diagnostic verdict reported by the unit.
type HealthState int

const (
	HealthOK HealthState = iota
	HealthWarn
	HealthError
)

func (h HealthState) String() string {
	switch h {
	case HealthOK:
		return "OK"
	case HealthWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// AnalogChannel tracks one analog input port across the evaluation.
type AnalogChannel struct {
	Last  int
	Min   int
	Max   int
	Delta int
}

// UnitRecord is the mutable state of the unit currently under test. It is
// owned by the sequencer and mutated only by its event handlers and step
// actions.
//
// Measured values are device specific: an engage/release counter for the
// parity-tracked sensors, a peak current for the motors, a voltage delta for
// charging, a bitmask of confirmed thresholds for the analog ports. For the
// parity-tracked sensors the counter's parity always encodes which half of an
// engage/release pair is expected next.
type UnitRecord struct {
	Seq      int
	Serial   string
	Hardware string
	Firmware string
	Software string

	Verified [numDevices]bool
	Measured [numDevices]int64

	Analog [numAnalogChannels]AnalogChannel

	// Yaw holds two (onboard yaw, wrapped difference) pairs captured by the
	// gyroscope subtest at [0..3], plus the latest raw onboard yaw at [4].
	Yaw [5]float64

	Diagnostics string
	Health      HealthState
}

func newUnitRecord(seq int) *UnitRecord {
	r := &UnitRecord{Seq: seq, Health: HealthError}
	for i := range r.Analog {
		r.Analog[i].Min = math.MaxInt16
	}
	return r
}

func (r *UnitRecord) ok(devs ...device) bool {
	for _, d := range devs {
		if !r.Verified[d] {
			return false
		}
	}
	return true
}

func (r *UnitRecord) buttonsOK() bool { return r.ok(devButton0, devButton1, devButton2) }

func (r *UnitRecord) bumpersOK() bool { return r.ok(devBumperL, devBumperC, devBumperR) }

func (r *UnitRecord) wheelDropOK() bool { return r.ok(devWheelDropL, devWheelDropR) }

func (r *UnitRecord) cliffsOK() bool { return r.ok(devCliffL, devCliffC, devCliffR) }

func (r *UnitRecord) powerOK() bool { return r.ok(devPowerJack, devPowerDock) }

func (r *UnitRecord) motorsOK() bool { return r.ok(devMotorL, devMotorR) }

func (r *UnitRecord) irDockOK() bool { return r.ok(devIRDockL, devIRDockC, devIRDockR) }

// AllOK reports the aggregate verdict: pass if and only if every device slot
// has been verified.
func (r *UnitRecord) AllOK() bool {
	for d := device(0); d < numDevices; d++ {
		if !r.Verified[d] {
			return false
		}
	}
	return true
}

// VersionString formats the hardware/firmware/software triple.
func (r *UnitRecord) VersionString() string {
	return r.Hardware + "/" + r.Firmware + "/" + r.Software
}
