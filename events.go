package roverfactorytest

// Event is an inbound transport message. The rig-side bridge posts these to
// the controller, which dispatches them to the sequencer at any point
// relative to the control loop.
type Event interface {
	isEvent()
}

// Identification announces the unit's serial and version triple. The driver
// republishes it when a new unit comes online.
type Identification struct {
	Serial   string
	Hardware string
	Firmware string
	Software string
}

// CoreTelemetry is the bulk sensor frame: per-motor current draw, charger
// state, battery level in tenths of volt, and raw analog port samples in
// millivolts.
type CoreTelemetry struct {
	MotorCurrents [2]int64
	Charging      bool
	Battery       int64
	AnalogIn      []int
}

// ButtonEvent reports one of the three indexed function buttons changing
// state.
type ButtonEvent struct {
	Button  int
	Pressed bool
}

// BumperEvent reports a bumper press or release. Bumpers are indexed
// left=0, center=1, right=2.
type BumperEvent struct {
	Bumper  int
	Pressed bool
}

// WheelDropEvent reports a wheel leaving or regaining the floor. Wheels are
// indexed left=0, right=1.
type WheelDropEvent struct {
	Wheel   int
	Dropped bool
}

// CliffEvent reports a cliff sensor seeing a drop or the floor again.
// Sensors are indexed left=0, center=1, right=2.
type CliffEvent struct {
	Sensor int
	Cliff  bool
}

// PowerEventKind enumerates power system transitions.
type PowerEventKind int

const (
	PowerUnplugged PowerEventKind = iota
	PowerPluggedToAdapter
	PowerPluggedToDock
	PowerChargeCompleted
	PowerBatteryLow
	PowerBatteryCritical
)

// PowerEvent reports a power system transition.
type PowerEvent struct {
	Kind PowerEventKind
}

// DigitalInputEvent carries the level of the four digital input channels.
// Inputs are pulled high; a pressed test-board button reads false.
type DigitalInputEvent struct {
	Values [4]bool
}

// DockIREvent carries the three docking-beacon receiver signal strengths.
type DockIREvent struct {
	Signals [3]int64
}

// OrientationEvent carries the latest onboard gyro yaw in radians.
type OrientationEvent struct {
	Yaw float64
}

// DiagnosticEntry is one free-form device report within a diagnostics frame.
type DiagnosticEntry struct {
	Device  string
	Level   int
	Message string
	Values  map[string]string
}

// DiagnosticsEvent aggregates the unit's self-reported diagnostics.
type DiagnosticsEvent struct {
	Entries []DiagnosticEntry
}

// HealthEvent is the unit's top-level health verdict.
type HealthEvent struct {
	Level HealthState
}

// LifecycleEvent signals a unit coming online or going offline.
type LifecycleEvent struct {
	Online bool
}

func (*Identification) isEvent()    {}
func (*CoreTelemetry) isEvent()     {}
func (*ButtonEvent) isEvent()       {}
func (*BumperEvent) isEvent()       {}
func (*WheelDropEvent) isEvent()    {}
func (*CliffEvent) isEvent()        {}
func (*PowerEvent) isEvent()        {}
func (*DigitalInputEvent) isEvent() {}
func (*DockIREvent) isEvent()       {}
func (*OrientationEvent) isEvent()  {}
func (*DiagnosticsEvent) isEvent()  {}
func (*HealthEvent) isEvent()       {}
func (*LifecycleEvent) isEvent()    {}
