package roverfactorytest

// device indexes one slot in the unit record's per-device status map.
type device int

const (
	devVersionInfo device = iota
	devButton0
	devButton1
	devButton2
	devBumperL
	devBumperC
	devBumperR
	devWheelDropL
	devWheelDropR
	devCliffL
	devCliffC
	devCliffR
	devPowerJack
	devPowerDock
	devMotorL
	devMotorR
	devGyro
	devCharging
	devDigitalIn
	devDigitalOut
	devAnalogIn
	devLED1
	devLED2
	devSounds
	devIRDockL
	devIRDockC
	devIRDockR
	numDevices
)

var deviceNames = [numDevices]string{
	"version_info",
	"button_0", "button_1", "button_2",
	"bumper_left", "bumper_center", "bumper_right",
	"wheel_drop_left", "wheel_drop_right",
	"cliff_left", "cliff_center", "cliff_right",
	"power_jack", "power_dock",
	"motor_left", "motor_right",
	"gyroscope",
	"charging",
	"digital_input", "digital_output",
	"analog_input",
	"led_1", "led_2",
	"sounds",
	"ir_dock_left", "ir_dock_center", "ir_dock_right",
}

func (d device) String() string {
	if d >= 0 && d < numDevices {
		return deviceNames[d]
	}
	return "unknown"
}
