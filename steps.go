package roverfactorytest

// evalStep is one position in the fixed qualification sequence. The sequencer
// only ever moves it forward by one, except that finalizing a unit resets it
// to stepInitialization.
type evalStep int

const (
	stepInitialization evalStep = iota
	stepGetSerialNumber
	stepTestDCAdapter
	stepTestDockingBase
	stepButton0Pressed
	stepButton0Released
	stepButton1Pressed
	stepButton1Released
	stepButton2Pressed
	stepButton2Released
	stepTestLEDs
	stepTestSounds
	stepTestCliffSensors
	stepTestWheelDropSensors
	stepCenterBumperPressed
	stepCenterBumperReleased
	stepPointRightBumper
	stepRightBumperPressed
	stepRightBumperReleased
	stepPointLeftBumper
	stepLeftBumperPressed
	stepLeftBumperReleased
	stepPrepareMotorsTest
	stepTestMotorsForward
	stepTestMotorsBackward
	stepTestMotorsClockwise
	stepTestMotorsCounterCW
	stepEvalMotorsCurrent
	stepMeasureGyroError
	stepMeasureCharging
	stepTestDigitalIO
	stepTestAnalogInput
	stepEvaluationCompleted
)

var stepNames = map[evalStep]string{
	stepInitialization:       "initialization",
	stepGetSerialNumber:      "get_serial_number",
	stepTestDCAdapter:        "test_dc_adapter",
	stepTestDockingBase:      "test_docking_base",
	stepButton0Pressed:       "button_0_pressed",
	stepButton0Released:      "button_0_released",
	stepButton1Pressed:       "button_1_pressed",
	stepButton1Released:      "button_1_released",
	stepButton2Pressed:       "button_2_pressed",
	stepButton2Released:      "button_2_released",
	stepTestLEDs:             "test_leds",
	stepTestSounds:           "test_sounds",
	stepTestCliffSensors:     "test_cliff_sensors",
	stepTestWheelDropSensors: "test_wheel_drop_sensors",
	stepCenterBumperPressed:  "center_bumper_pressed",
	stepCenterBumperReleased: "center_bumper_released",
	stepPointRightBumper:     "point_right_bumper",
	stepRightBumperPressed:   "right_bumper_pressed",
	stepRightBumperReleased:  "right_bumper_released",
	stepPointLeftBumper:      "point_left_bumper",
	stepLeftBumperPressed:    "left_bumper_pressed",
	stepLeftBumperReleased:   "left_bumper_released",
	stepPrepareMotorsTest:    "prepare_motors_test",
	stepTestMotorsForward:    "test_motors_forward",
	stepTestMotorsBackward:   "test_motors_backward",
	stepTestMotorsClockwise:  "test_motors_clockwise",
	stepTestMotorsCounterCW:  "test_motors_countercw",
	stepEvalMotorsCurrent:    "eval_motors_current",
	stepMeasureGyroError:     "measure_gyro_error",
	stepMeasureCharging:      "measure_charging",
	stepTestDigitalIO:        "test_digital_io_ports",
	stepTestAnalogInput:      "test_analog_input_ports",
	stepEvaluationCompleted:  "evaluation_completed",
}

func (s evalStep) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s evalStep) isButtonStep() bool {
	return s >= stepButton0Pressed && s <= stepButton2Released
}

func (s evalStep) isBumperStep() bool {
	return s >= stepCenterBumperPressed && s <= stepLeftBumperReleased
}

func (s evalStep) isMotorStep() bool {
	return s >= stepTestMotorsForward && s <= stepTestMotorsCounterCW
}

// isConfirmationStep reports whether the step resolves through an explicit
// tester accept/reject answer on the two outer function buttons.
func (s evalStep) isConfirmationStep() bool {
	return s == stepTestLEDs || s == stepTestSounds || s == stepTestDigitalIO
}
