package roverfactorytest

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.viam.com/rdk/logging"
	goutils "go.viam.com/utils"
)

// sequencer is the control loop and step state machine. It owns the unit
// record and the evaluated ledger; everything else reaches them through
// Tick, OnEvent or Snapshot, all of which take the sequencer lock.
type sequencer struct {
	mu sync.Mutex

	logger   logging.Logger
	actuator Actuator
	prompter Prompter
	sink     ResultSink
	yawRef   YawEstimator
	tuning   Tuning
	motion   *motionController

	step          evalStep
	prevStep      evalStep
	record        *UnitRecord
	evaluated     *ledger
	answerPending bool
	tickCount     int
}

func newSequencer(actuator Actuator, prompter Prompter, sink ResultSink, yawRef YawEstimator, tuning Tuning, logger logging.Logger) *sequencer {
	s := &sequencer{
		logger:    logger,
		actuator:  actuator,
		prompter:  prompter,
		sink:      sink,
		yawRef:    yawRef,
		tuning:    tuning,
		step:      stepInitialization,
		prevStep:  stepInitialization,
		evaluated: newLedger(),
	}
	s.motion = newMotionController(actuator, s.onMotionDone, logger)
	return s
}

// onMotionDone runs when a timed move completes: the pending scripted motion
// ends and the sequence moves on.
func (s *sequencer) onMotionDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanceStep()
}

func (s *sequencer) advanceStep() {
	if s.step < stepEvaluationCompleted {
		s.step++
	}
}

// sleep releases the sequencer lock for the duration so event handlers and
// the motion timer keep running, then reacquires it. Returns false when ctx
// was cancelled first.
func (s *sequencer) sleep(ctx context.Context, d time.Duration) bool {
	s.mu.Unlock()
	defer s.mu.Lock()
	return goutils.SelectContextOrWait(ctx, d)
}

// moveBlocking drives at the given velocity for exactly d, then stops. Used
// only for the short, fixed, uninterruptible gyroscope legs; it deliberately
// stalls the step loop while events keep flowing.
func (s *sequencer) moveBlocking(ctx context.Context, linear, angular float64, d time.Duration) bool {
	s.motion.Move(ctx, linear, angular)
	ok := s.sleep(ctx, d)
	s.motion.Move(ctx, 0, 0)
	return ok
}

// Tick runs once per control period. It no-ops without a unit under test or
// while a scripted motion is in flight, then runs the current step's action
// with an entry-edge flag so actions can tell first invocation from
// steady-state polling.
func (s *sequencer) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickCount++

	if s.record == nil {
		return
	}
	if s.motion.Active() {
		return
	}

	entry := s.prevStep != s.step
	s.prevStep = s.step

	switch s.step {
	case stepInitialization:
		s.advanceStep()

	case stepGetSerialNumber:
		if s.record.Verified[devVersionInfo] {
			s.advanceStep()
		} else if n := int(s.tuning.Frequency * 2); n > 0 && s.tickCount%n == 0 {
			s.logger.Debug("Waiting for serial number...")
		}

	case stepTestDCAdapter:
		if entry {
			s.prompter.Show(PromptInfo, "DC adapter plug test",
				fmt.Sprintf("Plug and unplug the adapter to the unit %d time(s)", s.tuning.PowerPlugRoundTrips))
		}

	case stepTestDockingBase:
		if entry {
			s.prompter.Show(PromptInfo, "Docking base plug test",
				fmt.Sprintf("Plug and unplug the unit to its base %d time(s)", s.tuning.PowerPlugRoundTrips))
		}

	case stepButton0Pressed:
		if entry {
			s.prompter.Show(PromptInfo, "Function buttons test",
				"Press the three function buttons sequentially from left to right")
		}

	case stepTestLEDs:
		s.testLEDs(ctx, entry)

	case stepTestSounds:
		s.testSounds(ctx, entry)

	case stepTestCliffSensors:
		if entry {
			s.prompter.Show(PromptInfo, "Cliff sensors test",
				fmt.Sprintf("Raise and lower the unit %d time(s) to test cliff sensors", s.tuning.CliffRoundTrips))
		}

	case stepTestWheelDropSensors:
		if entry {
			s.prompter.Show(PromptInfo, "Wheel drop sensors test",
				fmt.Sprintf("Raise and lower the unit %d time(s) to test wheel drop sensors", s.tuning.WheelDropRoundTrips))
		}

	case stepCenterBumperPressed:
		if entry {
			s.prompter.Show(PromptInfo, "Bumper sensors test",
				"Place the unit facing a wall; after a while it will move forward")
			if !s.sleep(ctx, s.tuning.BumperLaunchDelay) {
				return
			}
			if s.record == nil || s.step != stepCenterBumperPressed {
				return
			}
			s.motion.Move(ctx, s.tuning.BumperSpeed, 0)
		}

	case stepPointRightBumper:
		s.motion.MoveFor(ctx, 0, +s.tuning.BumperTurnSpeed, turnDuration(math.Pi/4.0, s.tuning.BumperTurnSpeed))

	case stepRightBumperPressed:
		s.motion.Move(ctx, s.tuning.BumperSpeed, 0)

	case stepPointLeftBumper:
		s.motion.MoveFor(ctx, 0, -s.tuning.BumperTurnSpeed, turnDuration(math.Pi/2.0, s.tuning.BumperTurnSpeed))

	case stepLeftBumperPressed:
		s.motion.Move(ctx, s.tuning.BumperSpeed, 0)

	case stepPrepareMotorsTest:
		if entry {
			s.prompter.Show(PromptInfo, "Motors current test", "Now the unit will move forward...")
		}
		// -45 degrees, back parallel to the wall
		s.motion.MoveFor(ctx, 0, -s.tuning.BumperTurnSpeed, turnDuration(math.Pi/4.0, s.tuning.BumperTurnSpeed))

	case stepTestMotorsForward:
		s.motion.MoveFor(ctx, +s.tuning.MotorSpeed, 0, travelDuration(s.tuning.MotorDistance, s.tuning.MotorSpeed))

	case stepTestMotorsBackward:
		s.motion.MoveFor(ctx, -s.tuning.MotorSpeed, 0, travelDuration(s.tuning.MotorDistance, s.tuning.MotorSpeed))
		s.prompter.Show(PromptInfo, "Motors current test", "Now the unit will move backward...")

	case stepTestMotorsClockwise:
		s.motion.MoveFor(ctx, 0, -s.tuning.MotorTurnSpeed, turnDuration(s.tuning.MotorTurnAngle, s.tuning.MotorTurnSpeed))
		s.prompter.Show(PromptInfo, "Motors current test", "...and spin to evaluate the motors")

	case stepTestMotorsCounterCW:
		s.motion.MoveFor(ctx, 0, +s.tuning.MotorTurnSpeed, turnDuration(s.tuning.MotorTurnAngle, s.tuning.MotorTurnSpeed))

	case stepEvalMotorsCurrent:
		s.prompter.Hide()
		s.evalMotorsCurrent()
		s.advanceStep()

	case stepMeasureGyroError:
		s.testGyro(ctx, entry)
		if s.record != nil && s.step == stepMeasureGyroError {
			s.advanceStep()
		}

	case stepMeasureCharging:
		// Advance even on failure: staying here would let the next telemetry
		// frame overwrite the measured delta.
		s.measureCharge(ctx, entry)
		if s.record != nil && s.step == stepMeasureCharging {
			s.advanceStep()
		}

	case stepTestDigitalIO:
		if entry {
			s.prompter.Show(PromptInfo, "Digital I/O test",
				"Press the four digital input buttons sequentially, from DI-1 to DI-4\n"+
					"The digital output LED below should switch on and off as the result")
			s.record.Measured[devDigitalIn] = 0
			s.setOutputs(ctx, [4]bool{}, [4]bool{true, true, true, true})
		}

	case stepTestAnalogInput:
		s.scanAnalogInputs(ctx, entry)

	case stepEvaluationCompleted:
		verdict := "FAILED"
		if s.record.AllOK() {
			verdict = "PASS"
		}
		s.prompter.Show(PromptInfo, "Evaluation result",
			"Evaluation completed. Overall result: "+verdict)
		s.finalize()
	}
}

func (s *sequencer) setOutputs(ctx context.Context, values, mask [4]bool) {
	if err := s.actuator.SetDigitalOutputs(ctx, values, mask); err != nil {
		s.logger.Warnf("digital output command failed: %v", err)
	}
}

func turnDuration(angle, speed float64) time.Duration {
	return time.Duration(angle / speed * float64(time.Second))
}

func travelDuration(distance, speed float64) time.Duration {
	return time.Duration(distance / speed * float64(time.Second))
}

// OnEvent dispatches an inbound transport event to the protocol for its
// device family. Safe to call at any point relative to the control loop.
func (s *sequencer) OnEvent(ctx context.Context, ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := ev.(*LifecycleEvent); !ok && s.record == nil {
		return
	}

	switch e := ev.(type) {
	case *LifecycleEvent:
		s.handleLifecycle(e)
	case *Identification:
		s.handleIdentification(e)
	case *CoreTelemetry:
		s.handleCoreTelemetry(e)
	case *ButtonEvent:
		s.handleButton(e)
	case *BumperEvent:
		s.handleBumper(ctx, e)
	case *WheelDropEvent:
		s.handleWheelDrop(e)
	case *CliffEvent:
		s.handleCliff(e)
	case *PowerEvent:
		s.handlePower(e)
	case *DigitalInputEvent:
		s.handleDigitalInput(ctx, e)
	case *DockIREvent:
		s.handleDockIR(e)
	case *OrientationEvent:
		s.record.Yaw[4] = e.Yaw
	case *DiagnosticsEvent:
		s.handleDiagnostics(e)
	case *HealthEvent:
		s.handleHealth(e)
	default:
		s.logger.Debugf("unrecognized event %T; ignoring", ev)
	}
}

func (s *sequencer) handleLifecycle(e *LifecycleEvent) {
	if e.Online {
		if s.record != nil {
			s.logger.Warnf("New unit connected while %s is still under evaluation; saving...", s.record.Serial)
			s.finalize()
		} else {
			s.logger.Info("New unit connected")
		}
		s.step = stepInitialization
		s.prevStep = stepInitialization
		s.record = newUnitRecord(s.evaluated.size())
		return
	}

	if s.record == nil {
		s.logger.Warn("Unit offline event received, but no unit is under evaluation")
		return
	}
	if s.record.AllOK() {
		s.logger.Infof("Unit %s evaluation successfully completed", s.record.Serial)
	} else {
		s.logger.Infof("Unit %s disconnected without finishing the evaluation", s.record.Serial)
	}
	s.finalize()
}

func (s *sequencer) handleIdentification(e *Identification) {
	if s.record.Verified[devVersionInfo] {
		if e.Serial == s.record.Serial {
			// Fine but a bit weird; the driver should not resend this.
			s.logger.Debugf("Identification received more than once for %s", s.record.Serial)
			return
		}
		// The driver can take long enough to republish that the serial lands
		// after a new unit came online. Overwrite, but loudly.
		old := s.record.Serial
		s.record.Serial = e.Serial
		s.logger.Warnf("Overwriting unit identity: old SN: %s / new SN: %s", old, e.Serial)
	} else {
		s.record.Serial = e.Serial
	}

	// Re-evaluation is refused, but only against this session's ledger.
	if s.evaluated.has(s.record.Serial) {
		s.prompter.Show(PromptError, "Known unit",
			fmt.Sprintf("Unit %s has been previously evaluated. Proceed with a new unit", s.record.Serial))
		s.logger.Errorf("Unit %s has been previously evaluated; discarding", s.record.Serial)
		s.record = nil
		return
	}

	s.record.Hardware = e.Hardware
	s.record.Firmware = e.Firmware
	s.record.Software = e.Software
	s.record.Verified[devVersionInfo] = true
	s.record.Measured[devVersionInfo] = 1

	s.logger.Infof("Serial: %s. Hardware/firmware/software version: %s", s.record.Serial, s.record.VersionString())
}

func (s *sequencer) handleCoreTelemetry(e *CoreTelemetry) {
	if s.step.isMotorStep() {
		if e.MotorCurrents[0] > s.record.Measured[devMotorL] {
			s.record.Measured[devMotorL] = e.MotorCurrents[0]
		}
		if e.MotorCurrents[1] > s.record.Measured[devMotorR] {
			s.record.Measured[devMotorR] = e.MotorCurrents[1]
		}
		return
	}

	if s.step == stepMeasureCharging && e.Charging {
		s.record.Measured[devCharging] = e.Battery
		return
	}

	if s.step == stepTestAnalogInput {
		for i, v := range e.AnalogIn {
			if i >= numAnalogChannels {
				break
			}
			ch := &s.record.Analog[i]
			ch.Delta = v - ch.Last
			ch.Last = v
			if v < ch.Min {
				ch.Min = v
			}
			if v > ch.Max {
				ch.Max = v
			}
		}
	}
}

// handleButton implements both the ordered-sequence protocol for the three
// function buttons and, while a confirmation is pending, the accept/reject
// answer channel that supersedes it.
func (s *sequencer) handleButton(e *ButtonEvent) {
	if s.step.isConfirmationStep() && s.answerPending && !e.Pressed &&
		(e.Button == 0 || e.Button == 2) {
		s.resolveConfirmation(e.Button == 0)
		return
	}

	if s.record.buttonsOK() {
		return
	}
	if !s.step.isButtonStep() {
		// Not evaluating buttons; assume an accidental hit.
		s.logger.Debugf("Button %d %s; ignoring", e.Button, pressedStr(e.Pressed))
		return
	}

	offset := int(s.step - stepButton0Pressed)
	expectedButton := offset / 2
	expectedPressed := offset%2 == 0

	if e.Button != expectedButton || e.Pressed != expectedPressed {
		s.logger.Warnf("Unexpected button event: %d %s", e.Button, pressedStr(e.Pressed))
		return
	}

	s.logger.Infof("Button %d %s, as expected", e.Button, pressedStr(e.Pressed))
	if !e.Pressed {
		s.record.Verified[devButton0+device(e.Button)] = true
	}
	if s.step == stepButton2Released {
		s.logger.Info("Buttons evaluation completed")
	}
	s.advanceStep()
}

// resolveConfirmation applies the tester's accept/reject answer for the
// device pattern under confirmation and moves on.
func (s *sequencer) resolveConfirmation(pass bool) {
	var name string
	switch s.step {
	case stepTestLEDs:
		s.record.Verified[devLED1] = pass
		s.record.Verified[devLED2] = pass
		name = "LEDs"
	case stepTestSounds:
		s.record.Verified[devSounds] = pass
		name = "Sounds"
	case stepTestDigitalIO:
		s.record.Verified[devDigitalIn] = pass
		s.record.Verified[devDigitalOut] = pass
		name = "Digital I/O"
	}

	if pass {
		s.logger.Infof("%s evaluation completed", name)
	} else {
		s.logger.Warnf("%s didn't pass the test", name)
	}

	// Disable further input so answers don't accumulate.
	s.answerPending = false
	s.prompter.Hide()
	s.advanceStep()
}

func (s *sequencer) handleBumper(ctx context.Context, e *BumperEvent) {
	if s.record.bumpersOK() {
		return
	}
	if !s.step.isBumperStep() {
		s.logger.Debugf("Bumper %d accidental hit; ignoring", e.Bumper)
		return
	}

	// Three slots per bumper: pressed, released, point at the next one.
	offset := int(s.step - stepCenterBumperPressed)
	expectedBumper := (offset/3 + 1) % 3
	expectedPressed := offset%3 == 0

	if e.Bumper != expectedBumper || e.Pressed != expectedPressed {
		s.logger.Warnf("Unexpected bumper event: %d %s", e.Bumper, pressedStr(e.Pressed))
		return
	}

	s.logger.Infof("Bumper %d %s, as expected", e.Bumper, pressedStr(e.Pressed))
	dev := devBumperL + device(e.Bumper)
	s.record.Measured[dev]++

	if e.Pressed {
		// Back away from the wall; the motion timer advances past the
		// release slot once the reverse leg completes.
		s.motion.MoveFor(ctx, -s.tuning.BumperSpeed, 0, s.tuning.BumperBackoffTime)
		s.advanceStep()
	} else {
		s.record.Verified[dev] = true
		s.prompter.Hide()
	}

	if s.step == stepLeftBumperReleased {
		s.logger.Info("Bumper evaluation completed")
	}
}

func (s *sequencer) handleWheelDrop(e *WheelDropEvent) {
	if s.step != stepTestWheelDropSensors {
		return
	}
	dev := devWheelDropL
	if e.Wheel == 1 {
		dev = devWheelDropR
	}
	if s.record.Verified[dev] {
		return
	}

	// The counter's parity encodes the expected half of the drop/raise pair.
	if e.Dropped != (s.record.Measured[dev]%2 == 0) {
		s.logger.Warnf("Unexpected wheel drop event: %d, %v", e.Wheel, e.Dropped)
		return
	}

	s.logger.Infof("%s wheel %s, as expected", wheelStr(e.Wheel), droppedStr(e.Dropped))
	s.record.Measured[dev]++

	if s.record.Measured[dev] >= s.tuning.WheelDropRoundTrips*2 {
		s.logger.Infof("%s wheel drop evaluation completed", wheelStr(e.Wheel))
		s.record.Verified[dev] = true
		if s.record.wheelDropOK() {
			s.advanceStep()
		}
	}
}

func (s *sequencer) handleCliff(e *CliffEvent) {
	if s.step != stepTestCliffSensors {
		return
	}
	dev := devCliffL + device(e.Sensor)
	if e.Sensor < 0 || e.Sensor > 2 || s.record.Verified[dev] {
		return
	}

	if e.Cliff != (s.record.Measured[dev]%2 == 0) {
		s.logger.Warnf("Unexpected cliff sensor event: %d, %v", e.Sensor, e.Cliff)
		return
	}

	s.logger.Infof("%s cliff sensor reports %s, as expected", dev, cliffStr(e.Cliff))
	s.record.Measured[dev]++

	if s.record.Measured[dev] >= s.tuning.CliffRoundTrips*2 {
		s.logger.Infof("%s cliff sensor evaluation completed", dev)
		s.record.Verified[dev] = true
		if s.record.cliffsOK() {
			s.advanceStep()
		}
	}
}

func (s *sequencer) handlePower(e *PowerEvent) {
	if s.record.powerOK() {
		return
	}
	if s.step != stepTestDCAdapter && s.step != stepTestDockingBase {
		// Either an irrelevant charger event, the tester not following the
		// protocol, or a bug on our side.
		switch e.Kind {
		case PowerChargeCompleted, PowerBatteryLow, PowerBatteryCritical:
		default:
			s.logger.Warnf("Power event %d while current step is %s", e.Kind, s.step)
		}
		return
	}

	dev := devPowerJack
	if s.step == stepTestDockingBase {
		dev = devPowerDock
	}
	if s.record.Verified[dev] {
		return
	}

	// Matches when the unit is plugged to the source under evaluation and we
	// expect an engage (even counter), or unplugged and we expect a release
	// (odd counter).
	plugMatch := (e.Kind == PowerPluggedToAdapter && s.step == stepTestDCAdapter) ||
		(e.Kind == PowerPluggedToDock && s.step == stepTestDockingBase)
	match := (plugMatch && s.record.Measured[dev]%2 == 0) ||
		(e.Kind == PowerUnplugged && s.record.Measured[dev]%2 == 1)
	if !match {
		s.logger.Warnf("Unexpected power event: %d", e.Kind)
		return
	}

	s.logger.Infof("%s %s, as expected", powerSourceStr(dev), pluggedStr(e.Kind != PowerUnplugged))
	s.record.Measured[dev]++

	if s.record.Measured[dev] >= s.tuning.PowerPlugRoundTrips*2 {
		s.logger.Infof("%s plugging evaluation completed", powerSourceStr(dev))
		s.record.Verified[dev] = true
		s.advanceStep()
	}
}

// handleDigitalInput mirrors each pressed test-board button onto the output
// LED above it; input and output are then judged together by the tester's
// confirmation once all four bits have been seen.
func (s *sequencer) handleDigitalInput(ctx context.Context, e *DigitalInputEvent) {
	if s.step != stepTestDigitalIO || s.record.Verified[devDigitalIn] {
		return
	}

	for i, v := range e.Values {
		if !v {
			s.record.Measured[devDigitalIn] |= 1 << i
			var values, mask [4]bool
			values[i] = true
			mask[i] = true
			s.setOutputs(ctx, values, mask)
			return
		}
	}

	// Nothing pressed: all output LEDs off.
	s.setOutputs(ctx, [4]bool{}, [4]bool{true, true, true, true})

	if s.record.Measured[devDigitalIn] == 0b1111 {
		s.prompter.Show(PromptInfo, "Digital I/O test",
			"Press the left function button if the LEDs blinked as expected or the right otherwise")
		s.answerPending = true
	}
}

func (s *sequencer) handleDockIR(e *DockIREvent) {
	if s.record.irDockOK() {
		return
	}

	// Readings are collected at any step.
	for i, dev := range []device{devIRDockL, devIRDockC, devIRDockR} {
		if e.Signals[i] > 0 {
			s.record.Measured[dev] = e.Signals[i]
			s.record.Verified[dev] = true
		}
	}

	if s.record.irDockOK() {
		s.logger.Infof("Docking ir sensor evaluation completed: %d/%d/%d",
			s.record.Measured[devIRDockL], s.record.Measured[devIRDockC], s.record.Measured[devIRDockR])
	}
}

func (s *sequencer) handleDiagnostics(e *DiagnosticsEvent) {
	var b strings.Builder
	for _, entry := range e.Entries {
		fmt.Fprintf(&b, "Device: %s\nLevel: %d\nMessage: %s\n", entry.Device, entry.Level, entry.Message)
		for k, v := range entry.Values {
			fmt.Fprintf(&b, "   %s: %s\n", k, v)
		}
	}
	s.record.Diagnostics = b.String()
}

func (s *sequencer) handleHealth(e *HealthEvent) {
	if s.record.Health == HealthOK {
		return
	}
	s.record.Health = e.Level

	if e.Level == HealthOK {
		s.logger.Infof("Unit %s diagnostics received with OK status", s.record.Serial)
		return
	}
	s.logger.Warnf("Unit %s diagnostics received with %s status", s.record.Serial, e.Level)
	if s.record.Diagnostics != "" {
		s.logger.Warnf("Full diagnostics:\n%s", s.record.Diagnostics)
	}
}

func (s *sequencer) evalMotorsCurrent() {
	s.record.Verified[devMotorL] = s.record.Measured[devMotorL] <= s.tuning.MotorMaxCurrent
	s.record.Verified[devMotorR] = s.record.Measured[devMotorR] <= s.tuning.MotorMaxCurrent
	if s.record.motorsOK() {
		s.logger.Infof("Motors current evaluation completed (%d, %d)",
			s.record.Measured[devMotorL], s.record.Measured[devMotorR])
	} else {
		s.logger.Warnf("Motors current too high! (%d, %d)",
			s.record.Measured[devMotorL], s.record.Measured[devMotorR])
	}
}

// finalize persists the record, appends its serial to the ledger, and resets
// for the next unit. Ownership of the record transfers to the sink.
func (s *sequencer) finalize() {
	if s.record == nil {
		return
	}
	s.logger.Infof("Saving results for %s", s.record.Serial)
	if err := s.sink.Append(s.record); err != nil {
		s.logger.Errorf("saving results for %s: %v", s.record.Serial, err)
	}
	s.evaluated.add(s.record)
	s.record = nil
	s.answerPending = false
	s.step = stepInitialization
	s.prevStep = stepInitialization
}

// Snapshot returns the sequencer state for the status sensor.
func (s *sequencer) Snapshot() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := map[string]interface{}{
		"step":            s.step.String(),
		"unit_present":    s.record != nil,
		"units_evaluated": s.evaluated.size(),
		"answer_pending":  s.answerPending,
	}
	if s.record != nil {
		verified := 0
		for _, ok := range s.record.Verified {
			if ok {
				verified++
			}
		}
		st["serial"] = s.record.Serial
		st["devices_verified"] = verified
		st["all_ok"] = s.record.AllOK()
		st["health"] = s.record.Health.String()
	}
	return st
}

func pressedStr(p bool) string {
	if p {
		return "pressed"
	}
	return "released"
}

func wheelStr(w int) string {
	if w == 1 {
		return "Right"
	}
	return "Left"
}

func droppedStr(d bool) string {
	if d {
		return "dropped"
	}
	return "raised"
}

func cliffStr(c bool) string {
	if c {
		return "cliff"
	}
	return "no cliff"
}

func pluggedStr(p bool) string {
	if p {
		return "plugged"
	}
	return "unplugged"
}

func powerSourceStr(dev device) string {
	if dev == devPowerJack {
		return "Adapter"
	}
	return "Docking base"
}
