package roverfactorytest

import "context"

// Layout of the analog measured value: bits 16..19 flag channels whose
// running minimum crossed the low threshold, bits 24..27 flag channels whose
// running maximum crossed the high one, and the low 16 bits hold the
// indicator pulse countdown in ticks.
const (
	analogMinMaskShift = 16
	analogMaxMaskShift = 24
	analogPulseMask    = 0xFFFF
	analogAllCovered   = 0x0F0F0000
)

// scanAnalogInputs runs once per tick during the analog port step: it flags
// threshold crossings from the running min/max kept by telemetry, pulses the
// boundary indicator LEDs for about a second per crossing, and completes once
// every channel is covered both ways and the countdown has drained.
func (s *sequencer) scanAnalogInputs(ctx context.Context, entry bool) bool {
	if entry {
		s.prompter.Show(PromptInfo, "Analog input test",
			"Turn the analog input screws clockwise and counterclockwise until reaching the limits\n"+
				"The boundary LEDs below light up briefly as each limit is confirmed")

		// All test-board LEDs off before starting.
		s.setOutputs(ctx, [4]bool{}, [4]bool{true, true, true, true})
		s.record.Measured[devAnalogIn] = 0
	}

	v := s.record.Measured[devAnalogIn]

	if v&analogPulseMask > 0 {
		v--
		if v&analogPulseMask == 0 {
			// Countdown finished; indicators off.
			s.setOutputs(ctx, [4]bool{}, [4]bool{true, false, false, true})
		}
	}

	pulseTicks := int64(s.tuning.Frequency)

	for i := 0; i < numAnalogChannels; i++ {
		minMask := int64(1) << (analogMinMaskShift + i)
		maxMask := int64(1) << (analogMaxMaskShift + i)

		if v&minMask == 0 && s.record.Analog[i].Min <= s.tuning.AnalogMinThreshold {
			v |= minMask
			v |= pulseTicks
			s.setOutputs(ctx, [4]bool{true, false, false, false}, [4]bool{true, false, false, false})
		}
		if v&maxMask == 0 && s.record.Analog[i].Max >= s.tuning.AnalogMaxThreshold {
			v |= maxMask
			v |= pulseTicks
			s.setOutputs(ctx, [4]bool{false, false, false, true}, [4]bool{false, false, false, true})
		}
	}

	s.record.Measured[devAnalogIn] = v

	if v == analogAllCovered {
		// Min and max confirmed on every port and the last pulse drained.
		s.logger.Info("Analog input evaluation completed")
		s.record.Verified[devAnalogIn] = true
		s.prompter.Hide()
		s.advanceStep()
		return true
	}
	return false
}
