package roverfactorytest

import "context"

// The LED, sound and digital I/O patterns cannot be sensed automatically.
// The step actuates the pattern continuously, and from the second pass on
// arms the confirmation gate: the tester answers with the left (accept) or
// right (reject) function button, which handleButton resolves.

func (s *sequencer) testLEDs(ctx context.Context, entry bool) {
	// Require tester input only after the first full pattern pass.
	s.answerPending = !entry

	text := "You should see both LEDs blinking green, orange and red alternately\n"
	if !entry {
		text += "Press the left function button if so or the right otherwise\n"
	}

	for _, c := range []LightColor{LightGreen, LightOrange, LightRed} {
		if s.step != stepTestLEDs {
			return
		}
		s.prompter.Show(PromptInfo, "LEDs test", text+c.String())
		if err := s.actuator.SetLights(ctx, c); err != nil {
			s.logger.Warnf("light command failed: %v", err)
		}
		if !s.sleep(ctx, s.tuning.LightOnTime) {
			return
		}
		if s.step != stepTestLEDs {
			return
		}
		if err := s.actuator.SetLights(ctx, LightOff); err != nil {
			s.logger.Warnf("light command failed: %v", err)
		}
		if !s.sleep(ctx, s.tuning.LightOffTime) {
			return
		}
	}
}

func (s *sequencer) testSounds(ctx context.Context, entry bool) {
	s.answerPending = !entry

	text := "You should hear the 'On', 'Off', 'Recharge', 'Button', 'Error', " +
		"'Cleaning Start' and 'Cleaning End' sounds continuously\n"
	if !entry {
		text += "Press the left function button if so or the right otherwise\n"
	}

	for id := SoundOn; id <= SoundCleaningEnd; id++ {
		if s.step != stepTestSounds {
			return
		}
		s.prompter.Show(PromptInfo, "Sounds test", text+id.String())
		if err := s.actuator.PlaySound(ctx, id); err != nil {
			s.logger.Warnf("sound command failed: %v", err)
		}
		if !s.sleep(ctx, s.tuning.SoundInterval) {
			return
		}
	}
}
