package roverfactorytest

import (
	"context"
	"math"
)

// wrapPi maps an angle difference into (-pi, pi].
func wrapPi(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// gyroVerdict compares the wrapped onboard/reference differences of the two
// rotation legs against the tolerance.
func gyroVerdict(diff1, diff2, tolerance float64) bool {
	return math.Abs(diff1-diff2) <= tolerance
}

// testGyro cross-checks the onboard gyroscope against the external visual
// reference: sample the reference yaw, run one full clockwise and one full
// counter-clockwise turn, sample again, and require the two wrapped
// onboard-minus-reference differences to agree within tolerance.
//
// Called with the sequencer lock held; the rotation legs and the reference
// polling suspend the step loop through s.sleep. Returns false when the
// subtest aborted (reference unavailable), leaving the device unverified.
func (s *sequencer) testGyro(ctx context.Context, entry bool) bool {
	if entry {
		s.prompter.Show(PromptInfo, "Gyroscope test",
			"Place the unit with the fiducial right below the camera")
	}

	if err := s.yawRef.Init(ctx); err != nil {
		s.logger.Errorf("Gyroscope test initialization failed; aborting test: %v", err)
		s.prompter.Hide()
		return false
	}

	legDuration := turnDuration(s.tuning.GyroTurnAngle, s.tuning.GyroTurnSpeed)

	for leg := 0; leg < 2; leg++ {
		refYaw := math.NaN()
		for attempt := 0; attempt < s.tuning.YawPollAttempts; attempt++ {
			if !s.sleep(ctx, s.tuning.YawPollInterval) {
				return false
			}
			if s.record == nil || s.step != stepMeasureGyroError {
				return false
			}
			// Negated: the camera looks at the unit.
			refYaw = -s.yawRef.CurrentYaw(ctx)
			if !math.IsNaN(refYaw) {
				s.prompter.Hide()
				break
			}
			s.prompter.Show(PromptWarn, "Gyroscope test",
				"Cannot recognize the fiducial; please place the unit right below the camera")
		}

		if math.IsNaN(refYaw) {
			s.logger.Errorf("Cannot recognize the fiducial after %d attempts; gyroscope test aborted",
				s.tuning.YawPollAttempts)
			s.prompter.Hide()
			return false
		}

		diff := wrapPi(s.record.Yaw[4] - refYaw)
		s.logger.Infof("Gyroscope test %d result: onboard yaw = %.3f / reference yaw = %.3f / diff = %.3f",
			leg+1, s.record.Yaw[4], refYaw, diff)

		s.record.Yaw[leg*2] = s.record.Yaw[4]
		s.record.Yaw[leg*2+1] = diff

		if leg == 0 {
			if !s.moveBlocking(ctx, 0, +s.tuning.GyroTurnSpeed, legDuration) {
				return false
			}
			if !s.moveBlocking(ctx, 0, -s.tuning.GyroTurnSpeed, legDuration) {
				return false
			}
			if s.record == nil || s.step != stepMeasureGyroError {
				return false
			}
		}

		s.record.Measured[devGyro]++
	}

	diff1, diff2 := s.record.Yaw[1], s.record.Yaw[3]
	if gyroVerdict(diff1, diff2, s.tuning.GyroMaxDiff) {
		s.logger.Infof("Gyroscope testing successful: diff 1 = %.3f / diff 2 = %.3f", diff1, diff2)
		s.record.Verified[devGyro] = true
	} else {
		s.logger.Warnf("Gyroscope testing failed: diff 1 = %.3f / diff 2 = %.3f", diff1, diff2)
	}

	s.prompter.Hide()
	return true
}
