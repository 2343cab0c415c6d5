package roverfactorytest

import (
	"context"
	"fmt"
)

// measureCharge runs the timed-sample charging subtest: wait (bounded) for
// the charger to engage, let the reading settle, then require the battery
// level to climb by at least MinChargeDelta over the measurement window.
//
// Called with the sequencer lock held; waits suspend the step loop through
// s.sleep while telemetry keeps updating the charging reading. Returns false
// on abort, leaving the device unverified.
func (s *sequencer) measureCharge(ctx context.Context, entry bool) bool {
	if entry {
		s.prompter.Show(PromptInfo, "Charge measurement",
			fmt.Sprintf("Plug the adapter to the unit and wait %s", s.tuning.ChargeWindow))
	}

	var waited int64
	for s.record.Measured[devCharging] == 0 {
		if !s.sleep(ctx, s.tuning.ChargePoll) {
			return false
		}
		if s.record == nil || s.step != stepMeasureCharging {
			return false
		}
		waited += int64(s.tuning.ChargePoll)
		if waited >= int64(s.tuning.ChargeTimeout) {
			s.prompter.Hide()
			s.logger.Errorf("Adapter not plugged after %s; aborting charge measurement", s.tuning.ChargeTimeout)
			return false
		}
	}
	s.prompter.Hide()

	if !s.sleep(ctx, s.tuning.ChargeSettle) {
		return false
	}
	if s.record == nil || s.step != stepMeasureCharging {
		return false
	}
	v1 := s.record.Measured[devCharging]

	if !s.sleep(ctx, s.tuning.ChargeWindow) {
		return false
	}
	if s.record == nil || s.step != stepMeasureCharging {
		return false
	}
	v2 := s.record.Measured[devCharging]

	s.record.Measured[devCharging] = v2 - v1

	if s.record.Measured[devCharging] >= s.tuning.MinChargeDelta {
		s.logger.Infof("Charge measurement: %.1f V in %s",
			float64(s.record.Measured[devCharging])/10.0, s.tuning.ChargeWindow)
		s.record.Verified[devCharging] = true
	} else {
		s.logger.Warnf("Charge measurement: %.1f V in %s",
			float64(s.record.Measured[devCharging])/10.0, s.tuning.ChargeWindow)
	}

	return true
}
