package roverfactorytest

import (
	"context"
	"testing"
	"time"
)

// runCharge drives measureCharge under the sequencer lock the way Tick does.
func runCharge(s *sequencer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = stepMeasureCharging
	return s.measureCharge(context.Background(), true)
}

func TestChargeSubtest(t *testing.T) {
	ctx := context.Background()

	t.Run("battery climb within window verifies charging", func(t *testing.T) {
		s, _, _, _ := newTestSequencer(t)
		bringOnline(s, "SN-1")
		s.tuning.ChargeSettle = 20 * time.Millisecond
		s.tuning.ChargeWindow = 60 * time.Millisecond
		s.tuning.ChargeTimeout = 500 * time.Millisecond

		// Telemetry arrives while the subtest waits: 40 tenths of volt at the
		// settle sample, 55 by the end of the window.
		go func() {
			s.OnEvent(ctx, &CoreTelemetry{Charging: true, Battery: 40})
			time.Sleep(40 * time.Millisecond)
			s.OnEvent(ctx, &CoreTelemetry{Charging: true, Battery: 55})
		}()

		if !runCharge(s) {
			t.Fatal("subtest should complete")
		}
		if !s.record.Verified[devCharging] {
			t.Error("charging should be verified")
		}
		if s.record.Measured[devCharging] != 15 {
			t.Errorf("measured delta = %d, want 15", s.record.Measured[devCharging])
		}
	})

	t.Run("flat battery fails charging", func(t *testing.T) {
		s, _, _, _ := newTestSequencer(t)
		bringOnline(s, "SN-1")
		s.tuning.ChargeSettle = 5 * time.Millisecond
		s.tuning.ChargeWindow = 20 * time.Millisecond
		s.tuning.ChargeTimeout = 500 * time.Millisecond

		s.record.Measured[devCharging] = 40 // charger already engaged, no climb

		if !runCharge(s) {
			t.Fatal("subtest should complete")
		}
		if s.record.Verified[devCharging] {
			t.Error("charging must not be verified without a climb")
		}
		if s.record.Measured[devCharging] != 0 {
			t.Errorf("measured delta = %d, want 0", s.record.Measured[devCharging])
		}
	})

	t.Run("charger never engages times out", func(t *testing.T) {
		s, _, prompter, _ := newTestSequencer(t)
		bringOnline(s, "SN-1")
		s.tuning.ChargeTimeout = 20 * time.Millisecond

		start := time.Now()
		if runCharge(s) {
			t.Fatal("subtest should abort on timeout")
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("timeout took %s", elapsed)
		}
		if s.record.Verified[devCharging] {
			t.Error("charging must stay unverified")
		}
		if prompter.showing {
			t.Error("prompt should be hidden after timeout")
		}
	})
}
