package roverfactorytest

import (
	"context"
	"testing"
)

func TestAnalogScan(t *testing.T) {
	ctx := context.Background()

	t.Run("one crossing sets one mask bit", func(t *testing.T) {
		s, _, _, _ := newTestSequencer(t)
		bringOnline(s, "SN-1")
		s.step = stepTestAnalogInput

		s.scanAnalogInputs(ctx, true)

		s.record.Analog[1].Min = 1 // below the low threshold
		s.scanAnalogInputs(ctx, false)

		v := s.record.Measured[devAnalogIn]
		if v&(1<<(analogMinMaskShift+1)) == 0 {
			t.Error("channel 1 min bit should be set")
		}
		if v&analogPulseMask == 0 {
			t.Error("indicator pulse countdown should be armed")
		}
		if s.record.Verified[devAnalogIn] {
			t.Error("one crossing must not complete the scan")
		}
	})

	t.Run("all crossings plus drained countdown complete the scan", func(t *testing.T) {
		s, _, prompter, _ := newTestSequencer(t)
		bringOnline(s, "SN-1")
		s.step = stepTestAnalogInput

		s.scanAnalogInputs(ctx, true)
		for i := 0; i < numAnalogChannels; i++ {
			s.record.Analog[i].Min = 0
			s.record.Analog[i].Max = 4095
		}

		// One tick flags all eight crossings, then the pulse countdown drains
		// one tick at a time.
		limit := 2*int(s.tuning.Frequency) + 10
		for i := 0; i < limit && !s.record.Verified[devAnalogIn]; i++ {
			s.scanAnalogInputs(ctx, false)
		}

		if !s.record.Verified[devAnalogIn] {
			t.Fatal("scan should complete once every limit is confirmed")
		}
		if s.record.Measured[devAnalogIn] != analogAllCovered {
			t.Errorf("measured = %#x, want %#x", s.record.Measured[devAnalogIn], int64(analogAllCovered))
		}
		if s.step != stepEvaluationCompleted {
			t.Errorf("step = %s, want evaluation_completed", s.step)
		}
		if prompter.showing {
			t.Error("prompt should be hidden on completion")
		}
	})

	t.Run("borderline values do not cross", func(t *testing.T) {
		s, _, _, _ := newTestSequencer(t)
		bringOnline(s, "SN-1")
		s.step = stepTestAnalogInput

		s.scanAnalogInputs(ctx, true)
		s.record.Analog[0].Min = s.tuning.AnalogMinThreshold + 1
		s.record.Analog[0].Max = s.tuning.AnalogMaxThreshold - 1
		s.scanAnalogInputs(ctx, false)

		if s.record.Measured[devAnalogIn] != 0 {
			t.Errorf("measured = %#x, want 0", s.record.Measured[devAnalogIn])
		}
	})
}
