package roverfactorytest

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.viam.com/rdk/logging"
)

// motionController issues velocity commands with bounded, cancellable timing.
// At most one delayed stop is armed at a time; arming again cancels and
// replaces the pending one. While a timed move is in flight the sequencer
// suspends step polling, so completion also signals a step advance through
// onDone.
type motionController struct {
	mu       sync.Mutex
	clk      clock.Clock
	actuator Actuator
	logger   logging.Logger
	onDone   func()

	timer  *clock.Timer
	active bool
}

func newMotionController(actuator Actuator, onDone func(), logger logging.Logger) *motionController {
	return &motionController{
		clk:      clock.New(),
		actuator: actuator,
		logger:   logger,
		onDone:   onDone,
	}
}

// Move issues a velocity command immediately and leaves it standing.
func (m *motionController) Move(ctx context.Context, linear, angular float64) {
	if err := m.actuator.SetVelocity(ctx, linear, angular); err != nil {
		m.logger.Warnf("velocity command failed: %v", err)
	}
}

// MoveFor issues a velocity command and arms a one-shot stop after d. A
// pending stop from an earlier call is cancelled first.
func (m *motionController) MoveFor(ctx context.Context, linear, angular float64, d time.Duration) {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = m.clk.AfterFunc(d, m.finish)
	m.active = true
	m.mu.Unlock()

	m.Move(ctx, linear, angular)
}

// Active reports whether a timed move is still in flight.
func (m *motionController) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *motionController) finish() {
	m.mu.Lock()
	m.timer = nil
	m.active = false
	m.mu.Unlock()

	m.Move(context.Background(), 0, 0)
	m.onDone()
}

// Stop cancels any pending timed move and halts the base.
func (m *motionController) Stop(ctx context.Context) {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.active = false
	m.mu.Unlock()

	m.Move(ctx, 0, 0)
}
