package roverfactorytest

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/rdk/components/base"
	"go.viam.com/rdk/components/board"
	toggleswitch "go.viam.com/rdk/components/switch"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"go.viam.com/rdk/testutils/inject"
)

// stubBase records SetVelocity calls; every other Base method is unused here.
type stubBase struct {
	base.Base
	mu    sync.Mutex
	calls [][2]r3.Vector
}

func (b *stubBase) SetVelocity(ctx context.Context, linear, angular r3.Vector, extra map[string]interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, [2]r3.Vector{linear, angular})
	return nil
}

type stubPin struct {
	board.GPIOPin
	mu   sync.Mutex
	sets []bool
}

func (p *stubPin) Set(ctx context.Context, high bool, extra map[string]interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sets = append(p.sets, high)
	return nil
}

type stubBoard struct {
	board.Board
	pins map[string]*stubPin
}

func (b *stubBoard) GPIOPinByName(name string) (board.GPIOPin, error) {
	pin, ok := b.pins[name]
	if !ok {
		pin = &stubPin{}
		b.pins[name] = pin
	}
	return pin, nil
}

func newStubBoard() *stubBoard {
	return &stubBoard{pins: map[string]*stubPin{}}
}

func controllerDeps() (resource.Dependencies, *Config, *stubBase) {
	b := &stubBase{}
	cfg := &Config{
		Base:        "test-base",
		Board:       "test-board",
		LeftLED:     "led-left",
		RightLED:    "led-right",
		ResultsFile: "", // filled in per test
	}
	deps := resource.Dependencies{
		resource.NewName(base.API, "test-base"):         b,
		resource.NewName(board.API, "test-board"):       newStubBoard(),
		resource.NewName(toggleswitch.API, "led-left"):  inject.NewSwitch("led-left"),
		resource.NewName(toggleswitch.API, "led-right"): inject.NewSwitch("led-right"),
	}
	return deps, cfg, b
}

func TestConfigValidate(t *testing.T) {
	t.Run("returns dependencies for valid config", func(t *testing.T) {
		cfg := &Config{
			Base:        "my-base",
			Board:       "my-board",
			ResultsFile: "/tmp/results.csv",
			LeftLED:     "led-a",
			Sounder:     "beeper",
		}
		deps, _, err := cfg.Validate("test")
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if len(deps) != 4 {
			t.Errorf("expected 4 dependencies, got %d: %v", len(deps), deps)
		}
		found := map[string]bool{}
		for _, dep := range deps {
			found[dep] = true
		}
		for _, want := range []string{"my-base", "my-board", "led-a", "beeper"} {
			if !found[want] {
				t.Errorf("missing %s in dependencies", want)
			}
		}
	})

	t.Run("errors when base missing", func(t *testing.T) {
		cfg := &Config{Board: "my-board", ResultsFile: "/tmp/results.csv"}
		if _, _, err := cfg.Validate("test"); err == nil {
			t.Error("expected error for missing base")
		}
	})

	t.Run("errors when board missing", func(t *testing.T) {
		cfg := &Config{Base: "my-base", ResultsFile: "/tmp/results.csv"}
		if _, _, err := cfg.Validate("test"); err == nil {
			t.Error("expected error for missing board")
		}
	})

	t.Run("errors when results file missing", func(t *testing.T) {
		cfg := &Config{Base: "my-base", Board: "my-board"}
		if _, _, err := cfg.Validate("test"); err == nil {
			t.Error("expected error for missing results_file")
		}
	})

	t.Run("errors on wrong output pin count", func(t *testing.T) {
		cfg := &Config{
			Base: "my-base", Board: "my-board", ResultsFile: "/tmp/results.csv",
			OutputPins: []string{"do1", "do2"},
		}
		if _, _, err := cfg.Validate("test"); err == nil {
			t.Error("expected error for 2 output pins")
		}
	})
}

func TestNewController(t *testing.T) {
	logger := logging.NewTestLogger(t)
	name := resource.NewName(resource.APINamespaceRDK.WithServiceType("generic"), "test")
	deps, cfg, _ := controllerDeps()
	cfg.ResultsFile = filepath.Join(t.TempDir(), "results.csv")

	ctrl, err := NewController(context.Background(), deps, name, cfg, logger)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	defer ctrl.Close(context.Background())

	if ctrl.Name() != name {
		t.Errorf("Name() = %v, want %v", ctrl.Name(), name)
	}
}

func TestDoCommand(t *testing.T) {
	newCtrl := func(t *testing.T) *factoryTestController {
		t.Helper()
		logger := logging.NewTestLogger(t)
		name := resource.NewName(resource.APINamespaceRDK.WithServiceType("generic"), "test")
		deps, cfg, _ := controllerDeps()
		cfg.ResultsFile = filepath.Join(t.TempDir(), "results.csv")
		ctrl, err := NewController(context.Background(), deps, name, cfg, logger)
		if err != nil {
			t.Fatalf("NewController failed: %v", err)
		}
		t.Cleanup(func() { ctrl.Close(context.Background()) })
		return ctrl.(*factoryTestController)
	}

	t.Run("missing command errors", func(t *testing.T) {
		ctrl := newCtrl(t)
		if _, err := ctrl.DoCommand(context.Background(), map[string]interface{}{}); err == nil {
			t.Error("expected error for missing command")
		}
	})

	t.Run("unknown command errors", func(t *testing.T) {
		ctrl := newCtrl(t)
		_, err := ctrl.DoCommand(context.Background(), map[string]interface{}{"command": "nope"})
		if err == nil {
			t.Error("expected error for unknown command")
		}
	})

	t.Run("status reports sequencer state", func(t *testing.T) {
		ctrl := newCtrl(t)
		st, err := ctrl.DoCommand(context.Background(), map[string]interface{}{"command": "status"})
		if err != nil {
			t.Fatalf("status failed: %v", err)
		}
		if st["unit_present"] != false {
			t.Errorf("unit_present = %v, want false", st["unit_present"])
		}
		if st["step"] != "initialization" {
			t.Errorf("step = %v, want initialization", st["step"])
		}
	})

	t.Run("event command dispatches to the sequencer", func(t *testing.T) {
		ctrl := newCtrl(t)
		_, err := ctrl.DoCommand(context.Background(), map[string]interface{}{
			"command": "event",
			"event":   "lifecycle",
			"online":  true,
		})
		if err != nil {
			t.Fatalf("event failed: %v", err)
		}

		st := ctrl.GetState()
		if st["unit_present"] != true {
			t.Errorf("unit_present = %v, want true after lifecycle online", st["unit_present"])
		}
	})

	t.Run("malformed event errors", func(t *testing.T) {
		ctrl := newCtrl(t)
		_, err := ctrl.DoCommand(context.Background(), map[string]interface{}{
			"command": "event",
			"event":   "dock_ir",
			"signals": []interface{}{1.0},
		})
		if err == nil {
			t.Error("expected error for malformed dock_ir event")
		}
	})
}

func TestViamActuatorVelocityUnits(t *testing.T) {
	b := &stubBase{}
	act := &viamActuator{base: b, logger: logging.NewTestLogger(t)}

	if err := act.SetVelocity(context.Background(), 0.2, 1.0); err != nil {
		t.Fatalf("SetVelocity failed: %v", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(b.calls))
	}
	lin, ang := b.calls[0][0], b.calls[0][1]
	if lin.Y != 200 { // 0.2 m/s -> 200 mm/s
		t.Errorf("linear Y = %v mm/s, want 200", lin.Y)
	}
	if ang.Z < 57.2 || ang.Z > 57.4 { // 1 rad/s -> ~57.3 deg/s
		t.Errorf("angular Z = %v deg/s, want ~57.3", ang.Z)
	}
}

func TestViamActuatorOptionalChannels(t *testing.T) {
	// Without LEDs or a sounder the commands are dropped, not errors.
	act := &viamActuator{logger: logging.NewTestLogger(t)}
	if err := act.SetLights(context.Background(), LightGreen); err != nil {
		t.Errorf("SetLights should no-op: %v", err)
	}
	if err := act.PlaySound(context.Background(), SoundOn); err != nil {
		t.Errorf("PlaySound should no-op: %v", err)
	}
	if err := act.SetDigitalOutputs(context.Background(), [4]bool{true}, [4]bool{true}); err != nil {
		t.Errorf("SetDigitalOutputs should skip missing pins: %v", err)
	}
}

func TestViamActuatorLights(t *testing.T) {
	var leftCalls, rightCalls []uint32

	left := inject.NewSwitch("led-left")
	left.SetPositionFunc = func(ctx context.Context, position uint32, extra map[string]interface{}) error {
		leftCalls = append(leftCalls, position)
		return nil
	}
	right := inject.NewSwitch("led-right")
	right.SetPositionFunc = func(ctx context.Context, position uint32, extra map[string]interface{}) error {
		rightCalls = append(rightCalls, position)
		return nil
	}

	act := &viamActuator{leftLED: left, rightLED: right, logger: logging.NewTestLogger(t)}
	if err := act.SetLights(context.Background(), LightRed); err != nil {
		t.Fatalf("SetLights failed: %v", err)
	}

	if len(leftCalls) != 1 || leftCalls[0] != uint32(LightRed) {
		t.Errorf("left LED calls = %v, want [%d]", leftCalls, LightRed)
	}
	if len(rightCalls) != 1 || rightCalls[0] != uint32(LightRed) {
		t.Errorf("right LED calls = %v, want [%d]", rightCalls, LightRed)
	}
}

func TestPromptMirrorsState(t *testing.T) {
	p := &prompt{logger: logging.NewTestLogger(t)}

	p.Show(PromptInfo, "Test", "do the thing")
	title, text, showing := p.current()
	if !showing || title != "Test" || text != "do the thing" {
		t.Errorf("current() = %q, %q, %v", title, text, showing)
	}

	p.Hide()
	if _, _, showing := p.current(); showing {
		t.Error("prompt should be hidden")
	}
}
