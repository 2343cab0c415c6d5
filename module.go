package roverfactorytest

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/rdk/components/base"
	"go.viam.com/rdk/components/board"
	genericcomp "go.viam.com/rdk/components/generic"
	"go.viam.com/rdk/components/movementsensor"
	toggleswitch "go.viam.com/rdk/components/switch"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	generic "go.viam.com/rdk/services/generic"
	rdkutils "go.viam.com/rdk/utils"
	goutils "go.viam.com/utils"
)

var Controller = resource.NewModel("viamdemo", "rover-factory-test", "controller")

func init() {
	resource.RegisterService(generic.API, Controller,
		resource.Registration[resource.Resource, *Config]{
			Constructor: newFactoryTestController,
		},
	)
}

type Config struct {
	Base        string `json:"base"`
	Board       string `json:"board"`
	ResultsFile string `json:"results_file"`

	// Optional actuation and sensing channels. The sequence still runs
	// without them; the affected subtests just fail their devices.
	LeftLED         string `json:"left_led,omitempty"`
	RightLED        string `json:"right_led,omitempty"`
	Sounder         string `json:"sounder,omitempty"`
	VisualReference string `json:"visual_reference,omitempty"`

	// Output pin names on the board, DO-1 to DO-4.
	OutputPins []string `json:"output_pins,omitempty"`

	FrequencyHz      float64 `json:"frequency_hz,omitempty"`
	ChargeTimeoutSec int     `json:"charge_timeout_sec,omitempty"`
}

func (cfg *Config) Validate(path string) ([]string, []string, error) {
	if cfg.Base == "" {
		return nil, nil, fmt.Errorf("%s: base is required", path)
	}
	if cfg.Board == "" {
		return nil, nil, fmt.Errorf("%s: board is required", path)
	}
	if cfg.ResultsFile == "" {
		return nil, nil, fmt.Errorf("%s: results_file is required", path)
	}
	if len(cfg.OutputPins) != 0 && len(cfg.OutputPins) != 4 {
		return nil, nil, fmt.Errorf("%s: output_pins needs exactly 4 entries", path)
	}

	deps := []string{cfg.Base, cfg.Board}
	for _, opt := range []string{cfg.LeftLED, cfg.RightLED, cfg.Sounder, cfg.VisualReference} {
		if opt != "" {
			deps = append(deps, opt)
		}
	}
	return deps, nil, nil
}

func defaultOutputPins() []string {
	return []string{"do1", "do2", "do3", "do4"}
}

type factoryTestController struct {
	resource.AlwaysRebuild

	name   resource.Name
	logger logging.Logger
	cfg    *Config

	seq    *sequencer
	prompt *prompt
	sink   *csvResultSink
	period time.Duration

	cancelCtx  context.Context
	cancelFunc func()
	workers    sync.WaitGroup
}

func newFactoryTestController(ctx context.Context, deps resource.Dependencies, rawConf resource.Config, logger logging.Logger) (resource.Resource, error) {
	conf, err := resource.NativeConfig[*Config](rawConf)
	if err != nil {
		return nil, err
	}

	return NewController(ctx, deps, rawConf.ResourceName(), conf, logger)
}

func NewController(ctx context.Context, deps resource.Dependencies, name resource.Name, conf *Config, logger logging.Logger) (resource.Resource, error) {
	b, err := base.FromDependencies(deps, conf.Base)
	if err != nil {
		return nil, errors.Wrap(err, "getting base")
	}

	brd, err := board.FromDependencies(deps, conf.Board)
	if err != nil {
		return nil, errors.Wrap(err, "getting board")
	}

	pinNames := conf.OutputPins
	if len(pinNames) == 0 {
		pinNames = defaultOutputPins()
	}
	var pins [4]board.GPIOPin
	for i, pinName := range pinNames {
		pin, err := brd.GPIOPinByName(pinName)
		if err != nil {
			return nil, errors.Wrapf(err, "getting output pin %s", pinName)
		}
		pins[i] = pin
	}

	act := &viamActuator{base: b, outputs: pins, logger: logger}

	if conf.LeftLED != "" {
		act.leftLED, err = toggleswitch.FromDependencies(deps, conf.LeftLED)
		if err != nil {
			return nil, errors.Wrap(err, "getting left LED switch")
		}
	}
	if conf.RightLED != "" {
		act.rightLED, err = toggleswitch.FromDependencies(deps, conf.RightLED)
		if err != nil {
			return nil, errors.Wrap(err, "getting right LED switch")
		}
	}
	if conf.Sounder != "" {
		snd, ok := deps[resource.NewName(genericcomp.API, conf.Sounder)]
		if !ok {
			return nil, fmt.Errorf("sounder %q not found in dependencies", conf.Sounder)
		}
		act.sounder = snd
	}

	yawRef := &visualReference{}
	if conf.VisualReference != "" {
		yawRef.ms, err = movementsensor.FromDependencies(deps, conf.VisualReference)
		if err != nil {
			return nil, errors.Wrap(err, "getting visual reference sensor")
		}
	}

	sink, err := newCSVResultSink(conf.ResultsFile)
	if err != nil {
		return nil, err
	}

	tuning := defaultTuning()
	if conf.FrequencyHz > 0 {
		tuning.Frequency = conf.FrequencyHz
	}
	if conf.ChargeTimeoutSec > 0 {
		tuning.ChargeTimeout = time.Duration(conf.ChargeTimeoutSec) * time.Second
	}

	pr := &prompt{logger: logger}

	cancelCtx, cancelFunc := context.WithCancel(context.Background())

	c := &factoryTestController{
		name:       name,
		logger:     logger,
		cfg:        conf,
		seq:        newSequencer(act, pr, sink, yawRef, tuning, logger),
		prompt:     pr,
		sink:       sink,
		period:     time.Duration(float64(time.Second) / tuning.Frequency),
		cancelCtx:  cancelCtx,
		cancelFunc: cancelFunc,
	}

	c.workers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer c.workers.Done()
		c.controlLoop(cancelCtx)
	})

	return c, nil
}

func (c *factoryTestController) controlLoop(ctx context.Context) {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.seq.Tick(ctx)
		}
	}
}

func (c *factoryTestController) Name() resource.Name {
	return c.name
}

func (c *factoryTestController) DoCommand(ctx context.Context, cmd map[string]interface{}) (map[string]interface{}, error) {
	command, ok := cmd["command"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'command' field")
	}

	switch command {
	case "event":
		ev, err := decodeEvent(cmd)
		if err != nil {
			return nil, err
		}
		c.seq.OnEvent(ctx, ev)
		return map[string]interface{}{"status": "accepted"}, nil
	case "status":
		return c.GetState(), nil
	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}
}

// GetState exposes the sequencer and prompt state for the status sensor.
func (c *factoryTestController) GetState() map[string]interface{} {
	state := c.seq.Snapshot()
	title, text, showing := c.prompt.current()
	state["prompt_showing"] = showing
	if showing {
		state["prompt_title"] = title
		state["prompt_text"] = text
	}
	return state
}

func (c *factoryTestController) Close(context.Context) error {
	c.cancelFunc()
	c.workers.Wait()
	return c.sink.Close()
}

// viamActuator drives the real components: the drive base, the LED
// switches, the sounder and the test fixture's output pins.
type viamActuator struct {
	base     base.Base
	leftLED  toggleswitch.Switch
	rightLED toggleswitch.Switch
	sounder  resource.Resource
	outputs  [4]board.GPIOPin
	logger   logging.Logger
}

func (a *viamActuator) SetVelocity(ctx context.Context, linear, angular float64) error {
	return a.base.SetVelocity(ctx,
		r3.Vector{Y: linear * 1000}, // m/s to mm/s
		r3.Vector{Z: rdkutils.RadToDeg(angular)},
		nil)
}

func (a *viamActuator) SetLights(ctx context.Context, color LightColor) error {
	if a.leftLED == nil || a.rightLED == nil {
		a.logger.Debugf("no LED switches configured; dropping light command %s", color)
		return nil
	}
	if err := a.leftLED.SetPosition(ctx, uint32(color), nil); err != nil {
		return err
	}
	return a.rightLED.SetPosition(ctx, uint32(color), nil)
}

func (a *viamActuator) PlaySound(ctx context.Context, sound SoundID) error {
	if a.sounder == nil {
		a.logger.Debugf("no sounder configured; dropping sound command %s", sound)
		return nil
	}
	_, err := a.sounder.DoCommand(ctx, map[string]interface{}{
		"command": "play",
		"sound":   int(sound),
	})
	return err
}

func (a *viamActuator) SetDigitalOutputs(ctx context.Context, values, mask [4]bool) error {
	for i, pin := range a.outputs {
		if !mask[i] || pin == nil {
			continue
		}
		if err := pin.Set(ctx, values[i], nil); err != nil {
			return err
		}
	}
	return nil
}

// prompt surfaces tester instructions through the log and mirrors the
// currently shown message into GetState for the operator UI.
type prompt struct {
	mu      sync.Mutex
	logger  logging.Logger
	showing bool
	title   string
	text    string
}

func (p *prompt) Show(level PromptLevel, title, text string) {
	p.mu.Lock()
	changed := !p.showing || p.title != title || p.text != text
	p.showing = true
	p.title = title
	p.text = text
	p.mu.Unlock()

	if !changed {
		return
	}
	switch level {
	case PromptError:
		p.logger.Errorf("[%s] %s", title, text)
	case PromptWarn:
		p.logger.Warnf("[%s] %s", title, text)
	default:
		p.logger.Infof("[%s] %s", title, text)
	}
}

func (p *prompt) Hide() {
	p.mu.Lock()
	p.showing = false
	p.mu.Unlock()
}

func (p *prompt) current() (title, text string, showing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title, p.text, p.showing
}

// visualReference reads the fiducial yaw estimate from a camera-backed
// movement sensor. Reports NaN while no fiducial is recognized.
type visualReference struct {
	ms movementsensor.MovementSensor
}

func (v *visualReference) Init(ctx context.Context) error {
	if v.ms == nil {
		return errors.New("no visual reference sensor configured")
	}
	return nil
}

func (v *visualReference) CurrentYaw(ctx context.Context) float64 {
	if v.ms == nil {
		return math.NaN()
	}
	o, err := v.ms.Orientation(ctx, nil)
	if err != nil {
		return math.NaN()
	}
	return o.EulerAngles().Yaw
}
