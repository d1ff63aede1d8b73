package pitch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-keyshift/dsp/buffer"
	"github.com/cwbudde/algo-keyshift/dsp/core"
	"github.com/cwbudde/algo-keyshift/dsp/interp"
	"github.com/cwbudde/algo-keyshift/dsp/window"
)

// State is the lifecycle state of an Engine.
type State int

const (
	StateUnloaded State = iota
	StateLoaded
	StateShifted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateShifted:
		return "shifted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option mutates engine construction parameters.
type Option func(*engineConfig) error

type engineConfig struct {
	Config

	window   window.Type
	mode     interp.Mode
	observer Observer
	pool     *buffer.Pool
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		Config: DefaultConfig(),
		window: window.TypeHann,
		mode:   interp.ModeLinear,
	}
}

// WithFrameLength sets the nominal frame length in samples.
func WithFrameLength(frameLen int) Option {
	return func(cfg *engineConfig) error {
		if frameLen <= 0 {
			return fmt.Errorf("%w: frame length must be > 0: %d", ErrInvalidConfiguration, frameLen)
		}
		cfg.FrameLen = frameLen
		return nil
	}
}

// WithOverlap sets the frame overlap fraction in [0, 1).
func WithOverlap(overlap float64) Option {
	return func(cfg *engineConfig) error {
		if overlap < 0 || overlap >= 1 || math.IsNaN(overlap) {
			return fmt.Errorf("%w: overlap must be in [0, 1): %f", ErrInvalidConfiguration, overlap)
		}
		cfg.Overlap = overlap
		return nil
	}
}

// WithConfig replaces the framing parameters.
func WithConfig(c Config) Option {
	return func(cfg *engineConfig) error {
		cfg.Config = c
		return nil
	}
}

// WithWindow selects the frame taper. The default is window.TypeHann.
func WithWindow(t window.Type) Option {
	return func(cfg *engineConfig) error {
		if window.Info(t).Name == "" {
			return fmt.Errorf("%w: %w: %d", ErrInvalidConfiguration, window.ErrUnknownType, int(t))
		}
		cfg.window = t
		return nil
	}
}

// WithInterpolation selects the resampling kernel. The default is
// interp.ModeLinear.
func WithInterpolation(m interp.Mode) Option {
	return func(cfg *engineConfig) error {
		if m != interp.ModeLinear && m != interp.ModeHermite {
			return fmt.Errorf("%w: unknown interpolation mode %d", ErrInvalidConfiguration, int(m))
		}
		cfg.mode = m
		return nil
	}
}

// WithObserver installs a callback that receives one Event per stage.
func WithObserver(o Observer) Option {
	return func(cfg *engineConfig) error {
		cfg.observer = o
		return nil
	}
}

// WithPool sets the pool used for synthesis scratch memory. Engines running
// in parallel may share one pool.
func WithPool(p *buffer.Pool) Option {
	return func(cfg *engineConfig) error {
		cfg.pool = p
		return nil
	}
}

// Result describes the last successful Shift.
type Result struct {
	Semitones    int
	Ratio        float64
	Frames       int
	FrameLen     int
	LastFrameLen int
	Hop          int
	SynthLen     int
	SynthHop     int
}

// Engine shifts the pitch of a loaded buffer while keeping its duration.
//
// Configuration is fixed at construction. An Engine is not safe for
// concurrent use; use one Engine per goroutine.
type Engine struct {
	cfg      Config
	hop      int
	window   window.Type
	mode     interp.Mode
	observer Observer
	pool     *buffer.Pool

	state  State
	input  *buffer.Buffer
	frames FrameSet
	output *buffer.Buffer
	result Result
}

// NewEngine creates an engine with default framing (12000-sample frames,
// 75% overlap, Hann window, linear interpolation) and optional overrides.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.pool == nil {
		cfg.pool = buffer.NewPool()
	}

	return &Engine{
		cfg:      cfg.Config,
		hop:      cfg.HopSize(),
		window:   cfg.window,
		mode:     cfg.mode,
		observer: cfg.observer,
		pool:     cfg.pool,
	}, nil
}

// Config returns the framing parameters.
func (e *Engine) Config() Config { return e.cfg }

// HopSize returns the analysis hop in samples.
func (e *Engine) HopSize() int { return e.hop }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Input returns the loaded mono buffer, or nil before Load.
func (e *Engine) Input() *buffer.Buffer { return e.input }

// Output returns the buffer produced by the last Shift, or nil.
func (e *Engine) Output() *buffer.Buffer { return e.output }

// Frames returns the frames cut by the last Shift.
func (e *Engine) Frames() FrameSet { return e.frames }

// Result returns details of the last successful Shift.
func (e *Engine) Result() Result { return e.result }

// Load sets the input buffer. Only channel 0 is used; further channels are
// ignored. The samples are copied. Any previous output is discarded.
func (e *Engine) Load(b *buffer.Buffer) error {
	if b == nil || b.NumChannels() == 0 || b.Len() == 0 {
		return ErrEmptyBuffer
	}

	samples := make([]float64, b.Len())
	copy(samples, b.Channel(0))

	mono, err := buffer.Mono(b.SampleRate(), samples)
	if err != nil {
		return fmt.Errorf("pitch: load: %w", err)
	}

	e.input = mono
	e.frames = FrameSet{}
	e.output = nil
	e.result = Result{}
	e.state = StateLoaded

	return nil
}

// Shift pitch-shifts the loaded buffer by semitones and returns a mono
// buffer of the same length and sample rate. Calling Shift again recomputes
// from the loaded input. On error the engine state is left unchanged.
func (e *Engine) Shift(semitones int) (*buffer.Buffer, error) {
	if e.state == StateUnloaded || e.input == nil {
		return nil, ErrNotLoaded
	}

	src := e.input.Channel(0)
	n := len(src)
	ratio := core.SemitoneRatio(float64(semitones))

	frames, err := SplitFrames(src, e.cfg.FrameLen, e.hop)
	if err != nil {
		return nil, err
	}
	e.notify(Event{
		Stage:        StageFrame,
		Samples:      n,
		Frames:       frames.Len(),
		FrameLen:     e.cfg.FrameLen,
		LastFrameLen: len(frames.Last()),
		Hop:          e.hop,
		Ratio:        ratio,
	})

	windowed, err := WindowFrames(frames, e.window)
	if err != nil {
		return nil, err
	}
	e.notify(Event{
		Stage:        StageWindow,
		Samples:      n,
		Frames:       windowed.Len(),
		FrameLen:     e.cfg.FrameLen,
		LastFrameLen: len(windowed.Last()),
		Hop:          e.hop,
		Ratio:        ratio,
	})

	scratch := e.pool.Get(0)
	synth, err := Synthesize(windowed, ratio, scratch)
	if err != nil {
		e.pool.Put(scratch)
		return nil, err
	}
	e.notify(Event{
		Stage:        StageSynthesize,
		Samples:      len(synth.Samples),
		Frames:       synth.Frames,
		FrameLen:     e.cfg.FrameLen,
		LastFrameLen: len(windowed.Last()),
		Hop:          synth.Hop,
		Ratio:        ratio,
	})

	shifted, err := Resample(synth, n, e.mode)
	e.pool.Put(synth.Samples)
	if err != nil {
		return nil, err
	}
	e.notify(Event{
		Stage:   StageResample,
		Samples: len(shifted),
		Frames:  synth.Frames,
		Hop:     synth.Hop,
		Ratio:   ratio,
	})

	out, err := buffer.Mono(e.input.SampleRate(), shifted)
	if err != nil {
		return nil, fmt.Errorf("pitch: shift: %w", err)
	}

	e.frames = frames
	e.output = out
	e.result = Result{
		Semitones:    semitones,
		Ratio:        ratio,
		Frames:       frames.Len(),
		FrameLen:     e.cfg.FrameLen,
		LastFrameLen: len(frames.Last()),
		Hop:          e.hop,
		SynthLen:     len(synth.Samples),
		SynthHop:     synth.Hop,
	}
	e.state = StateShifted

	return out, nil
}

func (e *Engine) notify(ev Event) {
	if e.observer != nil {
		e.observer(ev)
	}
}
