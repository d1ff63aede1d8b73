package pitch

import "fmt"

// Stage identifies a processing step of Engine.Shift.
type Stage int

const (
	StageFrame Stage = iota
	StageWindow
	StageSynthesize
	StageResample
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case StageFrame:
		return "frame"
	case StageWindow:
		return "window"
	case StageSynthesize:
		return "synthesize"
	case StageResample:
		return "resample"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Event reports the outcome of one stage.
type Event struct {
	Stage Stage
	// Samples is the length of the stage output.
	Samples      int
	Frames       int
	FrameLen     int
	LastFrameLen int
	Hop          int
	Ratio        float64
}

// Observer receives progress events. It is called synchronously from the
// goroutine running Shift.
type Observer func(Event)
