package pitch

import "github.com/cwbudde/algo-keyshift/dsp/buffer"

// Shifter is the load-then-shift contract shared by pitch shifters.
// Implementations are not required to be safe for concurrent use.
type Shifter interface {
	Load(b *buffer.Buffer) error
	Shift(semitones int) (*buffer.Buffer, error)
}

var _ Shifter = (*Engine)(nil)

// ShiftBuffer loads b into s and shifts it by semitones.
func ShiftBuffer(s Shifter, b *buffer.Buffer, semitones int) (*buffer.Buffer, error) {
	if err := s.Load(b); err != nil {
		return nil, err
	}

	return s.Shift(semitones)
}
