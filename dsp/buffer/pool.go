package buffer

import "sync"

// Pool recycles float64 scratch slices across processing calls.
// It is safe for concurrent use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return new([]float64)
			},
		},
	}
}

// Get returns a zeroed slice of the requested length.
// Callers must return it via Put when done and must not retain it afterwards.
func (p *Pool) Get(length int) []float64 {
	if length < 0 {
		length = 0
	}

	sp := p.pool.Get().(*[]float64)
	s := *sp

	if cap(s) < length {
		s = make([]float64, length)
	} else {
		s = s[:length]
		clear(s)
	}

	return s
}

// Put returns s to the pool for reuse.
func (p *Pool) Put(s []float64) {
	if cap(s) == 0 {
		return
	}

	s = s[:0]
	p.pool.Put(&s)
}
