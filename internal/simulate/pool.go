package simulate

import "gonum.org/v1/gonum/mat"

// BufferPool is a bounded free-list of n x 2 sample matrices. Workers check
// a buffer out, fill and read it exclusively, and return it on completion;
// sizing the pool one past the worker count absorbs scheduling slack
// without a worker ever blocking on Acquire.
type BufferPool struct {
	free chan *mat.Dense
}

// NewBufferPool preallocates size buffers of rows x 2.
func NewBufferPool(rows, size int) *BufferPool {
	p := &BufferPool{free: make(chan *mat.Dense, size)}
	for i := 0; i < size; i++ {
		p.free <- mat.NewDense(rows, 2, nil)
	}
	return p
}

// Acquire checks a buffer out, blocking until one is free.
func (p *BufferPool) Acquire() *mat.Dense {
	return <-p.free
}

// Release returns a buffer to the pool.
func (p *BufferPool) Release(buf *mat.Dense) {
	p.free <- buf
}

// Idle reports how many buffers are currently checked in.
func (p *BufferPool) Idle() int {
	return len(p.free)
}

// ScorePool is the score-vector counterpart of BufferPool.
type ScorePool struct {
	free chan []float64
}

// NewScorePool preallocates size vectors of the given length.
func NewScorePool(length, size int) *ScorePool {
	p := &ScorePool{free: make(chan []float64, size)}
	for i := 0; i < size; i++ {
		p.free <- make([]float64, length)
	}
	return p
}

// Acquire checks a score vector out, blocking until one is free.
func (p *ScorePool) Acquire() []float64 {
	return <-p.free
}

// Release returns a score vector to the pool.
func (p *ScorePool) Release(v []float64) {
	p.free <- v
}

// Idle reports how many vectors are currently checked in.
func (p *ScorePool) Idle() int {
	return len(p.free)
}
