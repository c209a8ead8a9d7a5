package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrLaneClosed is returned when pushing to a closed lane.
var ErrLaneClosed = errors.New("lane closed")

// Lane is the bounded input queue of one worker.
type Lane struct {
	index int
	jobs  chan *Job
	load  atomic.Int64

	mu     sync.RWMutex
	closed bool
}

// NewLane returns a lane buffering up to depth jobs.
func NewLane(index, depth int) *Lane {
	if depth < 1 {
		depth = 1
	}
	return &Lane{index: index, jobs: make(chan *Job, depth)}
}

// Index returns the lane's position within its stage.
func (l *Lane) Index() int {
	return l.index
}

// Load returns the number of jobs queued on or running in the lane.
func (l *Lane) Load() int64 {
	return l.load.Load()
}

// Push enqueues job, blocking while the lane is full.
func (l *Lane) Push(ctx context.Context, job *Job) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrLaneClosed
	}
	l.load.Add(1)
	select {
	case l.jobs <- job:
		return nil
	case <-ctx.Done():
		l.load.Add(-1)
		return ctx.Err()
	}
}

// Jobs returns the receive side of the lane.
func (l *Lane) Jobs() <-chan *Job {
	return l.jobs
}

// Done marks one received job as finished.
func (l *Lane) Done() {
	l.load.Add(-1)
}

// Close stops the lane from accepting jobs. Workers drain what is queued.
func (l *Lane) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.jobs)
}
