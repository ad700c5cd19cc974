package channel

import (
	"context"
	"sync"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("channel")

const defaultBufferSize = 1024

// stream is the shared state behind one Sink/Source pair: an append-only
// chain of nodes plus the settled result. The head node is retained for the
// lifetime of the stream so that every fresh iterator can replay from the
// first event; memory grows with the total number of events ever appended.
type stream[Y, R any] struct {
	mu   sync.Mutex
	head *node[Y, R] // the first node, kept for replay
	tail *node[Y, R] // the next unpublished node; nil once terminated

	buffer    []node[Y, R] // a buffer of nodes to use
	bufferPos int          // the next available node within buffer

	done    bool
	settled chan struct{} // closed once the terminal event is appended
	result  R
	err     error

	listeners []*listener[Y, R]
	draining  bool
}

var (
	_ Sink[any, any]   = (*stream[any, any])(nil)
	_ Source[any, any] = (*stream[any, any])(nil)
)

// New creates a bound Sink/Source pair sharing one event log, with the
// default node buffer size.
func New[Y, R any]() (Sink[Y, R], Source[Y, R]) {
	return NewWithBuffer[Y, R](defaultBufferSize)
}

// NewWithBuffer creates a bound Sink/Source pair with the given node buffer
// size. The buffer size only affects allocation granularity, not capacity.
func NewWithBuffer[Y, R any](bufferSize int) (Sink[Y, R], Source[Y, R]) {
	if bufferSize < 1 {
		panic("invalid buffer size")
	}
	s := &stream[Y, R]{
		buffer:  make([]node[Y, R], bufferSize),
		settled: make(chan struct{}),
	}
	s.head = s.initNextTail()
	return s, s
}

func (s *stream[Y, R]) Next(v Y) {
	s.publish(Event[Y, R]{Kind: KindYield, Value: v})
}

func (s *stream[Y, R]) Complete(r R) {
	s.publish(Event[Y, R]{Kind: KindReturn, Result: r})
}

func (s *stream[Y, R]) Error(err error) {
	s.publish(Event[Y, R]{Kind: KindThrow, Err: err})
}

func (s *stream[Y, R]) publish(ev Event[Y, R]) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		log.Warnw("sink call after terminal event ignored", "kind", ev.Kind)
		return
	}
	pub := s.tail
	if ev.Kind == KindYield {
		pub.makeReady(ev, s.initNextTail())
	} else {
		s.tail = nil
		s.done = true
		s.result = ev.Result
		s.err = ev.Err
		pub.makeReady(ev, nil)
		close(s.settled)
	}
	s.drainLocked()
	s.mu.Unlock()
}

func (s *stream[Y, R]) initNextTail() *node[Y, R] {
	if s.bufferPos >= len(s.buffer) {
		s.buffer = make([]node[Y, R], len(s.buffer))
		s.bufferPos = 0
	}

	newTail := &s.buffer[s.bufferPos]
	s.bufferPos++
	newTail.ready = make(chan struct{})
	s.tail = newTail
	return newTail
}

func (s *stream[Y, R]) Iterate() Iterator[Y, R] {
	return &iterator[Y, R]{s: s, p: s.head}
}

// Result blocks until the terminal event is appended, then reports it the
// same way a full iteration would: the return value on completion, the
// carried error on failure.
func (s *stream[Y, R]) Result(ctx context.Context) (R, error) {
	select {
	case <-s.settled:
		return s.result, s.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
