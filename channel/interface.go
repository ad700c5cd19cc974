// Package channel implements a single-producer, multi-consumer replayable
// event channel. A producer pushes yield values through a Sink and finishes
// the channel exactly once with a return value or an error; any number of
// consumers read the full event history through the Source, each at its own
// pace. Event values are opaque to the channel and no copies are made:
// consumers should not mutate consumed values.
package channel

import (
	"context"
	"errors"
	"iter"
)

// Kind discriminates the three event variants.
type Kind uint8

const (
	// KindYield is a produced item; the payload is in Event.Value.
	KindYield Kind = iota
	// KindReturn ends the channel with a final result in Event.Result.
	KindReturn
	// KindThrow ends the channel with a failure in Event.Err.
	KindThrow
)

// Event is one entry in a channel's history: a yielded value, the terminal
// return value, or the terminal error. Exactly one payload field is set,
// according to Kind. A channel holds at most one terminal event and it is
// always the last.
type Event[Y, R any] struct {
	Kind   Kind
	Value  Y
	Result R
	Err    error
}

// Sink is the write side of a channel. Appends can be made concurrently with
// consumer reads, but not with other appends: external synchronization is
// required if there are multiple concurrent producers.
type Sink[Y, R any] interface {
	// Next appends a yielded value. After the channel has been completed
	// or failed it does nothing except log a warning; it never panics.
	Next(Y)

	// Complete appends the terminal return value and settles the channel's
	// result. Only the first terminal event takes effect.
	Complete(R)

	// Error appends the terminal error and settles the channel's result.
	// Only the first terminal event takes effect.
	Error(error)
}

// Source is the read side of a channel. A Source is effectively immutable
// and can be shared; all of its methods may be used concurrently with
// producer appends.
type Source[Y, R any] interface {
	// Iterate returns a fresh Iterator positioned at the very first event.
	// Every call replays the full history; independent iterators do not
	// interfere with one another.
	Iterate() Iterator[Y, R]

	// Subscribe registers fn to receive every event, starting with a replay
	// of the history already appended, then every later event, in append
	// order. fn is invoked for the lifetime of the channel; there is no
	// unsubscribe. A panicking fn is recovered and logged without
	// disturbing other subscribers.
	Subscribe(fn func(Event[Y, R]))

	// OnYield is Subscribe filtered to yielded values.
	OnYield(fn func(Y))

	// OnReturn is Subscribe filtered to the terminal return value.
	OnReturn(fn func(R))

	// OnThrow is Subscribe filtered to the terminal error.
	OnThrow(fn func(error))

	// Result blocks until the channel settles and returns the terminal
	// return value, or the terminal error, or ctx.Err() if ctx is done
	// first. It does not consume or require iteration, and every call
	// observes the same settlement.
	Result(ctx context.Context) (R, error)
}

// ErrDone is returned by Iterator.Next when the channel has completed.
var ErrDone = errors.New("no more items in channel")

// Iterator is a stateful cursor over a channel's history. Unlike Sources,
// Iterators should not be shared across goroutines.
type Iterator[Y, R any] interface {
	// Next returns the next yielded value.
	// - Returns (<value>, nil) for each yield event, in append order.
	// - Returns (zero, ErrDone) once the channel completes.
	// - Returns (zero, <err>) once the channel fails with err.
	// - Returns (zero, ctx.Err()) if the context is done.
	// Blocks until one of these outcomes occurs. Terminal outcomes are
	// sticky: further calls keep returning the same result.
	Next(ctx context.Context) (Y, error)

	// Result is a shorthand for the source's Result.
	Result(ctx context.Context) (R, error)

	// Seq adapts the remaining items to a range-over-func sequence.
	// Iteration stops silently at ErrDone; any other terminal error is
	// yielded once with a zero value.
	Seq(ctx context.Context) iter.Seq2[Y, error]
}
