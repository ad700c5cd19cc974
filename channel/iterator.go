package channel

import (
	"context"
	"iter"
)

type iterator[Y, R any] struct {
	s    *stream[Y, R]
	p    *node[Y, R]
	term error // sticky terminal outcome, nil while the cursor is live
}

var _ Iterator[any, any] = (*iterator[any, any])(nil)

func (it *iterator[Y, R]) Next(ctx context.Context) (Y, error) {
	var zero Y
	if it.term != nil {
		return zero, it.term
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	select {
	case <-it.p.ready:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	ev := it.p.event
	switch ev.Kind {
	case KindYield:
		it.p = it.p.next
		return ev.Value, nil
	case KindThrow:
		it.term = ev.Err
		return zero, ev.Err
	default:
		it.term = ErrDone
		return zero, ErrDone
	}
}

func (it *iterator[Y, R]) Result(ctx context.Context) (R, error) {
	return it.s.Result(ctx)
}

func (it *iterator[Y, R]) Seq(ctx context.Context) iter.Seq2[Y, error] {
	return func(yield func(Y, error) bool) {
		for {
			v, err := it.Next(ctx)
			if err == ErrDone {
				return
			}
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
