package channel

// listener is one registered Subscribe callback plus its private replay
// cursor into the shared node chain.
type listener[Y, R any] struct {
	fn  func(Event[Y, R])
	pos *node[Y, R] // the next undelivered node; nil once the terminal event was delivered
}

// call invokes the callback, isolating panics so that one misbehaving
// subscriber cannot disturb delivery to the others.
func (l *listener[Y, R]) call(ev Event[Y, R]) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("subscriber callback panicked", "error", NewPanicError(r))
		}
	}()
	l.fn(ev)
}

func (s *stream[Y, R]) Subscribe(fn func(Event[Y, R])) {
	s.mu.Lock()
	s.listeners = append(s.listeners, &listener[Y, R]{fn: fn, pos: s.head})
	s.drainLocked()
	s.mu.Unlock()
}

func (s *stream[Y, R]) OnYield(fn func(Y)) {
	s.Subscribe(func(ev Event[Y, R]) {
		if ev.Kind == KindYield {
			fn(ev.Value)
		}
	})
}

func (s *stream[Y, R]) OnReturn(fn func(R)) {
	s.Subscribe(func(ev Event[Y, R]) {
		if ev.Kind == KindReturn {
			fn(ev.Result)
		}
	})
}

func (s *stream[Y, R]) OnThrow(fn func(error)) {
	s.Subscribe(func(ev Event[Y, R]) {
		if ev.Kind == KindThrow {
			fn(ev.Err)
		}
	})
}

// drainLocked delivers published events to registered listeners, one event
// per listener per round in registration order, until every listener has
// caught up to the publish frontier.
//
// Called with s.mu held. The mutex is released around each callback, so a
// callback may append events or register further listeners; the draining
// flag ensures only one goroutine dispatches at a time, which preserves
// per-listener delivery order.
func (s *stream[Y, R]) drainLocked() {
	if s.draining {
		return
	}
	s.draining = true
	for {
		progress := false
		for i := 0; i < len(s.listeners); i++ {
			l := s.listeners[i]
			if l.pos == nil || l.pos == s.tail {
				continue
			}
			ev := l.pos.event
			l.pos = l.pos.next
			s.mu.Unlock()
			l.call(ev)
			s.mu.Lock()
			progress = true
		}
		if !progress {
			break
		}
	}
	s.draining = false
}
