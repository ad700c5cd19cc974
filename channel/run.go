package channel

// Run constructs a channel, invokes executor synchronously with its sink,
// and returns the source. An error returned by the executor — or a panic
// raised inside it, wrapped as a *PanicError — is routed to Sink.Error, so
// consumers observe it exactly as if the executor had reported it itself.
//
// The executor may hold onto the sink and keep producing after it returns,
// e.g. from goroutines or timers it started:
//
//	src := channel.Run(func(sink channel.Sink[int, string]) error {
//		go func() {
//			sink.Next(1)
//			sink.Next(2)
//			sink.Complete("done")
//		}()
//		return nil
//	})
func Run[Y, R any](executor func(Sink[Y, R]) error) Source[Y, R] {
	sink, source := New[Y, R]()
	if err := runExecutor(executor, sink); err != nil {
		sink.Error(err)
	}
	return source
}

func runExecutor[Y, R any](executor func(Sink[Y, R]) error, sink Sink[Y, R]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return executor(sink)
}
