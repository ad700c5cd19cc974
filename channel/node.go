package channel

type node[Y, R any] struct {
	event Event[Y, R]   // the event at this position (unset until ready)
	next  *node[Y, R]   // the next node in the stream (nil until ready, and forever nil on terminal nodes)
	ready chan struct{} // a channel whose closure marks readiness
}

func (n *node[Y, R]) makeReady(ev Event[Y, R], next *node[Y, R]) {
	n.event = ev
	n.next = next
	close(n.ready)
}
