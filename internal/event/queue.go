package event

import (
	"sync"
	"sync/atomic"
)

// Queue is an unbounded MPSC event channel.
//
// A pump goroutine moves events from the unbuffered input side into a
// growable backlog and offers the head of the backlog to the consumer, so
// Send never blocks on a slow consumer.
type Queue struct {
	in   chan Event
	out  chan Event
	done chan struct{}

	closeOnce sync.Once
	pumpDone  chan struct{}

	sent      atomic.Uint64
	delivered atomic.Uint64
}

// Stats holds queue counters.
type Stats struct {
	Sent      uint64
	Delivered uint64
}

// Pending is the number of events sent but not yet received.
func (s Stats) Pending() uint64 {
	return s.Sent - s.Delivered
}

// NewQueue creates a queue and starts its pump.
func NewQueue() *Queue {
	q := &Queue{
		in:       make(chan Event),
		out:      make(chan Event),
		done:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	go q.pump()
	return q
}

func (q *Queue) pump() {
	defer close(q.pumpDone)

	var pending []Event
	for {
		var out chan Event
		var next Event
		if len(pending) > 0 {
			out = q.out
			next = pending[0]
		}

		select {
		case ev := <-q.in:
			pending = append(pending, ev)
		case out <- next:
			pending[0] = Event{}
			pending = pending[1:]
		case <-q.done:
			return
		}
	}
}

// Send enqueues ev. It never blocks on the consumer and fails only
// with ErrQueueClosed once the queue has been closed.
func (q *Queue) Send(ev Event) error {
	// Checked first so a closed queue is reported even when the pump
	// could still accept.
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	select {
	case q.in <- ev:
		q.sent.Add(1)
		return nil
	case <-q.done:
		return ErrQueueClosed
	}
}

// Recv blocks until an event is available. It returns false once the
// queue is closed.
func (q *Queue) Recv() (Event, bool) {
	select {
	case ev := <-q.out:
		q.delivered.Add(1)
		return ev, true
	case <-q.done:
		return Event{}, false
	}
}

// Close discards the backlog and releases every blocked producer and the
// consumer. It is safe to call more than once.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
	<-q.pumpDone
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() Stats {
	return Stats{
		Sent:      q.sent.Load(),
		Delivered: q.delivered.Load(),
	}
}
