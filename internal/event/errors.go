package event

import "errors"

// ErrQueueClosed is returned by Send once the consumer has closed the queue.
var ErrQueueClosed = errors.New("event queue is closed")
