// Package event defines the messages that flow through the application and the
// queue that carries them.
//
// # Events
//
// Event is a small tagged union. The Kind selects the variant and the payload
// fields that are meaningful for it:
//
//	KindExit        - leave the current view or quit
//	KindChangeView  - View names the view to activate
//	KindSubmit      - confirm the current selection
//	KindNext        - move the selection forward
//	KindPrevious    - move the selection back
//	KindUndo        - undo the last editor submission
//	KindInput       - Key holds a raw key event from the terminal
//	KindRedraw      - the terminal changed size, render again
//	KindReload      - the configuration file changed
//	KindFault       - Err holds a terminal read failure
//
// # Queue
//
// Queue is an unbounded multi-producer, single-consumer FIFO. The input feeder,
// the configuration watcher and the views all send on it; only the dispatcher
// receives. Events from one producer arrive in the order they were sent. After
// Close every Send fails with ErrQueueClosed, which producers treat as a normal
// shutdown signal.
//
//	producer ──Send──▶ in ──▶ [pump: backlog] ──▶ out ──Recv──▶ dispatcher
package event
