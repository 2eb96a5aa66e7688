package listkit

import (
	"sync"

	"go.uber.org/atomic"
)

// mailbox queues work posted from other goroutines until the UI loop
// drains it. Its mutex guards the queue only; posted functions run
// unlocked on the UI goroutine.
type mailbox struct {
	mu      sync.Mutex
	queue   []func(*List)
	pending atomic.Int32
}

// Post queues fn to run on the UI loop during the next Drain. It is the
// only List method that is safe to call from any goroutine, and the only
// one that takes a lock.
func (l *List) Post(fn func(*List)) {
	if fn == nil {
		return
	}
	l.mailbox.mu.Lock()
	l.mailbox.queue = append(l.mailbox.queue, fn)
	l.mailbox.pending.Inc()
	l.mailbox.mu.Unlock()
}

// Pending reports whether posted work is waiting. It is cheap enough to
// call every frame.
func (l *List) Pending() bool {
	return l.mailbox.pending.Load() > 0
}

// Drain runs all posted work in posting order on the calling goroutine
// and returns how many functions ran. Work posted while draining waits
// for the next Drain.
func (l *List) Drain() int {
	if !l.Pending() {
		return 0
	}

	l.mailbox.mu.Lock()
	queue := l.mailbox.queue
	l.mailbox.queue = nil
	l.mailbox.pending.Sub(int32(len(queue)))
	l.mailbox.mu.Unlock()

	for _, fn := range queue {
		fn(l)
	}
	return len(queue)
}
