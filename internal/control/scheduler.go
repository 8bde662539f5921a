package control

// Scheduler is the host's per-frame callback facility. RequestFrame queues fn
// to run once on the next host frame, on the same goroutine as every other
// controller entry point.
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a Scheduler driven by explicit Flush calls. The ebiten game
// loop flushes it once per update; tests and headless runs flush it by hand.
type FrameQueue struct {
	queue []func()
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.queue = append(q.queue, fn)
}

// Len reports the number of queued callbacks.
func (q *FrameQueue) Len() int { return len(q.queue) }

// Flush runs the callbacks queued before the call and returns how many ran.
// Callbacks requested while flushing wait for the next Flush.
func (q *FrameQueue) Flush() int {
	pending := q.queue
	q.queue = nil
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
