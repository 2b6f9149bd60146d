package reconcile

import "sync"

// Cursor is the process-wide state required to interpret the next push
// notification: whether the initial full snapshot has been received.
// Deltas arriving before that point are dropped — merging them into an
// empty or incomplete replica would fabricate state the server never had.
type Cursor struct {
	mu          sync.Mutex
	initialized bool
}

// Ready reports whether the initial full refresh has been applied.
func (c *Cursor) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

func (c *Cursor) markInitialized() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = true
}

// Reset clears the cursor, forcing the reconciler to drop deltas until the
// next full refresh arrives. Used on stream teardown.
func (c *Cursor) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = false
}
