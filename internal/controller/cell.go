package controller

import "sync"

// ActiveCell is the cross-tick lookahead: the latest known active problem,
// updated synchronously whenever the derived active problem changes.
//
// Single-writer invariant: only the host event loop calls Publish. The
// advance resolver is the only other reader, from its polling goroutine.
// The mutex exists for that one cross-goroutine read, not for contention.
type ActiveCell struct {
	mu  sync.Mutex
	val *TransitionTarget
	key string
}

// Publish replaces the cell contents. Host event loop only.
func (c *ActiveCell) Publish(key string, t TransitionTarget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.val = &t
}

// Load returns the current key and target. The target is nil before the
// first Publish.
func (c *ActiveCell) Load() (string, *TransitionTarget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key, c.val
}
