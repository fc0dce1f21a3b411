package ecs

// Commands buffers structural changes made while systems run. They are
// applied when the frame ends, so queries never observe a half-built frame.
type Commands struct {
	spawns [][]any
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Defer queues fn to run after all spawns of the frame have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.defers)
}

// Flush applies all queued operations to storage and resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	c.spawns = c.spawns[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
}
