package demo

import (
	"github.com/ownref/ownref/handle"
)

// Item is a value owned exclusively by a Container.
type Item struct {
	Name string
	Age  int
}

// Container exclusively owns an ordered sequence of Items. Items have
// no back-reference to their container.
type Container struct {
	items []*handle.Exclusive[Item]
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Add takes ownership of the item behind h. The source handle is
// emptied; storing in the collection moves, never duplicates.
func (c *Container) Add(h *handle.Exclusive[Item]) {
	c.items = append(c.items, handle.Transfer(h))
}

// Len returns the number of owned items.
func (c *Container) Len() int {
	return len(c.items)
}

// Each yields the items by reference in insertion order. Returning
// false stops the iteration. Ownership stays with the container.
func (c *Container) Each(fn func(*Item) bool) {
	for _, h := range c.items {
		if !fn(h.Value()) {
			return
		}
	}
}

// Release destroys all owned items and empties the container.
func (c *Container) Release() {
	for _, h := range c.items {
		h.Release()
	}
	c.items = nil
}
