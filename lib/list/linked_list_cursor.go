package list

var (
	_ Iterator = (*Cursor)(nil)
	_ Iterable = (*Cursor)(nil)
)

// Cursor is a traversal independent of the linked list embedded cursor.
// It follows the same steps, including the restart after the done result.
// Each Cursor supports one traversal at a time, just like the list.
type Cursor struct {
	list    *LinkedList
	current *ListNode
	// The head is read on the first step, so the nodes appended
	// before the first step are visible.
	fresh bool
}

func (l *LinkedList) NewCursor() *Cursor {
	return &Cursor{
		list:  l,
		fresh: true,
	}
}

func (c *Cursor) Next() IterationResult {
	if c.fresh {
		c.current = c.list.head
		c.fresh = false
	}

	current := c.current
	if current == nil {
		c.fresh = true
		return IterationResult{Done: true}
	}

	c.current = current.next
	return IterationResult{
		Done:  false,
		Value: current.snapshot(),
	}
}

// Reset makes the next step start from the head again.
func (c *Cursor) Reset() {
	c.current = nil
	c.fresh = true
}

func (c *Cursor) Iterator() Iterator {
	return c
}
