package list

// Note that the linked list is not thread safe.
// The list keeps only one embedded cursor, so only one traversal
// through LinkedList.Next may be in flight at a time. Use NewCursor
// for each additional traversal.

// IterationResult is produced by each step of an Iterator.
// Value is a snapshot of the node at the time it was yielded,
// nil if Done is true.
type IterationResult struct {
	Value *ListNode
	Done  bool
}

// Iterator produces the next result on each call.
// After a Done result, the next call restarts from the head.
type Iterator interface {
	Next() IterationResult
}

// Iterable returns the Iterator to consume. Both the linked list and
// the cursor return themselves.
type Iterable interface {
	Iterator() Iterator
}
