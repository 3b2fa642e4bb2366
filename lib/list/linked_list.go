package list

// References:
// https://tc39.es/ecma262/#sec-iteratorresult-interface
// An iteration result is either {done: false, value} or {done: true}.
// The linked list here is the iterator of itself. Unlike most iterators,
// it restarts from the head after the exhausted step instead of staying
// exhausted, so a list is able to be consumed again and again.
//
//	head                                  tail
//	+------+  next   +------+  next   +------+
//	|  a   |-------->|  b   |-------->|  c   |--> nil
//	+------+<--------+------+<--------+------+
//	          prev              prev
//	             ^
//	           cursor (the node yielded by the next step)

import (
	"fmt"
	"iter"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

var (
	_ Iterator = (*LinkedList)(nil) // Type check assertion
	_ Iterable = (*LinkedList)(nil)
)

type LinkedList struct {
	head   *ListNode
	tail   *ListNode
	cursor *ListNode
	opt    *linkedListOption
	len    int64
}

func NewLinkedList(opts ...LinkedListOption) *LinkedList {
	opt := &linkedListOption{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(opt); err != nil {
			panic(err)
		}
	}
	return &LinkedList{opt: opt}
}

func (l *LinkedList) Head() *ListNode {
	return l.head
}

func (l *LinkedList) Tail() *ListNode {
	return l.tail
}

func (l *LinkedList) Len() int64 {
	return l.len
}

// Append links the node after the current tail and returns l
// for chained calls.
// The node must not belong to any list, it is not checked here.
// Validate is able to find the broken topology afterwards.
func (l *LinkedList) Append(node *ListNode) *LinkedList {
	if node == nil {
		return l
	}

	if l.head == nil {
		// empty list, new append node is the first one
		l.head = node
		l.cursor = node
	}
	if l.tail != nil {
		l.tail.next = node
		node.previous = l.tail
	}
	l.tail = node
	l.len++

	if logger := l.logger(); logger != nil {
		logger.Debug("linked list append",
			zap.String("list", l.opt.name),
			zap.String("value", node.value),
			zap.Int64("len", l.len),
		)
	}
	return l
}

func (l *LinkedList) AppendValue(values ...string) *LinkedList {
	for _, v := range values {
		l.Append(NewListNode(v))
	}
	return l
}

// Next yields a snapshot of the node under the embedded cursor.
// When the cursor runs off the tail, it returns a done result and
// resets the cursor to the head.
func (l *LinkedList) Next() IterationResult {
	current := l.cursor
	if current == nil {
		l.cursor = l.head
		l.logStep(IterationResult{Done: true})
		return IterationResult{Done: true}
	}

	res := IterationResult{
		Done:  false,
		Value: current.snapshot(),
	}
	l.cursor = current.next
	l.logStep(res)
	return res
}

func (l *LinkedList) logger() xlog.XLogger {
	if l.opt == nil {
		return nil
	}
	return l.opt.logger
}

func (l *LinkedList) logStep(res IterationResult) {
	logger := l.logger()
	if logger == nil {
		return
	}
	if res.Done {
		logger.Debug("linked list step",
			zap.String("list", l.opt.name),
			zap.Bool("done", true),
		)
		return
	}
	logger.Debug("linked list step",
		zap.String("list", l.opt.name),
		zap.Bool("done", false),
		zap.String("value", res.Value.value),
	)
}

// Iterator returns the linked list itself.
func (l *LinkedList) Iterator() Iterator {
	return l
}

// All ranges over the snapshots by a new cursor, so that
// the embedded cursor is untouched.
func (l *LinkedList) All() iter.Seq[*ListNode] {
	return func(yield func(*ListNode) bool) {
		c := l.NewCursor()
		for res := c.Next(); !res.Done; res = c.Next() {
			if !yield(res.Value) {
				return
			}
		}
	}
}

func (l *LinkedList) Values() []string {
	nodes := make([]*ListNode, 0, l.len)
	for n := range l.All() {
		nodes = append(nodes, n)
	}
	return lo.Map(nodes, func(n *ListNode, _ int) string {
		return n.value
	})
}

// Foreach traverses the live nodes from head to tail.
// If fn returns an error, the traversal stops and returns the error.
func (l *LinkedList) Foreach(fn func(idx int64, n *ListNode) error) error {
	if fn == nil {
		return infra.NewErrorStack("[linked-list] nil foreach function")
	}
	if l.head == nil {
		return infra.NewErrorStack("[linked-list] empty")
	}

	var (
		iterator       = l.head
		idx      int64 = 0
	)
	for iterator != nil && idx < l.len {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// Validate checks the head/tail links, both chains and the cursor.
// All violations are combined, use multierr.Errors to list them.
func (l *LinkedList) Validate() error {
	var merr error
	if (l.head == nil) != (l.tail == nil) {
		return infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] head (%s) and tail (%s) disagree on emptiness", l.head, l.tail,
		))
	}

	if l.head == nil {
		if l.len != 0 {
			merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
				"[linked-list] empty list with length %d", l.len,
			)))
		}
		if l.cursor != nil {
			merr = infra.AppendErrorStack(merr, infra.NewErrorStack(
				"[linked-list] empty list with a cursor",
			))
		}
		return merr
	}

	if l.head.previous != nil {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] head (%s) has a previous node (%s)", l.head, l.head.previous,
		)))
	}
	if l.tail.next != nil {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] tail (%s) has a next node (%s)", l.tail, l.tail.next,
		)))
	}

	var (
		visited    int64
		reached    bool
		cursorSeen = l.cursor == nil
	)
	for n := l.head; n != nil && visited < l.len; n = n.next {
		visited++
		if n == l.cursor {
			cursorSeen = true
		}
		if n == l.tail {
			reached = true
			break
		}
	}
	if !reached {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] forward chain does not reach tail within %d nodes", l.len,
		)))
	} else if visited != l.len {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] forward chain visits %d nodes, length is %d", visited, l.len,
		)))
	}
	if !cursorSeen {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] cursor (%s) is not reachable from head", l.cursor,
		)))
	}

	visited, reached = 0, false
	for n := l.tail; n != nil && visited < l.len; n = n.previous {
		visited++
		if n == l.head {
			reached = true
			break
		}
	}
	if !reached {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] backward chain does not reach head within %d nodes", l.len,
		)))
	} else if visited != l.len {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf(
			"[linked-list] backward chain visits %d nodes, length is %d", visited, l.len,
		)))
	}
	return merr
}
