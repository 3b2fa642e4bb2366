package list

// ListNode is only linked by the LinkedList.
// The previous is a back link, the forward chain
// from the head reaches every node.
type ListNode struct {
	next, previous *ListNode
	value          string
}

func NewListNode(value string) *ListNode {
	return &ListNode{
		value: value,
	}
}

func (n *ListNode) Value() string {
	if n == nil {
		return ""
	}
	return n.value
}

func (n *ListNode) Next() *ListNode {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *ListNode) Previous() *ListNode {
	if n == nil {
		return nil
	}
	return n.previous
}

func (n *ListNode) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.value
}

// snapshot copies the value and both links at this instant.
func (n *ListNode) snapshot() *ListNode {
	cp := *n
	return &cp
}
