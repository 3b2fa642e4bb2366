package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(it Iterator) []string {
	values := make([]string, 0, 8)
	for res := it.Next(); !res.Done; res = it.Next() {
		values = append(values, res.Value.Value())
	}
	return values
}

func TestCursor_IndependentTraversals(t *testing.T) {
	dlist := NewLinkedList().AppendValue("a", "b", "c")
	c1, c2 := dlist.NewCursor(), dlist.NewCursor()

	require.Equal(t, "a", c1.Next().Value.Value())
	require.Equal(t, "a", c2.Next().Value.Value())
	require.Equal(t, "b", c1.Next().Value.Value())
	require.Equal(t, "a", dlist.Next().Value.Value())
	require.Equal(t, "b", c2.Next().Value.Value())
	require.Equal(t, "c", c1.Next().Value.Value())
	require.True(t, c1.Next().Done)

	// Restarts like the embedded cursor does.
	require.Equal(t, "a", c1.Next().Value.Value())
	require.Equal(t, "b", dlist.Next().Value.Value())
	require.Equal(t, []string{"c"}, drain(c2))
}

func TestCursor_CreatedBeforeAppend(t *testing.T) {
	dlist := NewLinkedList()
	c := dlist.NewCursor()
	dlist.AppendValue("a", "b")
	require.Equal(t, []string{"a", "b"}, drain(c))

	empty := NewLinkedList().NewCursor()
	res := empty.Next()
	require.True(t, res.Done)
	require.Nil(t, res.Value)
}

func TestCursor_AppendAfterExhaustion(t *testing.T) {
	dlist := NewLinkedList().AppendValue("a")
	c := dlist.NewCursor()
	require.Equal(t, []string{"a"}, drain(c))

	dlist.AppendValue("b")
	require.Equal(t, []string{"a", "b"}, drain(c))
}

func TestCursor_Reset(t *testing.T) {
	dlist := NewLinkedList().AppendValue("a", "b", "c")
	c := dlist.NewCursor()
	require.Equal(t, "a", c.Next().Value.Value())
	require.Equal(t, "b", c.Next().Value.Value())
	c.Reset()
	require.Equal(t, []string{"a", "b", "c"}, drain(c.Iterator()))
}

func TestCursor_Snapshot(t *testing.T) {
	dlist := NewLinkedList()
	a := NewListNode("a")
	dlist.Append(a)
	res := dlist.NewCursor().Next()
	require.False(t, res.Done)
	require.NotSame(t, a, res.Value)
	require.Nil(t, res.Value.Next())

	dlist.AppendValue("b")
	require.Nil(t, res.Value.Next())
	require.Equal(t, "b", a.Next().Value())
}

func TestLinkedList_All(t *testing.T) {
	dlist := NewLinkedList().AppendValue("a", "b", "c", "d")
	require.Equal(t, "a", dlist.Next().Value.Value())

	values := make([]string, 0, 4)
	for n := range dlist.All() {
		values = append(values, n.Value())
		if n.Value() == "b" {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, values)

	// The embedded cursor is untouched by All.
	require.Equal(t, "b", dlist.Next().Value.Value())
	require.Equal(t, []string{"a", "b", "c", "d"}, dlist.Values())
	require.Equal(t, []string{"c", "d"}, drain(dlist))

	require.Empty(t, NewLinkedList().Values())
}

func TestIterable(t *testing.T) {
	dlist := NewLinkedList().AppendValue("x", "y")
	iterables := []Iterable{dlist, dlist.NewCursor()}
	for _, it := range iterables {
		require.Equal(t, []string{"x", "y"}, drain(it.Iterator()))
	}
	require.Same(t, dlist, dlist.Iterator())
}
