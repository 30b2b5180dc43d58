package widget

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeMarks(t *testing.T) {
	n1 := newContainer(nil)
	n2 := newContainer(nil)
	n3 := newRect(5, 5)
	n1.Append(n2)
	n2.Append(n3)
	n1.Layout(image.Rect(0, 0, 10, 10))
	assert.False(t, n1.TreeNeedsLayout())
	assert.Equal(t, image.Rect(0, 0, 10, 10), n3.Bounds)

	n3.MarkNeedsLayout()
	assert.True(t, n3.HasAnyMarks(MarkNeedsLayout))
	assert.True(t, n2.HasAnyMarks(MarkChildNeedsLayout))
	assert.False(t, n2.HasAnyMarks(MarkNeedsLayout))
	assert.True(t, n1.TreeNeedsLayout())

	n1.LayoutMarked()
	assert.False(t, n1.TreeNeedsLayout())
	assert.False(t, n2.TreeNeedsLayout())
	assert.False(t, n3.TreeNeedsLayout())

	assert.Panics(t, func() { n1.RemoveMarks(MarkNeedsLayout) })
}

func TestNodeInsertRemove(t *testing.T) {
	n1 := newContainer(nil)
	a, b, c := newRect(1, 1), newRect(1, 1), newRect(1, 1)

	added := 0
	n1.Events.Add(NodeEvChildAdded, func(interface{}) { added++ })

	n1.Append(a, c)
	n1.InsertBefore(b, c.Embed())
	assert.Equal(t, 3, added)
	assert.Equal(t, []Node{a, b, c}, n1.ChildsWrappers())
	assert.Equal(t, &b.EmbedNode, a.NextSibling())
	assert.True(t, n1.IsAncestorOf(b.Embed()))
	assert.False(t, a.IsAncestorOf(b.Embed()))

	assert.Panics(t, func() { n1.Append(a) })
	assert.Panics(t, func() { n1.Append(n1) })
	assert.Panics(t, func() { b.Remove(a) })

	n1.Remove(b)
	assert.Nil(t, b.Parent)
	assert.Equal(t, []Node{a, c}, n1.ChildsWrappers())
	assert.Panics(t, func() { n1.InsertBefore(newRect(1, 1), b.Embed()) })
}

func TestNodeVisible(t *testing.T) {
	n1 := newContainer(nil)
	a := newRect(5, 5)
	n1.Append(a)
	n1.Layout(image.Rect(0, 0, 10, 10))

	var got []bool
	a.Events.Add(NodeEvVisibilityChanged, func(ev interface{}) {
		got = append(got, ev.(*NodeVisibilityEvent).Visible)
	})
	a.SetVisible(false)
	a.SetVisible(false) // no change
	assert.Equal(t, []bool{false}, got)
	assert.True(t, n1.TreeNeedsLayout())
	assert.Equal(t, image.Point{}, n1.Measure(SCNoLimit(), SCNoLimit()).Size)

	n1.LayoutMarked()
	assert.Equal(t, image.Rectangle{}, a.Bounds)

	a.SetVisible(true)
	n1.LayoutMarked()
	assert.Equal(t, image.Rect(0, 0, 10, 10), a.Bounds)
	assert.Equal(t, []bool{false, true}, got)
}

func TestNodeSetLayout(t *testing.T) {
	n1 := newContainer(nil)
	hb := NewHBoxLayout()
	r1 := newRect(5, 5)
	_, err := hb.AddItem(r1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n1.ChildsLen()) // no target yet

	n1.SetLayout(hb)
	assert.Equal(t, n1.Embed(), hb.Target())
	assert.Equal(t, 1, n1.ChildsLen())
	assert.Equal(t, Layout(hb), n1.Layouter())

	// replacing detaches the items of the previous layout
	vb := NewVBoxLayout()
	n1.SetLayout(vb)
	assert.Nil(t, hb.Target())
	assert.Equal(t, 0, n1.ChildsLen())
	assert.Equal(t, 1, hb.Len())
}

func TestNodeSizeEvents(t *testing.T) {
	n1 := newContainer(nil)
	var sizes, positions int
	n1.Events.Add(NodeEvSizeChanged, func(interface{}) { sizes++ })
	n1.Events.Add(NodeEvPositionChanged, func(interface{}) { positions++ })

	n1.Layout(image.Rect(0, 0, 10, 10))
	n1.Layout(image.Rect(5, 5, 15, 15))
	n1.Layout(image.Rect(5, 5, 15, 15))
	assert.Equal(t, 1, sizes)
	assert.Equal(t, 1, positions)
}
