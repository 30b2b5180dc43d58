package widget

import (
	"image"
	"testing"

	"github.com/jmigpin/lgui/util/uiutil/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Root with two side by side nodes: a at (0,0)-(50,50), b at (50,0)-(100,50).
func newTestRoot(t *testing.T, log *[]string) (*Root, *testNode, *testNode) {
	t.Helper()
	root := NewRoot(RootConfig{})
	hb := NewHBoxLayout()
	root.SetLayout(hb)
	a := newTestNode("a", image.Point{50, 50}, log)
	b := newTestNode("b", image.Point{50, 50}, log)
	_, err := hb.AddItem(a, 0)
	require.NoError(t, err)
	_, err = hb.AddItem(b, 0)
	require.NoError(t, err)
	root.Resize(image.Point{100, 50})
	require.Equal(t, image.Rect(0, 0, 50, 50), a.Bounds)
	require.Equal(t, image.Rect(50, 0, 100, 50), b.Bounds)
	return root, a, b
}

//----------

func TestApplyEventMouse(t *testing.T) {
	var log []string
	root, a, b := newTestRoot(t, &log)
	a.SetFocusable(true)
	b.SetFocusable(true)

	root.HandleEvent(&event.MouseMove{Point: image.Pt(10, 10)})
	assert.Equal(t, []string{"a:MouseEnter", "a:MouseMove"}, takeLog(&log))
	assert.True(t, a.HasAnyMarks(MarkPointerInside))

	root.HandleEvent(&event.MouseMove{Point: image.Pt(60, 10)})
	assert.Equal(t, []string{"a:MouseLeave", "b:MouseEnter", "b:MouseMove"}, takeLog(&log))

	root.HandleEvent(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	assert.Equal(t, []string{"b:MouseLeave", "a:MouseEnter", "a:FocusGained", "a:MouseDown"}, takeLog(&log))
	assert.Equal(t, Node(a), root.FocusManager().Focused())

	root.HandleEvent(&event.MouseUp{Point: image.Pt(11, 10), Button: event.ButtonLeft})
	assert.Equal(t, []string{"a:MouseUp", "a:MouseClick"}, takeLog(&log))

	// handled by the child, the parent doesn't get it
	a.handle = true
	root.HandleEvent(&event.MouseMove{Point: image.Pt(12, 10)})
	assert.Equal(t, []string{"a:MouseMove"}, takeLog(&log))
}

func TestApplyEventKeys(t *testing.T) {
	var log []string
	root, a, b := newTestRoot(t, &log)
	a.SetFocusable(true)
	b.SetFocusable(true)

	// no focus
	root.HandleEvent(&event.KeyDown{Point: image.Pt(70, 10), KeySym: event.KSymReturn})
	assert.Equal(t, []string{"b:MouseEnter"}, takeLog(&log))

	require.True(t, root.FocusManager().RequestFocus(a))
	takeLog(&log)
	root.HandleEvent(&event.KeyDown{Point: image.Pt(70, 10), KeySym: event.KSymTab})
	assert.Equal(t, []string{"a:KeyDown", "a:FocusLost", "b:FocusGained"}, takeLog(&log))

	root.HandleEvent(&event.KeyDown{Point: image.Pt(70, 10), KeySym: event.KSymTab, Mods: event.ModShift})
	assert.Equal(t, []string{"b:KeyDown", "b:FocusLost", "a:FocusGained"}, takeLog(&log))

	// handled keys don't move the focus
	a.handle = true
	root.HandleEvent(&event.KeyDown{Point: image.Pt(70, 10), KeySym: event.KSymTab})
	root.HandleEvent(&event.KeyUp{Point: image.Pt(70, 10), KeySym: event.KSymTab})
	assert.Equal(t, []string{"a:KeyDown", "a:KeyUp"}, takeLog(&log))
	assert.Equal(t, Node(a), root.FocusManager().Focused())
}

func TestApplyEventKeyBubble(t *testing.T) {
	var log []string
	root := NewRoot(RootConfig{})
	p := newTestNode("p", image.Point{}, &log)
	m := newTestNode("m", image.Point{}, &log)
	c := newTestNode("c", image.Point{}, &log)
	c.SetFocusable(true)
	root.Append(p)
	p.Append(m)
	m.Append(c)
	fm := root.FocusManager()
	ae := NewApplyEvent(fm)

	require.True(t, fm.RequestFocus(c))
	takeLog(&log)
	ae.Apply(root, &event.KeyDown{KeySym: event.KSymReturn}, image.Point{})
	assert.Equal(t, []string{"c:KeyDown", "m:KeyDown", "p:KeyDown"}, takeLog(&log))

	// doesn't leave the modal node
	require.NoError(t, fm.RequestModalFocus(m))
	ae.Apply(root, &event.KeyDown{KeySym: event.KSymReturn}, image.Point{})
	assert.Equal(t, []string{"c:KeyDown", "m:KeyDown"}, takeLog(&log))
}

func TestApplyEventModal(t *testing.T) {
	var log []string
	root, a, b := newTestRoot(t, &log)
	a.SetFocusable(true)

	root.HandleEvent(&event.MouseMove{Point: image.Pt(10, 10)})
	takeLog(&log)

	require.NoError(t, root.FocusManager().RequestModalFocus(b))
	root.HandleEvent(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	assert.Equal(t, []string{"a:MouseLeave"}, takeLog(&log))
	assert.Nil(t, root.FocusManager().Focused())
	root.HandleEvent(&event.MouseUp{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	assert.Empty(t, takeLog(&log))

	root.HandleEvent(&event.MouseMove{Point: image.Pt(60, 10)})
	assert.Equal(t, []string{"b:MouseEnter", "b:MouseMove"}, takeLog(&log))
}

func TestApplyEventDnd(t *testing.T) {
	var log []string
	root, a, _ := newTestRoot(t, &log)
	root.HandleEvent(&event.MouseMove{Point: image.Pt(10, 10)})
	takeLog(&log)

	replies := []event.DndAction{}
	reply := func(act event.DndAction) { replies = append(replies, act) }
	root.HandleEvent(&event.DndPosition{Point: image.Pt(10, 10), Reply: reply})
	assert.Equal(t, []event.DndAction{event.DndADeny}, replies)

	accepts := []bool{}
	replyAccept := func(v bool) { accepts = append(accepts, v) }
	root.HandleEvent(&event.DndDrop{Point: image.Pt(10, 10), ReplyAccept: replyAccept})
	assert.Equal(t, []bool{false}, accepts)
	assert.Equal(t, []string{"a:DndPosition", "a:DndDrop"}, takeLog(&log))

	// the node replies
	a.handle = true
	root.HandleEvent(&event.DndPosition{Point: image.Pt(10, 10), Reply: reply})
	root.HandleEvent(&event.DndDrop{Point: image.Pt(10, 10), ReplyAccept: replyAccept})
	assert.Len(t, replies, 1)
	assert.Len(t, accepts, 1)
}

func TestApplyEventDrag(t *testing.T) {
	var log []string
	root, a, b := newTestRoot(t, &log)

	root.HandleEvent(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	takeLog(&log)

	root.HandleEvent(&event.MouseMove{Point: image.Pt(20, 10), Buttons: event.MouseButtons(event.ButtonLeft)})
	assert.Equal(t, []string{"a:MouseMove", "a:MouseDragStart"}, takeLog(&log))
	assert.Equal(t, Node(a), root.ae.DragNode())

	// no enter/leave while dragging
	root.HandleEvent(&event.MouseMove{Point: image.Pt(60, 10), Buttons: event.MouseButtons(event.ButtonLeft)})
	assert.Equal(t, []string{"b:MouseMove", "a:MouseDragMove"}, takeLog(&log))
	assert.False(t, b.HasAnyMarks(MarkPointerInside))

	root.HandleEvent(&event.MouseUp{Point: image.Pt(60, 10), Button: event.ButtonLeft})
	assert.Equal(t, []string{"b:MouseUp", "a:MouseDragEnd", "a:MouseLeave", "b:MouseEnter"}, takeLog(&log))
	assert.Nil(t, root.ae.DragNode())
}

func TestApplyEventNotDraggable(t *testing.T) {
	var log []string
	root, a, _ := newTestRoot(t, &log)
	a.AddMarks(MarkNotDraggable)

	root.HandleEvent(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	root.HandleEvent(&event.MouseMove{Point: image.Pt(20, 10)})
	assert.Equal(t, Node(root), root.ae.DragNode()) // the parent
	assert.NotContains(t, takeLog(&log), "a:MouseDragStart")
}

func TestEventPoint(t *testing.T) {
	p, ok := EventPoint(&event.MouseClick{Point: image.Pt(1, 2)})
	assert.True(t, ok)
	assert.Equal(t, image.Pt(1, 2), p)
	_, ok = EventPoint(&event.FocusGained{})
	assert.False(t, ok)
}
