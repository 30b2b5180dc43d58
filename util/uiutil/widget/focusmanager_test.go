package widget

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/jmigpin/lgui/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Records the events it gets.
type testNode struct {
	Rectangle
	name   string
	log    *[]string
	handle bool // handles all events
}

func newTestNode(name string, size image.Point, log *[]string) *testNode {
	n := &testNode{name: name, log: log}
	n.Size = size
	n.SetWrapper(n)
	return n
}

func (n *testNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	s := strings.TrimPrefix(fmt.Sprintf("%T", ev), "*event.")
	if fl, ok := ev.(*event.FocusLost); ok && fl.ByModal {
		s += "(modal)"
	}
	*n.log = append(*n.log, n.name+":"+s)
	return event.Handled(n.handle)
}

func takeLog(log *[]string) []string {
	u := *log
	*log = nil
	return u
}

//----------

func TestFocusManager(t *testing.T) {
	var log []string
	root := NewRoot(RootConfig{})
	a := newTestNode("a", image.Point{10, 10}, &log)
	b := newTestNode("b", image.Point{10, 10}, &log)
	c := newTestNode("c", image.Point{10, 10}, &log)
	d := newTestNode("d", image.Point{10, 10}, &log) // not focusable
	a.SetFocusable(true)
	b.SetFocusable(true)
	c.SetFocusable(true)
	root.Append(a, b, d)
	b.Append(c)
	fm := root.FocusManager()

	assert.True(t, fm.RequestFocus(a))
	assert.True(t, a.HasFocus())
	assert.Equal(t, []string{"a:FocusGained"}, takeLog(&log))
	assert.True(t, fm.RequestFocus(a))
	assert.Empty(t, takeLog(&log))
	assert.False(t, fm.RequestFocus(d))
	assert.False(t, fm.RequestFocus(nil))
	assert.Equal(t, Node(a), fm.Focused())

	assert.True(t, fm.FocusNext())
	assert.Equal(t, []string{"a:FocusLost", "b:FocusGained"}, takeLog(&log))
	assert.False(t, a.HasFocus())
	assert.True(t, fm.FocusNext())
	assert.Equal(t, Node(c), fm.Focused())
	assert.True(t, fm.FocusNext()) // wraps
	assert.Equal(t, Node(a), fm.Focused())
	assert.True(t, fm.FocusPrev())
	assert.Equal(t, Node(c), fm.Focused())

	assert.False(t, fm.ReleaseFocus(a))
	assert.True(t, fm.ReleaseFocus(c))
	assert.Nil(t, fm.Focused())
	takeLog(&log)

	assert.True(t, fm.FocusPrev()) // from none
	assert.Equal(t, Node(c), fm.Focused())
	fm.ReleaseFocus(c)
	assert.True(t, fm.FocusNext())
	assert.Equal(t, Node(a), fm.Focused())

	// hidden subtrees are skipped
	b.SetVisible(false)
	assert.True(t, fm.FocusNext())
	assert.Equal(t, Node(a), fm.Focused())
	b.SetVisible(true)

	// through the node
	assert.True(t, c.RequestFocus())
	assert.Equal(t, Node(c), fm.Focused())
	assert.False(t, newTestNode("x", image.Point{}, &log).RequestFocus()) // no tree
}

func TestFocusManagerModal(t *testing.T) {
	var log []string
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	root := NewRoot(RootConfig{Logger: logger})
	a := newTestNode("a", image.Point{10, 10}, &log)
	b := newTestNode("b", image.Point{10, 10}, &log)
	c := newTestNode("c", image.Point{10, 10}, &log)
	for _, n := range []*testNode{a, b, c} {
		n.SetFocusable(true)
	}
	root.Append(a, b)
	b.Append(c)
	fm := root.FocusManager()

	fm.RequestFocus(a)
	takeLog(&log)

	require.NoError(t, fm.RequestModalFocus(b))
	assert.Equal(t, Node(b), fm.ModalFocus())
	assert.Nil(t, fm.Focused())
	assert.Equal(t, []string{"a:FocusLost(modal)"}, takeLog(&log))

	assert.False(t, fm.RequestFocus(a))
	assert.True(t, fm.RequestFocus(c))
	assert.True(t, fm.FocusNext()) // only inside the modal
	assert.Equal(t, Node(b), fm.Focused())
	assert.True(t, fm.FocusNext())
	assert.Equal(t, Node(c), fm.Focused())

	err := fm.RequestModalFocus(a)
	assert.Equal(t, ErrModalFocusHeld, errors.Cause(err))
	err = fm.RequestModalFocus(nil)
	assert.Equal(t, ErrNilNode, errors.Cause(err))
	assert.Equal(t, Node(b), fm.ModalFocus())
	require.NoError(t, fm.RequestModalFocus(b)) // already held
	require.NoError(t, fm.RequestModalFocus(c)) // nested
	assert.Equal(t, Node(c), fm.ModalFocus())
	assert.Equal(t, Node(c), fm.Focused()) // inside the new modal

	assert.False(t, fm.ReleaseModalFocus(b))
	assert.Contains(t, buf.String(), "release modal focus")
	assert.True(t, fm.ReleaseModalFocus(c))
	assert.Equal(t, Node(b), fm.ModalFocus())
	assert.True(t, fm.ReleaseModalFocus(b))
	assert.Nil(t, fm.ModalFocus())
	assert.False(t, fm.ReleaseModalFocus(b))

	assert.True(t, fm.RequestFocus(a))
}

func TestFocusManagerNodeRemoved(t *testing.T) {
	var log []string
	root := NewRoot(RootConfig{})
	a := newTestNode("a", image.Point{10, 10}, &log)
	b := newTestNode("b", image.Point{10, 10}, &log)
	c := newTestNode("c", image.Point{10, 10}, &log)
	c.SetFocusable(true)
	a.SetFocusable(true)
	root.Append(a, b)
	b.Append(c)
	fm := root.FocusManager()

	require.NoError(t, fm.RequestModalFocus(b))
	require.True(t, fm.RequestFocus(c))
	takeLog(&log)

	// removing outside the focused subtree keeps the focus
	root.Remove(a)
	assert.Equal(t, Node(c), fm.Focused())

	root.Remove(b)
	assert.Nil(t, fm.ModalFocus())
	assert.Nil(t, fm.Focused())
	assert.False(t, c.HasFocus())
	assert.Equal(t, []string{"c:FocusLost"}, takeLog(&log))
}
