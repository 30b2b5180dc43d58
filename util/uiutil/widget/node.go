package widget

import (
	"container/list"
	"fmt"
	"image"

	"github.com/jmigpin/lgui/util/evreg"
	"github.com/jmigpin/lgui/util/imageutil"
	"github.com/jmigpin/lgui/util/uiutil/event"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode

	InsertBefore(n Node, mark *EmbedNode)
	Append(n ...Node)
	Remove(child Node)

	Measure(wc, hc SizeConstraint) MeasureResult
	MinSizeHint() image.Point

	Layout(r image.Rectangle) // set bounds and layout the subtree
	DoLayout()                // set childs bounds
	LayoutMarked()

	OnChildMarked(child Node, newMarks Marks)
	OnInputEvent(ev interface{}, p image.Point) event.Handled
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

type EmbedNode struct {
	Bounds  image.Rectangle
	Wrapper Node
	Parent  *EmbedNode

	// node events (NodeEv* ids)
	Events evreg.Register

	marks  Marks
	childs list.List
	elem   *list.Element

	layout Layout // optional layout manager of the childs
	theme  *Theme
}

//----------

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Nodes that override Node methods need to set the wrapper on creation, or the overriden methods will only be used after the node gets inserted into a parent.
func (en *EmbedNode) SetWrapper(n Node) {
	en.Wrapper = n
}

//----------

// If a node wants its InsertBefore implementation to be used, the wrapper must be set.
func (en *EmbedNode) Append(nodes ...Node) {
	for _, n := range nodes {
		if en.Wrapper != nil {
			en.Wrapper.InsertBefore(n, nil)
		} else {
			en.InsertBefore(n, nil)
		}
	}
}

func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	childe := child.Embed()

	if childe == en {
		panic("inserting into itself")
	}
	if childe.Parent != nil {
		panic("element already has a parent")
	}

	// insert in list and get element
	var elem *list.Element
	if next == nil {
		elem = en.childs.PushBack(childe)
	} else {
		// ensure next element is a child of this node
		if next.Parent != en {
			panic("next is not a child of this node")
		}
		elem = en.childs.InsertBefore(childe, next.elem)
	}
	if elem == nil {
		panic("element not inserted")
	}

	childe.elem = elem
	childe.Parent = en
	childe.Wrapper = child // auto set the wrapper

	en.MarkNeedsLayout()

	en.Events.RunCallbacks(NodeEvChildAdded, &NodeChildEvent{en, child})
}

//----------

func (en *EmbedNode) Remove(child Node) {
	childe := child.Embed()
	if childe.Parent != en {
		panic("not a child of this node")
	}

	// focus can't stay in a detached subtree
	if fc, ok := en.root().(FocusContext); ok {
		fc.FocusManager().nodeRemoved(childe)
	}

	en.childs.Remove(childe.elem)
	childe.elem = nil
	childe.Parent = nil

	en.MarkNeedsLayout()

	en.Events.RunCallbacks(NodeEvChildRemoved, &NodeChildEvent{en, child})
}

//----------

func (en *EmbedNode) ChildsLen() int {
	return en.childs.Len()
}

func (en *EmbedNode) HasChild(child Node) bool {
	return child.Embed().Parent == en
}

//----------

func elemEmbed(e *list.Element) *EmbedNode {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode)
}

func (en *EmbedNode) FirstChild() *EmbedNode {
	return elemEmbed(en.childs.Front())
}
func (en *EmbedNode) LastChild() *EmbedNode {
	return elemEmbed(en.childs.Back())
}
func (en *EmbedNode) NextSibling() *EmbedNode {
	if en.elem == nil {
		return nil
	}
	return elemEmbed(en.elem.Next())
}
func (en *EmbedNode) PrevSibling() *EmbedNode {
	if en.elem == nil {
		return nil
	}
	return elemEmbed(en.elem.Prev())
}

//----------

func (en *EmbedNode) IterateWrappers(f func(Node) bool) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		if !f(elemEmbed(e).Wrapper) {
			break
		}
	}
}
func (en *EmbedNode) IterateWrappersReverse(f func(Node) bool) {
	for e := en.childs.Back(); e != nil; e = e.Prev() {
		if !f(elemEmbed(e).Wrapper) {
			break
		}
	}
}

// Iterate all without break possibility.
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemEmbed(e).Wrapper)
	}
}

func (en *EmbedNode) ChildsWrappers() []Node {
	w := []Node{}
	en.IterateWrappers2(func(c Node) {
		w = append(w, c)
	})
	return w
}

//----------

// Returns true if en is n or one of its ancestors.
func (en *EmbedNode) IsAncestorOf(n *EmbedNode) bool {
	for u := n; u != nil; u = u.Parent {
		if u == en {
			return true
		}
	}
	return false
}

func (en *EmbedNode) root() Node {
	u := en
	for u.Parent != nil {
		u = u.Parent
	}
	return u.Wrapper
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.markUp(m, nil, 0)
}

func (en *EmbedNode) RemoveMarks(m Marks) {
	// direcly non-removable marks
	u := MarkNeedsLayout | MarkChildNeedsLayout
	if m.HasAny(u) {
		panic(fmt.Sprintf("mark not directly removable: %v", u))
	}
	en.marks.Remove(m)
}

//----------

func (en *EmbedNode) markUp(m Marks, child Node, childChangedMarks Marks) {
	old := en.marks
	en.marks |= m
	changed := en.marks ^ old

	if en.layout != nil && changed.HasAny(MarkNeedsLayout|MarkChildNeedsLayout) {
		en.layout.Invalidate()
	}

	// this node is a parent, run callback as soon as it gets marked (now)
	if en.Wrapper != nil && child != nil && childChangedMarks != 0 {
		en.Wrapper.OnChildMarked(child, childChangedMarks)
	}

	if en.Parent != nil && changed.HasAny(MarkNeedsLayout|MarkChildNeedsLayout) {
		en.Parent.markUp(MarkChildNeedsLayout, en.Wrapper, changed)
	}
}

func (en *EmbedNode) OnChildMarked(child Node, newMarks Marks) {
}

//----------

func (en *EmbedNode) MarkNeedsLayout() {
	en.AddMarks(MarkNeedsLayout)
}

func (en *EmbedNode) TreeNeedsLayout() bool {
	return en.HasAnyMarks(MarkNeedsLayout | MarkChildNeedsLayout)
}

//----------

func (en *EmbedNode) Visible() bool {
	return !en.HasAnyMarks(MarkForceZeroBounds)
}

// A non visible node gets zero bounds and is skipped by the layouts.
func (en *EmbedNode) SetVisible(v bool) {
	if en.Visible() == v {
		return
	}
	if v {
		en.marks.Remove(MarkForceZeroBounds)
	} else {
		en.marks.Add(MarkForceZeroBounds)
	}
	if en.Parent != nil {
		en.Parent.MarkNeedsLayout()
	}
	en.Events.RunCallbacks(NodeEvVisibilityChanged, &NodeVisibilityEvent{en, v})
}

//----------

func (en *EmbedNode) SetFocusable(v bool) {
	if v {
		en.marks.Add(MarkFocusable)
	} else {
		en.marks.Remove(MarkFocusable)
	}
}

func (en *EmbedNode) Focusable() bool {
	return en.HasAnyMarks(MarkFocusable) && en.Visible()
}

func (en *EmbedNode) HasFocus() bool {
	return en.HasAnyMarks(MarkFocused)
}

// Requests the keyboard focus to the focus manager of the tree root. Returns false if the node is not in a tree with a focus manager, or if the focus could not be given (ex: modal focus held elsewhere).
func (en *EmbedNode) RequestFocus() bool {
	fc, ok := en.root().(FocusContext)
	if !ok || en.Wrapper == nil {
		return false
	}
	return fc.FocusManager().RequestFocus(en.Wrapper)
}

//----------

// Sets the layout manager of the childs. Replacing a layout detaches the previous one.
func (en *EmbedNode) SetLayout(l Layout) {
	if en.layout == l {
		return
	}
	if en.layout != nil {
		en.layout.SetTarget(nil)
	}
	en.layout = l
	if l != nil {
		l.SetTarget(en)
	}
	en.MarkNeedsLayout()
}

func (en *EmbedNode) Layouter() Layout {
	return en.layout
}

//----------

func (en *EmbedNode) Measure(wc, hc SizeConstraint) MeasureResult {
	if en.layout != nil {
		return en.layout.Measure(wc, hc)
	}
	var max image.Point
	var mr MeasureResult
	en.IterateWrappers2(func(c Node) {
		if !c.Embed().Visible() {
			return
		}
		m := c.Measure(wc, hc)
		max = imageutil.MaxPoint(max, m.Size)
		mr.AddTooSmall(m)
	})
	mr2 := MakeMeasureResult(max, wc, hc)
	mr2.AddTooSmall(mr)
	return mr2
}

func (en *EmbedNode) MinSizeHint() image.Point {
	if en.layout != nil {
		return en.layout.MinSizeHint()
	}
	var max image.Point
	en.IterateWrappers2(func(c Node) {
		if c.Embed().Visible() {
			max = imageutil.MaxPoint(max, c.MinSizeHint())
		}
	})
	return max
}

//----------

func (en *EmbedNode) LayoutMarked() {
	// a layout manager needs to re-layout all childs if one of them changed
	if en.HasAnyMarks(MarkNeedsLayout) ||
		(en.layout != nil && en.HasAnyMarks(MarkChildNeedsLayout)) {
		en.layoutWrapper(en.Bounds)
	} else if en.HasAnyMarks(MarkChildNeedsLayout) {
		en.marks.Remove(MarkChildNeedsLayout)
		en.IterateWrappers2(func(c Node) {
			c.LayoutMarked()
		})
	}
}

func (en *EmbedNode) Layout(r image.Rectangle) {
	if !en.Visible() {
		r = image.Rectangle{}
	}
	old := en.Bounds
	en.Bounds = r
	en.marks.Remove(MarkNeedsLayout | MarkChildNeedsLayout)

	if en.Wrapper != nil {
		en.Wrapper.DoLayout()
	} else {
		en.DoLayout()
	}

	if old.Size() != r.Size() {
		en.Events.RunCallbacks(NodeEvSizeChanged, &NodeBoundsEvent{en, old})
	}
	if old.Min != r.Min {
		en.Events.RunCallbacks(NodeEvPositionChanged, &NodeBoundsEvent{en, old})
	}
}

func (en *EmbedNode) DoLayout() {
	if en.layout != nil {
		en.layout.Layout(en.Bounds)
		return
	}
	en.IterateWrappers2(func(c Node) {
		c.Layout(en.Bounds)
	})
}

func (en *EmbedNode) layoutWrapper(r image.Rectangle) {
	if en.Wrapper != nil {
		en.Wrapper.Layout(r)
	} else {
		en.Layout(r)
	}
}

//----------

func (en *EmbedNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	return false
}

//----------

func (en *EmbedNode) SetTheme(t *Theme) {
	en.theme = t
	en.MarkNeedsLayout() // possible font change
}

func (en *EmbedNode) Theme() *Theme {
	return en.theme
}

//----------

type Marks uint16

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) Mask(u Marks) Marks  { return m & u }
func (m Marks) HasAny(u Marks) bool { return m.Mask(u) > 0 }

//----------

const (
	MarkNeedsLayout Marks = 1 << iota
	MarkChildNeedsLayout

	MarkPointerInside // mouseEnter/mouseLeave events
	MarkNotDraggable  // won't emit mouseDrag events

	MarkForceZeroBounds // sets bounds to zero (aka not visible)

	MarkInBoundsHandlesEvent // helps with layer nodes keep events

	MarkFocusable
	MarkFocused
)

//----------

// Node events ids (EmbedNode.Events).
const (
	NodeEvChildAdded        = iota // ev=*NodeChildEvent
	NodeEvChildRemoved             // ev=*NodeChildEvent
	NodeEvSizeChanged              // ev=*NodeBoundsEvent
	NodeEvPositionChanged          // ev=*NodeBoundsEvent
	NodeEvVisibilityChanged        // ev=*NodeVisibilityEvent

	nodeEvEnd // widgets events ids start here
)

type NodeChildEvent struct {
	Parent *EmbedNode
	Child  Node
}

type NodeBoundsEvent struct {
	Node      *EmbedNode
	OldBounds image.Rectangle
}

type NodeVisibilityEvent struct {
	Node    *EmbedNode
	Visible bool
}
