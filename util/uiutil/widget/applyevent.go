package widget

import (
	"image"

	"github.com/jmigpin/lgui/util/uiutil/event"
)

// Dispatches input events to a tree. Pointer events go depth first to the deepest node under the point (later childs first, they are over the previous ones). Key events go to the focused node and bubble up to its ancestors. With modal focus, only the modal subtree gets events.
type ApplyEvent struct {
	fm   *FocusManager // optional
	drag AEDragState
}

func NewApplyEvent(fm *FocusManager) *ApplyEvent {
	return &ApplyEvent{fm: fm}
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	scope := ae.scope(node)

	if !ae.drag.dragging {
		ae.mouseEnterLeave(node, scope, p)
	}

	switch evt := ev.(type) {
	case nil: // allow running the rest of the function without an event
	case *event.MouseDown:
		ae.focusAt(scope, p)
		ae.depthFirstEv(scope, evt, p)
	case *event.MouseMove:
		ae.depthFirstEv(scope, evt, p)
	case *event.MouseUp:
		ae.depthFirstEv(scope, evt, p)
	case *event.MouseDragStart:
		ae.dragStart(scope, evt)
		if ae.drag.dragging {
			ae.mouseEnterLeave(node, scope, ae.drag.startEv.Point)
		}
	case *event.MouseDragMove:
		ae.dragMove(evt, p)
	case *event.MouseDragEnd:
		ae.dragEnd(evt, p)
		if !ae.drag.dragging {
			ae.mouseEnterLeave(node, scope, p)
		}
	case *event.KeyDown:
		if !ae.keyEv(evt, p) && ae.fm != nil {
			ae.fm.handleKey(evt)
		}
	case *event.KeyUp:
		ae.keyEv(evt, p)
	case *event.DndPosition:
		if !ae.depthFirstEv(scope, evt, p) && evt.Reply != nil {
			evt.Reply(event.DndADeny)
		}
	case *event.DndDrop:
		if !ae.depthFirstEv(scope, evt, p) && evt.ReplyAccept != nil {
			evt.ReplyAccept(false)
		}
	default:
		ae.depthFirstEv(scope, evt, p)
	}
}

func (ae *ApplyEvent) scope(node Node) Node {
	if ae.fm != nil {
		if m := ae.fm.ModalFocus(); m != nil {
			return m
		}
	}
	return node
}

//----------

func (ae *ApplyEvent) mouseEnterLeave(node, scope Node, p image.Point) {
	ae.mouseLeave(node, scope.Embed(), p) // run leave first
	ae.mouseEnter(scope, p)
}

//----------

func (ae *ApplyEvent) mouseEnter(node Node, p image.Point) event.Handled {
	ne := node.Embed()

	if !p.In(ne.Bounds) {
		return false
	}

	// execute on childs
	h := event.Handled(false)
	// later childs are drawn over previous ones, run loop backwards
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseEnter(c, p)
		return h == false // continue while not handled
	})

	// execute on node
	if !h {
		if !ne.HasAnyMarks(MarkPointerInside) {
			ne.AddMarks(MarkPointerInside)
			h = ae.runEv(node, &event.MouseEnter{}, p)
		}
	}

	if ne.HasAnyMarks(MarkInBoundsHandlesEvent) {
		h = true
	}

	return h
}

//----------

// Nodes outside the scope are left as if the pointer was outside.
func (ae *ApplyEvent) mouseLeave(node Node, scope *EmbedNode, p image.Point) event.Handled {
	ne := node.Embed()

	// execute on childs
	h := event.Handled(false)
	// later childs are drawn over previous ones, run loop backwards
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseLeave(c, scope, p)
		return h == false // continue while not handled
	})

	// execute on node
	if !h {
		outside := !p.In(ne.Bounds) || !scope.IsAncestorOf(ne)
		if ne.HasAnyMarks(MarkPointerInside) && outside {
			ne.RemoveMarks(MarkPointerInside)
			h = ae.runEv(node, &event.MouseLeave{}, p)
		}
	}

	return h
}

//----------

// Gives the focus to the deepest focusable node under the point.
func (ae *ApplyEvent) focusAt(node Node, p image.Point) bool {
	if ae.fm == nil {
		return false
	}
	ne := node.Embed()
	if !p.In(ne.Bounds) || !ne.Visible() {
		return false
	}
	found := false
	ne.IterateWrappersReverse(func(c Node) bool {
		found = ae.focusAt(c, p)
		return !found
	})
	if !found && ne.Focusable() {
		found = ae.fm.RequestFocus(node)
	}
	return found
}

//----------

// Runs on the focused node and its ancestors until handled.
func (ae *ApplyEvent) keyEv(ev interface{}, p image.Point) event.Handled {
	if ae.fm == nil || ae.fm.Focused() == nil {
		return false
	}
	stop := ae.fm.ModalFocus()
	for n := ae.fm.Focused().Embed(); n != nil; n = n.Parent {
		if n.Wrapper != nil && ae.runEv(n.Wrapper, ev, p) {
			return true
		}
		if stop != nil && n == stop.Embed() {
			break // don't bubble out of the modal
		}
	}
	return false
}

//----------

func (ae *ApplyEvent) dragStart(node Node, ev *event.MouseDragStart) {
	if ae.drag.dragging {
		return
	}
	// use the starting point, not the current point
	ae.findDragNode(node, ev, ev.Point)
}

// Depth first, reverse order.
func (ae *ApplyEvent) findDragNode(node Node, ev *event.MouseDragStart, p image.Point) bool {
	if !p.In(node.Embed().Bounds) {
		return false
	}

	// execute on childs
	found := false
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		found = ae.findDragNode(c, ev, p)
		return !found // continue while not found
	})

	if !found {
		// deepest node
		canDrag := !node.Embed().HasAnyMarks(MarkNotDraggable)
		if canDrag {
			ae.drag.dragging = true
			ae.drag.startEv = ev
			ae.drag.node = node
			ae.runEv(ae.drag.node, ev, p)
			return true
		}
	}

	return found
}

//----------

func (ae *ApplyEvent) dragMove(ev *event.MouseDragMove, p image.Point) {
	if !ae.drag.dragging {
		return
	}
	ae.runEv(ae.drag.node, ev, p)
}

//----------

func (ae *ApplyEvent) dragEnd(ev *event.MouseDragEnd, p image.Point) {
	if !ae.drag.dragging {
		return
	}
	if ev.Button != ae.drag.startEv.Button {
		return
	}
	ae.runEv(ae.drag.node, ev, p)
	ae.drag = AEDragState{}
}

// Node being dragged, or nil.
func (ae *ApplyEvent) DragNode() Node {
	return ae.drag.node
}

//----------

func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point) event.Handled {
	if !p.In(node.Embed().Bounds) {
		return false
	}

	// execute on childs
	h := event.Handled(false)
	// later childs are drawn over previous ones, run loop backwards
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		h = ae.depthFirstEv(c, ev, p)
		return h == false // continue while not handled
	})

	// execute on node
	if !h {
		h = ae.runEv(node, ev, p)
	}

	if node.Embed().HasAnyMarks(MarkInBoundsHandlesEvent) {
		h = true
	}

	return h
}

//----------

func (ae *ApplyEvent) runEv(node Node, ev interface{}, p image.Point) event.Handled {
	return node.OnInputEvent(ev, p)
}

//----------

type AEDragState struct {
	dragging bool
	startEv  *event.MouseDragStart
	node     Node
}

//----------

// Point carried by the event, if any.
func EventPoint(ev interface{}) (image.Point, bool) {
	switch t := ev.(type) {
	case *event.MouseDown:
		return t.Point, true
	case *event.MouseUp:
		return t.Point, true
	case *event.MouseMove:
		return t.Point, true
	case *event.MouseDragStart:
		return t.Point, true
	case *event.MouseDragMove:
		return t.Point, true
	case *event.MouseDragEnd:
		return t.Point, true
	case *event.MouseClick:
		return t.Point, true
	case *event.KeyDown:
		return t.Point, true
	case *event.KeyUp:
		return t.Point, true
	case *event.DndPosition:
		return t.Point, true
	case *event.DndDrop:
		return t.Point, true
	}
	return image.Point{}, false
}
