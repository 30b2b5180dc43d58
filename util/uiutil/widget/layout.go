package widget

import (
	"github.com/jmigpin/lgui/util/evreg"
)

// Layout managers position the childs of a target node. Widgets added to a layout are appended to the target; nested layouts share the target of their parent layout.
type Layout interface {
	Element

	Target() *EmbedNode
	SetTarget(t *EmbedNode)
	RequestLayout()
	Invalidate() // drop cached results, the target needs layout
}

// Implemented by the concrete layouts embedding LayoutBase.
type layoutImpl interface {
	Layout
	iterItems(func(*LayoutItem))
	removeItem(e Element) // element was removed from the target by others
}

//----------

// Target bookkeeping shared by the layouts.
type LayoutBase struct {
	impl       layoutImpl
	target     *EmbedNode
	targetRegs evreg.Unregister

	layingOut bool // re-entrancy guard
	detaching Node // being removed from the target by this layout
}

func (lb *LayoutBase) init(impl layoutImpl) {
	lb.impl = impl
}

func (lb *LayoutBase) Target() *EmbedNode {
	return lb.target
}

func (lb *LayoutBase) SetTarget(t *EmbedNode) {
	if lb.target == t {
		return
	}
	if lb.target != nil {
		// unregister first, the removals would otherwise be seen as external
		lb.targetRegs.UnregisterAll()
		lb.impl.iterItems(func(it *LayoutItem) {
			lb.detachFromTarget(it.Elem)
		})
	}
	lb.target = t
	if t != nil {
		lb.targetRegs.Add(t.Events.Add(NodeEvChildRemoved, lb.onTargetChildRemoved))
		lb.impl.iterItems(func(it *LayoutItem) {
			lb.attachToTarget(it.Elem)
		})
		lb.RequestLayout()
	}
}

//----------

// Marks the target as needing layout. Ignored while the layout is running.
func (lb *LayoutBase) RequestLayout() {
	if lb.layingOut {
		return
	}
	if lb.target != nil {
		// the target layout may hold results of this (nested) layout
		if l := lb.target.layout; l != nil {
			l.Invalidate()
		}
		lb.target.MarkNeedsLayout()
	}
}

// Returns false if already laying out.
func (lb *LayoutBase) beginLayout() bool {
	if lb.layingOut {
		return false
	}
	lb.layingOut = true
	return true
}

func (lb *LayoutBase) endLayout() {
	lb.layingOut = false
}

//----------

// Nested layouts keep cached results.
func (lb *LayoutBase) Invalidate() {
	lb.impl.iterItems(func(it *LayoutItem) {
		if l, ok := it.Elem.(Layout); ok {
			l.Invalidate()
		}
	})
}

// Registers the item listeners and attaches the element to the target.
func (lb *LayoutBase) registerItem(it *LayoutItem) {
	if n, ok := it.Elem.(Node); ok {
		ne := n.Embed()
		rl := func(interface{}) { lb.RequestLayout() }
		it.regs.Add(
			ne.Events.Add(NodeEvVisibilityChanged, rl),
			ne.Events.Add(NodeEvSizeChanged, rl),
		)
	}
	lb.attachToTarget(it.Elem)
	lb.RequestLayout()
}

// Unregisters the item listeners. If detach is true, the element is also detached from the target.
func (lb *LayoutBase) unregisterItem(it *LayoutItem, detach bool) {
	it.regs.UnregisterAll()
	if detach {
		lb.detachFromTarget(it.Elem)
	}
	lb.RequestLayout()
}

func (lb *LayoutBase) attachToTarget(e Element) {
	if lb.target == nil {
		return
	}
	switch t := e.(type) {
	case Node:
		if !lb.target.HasChild(t) {
			lb.target.Append(t)
		}
	case Layout:
		t.SetTarget(lb.target)
	}
}

func (lb *LayoutBase) detachFromTarget(e Element) {
	if lb.target == nil {
		return
	}
	switch t := e.(type) {
	case Node:
		if lb.target.HasChild(t) {
			lb.detaching = t
			lb.target.Remove(t)
			lb.detaching = nil
		}
	case Layout:
		t.SetTarget(nil)
	}
}

func (lb *LayoutBase) onTargetChildRemoved(ev interface{}) {
	e := ev.(*NodeChildEvent)
	if e.Child == lb.detaching {
		return
	}
	lb.impl.removeItem(e.Child)
}
