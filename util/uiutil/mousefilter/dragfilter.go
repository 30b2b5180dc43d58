package mousefilter

import (
	"image"

	"github.com/jmigpin/lgui/util/uiutil/event"
)

// Produces mousedrag* events. Keeps track of the first mouse button used.
type DragFilter struct {
	pressEv  *event.MouseDown
	dragging bool
	emitEvFn func(interface{}, image.Point)
}

func NewDragFilter(emitEvFn func(interface{}, image.Point)) *DragFilter {
	return &DragFilter{emitEvFn: emitEvFn}
}

func (dragf *DragFilter) Filter(ev interface{}) {
	switch t := ev.(type) {
	case *event.MouseDown:
		if dragf.pressEv == nil {
			dragf.pressEv = t
		}
	case *event.MouseMove:
		dragf.startOrMove(t)
	case *event.MouseUp:
		dragf.end(t)
	}
}

func (dragf *DragFilter) startOrMove(ev *event.MouseMove) {
	if dragf.pressEv == nil {
		return
	}
	if !dragf.dragging {
		if DetectMove(dragf.pressEv.Point, ev.Point) {
			dragf.dragging = true
			start := dragf.pressEv.Point
			ev2 := &event.MouseDragStart{Point: start, Button: dragf.pressEv.Button, Mods: ev.Mods}
			dragf.emitEvFn(ev2, start)
		}
		return
	}
	ev2 := &event.MouseDragMove{Point: ev.Point, Buttons: ev.Buttons, Mods: ev.Mods}
	dragf.emitEvFn(ev2, ev.Point)
}

func (dragf *DragFilter) end(ev *event.MouseUp) {
	if dragf.pressEv == nil || ev.Button != dragf.pressEv.Button {
		return
	}
	if dragf.dragging {
		ev2 := &event.MouseDragEnd{Point: ev.Point, Button: ev.Button, Mods: ev.Mods}
		dragf.emitEvFn(ev2, ev.Point)
	}
	// reset
	dragf.pressEv = nil
	dragf.dragging = false
}

func (dragf *DragFilter) Dragging() bool {
	return dragf.dragging
}
