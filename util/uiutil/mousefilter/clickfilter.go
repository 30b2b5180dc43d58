package mousefilter

import (
	"image"

	"github.com/jmigpin/lgui/util/uiutil/event"
)

// Produces click events: a mouse up near the point of the mouse down of the same button.
type ClickFilter struct {
	down     map[event.MouseButton]image.Point
	emitEvFn func(interface{}, image.Point)
}

func NewClickFilter(emitEvFn func(interface{}, image.Point)) *ClickFilter {
	return &ClickFilter{
		down:     map[event.MouseButton]image.Point{},
		emitEvFn: emitEvFn,
	}
}

func (clickf *ClickFilter) Filter(ev interface{}) {
	switch t := ev.(type) {
	case *event.MouseDown:
		clickf.down[t.Button] = t.Point
	case *event.MouseUp:
		clickf.up(t)
	case *event.MouseMove:
		clickf.move(t)
	}
}

func (clickf *ClickFilter) up(ev *event.MouseUp) {
	p, ok := clickf.down[ev.Button]
	if !ok {
		return
	}
	delete(clickf.down, ev.Button)

	// must be clicked within a margin
	if DetectMove(p, ev.Point) {
		return
	}
	ev2 := &event.MouseClick{Point: ev.Point, Button: ev.Button, Mods: ev.Mods}
	clickf.emitEvFn(ev2, ev.Point)
}

func (clickf *ClickFilter) move(ev *event.MouseMove) {
	for b, p := range clickf.down {
		// clear if moved outside move detection margins
		if DetectMove(p, ev.Point) {
			delete(clickf.down, b)
		}
	}
}
