package widget

import (
	"image"
	"log/slog"

	"github.com/jmigpin/lgui/util/uiutil/mousefilter"
)

type RootConfig struct {
	Logger *slog.Logger // nil uses slog.Default()
	Theme  *Theme       // nil uses the default font
}

//----------

// Top node of a tree: owns the focus manager and the events dispatch.
type Root struct {
	ENode
	logger *slog.Logger
	fm     *FocusManager
	ae     *ApplyEvent
	clickf *mousefilter.ClickFilter
	dragf  *mousefilter.DragFilter

	pointer image.Point // last event point
}

func NewRoot(cfg RootConfig) *Root {
	r := &Root{logger: cfg.Logger}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.SetWrapper(r)
	r.fm = NewFocusManager(r, r.logger)
	r.ae = NewApplyEvent(r.fm)
	r.clickf = mousefilter.NewClickFilter(r.applyEv)
	r.dragf = mousefilter.NewDragFilter(r.applyEv)
	if cfg.Theme != nil {
		r.SetTheme(cfg.Theme)
	}
	return r
}

func (r *Root) FocusManager() *FocusManager {
	return r.fm
}

func (r *Root) Logger() *slog.Logger {
	return r.logger
}

//----------

// Lays out the whole tree with the new size.
func (r *Root) Resize(size image.Point) {
	r.logger.Debug("resize", "size", size)
	r.Layout(image.Rectangle{Max: size})
}

// Lays out the subtrees marked as needing it. Returns false if nothing was done.
func (r *Root) LayoutMarkedTree() bool {
	if !r.TreeNeedsLayout() {
		return false
	}
	r.LayoutMarked()
	return true
}

//----------

// Dispatches an input event. Events without a point use the last known pointer position. Mouse down/move/up events also produce the click and drag events.
func (r *Root) HandleEvent(ev interface{}) {
	p, ok := EventPoint(ev)
	if ok {
		r.pointer = p
	} else {
		p = r.pointer
	}
	r.applyEv(ev, p)
	r.clickf.Filter(ev)
	r.dragf.Filter(ev)
}

func (r *Root) applyEv(ev interface{}, p image.Point) {
	r.ae.Apply(r, ev, p)
}
