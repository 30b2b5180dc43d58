package widget

import (
	"image"

	"github.com/pkg/errors"
)

// Places the items left to right, wrapping into a new line when the width is exhausted. Each line is as tall as its tallest item.
type FlowLayout struct {
	LayoutBase
	HSpacing, VSpacing int

	items []*LayoutItem
	lines []flowLine // from the last pass
}

type flowLine struct {
	first, end int // items range
	height     int
}

func NewFlowLayout() *FlowLayout {
	fl := &FlowLayout{}
	fl.LayoutBase.init(fl)
	return fl
}

//----------

func (fl *FlowLayout) AddItem(e Element) (*LayoutItem, error) {
	if fl.Item(e) != nil {
		return nil, errors.Wrapf(ErrItemExists, "%T", e)
	}
	it := NewLayoutItem(e)
	fl.items = append(fl.items, it)
	fl.registerItem(it)
	return it, nil
}

func (fl *FlowLayout) Remove(e Element) error {
	i := fl.index(e)
	if i < 0 {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	fl.removeIndex(i, true)
	return nil
}

func (fl *FlowLayout) removeItem(e Element) {
	if i := fl.index(e); i >= 0 {
		fl.removeIndex(i, false)
	}
}

func (fl *FlowLayout) removeIndex(i int, detach bool) {
	it := fl.items[i]
	fl.items = append(fl.items[:i], fl.items[i+1:]...)
	fl.unregisterItem(it, detach)
}

func (fl *FlowLayout) RemoveAll() {
	for len(fl.items) > 0 {
		fl.removeIndex(len(fl.items)-1, true)
	}
}

func (fl *FlowLayout) Len() int {
	return len(fl.items)
}

func (fl *FlowLayout) Item(e Element) *LayoutItem {
	if i := fl.index(e); i >= 0 {
		return fl.items[i]
	}
	return nil
}

func (fl *FlowLayout) index(e Element) int {
	for i, it := range fl.items {
		if it.Elem == e {
			return i
		}
	}
	return -1
}

func (fl *FlowLayout) iterItems(fn func(*LayoutItem)) {
	for _, it := range fl.items {
		fn(it)
	}
}

//----------

func (fl *FlowLayout) Measure(wc, hc SizeConstraint) MeasureResult {
	return fl.calc(wc, hc)
}

// Widest item, the flow can always wrap the others.
func (fl *FlowLayout) MinSizeHint() image.Point {
	var size image.Point
	for _, it := range fl.items {
		if !it.Visible() {
			continue
		}
		m := it.MinSizeHint()
		size.X = max(size.X, m.X)
		size.Y = max(size.Y, m.Y)
	}
	return size
}

func (fl *FlowLayout) Layout(r image.Rectangle) {
	if !fl.beginLayout() {
		return
	}
	defer fl.endLayout()

	fl.calc(SCExactly(r.Dx()), SCExactly(r.Dy()))

	y := r.Min.Y
	for _, l := range fl.lines {
		x := r.Min.X
		for _, it := range fl.items[l.first:l.end] {
			if !it.Visible() {
				it.Layout(image.Rectangle{})
				continue
			}
			w := it.Measured().Size.X
			it.Layout(image.Rect(x, y, x+w, y+l.height))
			x += w + fl.HSpacing
		}
		y += l.height + fl.VSpacing
	}
}

//----------

// Measures the items and breaks them into lines.
func (fl *FlowLayout) calc(wc, hc SizeConstraint) MeasureResult {
	fl.lines = fl.lines[:0]
	wc2 := wc.Loosen()
	hc2 := hc.Loosen()

	var res MeasureResult
	var size image.Point
	line := flowLine{}
	x := 0 // next x in the line
	n := 0 // visible items in the line

	endLine := func(i int) {
		line.end = i
		fl.lines = append(fl.lines, line)
		size.X = max(size.X, x)
		if len(fl.lines) > 1 {
			size.Y += fl.VSpacing
		}
		size.Y += line.height
		line = flowLine{first: i}
		x, n = 0, 0
	}

	for i, it := range fl.items {
		if !it.Visible() {
			it.Measure(wc2, hc2) // resets the measured size
			continue
		}
		mr := it.Measure(wc2, hc2)
		w := mr.Size.X
		sp := 0
		if n > 0 {
			sp = fl.HSpacing
		}
		if n > 0 && wc.Limited() && x+sp+w > wc.Value {
			endLine(i)
			sp = 0
		}
		x += sp + w
		n++
		line.height = max(line.height, mr.Size.Y)
		res.AddTooSmall(mr)
	}
	endLine(len(fl.items))

	mr := MakeMeasureResult(size, wc, hc)
	mr.AddTooSmall(res)
	return mr
}
