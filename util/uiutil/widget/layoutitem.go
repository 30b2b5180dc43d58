package widget

import (
	"image"

	"github.com/jmigpin/lgui/util/evreg"
	"github.com/jmigpin/lgui/util/imageutil"
)

// An element of a layout: either a widget (Node) or a nested Layout.
type Element interface {
	Measure(wc, hc SizeConstraint) MeasureResult
	MinSizeHint() image.Point
	Layout(r image.Rectangle)
}

//----------

// Wraps one layout element with margins, alignment, and the rectangle allotted by the layout.
type LayoutItem struct {
	Elem    Element
	Margins Margins
	Align   Alignment

	allotted image.Rectangle
	measured MeasureResult
	regs     evreg.Unregister // element listeners, removed when the item leaves the layout
}

func NewLayoutItem(e Element) *LayoutItem {
	return &LayoutItem{Elem: e}
}

func (it *LayoutItem) Visible() bool {
	if n, ok := it.Elem.(Node); ok {
		return n.Embed().Visible()
	}
	return true
}

func (it *LayoutItem) Measure(wc, hc SizeConstraint) MeasureResult {
	if !it.Visible() {
		it.measured = MeasureResult{}
		return it.measured
	}
	ms := it.Margins.Size()
	mr := it.Elem.Measure(wc.Sub(ms.X), hc.Sub(ms.Y))
	mr2 := MakeMeasureResult(mr.Size.Add(ms), wc, hc)
	mr2.AddTooSmall(mr)
	it.measured = mr2
	return mr2
}

func (it *LayoutItem) MinSizeHint() image.Point {
	if !it.Visible() {
		return image.Point{}
	}
	return it.Elem.MinSizeHint().Add(it.Margins.Size())
}

// Last measured size (including margins).
func (it *LayoutItem) Measured() MeasureResult {
	return it.measured
}

func (it *LayoutItem) Layout(r image.Rectangle) {
	it.allotted = r
	if !it.Visible() {
		it.Elem.Layout(image.Rectangle{})
		return
	}
	m := &it.Margins
	inner := imageutil.InsetRect(r, m.Left, m.Top, m.Right, m.Bottom)

	// align the measured size inside the inner rectangle
	ms := imageutil.ClampPointToZero(it.measured.Size.Sub(m.Size()))
	x0, x1 := it.Align.X.place(inner.Min.X, inner.Max.X, ms.X)
	y0, y1 := it.Align.Y.place(inner.Min.Y, inner.Max.Y, ms.Y)
	it.Elem.Layout(image.Rect(x0, y0, x1, y1))
}

func (it *LayoutItem) Allotted() image.Rectangle {
	return it.allotted
}

//----------

type Margins struct {
	Left, Top, Right, Bottom int
}

func (m Margins) Size() image.Point {
	return image.Point{m.Left + m.Right, m.Top + m.Bottom}
}

func MarginsAll(v int) Margins {
	return Margins{v, v, v, v}
}

//----------

type AlignMode uint8

const (
	AlignStretch AlignMode = iota // fill the allotted space (zero value)
	AlignStart
	AlignCenter
	AlignEnd
)

func (am AlignMode) place(min, max, size int) (int, int) {
	avail := max - min
	if am == AlignStretch || size >= avail {
		return min, max
	}
	switch am {
	case AlignCenter:
		x := min + (avail-size)/2
		return x, x + size
	case AlignEnd:
		return max - size, max
	default:
		return min, min + size
	}
}

type Alignment struct {
	X, Y AlignMode
}
