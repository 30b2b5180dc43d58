package widget

import (
	"image"

	"github.com/pkg/errors"
)

// Places the items in a row (or column if YAxis). Items with a stretch factor share the space left by the others, in proportion to their factor.
type BoxLayout struct {
	LayoutBase
	YAxis   bool
	Spacing int // between visible items

	items []*BoxLayoutItem
}

func NewBoxLayout(yAxis bool) *BoxLayout {
	bl := &BoxLayout{YAxis: yAxis}
	bl.LayoutBase.init(bl)
	return bl
}

func NewHBoxLayout() *BoxLayout { return NewBoxLayout(false) }
func NewVBoxLayout() *BoxLayout { return NewBoxLayout(true) }

//----------

type BoxLayoutItem struct {
	LayoutItem
	Stretch int // zero keeps the measured size

	main int // size along the main axis from the last pass
}

//----------

func (bl *BoxLayout) AddItem(e Element, stretch int) (*BoxLayoutItem, error) {
	if bl.Item(e) != nil {
		return nil, errors.Wrapf(ErrItemExists, "%T", e)
	}
	if stretch < 0 {
		return nil, errors.Wrapf(ErrBadConstraintArg, "negative stretch: %v", stretch)
	}
	it := &BoxLayoutItem{LayoutItem: LayoutItem{Elem: e}, Stretch: stretch}
	bl.items = append(bl.items, it)
	bl.registerItem(&it.LayoutItem)
	return it, nil
}

func (bl *BoxLayout) SetStretch(e Element, stretch int) error {
	it := bl.Item(e)
	if it == nil {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	if stretch < 0 {
		return errors.Wrapf(ErrBadConstraintArg, "negative stretch: %v", stretch)
	}
	it.Stretch = stretch
	bl.RequestLayout()
	return nil
}

func (bl *BoxLayout) Remove(e Element) error {
	i := bl.index(e)
	if i < 0 {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	bl.removeIndex(i, true)
	return nil
}

func (bl *BoxLayout) removeItem(e Element) {
	if i := bl.index(e); i >= 0 {
		bl.removeIndex(i, false)
	}
}

func (bl *BoxLayout) removeIndex(i int, detach bool) {
	it := bl.items[i]
	bl.items = append(bl.items[:i], bl.items[i+1:]...)
	bl.unregisterItem(&it.LayoutItem, detach)
}

func (bl *BoxLayout) RemoveAll() {
	for len(bl.items) > 0 {
		bl.removeIndex(len(bl.items)-1, true)
	}
}

func (bl *BoxLayout) Len() int {
	return len(bl.items)
}

func (bl *BoxLayout) Item(e Element) *BoxLayoutItem {
	if i := bl.index(e); i >= 0 {
		return bl.items[i]
	}
	return nil
}

func (bl *BoxLayout) index(e Element) int {
	for i, it := range bl.items {
		if it.Elem == e {
			return i
		}
	}
	return -1
}

func (bl *BoxLayout) iterItems(fn func(*LayoutItem)) {
	for _, it := range bl.items {
		fn(&it.LayoutItem)
	}
}

//----------

func (bl *BoxLayout) Measure(wc, hc SizeConstraint) MeasureResult {
	return bl.calc(wc, hc)
}

func (bl *BoxLayout) MinSizeHint() image.Point {
	xya := XYAxis{bl.YAxis}
	var size image.Point
	n := 0
	for _, it := range bl.items {
		if !it.Visible() {
			continue
		}
		m := xya.Point(it.MinSizeHint())
		size.X += m.X
		size.Y = max(size.Y, m.Y)
		n++
	}
	if n > 1 {
		size.X += bl.Spacing * (n - 1)
	}
	return xya.Point(size)
}

func (bl *BoxLayout) Layout(r image.Rectangle) {
	if !bl.beginLayout() {
		return
	}
	defer bl.endLayout()

	bl.calc(SCExactly(r.Dx()), SCExactly(r.Dy()))

	xya := XYAxis{bl.YAxis}
	r2 := xya.Rectangle(r)
	x := r2.Min.X
	for _, it := range bl.items {
		if !it.Visible() {
			it.LayoutItem.Layout(image.Rectangle{})
			continue
		}
		a := image.Rect(x, r2.Min.Y, x+it.main, r2.Max.Y)
		it.LayoutItem.Layout(xya.Rectangle(a))
		x += it.main + bl.Spacing
	}
}

//----------

// Sets the items main sizes. Stretch factors only apply when the main size is exact.
func (bl *BoxLayout) calc(wc, hc SizeConstraint) MeasureResult {
	xya := XYAxis{bl.YAxis}
	mc, cc := xya.Constraints(wc, hc)
	cc2 := cc.Loosen()

	n, totalStretch := 0, 0
	var lastStretch *BoxLayoutItem
	for _, it := range bl.items {
		it.main = 0
		if !it.Visible() {
			continue
		}
		n++
		if it.Stretch > 0 {
			totalStretch += it.Stretch
			lastStretch = it
		}
	}
	stretching := totalStretch > 0 && mc.Mode == Exactly

	used := 0
	if n > 1 {
		used = bl.Spacing * (n - 1)
	}
	var res MeasureResult // main/cross order
	cross := 0

	// non stretching items first to get the remaining space
	for _, it := range bl.items {
		if !it.Visible() || (stretching && it.Stretch > 0) {
			continue
		}
		mr := xya.Measure(&it.LayoutItem, mc.Sub(used).Loosen(), cc2)
		it.main = mr.Size.X
		used += it.main
		cross = max(cross, mr.Size.Y)
		res.AddTooSmall(mr)
	}

	if stretching {
		avail := max(mc.Value-used, 0)
		given := 0
		for _, it := range bl.items {
			if !it.Visible() || it.Stretch == 0 {
				continue
			}
			share := avail * it.Stretch / totalStretch
			// correct rounding errors on last item
			if it == lastStretch {
				share = avail - given
			}
			given += share
			mr := xya.Measure(&it.LayoutItem, SCExactly(share), cc2)
			it.main = share
			used += share
			cross = max(cross, mr.Size.Y)
			res.AddTooSmall(mr)
		}
	}

	res = xya.Result(res)
	mr := MakeMeasureResult(xya.Point(image.Point{used, cross}), wc, hc)
	mr.AddTooSmall(res)
	return mr
}
