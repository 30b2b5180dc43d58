package widget

import (
	"image"

	"github.com/pkg/errors"
)

// Stacks the items over the whole layout rectangle, each placed by its own alignment (ex: a centered dialog over a background).
type AlignLayout struct {
	LayoutBase
	items []*LayoutItem
}

func NewAlignLayout() *AlignLayout {
	al := &AlignLayout{}
	al.LayoutBase.init(al)
	return al
}

//----------

func (al *AlignLayout) AddItem(e Element, align Alignment) (*LayoutItem, error) {
	if al.Item(e) != nil {
		return nil, errors.Wrapf(ErrItemExists, "%T", e)
	}
	it := &LayoutItem{Elem: e, Align: align}
	al.items = append(al.items, it)
	al.registerItem(it)
	return it, nil
}

func (al *AlignLayout) SetAlignment(e Element, align Alignment) error {
	it := al.Item(e)
	if it == nil {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	it.Align = align
	al.RequestLayout()
	return nil
}

func (al *AlignLayout) Remove(e Element) error {
	i := al.index(e)
	if i < 0 {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	al.removeIndex(i, true)
	return nil
}

func (al *AlignLayout) removeItem(e Element) {
	if i := al.index(e); i >= 0 {
		al.removeIndex(i, false)
	}
}

func (al *AlignLayout) removeIndex(i int, detach bool) {
	it := al.items[i]
	al.items = append(al.items[:i], al.items[i+1:]...)
	al.unregisterItem(it, detach)
}

func (al *AlignLayout) RemoveAll() {
	for len(al.items) > 0 {
		al.removeIndex(len(al.items)-1, true)
	}
}

func (al *AlignLayout) Len() int {
	return len(al.items)
}

func (al *AlignLayout) Item(e Element) *LayoutItem {
	if i := al.index(e); i >= 0 {
		return al.items[i]
	}
	return nil
}

func (al *AlignLayout) index(e Element) int {
	for i, it := range al.items {
		if it.Elem == e {
			return i
		}
	}
	return -1
}

func (al *AlignLayout) iterItems(fn func(*LayoutItem)) {
	for _, it := range al.items {
		fn(it)
	}
}

//----------

func (al *AlignLayout) Measure(wc, hc SizeConstraint) MeasureResult {
	wc2, hc2 := wc.Loosen(), hc.Loosen()
	var size image.Point
	var res MeasureResult
	for _, it := range al.items {
		mr := it.Measure(wc2, hc2)
		size.X = max(size.X, mr.Size.X)
		size.Y = max(size.Y, mr.Size.Y)
		res.AddTooSmall(mr)
	}
	mr := MakeMeasureResult(size, wc, hc)
	mr.AddTooSmall(res)
	return mr
}

func (al *AlignLayout) MinSizeHint() image.Point {
	var size image.Point
	for _, it := range al.items {
		m := it.MinSizeHint()
		size.X = max(size.X, m.X)
		size.Y = max(size.Y, m.Y)
	}
	return size
}

func (al *AlignLayout) Layout(r image.Rectangle) {
	if !al.beginLayout() {
		return
	}
	defer al.endLayout()

	wc, hc := SCMaximum(r.Dx()), SCMaximum(r.Dy())
	for _, it := range al.items {
		it.Measure(wc, hc)
		it.Layout(r)
	}
}
