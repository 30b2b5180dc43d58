package widget

import (
	"image"
)

// Leaf node with a fixed natural size.
type Rectangle struct {
	ENode
	Size    image.Point
	MinSize image.Point // zero uses Size
}

func NewRectangle(size image.Point) *Rectangle {
	r := &Rectangle{Size: size}
	r.SetWrapper(r)
	return r
}

func (r *Rectangle) Measure(wc, hc SizeConstraint) MeasureResult {
	return MakeMeasureResult(r.Size, wc, hc)
}

func (r *Rectangle) MinSizeHint() image.Point {
	if r.MinSize == (image.Point{}) {
		return r.Size
	}
	return r.MinSize
}

// Changes the natural size and requests a new layout.
func (r *Rectangle) SetSize(size image.Point) {
	if r.Size == size {
		return
	}
	r.Size = size
	r.MarkNeedsLayout()
}
