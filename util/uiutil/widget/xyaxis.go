package widget

import "image"

// Allows calculations to be done X oriented, and have it translated to Y axis.
// Usefull for layouts that want to layout elements in a vertical or horizontal
// direction depending on a flag.
type XYAxis struct {
	YAxis bool
}

func (xy XYAxis) Point(p image.Point) image.Point {
	if xy.YAxis {
		return image.Point{p.Y, p.X}
	}
	return p
}

func (xy XYAxis) Rectangle(r image.Rectangle) image.Rectangle {
	if xy.YAxis {
		return image.Rectangle{xy.Point(r.Min), xy.Point(r.Max)}
	}
	return r
}

// Constraints ordered as (main axis, cross axis).
func (xy XYAxis) Constraints(wc, hc SizeConstraint) (SizeConstraint, SizeConstraint) {
	if xy.YAxis {
		return hc, wc
	}
	return wc, hc
}

// Measures the element with constraints given in (main, cross) order, and returns the result in (main, cross) order.
func (xy XYAxis) Measure(e Element, mc, cc SizeConstraint) MeasureResult {
	wc, hc := xy.Constraints(mc, cc)
	mr := e.Measure(wc, hc)
	return xy.Result(mr)
}

func (xy XYAxis) Result(mr MeasureResult) MeasureResult {
	if xy.YAxis {
		mr.Size = xy.Point(mr.Size)
		mr.TooSmallX, mr.TooSmallY = mr.TooSmallY, mr.TooSmallX
	}
	return mr
}

func (xy XYAxis) Margins(m Margins) Margins {
	if xy.YAxis {
		return Margins{Left: m.Top, Top: m.Left, Right: m.Bottom, Bottom: m.Right}
	}
	return m
}
