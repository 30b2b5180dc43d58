package imageutil

import "image"

func MaxPoint(p1, p2 image.Point) image.Point {
	if p1.X < p2.X {
		p1.X = p2.X
	}
	if p1.Y < p2.Y {
		p1.Y = p2.Y
	}
	return p1
}

func MinPoint(p1, p2 image.Point) image.Point {
	if p1.X > p2.X {
		p1.X = p2.X
	}
	if p1.Y > p2.Y {
		p1.Y = p2.Y
	}
	return p1
}

// Negative values are set to zero.
func ClampPointToZero(p image.Point) image.Point {
	return MaxPoint(p, image.Point{})
}

//----------

// Shrinks the rectangle by the given amounts. The result is never inverted: if the insets are bigger then the size, the rectangle collapses to an empty rectangle at the start position.
func InsetRect(r image.Rectangle, left, top, right, bottom int) image.Rectangle {
	u := image.Rect(r.Min.X+left, r.Min.Y+top, r.Max.X-right, r.Max.Y-bottom)
	if u.Max.X < u.Min.X {
		u.Max.X = u.Min.X
	}
	if u.Max.Y < u.Min.Y {
		u.Max.Y = u.Min.Y
	}
	return u
}

// Rectangle of the given size at point p.
func RectAt(p, size image.Point) image.Rectangle {
	return image.Rectangle{p, p.Add(size)}
}
