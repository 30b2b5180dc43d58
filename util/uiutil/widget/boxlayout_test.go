package widget

import (
	"image"
	"testing"

	"github.com/pkg/errors"
)

func TestBoxLayout1(t *testing.T) {
	s1 := image.Point{5, 5}
	r1, r2, r3, r4 := NewRectangle(s1), NewRectangle(s1), NewRectangle(s1), NewRectangle(s1)

	l1 := NewHBoxLayout()
	c := newContainer(l1)
	for _, r := range []*Rectangle{r1, r2, r3, r4} {
		if _, err := l1.AddItem(r, 0); err != nil {
			t.Fatal(err)
		}
	}
	c.Layout(image.Rect(0, 0, 100, 5))
	if !(r1.Bounds == image.Rect(0, 0, 5, 5) &&
		r2.Bounds == image.Rect(5, 0, 10, 5) &&
		r3.Bounds == image.Rect(10, 0, 15, 5) &&
		r4.Bounds == image.Rect(15, 0, 20, 5)) {
		t.Log(r1.Bounds, r2.Bounds, r3.Bounds, r4.Bounds)
		t.Fatal()
	}

	if err := l1.SetStretch(r2, 1); err != nil {
		t.Fatal(err)
	}
	c.LayoutMarked()
	if !(r1.Bounds == image.Rect(0, 0, 5, 5) &&
		r2.Bounds == image.Rect(5, 0, 90, 5) &&
		r3.Bounds == image.Rect(90, 0, 95, 5) &&
		r4.Bounds == image.Rect(95, 0, 100, 5)) {
		t.Log(r1.Bounds, r2.Bounds, r3.Bounds, r4.Bounds)
		t.Fatal()
	}

	for _, r := range []*Rectangle{r1, r2, r3, r4} {
		if err := l1.SetStretch(r, 1); err != nil {
			t.Fatal(err)
		}
	}
	c.LayoutMarked()
	if !(r1.Bounds == image.Rect(0, 0, 25, 5) &&
		r2.Bounds == image.Rect(25, 0, 50, 5) &&
		r3.Bounds == image.Rect(50, 0, 75, 5) &&
		r4.Bounds == image.Rect(75, 0, 100, 5)) {
		t.Log(r1.Bounds, r2.Bounds, r3.Bounds, r4.Bounds)
		t.Fatal()
	}

	// stretch is ignored when the size is not exact
	m := l1.Measure(SCMaximum(100), SCNoLimit())
	if m.Size != (image.Point{20, 5}) || m.TooSmall() {
		t.Fatal(m)
	}
}

func TestBoxLayout2(t *testing.T) {
	r1 := NewRectangle(image.Point{10, 5})
	r2 := NewRectangle(image.Point{10, 7})

	l1 := NewVBoxLayout()
	l1.Spacing = 2
	c := newContainer(l1)
	l1.AddItem(r1, 0)
	l1.AddItem(r2, 0)

	m := l1.Measure(SCNoLimit(), SCNoLimit())
	if m.Size != (image.Point{10, 14}) {
		t.Fatal(m)
	}

	c.Layout(image.Rect(0, 0, 20, 30))
	if !(r1.Bounds == image.Rect(0, 0, 20, 5) &&
		r2.Bounds == image.Rect(0, 7, 20, 14)) {
		t.Log(r1.Bounds, r2.Bounds)
		t.Fatal()
	}

	// cross alignment
	l1.Item(r1).Align = Alignment{X: AlignCenter}
	c.Layout(image.Rect(0, 0, 20, 30))
	if r1.Bounds != image.Rect(5, 0, 15, 5) {
		t.Fatal(r1.Bounds)
	}
}

func TestBoxLayoutRemainder(t *testing.T) {
	s1 := image.Point{1, 5}
	r1, r2, r3 := NewRectangle(s1), NewRectangle(s1), NewRectangle(s1)
	l1 := NewHBoxLayout()
	c := newContainer(l1)
	l1.AddItem(r1, 1)
	l1.AddItem(r2, 1)
	l1.AddItem(r3, 1)

	c.Layout(image.Rect(0, 0, 100, 5))
	if !(r1.Bounds == image.Rect(0, 0, 33, 5) &&
		r2.Bounds == image.Rect(33, 0, 66, 5) &&
		r3.Bounds == image.Rect(66, 0, 100, 5)) {
		t.Log(r1.Bounds, r2.Bounds, r3.Bounds)
		t.Fatal()
	}
}

func TestBoxLayoutHidden(t *testing.T) {
	s1 := image.Point{5, 5}
	r1, r2, r3 := NewRectangle(s1), NewRectangle(s1), NewRectangle(s1)
	l1 := NewHBoxLayout()
	l1.Spacing = 2
	c := newContainer(l1)
	l1.AddItem(r1, 0)
	l1.AddItem(r2, 0)
	l1.AddItem(r3, 0)

	c.Layout(image.Rect(0, 0, 100, 5))
	r2.SetVisible(false)
	if !c.TreeNeedsLayout() {
		t.Fatal("expecting layout mark")
	}
	c.LayoutMarked()
	if !(r1.Bounds == image.Rect(0, 0, 5, 5) &&
		r2.Bounds == image.Rectangle{} &&
		r3.Bounds == image.Rect(7, 0, 12, 5)) {
		t.Log(r1.Bounds, r2.Bounds, r3.Bounds)
		t.Fatal()
	}
}

func TestBoxLayoutTooSmall(t *testing.T) {
	s1 := image.Point{5, 5}
	l1 := NewHBoxLayout()
	l1.AddItem(NewRectangle(s1), 0)
	l1.AddItem(NewRectangle(s1), 0)

	m := l1.Measure(SCMaximum(8), SCNoLimit())
	if m.Size != (image.Point{8, 5}) || !m.TooSmallX || m.TooSmallY {
		t.Fatal(m)
	}
	m = l1.Measure(SCNoLimit(), SCMaximum(3))
	if m.Size != (image.Point{10, 3}) || m.TooSmallX || !m.TooSmallY {
		t.Fatal(m)
	}
}

func TestBoxLayoutMinSizeHint(t *testing.T) {
	r1 := NewRectangle(image.Point{5, 5})
	r1.MinSize = image.Point{2, 3}
	r2 := NewRectangle(image.Point{5, 5})
	l1 := NewHBoxLayout()
	l1.Spacing = 1
	l1.AddItem(r1, 0)
	l1.AddItem(r2, 0)
	if p := l1.MinSizeHint(); p != (image.Point{8, 5}) {
		t.Fatal(p)
	}
}

func TestBoxLayoutErrors(t *testing.T) {
	r1 := NewRectangle(image.Point{5, 5})
	r2 := NewRectangle(image.Point{5, 5})
	l1 := NewHBoxLayout()
	c := newContainer(l1)
	if _, err := l1.AddItem(r1, -1); errors.Cause(err) != ErrBadConstraintArg {
		t.Fatal(err)
	}
	if _, err := l1.AddItem(r1, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := l1.AddItem(r1, 0); errors.Cause(err) != ErrItemExists {
		t.Fatal(err)
	}
	if err := l1.SetStretch(r2, 1); errors.Cause(err) != ErrItemNotFound {
		t.Fatal(err)
	}
	if err := l1.Remove(r2); errors.Cause(err) != ErrItemNotFound {
		t.Fatal(err)
	}
	if err := l1.Remove(r1); err != nil {
		t.Fatal(err)
	}
	if l1.Len() != 0 || c.ChildsLen() != 0 {
		t.Fatal(l1.Len(), c.ChildsLen())
	}
}
