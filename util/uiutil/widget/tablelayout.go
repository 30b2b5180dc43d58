package widget

import (
	"image"

	"github.com/pkg/errors"
)

// Places the items in a grid of cells. Column widths and row heights are the maximum of their items. Columns and rows with a stretch factor share the space left when the size is exact.
type TableLayout struct {
	LayoutBase
	HSpacing, VSpacing int

	items        []*TableLayoutItem
	colStretch   map[int]int
	rowStretch   map[int]int
	cols, rows   []int // sizes from the last pass
	nCols, nRows int
}

func NewTableLayout() *TableLayout {
	tl := &TableLayout{
		colStretch: map[int]int{},
		rowStretch: map[int]int{},
	}
	tl.LayoutBase.init(tl)
	return tl
}

//----------

type TableLayoutItem struct {
	LayoutItem
	Row, Col int
}

//----------

func (tl *TableLayout) AddItem(e Element, row, col int) (*TableLayoutItem, error) {
	if tl.Item(e) != nil {
		return nil, errors.Wrapf(ErrItemExists, "%T", e)
	}
	if row < 0 || col < 0 {
		return nil, errors.Wrapf(ErrBadConstraintArg, "cell: %v,%v", row, col)
	}
	if it := tl.ItemAt(row, col); it != nil {
		return nil, errors.Wrapf(ErrItemExists, "cell %v,%v: %T", row, col, it.Elem)
	}
	it := &TableLayoutItem{LayoutItem: LayoutItem{Elem: e}, Row: row, Col: col}
	tl.items = append(tl.items, it)
	tl.registerItem(&it.LayoutItem)
	return it, nil
}

func (tl *TableLayout) SetColumnStretch(col, stretch int) error {
	if col < 0 || stretch < 0 {
		return errors.Wrapf(ErrBadConstraintArg, "column %v stretch %v", col, stretch)
	}
	tl.colStretch[col] = stretch
	tl.RequestLayout()
	return nil
}

func (tl *TableLayout) SetRowStretch(row, stretch int) error {
	if row < 0 || stretch < 0 {
		return errors.Wrapf(ErrBadConstraintArg, "row %v stretch %v", row, stretch)
	}
	tl.rowStretch[row] = stretch
	tl.RequestLayout()
	return nil
}

func (tl *TableLayout) Remove(e Element) error {
	i := tl.index(e)
	if i < 0 {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	tl.removeIndex(i, true)
	return nil
}

func (tl *TableLayout) removeItem(e Element) {
	if i := tl.index(e); i >= 0 {
		tl.removeIndex(i, false)
	}
}

func (tl *TableLayout) removeIndex(i int, detach bool) {
	it := tl.items[i]
	tl.items = append(tl.items[:i], tl.items[i+1:]...)
	tl.unregisterItem(&it.LayoutItem, detach)
}

func (tl *TableLayout) RemoveAll() {
	for len(tl.items) > 0 {
		tl.removeIndex(len(tl.items)-1, true)
	}
}

func (tl *TableLayout) Len() int {
	return len(tl.items)
}

func (tl *TableLayout) Item(e Element) *TableLayoutItem {
	if i := tl.index(e); i >= 0 {
		return tl.items[i]
	}
	return nil
}

func (tl *TableLayout) ItemAt(row, col int) *TableLayoutItem {
	for _, it := range tl.items {
		if it.Row == row && it.Col == col {
			return it
		}
	}
	return nil
}

func (tl *TableLayout) index(e Element) int {
	for i, it := range tl.items {
		if it.Elem == e {
			return i
		}
	}
	return -1
}

func (tl *TableLayout) iterItems(fn func(*LayoutItem)) {
	for _, it := range tl.items {
		fn(&it.LayoutItem)
	}
}

//----------

func (tl *TableLayout) Measure(wc, hc SizeConstraint) MeasureResult {
	return tl.calc(wc, hc)
}

func (tl *TableLayout) MinSizeHint() image.Point {
	tl.grid()
	cols := make([]int, tl.nCols)
	rows := make([]int, tl.nRows)
	for _, it := range tl.items {
		if !it.Visible() {
			continue
		}
		m := it.MinSizeHint()
		cols[it.Col] = max(cols[it.Col], m.X)
		rows[it.Row] = max(rows[it.Row], m.Y)
	}
	return image.Point{
		sumSpaced(cols, tl.HSpacing),
		sumSpaced(rows, tl.VSpacing),
	}
}

func (tl *TableLayout) Layout(r image.Rectangle) {
	if !tl.beginLayout() {
		return
	}
	defer tl.endLayout()

	tl.calc(SCExactly(r.Dx()), SCExactly(r.Dy()))

	xs := offsets(tl.cols, r.Min.X, tl.HSpacing)
	ys := offsets(tl.rows, r.Min.Y, tl.VSpacing)
	for _, it := range tl.items {
		if !it.Visible() {
			it.LayoutItem.Layout(image.Rectangle{})
			continue
		}
		x, y := xs[it.Col], ys[it.Row]
		it.LayoutItem.Layout(image.Rect(x, y, x+tl.cols[it.Col], y+tl.rows[it.Row]))
	}
}

//----------

func (tl *TableLayout) grid() {
	tl.nCols, tl.nRows = 0, 0
	for _, it := range tl.items {
		tl.nCols = max(tl.nCols, it.Col+1)
		tl.nRows = max(tl.nRows, it.Row+1)
	}
}

func (tl *TableLayout) calc(wc, hc SizeConstraint) MeasureResult {
	tl.grid()
	tl.cols = resetSizes(tl.cols, tl.nCols)
	tl.rows = resetSizes(tl.rows, tl.nRows)

	var res MeasureResult
	for _, it := range tl.items {
		if !it.Visible() {
			it.Measure(wc, hc) // resets the measured size
			continue
		}
		mr := it.Measure(wc.Loosen(), hc.Loosen())
		tl.cols[it.Col] = max(tl.cols[it.Col], mr.Size.X)
		tl.rows[it.Row] = max(tl.rows[it.Row], mr.Size.Y)
		res.AddTooSmall(mr)
	}

	if wc.Mode == Exactly {
		stretchSizes(tl.cols, tl.colStretch, wc.Value-sumSpaced(tl.cols, tl.HSpacing))
	}
	if hc.Mode == Exactly {
		stretchSizes(tl.rows, tl.rowStretch, hc.Value-sumSpaced(tl.rows, tl.VSpacing))
	}

	size := image.Point{sumSpaced(tl.cols, tl.HSpacing), sumSpaced(tl.rows, tl.VSpacing)}
	mr := MakeMeasureResult(size, wc, hc)
	mr.AddTooSmall(res)
	return mr
}

//----------

func resetSizes(u []int, n int) []int {
	if cap(u) < n {
		return make([]int, n)
	}
	u = u[:n]
	for i := range u {
		u[i] = 0
	}
	return u
}

func sumSpaced(u []int, spacing int) int {
	s := 0
	for _, v := range u {
		s += v
	}
	if len(u) > 1 {
		s += spacing * (len(u) - 1)
	}
	return s
}

func offsets(u []int, start, spacing int) []int {
	w := make([]int, len(u))
	x := start
	for i, v := range u {
		w[i] = x
		x += v + spacing
	}
	return w
}

// Distributes the extra space by the stretch factors. The last stretched index gets the rounding remainder.
func stretchSizes(u []int, stretch map[int]int, extra int) {
	if extra <= 0 {
		return
	}
	total, last := 0, -1
	for i := range u {
		if s := stretch[i]; s > 0 {
			total += s
			last = i
		}
	}
	if total == 0 {
		return
	}
	given := 0
	for i := range u {
		s := stretch[i]
		if s == 0 {
			continue
		}
		share := extra * s / total
		if i == last {
			share = extra - given
		}
		given += share
		u[i] += share
	}
}
