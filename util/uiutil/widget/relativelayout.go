package widget

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// Positions the items by constraints relative to the parent or to siblings. Each axis is resolved independently: the items are sorted by their dependencies along the axis, measured and positioned in that order. Items that can only be positioned once the parent size is known (ex: centered in a wrap-content parent) are fixed in a final correction pass.
//
// Width is resolved before height: an item whose height depends on its width gets measured with the width found in the horizontal pass. Scrollable parents can take a wrong scrollbar decision in that case.
type RelativeLayout struct {
	LayoutBase

	// items arena, ids map to slots
	slots  []RelativeLayoutItem
	free   []int
	order  []int // live slots in insertion order
	idSlot map[ElementId]int
	nextId ElementId

	sorter       RelativeLayoutItemSorter
	sortedX      []int // slots
	sortedY      []int
	itemsChanged bool

	// last pass
	valid          bool
	lastWC, lastHC SizeConstraint
	result         MeasureResult
	useMinHint     bool
}

func NewRelativeLayout() *RelativeLayout {
	rl := &RelativeLayout{
		idSlot: map[ElementId]int{},
		nextId: firstElementId,
	}
	rl.LayoutBase.init(rl)
	return rl
}

//----------

type RelativeLayoutItem struct {
	LayoutItem
	id          ElementId
	constraints RelativeLayoutConstraints
	pos         RelativeLayoutPosition

	deferred [2]bool // needs correction once the parent size is known (x,y)
	moved    [2]bool // changed in the correction pass (x,y)
}

func (it *RelativeLayoutItem) Id() ElementId {
	return it.id
}
func (it *RelativeLayoutItem) Constraints() *RelativeLayoutConstraints {
	return &it.constraints
}
func (it *RelativeLayoutItem) Position() RelativeLayoutPosition {
	return it.pos
}

//----------

const PosUnset = math.MaxInt

// Edges relative to the layout origin. Each edge is unset (PosUnset) until resolved.
type RelativeLayoutPosition struct {
	Left, Top, Right, Bottom int
}

func unsetPosition() RelativeLayoutPosition {
	return RelativeLayoutPosition{PosUnset, PosUnset, PosUnset, PosUnset}
}

func (p *RelativeLayoutPosition) edges(yAxis bool) (*int, *int) {
	if yAxis {
		return &p.Top, &p.Bottom
	}
	return &p.Left, &p.Right
}

func (p RelativeLayoutPosition) Rect() image.Rectangle {
	r := image.Rectangle{image.Point{p.Left, p.Top}, image.Point{p.Right, p.Bottom}}
	// contradicting constraints can give inverted edges, keep the start
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

func posSet(v int) bool {
	return v != PosUnset
}

//----------

// A constraint to be added to an item. Use the constructors (ex: LeftOf(e)).
type Constraint struct {
	Kind RelConstraintKind
	Dep  Element // sibling kinds
	Perc float64 // percentage kinds
}

func AlignLeftParentPerc(p float64) Constraint {
	return Constraint{Kind: RelAlignLeftParentPerc, Perc: p}
}
func AlignTopParentPerc(p float64) Constraint {
	return Constraint{Kind: RelAlignTopParentPerc, Perc: p}
}
func AlignRightParentPerc(p float64) Constraint {
	return Constraint{Kind: RelAlignRightParentPerc, Perc: p}
}
func AlignBottomParentPerc(p float64) Constraint {
	return Constraint{Kind: RelAlignBottomParentPerc, Perc: p}
}

func HCenterInParent() Constraint   { return Constraint{Kind: RelHCenterInParent} }
func VCenterInParent() Constraint   { return Constraint{Kind: RelVCenterInParent} }
func CenterInParent() Constraint    { return Constraint{Kind: RelCenterInParent} }
func AlignParentLeft() Constraint   { return Constraint{Kind: RelAlignParentLeft} }
func AlignParentTop() Constraint    { return Constraint{Kind: RelAlignParentTop} }
func AlignParentRight() Constraint  { return Constraint{Kind: RelAlignParentRight} }
func AlignParentBottom() Constraint { return Constraint{Kind: RelAlignParentBottom} }

func AlignLeft(e Element) Constraint   { return Constraint{Kind: RelAlignLeft, Dep: e} }
func AlignTop(e Element) Constraint    { return Constraint{Kind: RelAlignTop, Dep: e} }
func AlignRight(e Element) Constraint  { return Constraint{Kind: RelAlignRight, Dep: e} }
func AlignBottom(e Element) Constraint { return Constraint{Kind: RelAlignBottom, Dep: e} }
func LeftOf(e Element) Constraint      { return Constraint{Kind: RelLeftOf, Dep: e} }
func RightOf(e Element) Constraint     { return Constraint{Kind: RelRightOf, Dep: e} }
func Above(e Element) Constraint       { return Constraint{Kind: RelAbove, Dep: e} }
func Below(e Element) Constraint       { return Constraint{Kind: RelBelow, Dep: e} }

//----------

func (rl *RelativeLayout) AddItem(e Element, cs ...Constraint) error {
	if _, ok := rl.slotOf(e); ok {
		return errors.Wrapf(ErrItemExists, "%T", e)
	}
	// validate all before registering
	var c RelativeLayoutConstraints
	for _, u := range cs {
		if err := rl.applyConstraint(&c, u); err != nil {
			return err
		}
	}

	slot := rl.newSlot()
	it := &rl.slots[slot]
	it.LayoutItem = LayoutItem{Elem: e}
	it.id = rl.nextId
	it.constraints = c
	it.pos = unsetPosition()
	rl.nextId++
	rl.idSlot[it.id] = slot
	rl.order = append(rl.order, slot)

	rl.invalidate(true)
	rl.registerItem(&it.LayoutItem)
	return nil
}

func (rl *RelativeLayout) newSlot() int {
	if n := len(rl.free); n > 0 {
		slot := rl.free[n-1]
		rl.free = rl.free[:n-1]
		return slot
	}
	rl.slots = append(rl.slots, RelativeLayoutItem{})
	return len(rl.slots) - 1
}

func (rl *RelativeLayout) applyConstraint(c *RelativeLayoutConstraints, u Constraint) error {
	if !u.Kind.valid() {
		return errors.Wrapf(ErrBadConstraintArg, "unknown kind: %v", u.Kind)
	}
	switch {
	case u.Kind.HasDependency():
		if u.Dep == nil {
			return errors.Wrapf(ErrBadConstraintArg, "%v: missing dependency", u.Kind)
		}
		id := rl.Id(u.Dep)
		if id == IdUnset {
			return errors.Wrapf(ErrUnregisteredDependency, "%v: %T", u.Kind, u.Dep)
		}
		return c.AddDepConstraint(u.Kind, id)
	case u.Dep != nil:
		return errors.Wrapf(ErrBadConstraintArg, "%v: does not take a dependency", u.Kind)
	case u.Kind.IsPerc():
		return c.AddPercConstraint(u.Kind, u.Perc)
	default:
		if u.Perc != 0 {
			return errors.Wrapf(ErrBadConstraintArg, "%v: does not take a percentage", u.Kind)
		}
		return c.AddConstraint(u.Kind)
	}
}

//----------

// Adds (overwrites) constraints of an existing item. Other kinds are kept.
func (rl *RelativeLayout) AddConstraints(e Element, cs ...Constraint) error {
	it, err := rl.itemErr(e)
	if err != nil {
		return err
	}
	c := it.constraints // apply all or none
	for _, u := range cs {
		if err := rl.applyConstraint(&c, u); err != nil {
			return err
		}
	}
	it.constraints = c
	rl.invalidate(true)
	rl.RequestLayout()
	return nil
}

func (rl *RelativeLayout) AddConstraint(e Element, c Constraint) error {
	return rl.AddConstraints(e, c)
}

func (rl *RelativeLayout) RemoveConstraint(e Element, k RelConstraintKind) error {
	it, err := rl.itemErr(e)
	if err != nil {
		return err
	}
	it.constraints.RemoveConstraint(k)
	rl.invalidate(true)
	rl.RequestLayout()
	return nil
}

func (rl *RelativeLayout) ClearConstraints(e Element) error {
	it, err := rl.itemErr(e)
	if err != nil {
		return err
	}
	it.constraints.Clear()
	rl.invalidate(true)
	rl.RequestLayout()
	return nil
}

//----------

func (rl *RelativeLayout) Remove(e Element) error {
	slot, ok := rl.slotOf(e)
	if !ok {
		return errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	rl.removeSlot(slot, true)
	return nil
}

// Element was removed from the target by others.
func (rl *RelativeLayout) removeItem(e Element) {
	if slot, ok := rl.slotOf(e); ok {
		rl.removeSlot(slot, false)
	}
}

func (rl *RelativeLayout) removeSlot(slot int, detach bool) {
	it := &rl.slots[slot]
	id := it.id
	li := &it.LayoutItem

	// splice from order
	for i, s := range rl.order {
		if s == slot {
			rl.order = append(rl.order[:i], rl.order[i+1:]...)
			break
		}
	}
	delete(rl.idSlot, id)

	// no dangling ids
	for _, s := range rl.order {
		rl.slots[s].constraints.PurgeId(id)
	}

	rl.invalidate(true)
	rl.unregisterItem(li, detach)

	rl.slots[slot] = RelativeLayoutItem{}
	rl.free = append(rl.free, slot)
}

func (rl *RelativeLayout) RemoveAll() {
	for len(rl.order) > 0 {
		rl.removeSlot(rl.order[len(rl.order)-1], true)
	}
}

//----------

func (rl *RelativeLayout) Len() int {
	return len(rl.order)
}

// Id of the element, or IdUnset if not in the layout.
func (rl *RelativeLayout) Id(e Element) ElementId {
	if slot, ok := rl.slotOf(e); ok {
		return rl.slots[slot].id
	}
	return IdUnset
}

// The returned item is only valid until the next item is added.
func (rl *RelativeLayout) Item(e Element) *RelativeLayoutItem {
	if slot, ok := rl.slotOf(e); ok {
		return &rl.slots[slot]
	}
	return nil
}

func (rl *RelativeLayout) ItemById(id ElementId) *RelativeLayoutItem {
	if slot, ok := rl.idSlot[id]; ok {
		return &rl.slots[slot]
	}
	return nil
}

func (rl *RelativeLayout) itemErr(e Element) (*RelativeLayoutItem, error) {
	it := rl.Item(e)
	if it == nil {
		return nil, errors.Wrapf(ErrItemNotFound, "%T", e)
	}
	return it, nil
}

// Linear scan: dependencies are resolved by element when constraints are added.
func (rl *RelativeLayout) slotOf(e Element) (int, bool) {
	for _, slot := range rl.order {
		if rl.slots[slot].Elem == e {
			return slot, true
		}
	}
	return 0, false
}

func (rl *RelativeLayout) iterItems(fn func(*LayoutItem)) {
	for _, slot := range rl.order {
		fn(&rl.slots[slot].LayoutItem)
	}
}

//----------

// Elements in dependency order along one axis.
func (rl *RelativeLayout) SortedElements(yAxis bool) ([]Element, error) {
	filter := &HorizontalConstraints
	if yAxis {
		filter = &VerticalConstraints
	}
	slots, err := rl.sortAxis(filter)
	u := make([]Element, 0, len(slots))
	for _, slot := range slots {
		u = append(u, rl.slots[slot].Elem)
	}
	return u, err
}

func (rl *RelativeLayout) sortAxis(filter *RelConstraintFilter) ([]int, error) {
	items := make([]*RelativeLayoutItem, len(rl.order))
	for i, slot := range rl.order {
		items[i] = &rl.slots[slot]
	}
	idx, err := rl.sorter.Sort(items, filter)
	slots := make([]int, len(idx))
	for i, k := range idx {
		slots[i] = rl.order[k]
	}
	return slots, err
}

func (rl *RelativeLayout) sortIfChanged() {
	if !rl.itemsChanged {
		return
	}
	var err error
	rl.sortedX, err = rl.sortAxis(&HorizontalConstraints)
	if err != nil {
		panic(errors.Wrap(err, "relativelayout: horizontal"))
	}
	rl.sortedY, err = rl.sortAxis(&VerticalConstraints)
	if err != nil {
		panic(errors.Wrap(err, "relativelayout: vertical"))
	}
	rl.itemsChanged = false
}

//----------

func (rl *RelativeLayout) invalidate(itemsChanged bool) {
	rl.valid = false
	if itemsChanged {
		rl.itemsChanged = true
	}
}

// Drops the cached pass. Called when the target needs layout.
func (rl *RelativeLayout) Invalidate() {
	rl.invalidate(false)
	rl.LayoutBase.Invalidate()
}

//----------

func (rl *RelativeLayout) Measure(wc, hc SizeConstraint) MeasureResult {
	return rl.run(wc, hc)
}

func (rl *RelativeLayout) MinSizeHint() image.Point {
	rl.useMinHint = true
	rl.valid = false
	mr := rl.run(SCNoLimit(), SCNoLimit())
	rl.useMinHint = false
	rl.valid = false // positions are from the min size hints
	return mr.Size
}

func (rl *RelativeLayout) Layout(r image.Rectangle) {
	if !rl.beginLayout() {
		return
	}
	defer rl.endLayout()

	rl.run(SCExactly(r.Dx()), SCExactly(r.Dy()))
	for _, slot := range rl.order {
		it := &rl.slots[slot]
		r2 := it.pos.Rect().Add(r.Min)
		it.measured.Size = r2.Size()
		it.LayoutItem.Layout(r2)
	}
}

//----------

func (rl *RelativeLayout) run(wc, hc SizeConstraint) MeasureResult {
	if rl.valid && wc == rl.lastWC && hc == rl.lastHC {
		return rl.result
	}
	rl.sortIfChanged()

	for _, slot := range rl.order {
		it := &rl.slots[slot]
		it.pos = unsetPosition()
		it.deferred = [2]bool{}
		it.moved = [2]bool{}
	}

	// parent size, -1 if it is to be computed (wrap content)
	myW, myH := -1, -1
	if wc.Mode == Exactly {
		myW = wc.Value
	}
	if hc.Mode == Exactly {
		myH = hc.Value
	}

	var res MeasureResult
	for _, slot := range rl.sortedX {
		it := &rl.slots[slot]
		otherC := hc.Loosen()
		mr := rl.resolveAxis(it, relAxisX, myW, wc, otherC)
		res.TooSmallX = res.TooSmallX || mr.TooSmallX
	}
	for _, slot := range rl.sortedY {
		it := &rl.slots[slot]
		otherC := SCExactly(it.pos.Right - it.pos.Left)
		mr := rl.resolveAxis(it, relAxisY, myH, hc, otherC)
		res.TooSmallY = res.TooSmallY || mr.TooSmallY
	}

	if myW < 0 {
		w, ts := wc.Adapt(rl.extent(relAxisX))
		myW = w
		res.TooSmallX = res.TooSmallX || ts
	}
	if myH < 0 {
		h, ts := hc.Adapt(rl.extent(relAxisY))
		myH = h
		res.TooSmallY = res.TooSmallY || ts
	}

	rl.correct(relAxisX, myW)
	rl.correct(relAxisY, myH)

	// contradicting constraints
	for _, slot := range rl.order {
		p := &rl.slots[slot].pos
		res.TooSmallX = res.TooSmallX || p.Right < p.Left
		res.TooSmallY = res.TooSmallY || p.Bottom < p.Top
	}

	res.Size = image.Point{myW, myH}
	rl.result = res
	rl.lastWC, rl.lastHC = wc, hc
	rl.valid = true
	return res
}

//----------

// Constraint kinds and position edges of one axis.
type relAxis struct {
	y                    int // index for per axis state
	startPerc, endPerc   RelConstraintKind
	center               RelConstraintKind
	alignStart, alignEnd RelConstraintKind
	before, after        RelConstraintKind // LeftOf/Above, RightOf/Below
	filter               *RelConstraintFilter
}

var (
	relAxisX = &relAxis{
		y:         0,
		startPerc: RelAlignLeftParentPerc, endPerc: RelAlignRightParentPerc,
		center:     RelHCenterInParent,
		alignStart: RelAlignLeft, alignEnd: RelAlignRight,
		before: RelLeftOf, after: RelRightOf,
		filter: &HorizontalConstraints,
	}
	relAxisY = &relAxis{
		y:         1,
		startPerc: RelAlignTopParentPerc, endPerc: RelAlignBottomParentPerc,
		center:     RelVCenterInParent,
		alignStart: RelAlignTop, alignEnd: RelAlignBottom,
		before: RelAbove, after: RelBelow,
		filter: &VerticalConstraints,
	}
)

func (ax *relAxis) edges(p *RelativeLayoutPosition) (*int, *int) {
	return p.edges(ax.y == 1)
}

//----------

// Resolves, measures and positions the item along the axis. The other axis constraint is used for measuring only.
func (rl *RelativeLayout) resolveAxis(it *RelativeLayoutItem, ax *relAxis, ext int, parentC, otherC SizeConstraint) MeasureResult {
	start, end := rl.resolveEdges(it, ax, ext)

	// constraint for measuring
	var sc SizeConstraint
	switch {
	case posSet(start) && posSet(end):
		sc = SCExactly(end - start)
	case posSet(start):
		switch {
		case ext >= 0:
			sc = SCMaximum(ext - start)
		case parentC.Limited():
			sc = SCMaximum(parentC.Value - start)
		}
	case posSet(end):
		sc = SCMaximum(end)
	default:
		switch {
		case ext >= 0:
			sc = SCMaximum(ext)
		case parentC.Limited():
			sc = SCMaximum(parentC.Value)
		}
	}

	mr := rl.measureItem(it, ax, sc, otherC)
	size := mr.Size.X
	if ax.y == 1 {
		size = mr.Size.Y
	}

	// a non-zero percentage stays unresolved until the parent size is known
	c := &it.constraints
	if ext < 0 {
		if p, ok := c.Perc(ax.startPerc); ok && p != 0 && !posSet(start) {
			it.deferred[ax.y] = true
		}
		if p, ok := c.Perc(ax.endPerc); ok && p != 0 && !posSet(end) {
			it.deferred[ax.y] = true
		}
	}

	// position
	switch {
	case posSet(start) && posSet(end):
	case posSet(start):
		end = start + size
	case posSet(end):
		start = end - size
	default:
		if ext < 0 {
			start, end = 0, size
			if c.Has(ax.center) {
				it.deferred[ax.y] = true
			}
		} else {
			start = 0
			if c.Has(ax.center) {
				start = (ext - size) / 2
			}
			end = start + size
		}
	}

	s, e := ax.edges(&it.pos)
	*s, *e = start, end
	return mr
}

// Edges known from the parent size (if known) and from the already resolved siblings. Siblings have precedence over the parent percentages.
func (rl *RelativeLayout) resolveEdges(it *RelativeLayoutItem, ax *relAxis, ext int) (int, int) {
	c := &it.constraints
	start, end := PosUnset, PosUnset

	if p, ok := c.Perc(ax.startPerc); ok {
		if ext >= 0 {
			start = percOf(p, ext)
		} else if p == 0 {
			start = 0
		}
	}
	if p, ok := c.Perc(ax.endPerc); ok {
		if ext >= 0 {
			end = percOf(p, ext)
		} else if p == 0 {
			end = 0
		}
	}

	depEdges := func(k RelConstraintKind) (int, int, bool) {
		id := c.ids[k]
		if id <= IdNoDependency || id == it.id {
			return 0, 0, false
		}
		dep := rl.ItemById(id)
		if dep == nil {
			return 0, 0, false
		}
		s, e := ax.edges(&dep.pos)
		return *s, *e, true
	}
	if s, _, ok := depEdges(ax.before); ok && posSet(s) {
		end = s
	}
	if _, e, ok := depEdges(ax.after); ok && posSet(e) {
		start = e
	}
	if s, _, ok := depEdges(ax.alignStart); ok && posSet(s) {
		start = s
	}
	if _, e, ok := depEdges(ax.alignEnd); ok && posSet(e) {
		end = e
	}
	return start, end
}

func (rl *RelativeLayout) measureItem(it *RelativeLayoutItem, ax *relAxis, sc, otherC SizeConstraint) MeasureResult {
	wc, hc := sc, otherC
	if ax.y == 1 {
		wc, hc = otherC, sc
	}
	if rl.useMinHint {
		return MakeMeasureResult(it.MinSizeHint(), wc, hc)
	}
	return it.Measure(wc, hc)
}

// Maximum end edge along the axis.
func (rl *RelativeLayout) extent(ax *relAxis) int {
	m := 0
	for _, slot := range rl.order {
		_, e := ax.edges(&rl.slots[slot].pos)
		if posSet(*e) && *e > m {
			m = *e
		}
	}
	return m
}

//----------

// Final positions of the items that could not be placed without the parent size, and of the items that depend on them.
func (rl *RelativeLayout) correct(ax *relAxis, ext int) {
	sorted := rl.sortedX
	if ax.y == 1 {
		sorted = rl.sortedY
	}
	for _, slot := range sorted {
		it := &rl.slots[slot]
		s, e := ax.edges(&it.pos)
		start, end := *s, *e
		size := end - start
		c := &it.constraints

		deferred := it.deferred[ax.y]
		if !deferred && !rl.dependsOnMoved(it, ax) {
			continue
		}
		s2, e2 := rl.resolveEdges(it, ax, ext)
		switch {
		case posSet(s2) && posSet(e2):
			start, end = s2, e2
		case posSet(s2):
			start, end = s2, s2+size
		case posSet(e2):
			start, end = e2-size, e2
		case deferred && c.Has(ax.center):
			start = (ext - size) / 2
			end = start + size
		}

		if start != *s || end != *e {
			*s, *e = start, end
			it.moved[ax.y] = true
		}
	}
}

func (rl *RelativeLayout) dependsOnMoved(it *RelativeLayoutItem, ax *relAxis) bool {
	for _, id := range it.constraints.Deps(ax.filter) {
		if id == it.id {
			continue
		}
		if dep := rl.ItemById(id); dep != nil && dep.moved[ax.y] {
			return true
		}
	}
	return false
}

//----------

// Positions by id, for debugging.
func (rl *RelativeLayout) DebugDump() string {
	type entry struct {
		Id          ElementId
		Elem        string
		Constraints string
		Rect        image.Rectangle
	}
	u := []entry{}
	for _, slot := range rl.order {
		it := &rl.slots[slot]
		u = append(u, entry{it.id, fmt.Sprintf("%T", it.Elem), it.constraints.String(), it.pos.Rect()})
	}
	sort.Slice(u, func(a, b int) bool { return u[a].Id < u[b].Id })
	cfg := spew.ConfigState{Indent: "\t", DisablePointerAddresses: true, DisableMethods: true}
	return cfg.Sdump(u)
}

//----------

func percOf(p float64, ext int) int {
	return int(math.Round(p * float64(ext)))
}
