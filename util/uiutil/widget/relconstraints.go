package widget

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Identifies an item inside a relative layout. Ids are stable while the item is in the layout and are never reused.
type ElementId uint32

const (
	IdUnset        ElementId = 0 // constraint absent
	IdNoDependency ElementId = 1 // constraint present, without a dependency
	firstElementId ElementId = 2
)

//----------

type RelConstraintKind uint8

const (
	// percentage of the parent size
	RelAlignLeftParentPerc RelConstraintKind = iota
	RelAlignTopParentPerc
	RelAlignRightParentPerc
	RelAlignBottomParentPerc

	RelHCenterInParent
	RelVCenterInParent

	// edge aligned with the same edge of a sibling
	RelAlignLeft
	RelAlignTop
	RelAlignRight
	RelAlignBottom

	// positioned next to a sibling
	RelLeftOf
	RelRightOf
	RelAbove
	RelBelow

	// convenience aliases, expanded when added
	RelAlignParentLeft
	RelAlignParentTop
	RelAlignParentRight
	RelAlignParentBottom
	RelCenterInParent
)

const nRelBaseKinds = int(RelBelow) + 1

var relKindNames = [...]string{
	"AlignLeftParentPerc",
	"AlignTopParentPerc",
	"AlignRightParentPerc",
	"AlignBottomParentPerc",
	"HCenterInParent",
	"VCenterInParent",
	"AlignLeft",
	"AlignTop",
	"AlignRight",
	"AlignBottom",
	"LeftOf",
	"RightOf",
	"Above",
	"Below",
	"AlignParentLeft",
	"AlignParentTop",
	"AlignParentRight",
	"AlignParentBottom",
	"CenterInParent",
}

func (k RelConstraintKind) String() string {
	if int(k) < len(relKindNames) {
		return relKindNames[k]
	}
	return fmt.Sprintf("RelConstraintKind(%d)", int(k))
}

func (k RelConstraintKind) IsPerc() bool {
	return k <= RelAlignBottomParentPerc
}

func (k RelConstraintKind) HasDependency() bool {
	return k >= RelAlignLeft && k <= RelBelow
}

func (k RelConstraintKind) IsAlias() bool {
	return k >= RelAlignParentLeft && k <= RelCenterInParent
}

func (k RelConstraintKind) valid() bool {
	return k <= RelCenterInParent
}

//----------

// The constraint kinds of one axis.
type RelConstraintFilter [7]RelConstraintKind

var (
	HorizontalConstraints = RelConstraintFilter{
		RelAlignLeftParentPerc, RelAlignRightParentPerc, RelHCenterInParent,
		RelAlignLeft, RelAlignRight, RelLeftOf, RelRightOf,
	}
	VerticalConstraints = RelConstraintFilter{
		RelAlignTopParentPerc, RelAlignBottomParentPerc, RelVCenterInParent,
		RelAlignTop, RelAlignBottom, RelAbove, RelBelow,
	}
)

func (f *RelConstraintFilter) Has(k RelConstraintKind) bool {
	for _, k2 := range f {
		if k2 == k {
			return true
		}
	}
	return false
}

//----------

// Constraints of one relative layout item. The zero value has no constraints.
type RelativeLayoutConstraints struct {
	ids   [nRelBaseKinds]ElementId // dependency id, or presence flag
	percs [4]float64               // indexed by the percentage kinds
}

// Adds a constraint without arguments (center kinds and aliases).
func (c *RelativeLayoutConstraints) AddConstraint(k RelConstraintKind) error {
	switch k {
	case RelHCenterInParent, RelVCenterInParent:
		c.ids[k] = IdNoDependency
	case RelAlignParentLeft:
		c.setPerc(RelAlignLeftParentPerc, 0)
	case RelAlignParentTop:
		c.setPerc(RelAlignTopParentPerc, 0)
	case RelAlignParentRight:
		c.setPerc(RelAlignRightParentPerc, 1)
	case RelAlignParentBottom:
		c.setPerc(RelAlignBottomParentPerc, 1)
	case RelCenterInParent:
		c.ids[RelHCenterInParent] = IdNoDependency
		c.ids[RelVCenterInParent] = IdNoDependency
	default:
		return errors.Wrapf(ErrBadConstraintArg, "%v: requires an argument", k)
	}
	return nil
}

func (c *RelativeLayoutConstraints) AddPercConstraint(k RelConstraintKind, p float64) error {
	if !k.IsPerc() {
		return errors.Wrapf(ErrBadConstraintArg, "%v: does not take a percentage", k)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return errors.Wrapf(ErrBadConstraintArg, "%v: bad percentage: %v", k, p)
	}
	c.setPerc(k, p)
	return nil
}

func (c *RelativeLayoutConstraints) AddDepConstraint(k RelConstraintKind, id ElementId) error {
	if !k.HasDependency() {
		return errors.Wrapf(ErrBadConstraintArg, "%v: does not take a dependency", k)
	}
	if id <= IdNoDependency {
		return errors.Wrapf(ErrBadDependency, "%v: id %d", k, id)
	}
	c.ids[k] = id
	return nil
}

func (c *RelativeLayoutConstraints) setPerc(k RelConstraintKind, p float64) {
	c.ids[k] = IdNoDependency
	c.percs[k] = p // percentage kinds are the first four
}

//----------

// Returns the dependency id, IdNoDependency if present without a dependency, or IdUnset if absent. Aliases report their expansion.
func (c *RelativeLayoutConstraints) Constraint(k RelConstraintKind) ElementId {
	switch k {
	case RelAlignParentLeft:
		return c.aliasPerc(RelAlignLeftParentPerc, 0)
	case RelAlignParentTop:
		return c.aliasPerc(RelAlignTopParentPerc, 0)
	case RelAlignParentRight:
		return c.aliasPerc(RelAlignRightParentPerc, 1)
	case RelAlignParentBottom:
		return c.aliasPerc(RelAlignBottomParentPerc, 1)
	case RelCenterInParent:
		if c.ids[RelHCenterInParent] != IdUnset && c.ids[RelVCenterInParent] != IdUnset {
			return IdNoDependency
		}
		return IdUnset
	}
	if int(k) >= nRelBaseKinds {
		return IdUnset
	}
	return c.ids[k]
}

func (c *RelativeLayoutConstraints) aliasPerc(k RelConstraintKind, p float64) ElementId {
	if v, ok := c.Perc(k); ok && v == p {
		return IdNoDependency
	}
	return IdUnset
}

func (c *RelativeLayoutConstraints) Has(k RelConstraintKind) bool {
	return c.Constraint(k) != IdUnset
}

// Percentage of a percentage kind, and if it is set.
func (c *RelativeLayoutConstraints) Perc(k RelConstraintKind) (float64, bool) {
	if !k.IsPerc() || c.ids[k] == IdUnset {
		return 0, false
	}
	return c.percs[k], true
}

//----------

func (c *RelativeLayoutConstraints) RemoveConstraint(k RelConstraintKind) {
	switch k {
	case RelAlignParentLeft:
		c.clear(RelAlignLeftParentPerc)
	case RelAlignParentTop:
		c.clear(RelAlignTopParentPerc)
	case RelAlignParentRight:
		c.clear(RelAlignRightParentPerc)
	case RelAlignParentBottom:
		c.clear(RelAlignBottomParentPerc)
	case RelCenterInParent:
		c.clear(RelHCenterInParent)
		c.clear(RelVCenterInParent)
	default:
		if int(k) < nRelBaseKinds {
			c.clear(k)
		}
	}
}

func (c *RelativeLayoutConstraints) clear(k RelConstraintKind) {
	c.ids[k] = IdUnset
	if k.IsPerc() {
		c.percs[k] = 0
	}
}

// Clears all dependencies on the given id. Returns true if any was cleared.
func (c *RelativeLayoutConstraints) PurgeId(id ElementId) bool {
	if id <= IdNoDependency {
		return false
	}
	purged := false
	for k := RelAlignLeft; k <= RelBelow; k++ {
		if c.ids[k] == id {
			c.ids[k] = IdUnset
			purged = true
		}
	}
	return purged
}

func (c *RelativeLayoutConstraints) Clear() {
	*c = RelativeLayoutConstraints{}
}

// Dependency ids of the filter kinds, in filter order, possibly repeated.
func (c *RelativeLayoutConstraints) Deps(f *RelConstraintFilter) []ElementId {
	var u []ElementId
	for _, k := range f {
		if id := c.ids[k]; id > IdNoDependency {
			u = append(u, id)
		}
	}
	return u
}

func (c *RelativeLayoutConstraints) String() string {
	s := "["
	first := true
	for k := RelConstraintKind(0); int(k) < nRelBaseKinds; k++ {
		id := c.ids[k]
		if id == IdUnset {
			continue
		}
		if !first {
			s += " "
		}
		first = false
		switch {
		case k.IsPerc():
			s += fmt.Sprintf("%v(%v)", k, c.percs[k])
		case k.HasDependency():
			s += fmt.Sprintf("%v(#%d)", k, id)
		default:
			s += k.String()
		}
	}
	return s + "]"
}
