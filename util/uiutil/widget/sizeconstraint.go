package widget

import (
	"fmt"
	"image"
)

type ConstraintMode int

const (
	NoLimit ConstraintMode = iota // zero value
	Maximum
	Exactly
)

func (m ConstraintMode) String() string {
	switch m {
	case NoLimit:
		return "nolimit"
	case Maximum:
		return "max"
	case Exactly:
		return "exact"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

//----------

// Limits a size along one axis. The zero value has no limit.
type SizeConstraint struct {
	Value int
	Mode  ConstraintMode
}

func SCExactly(v int) SizeConstraint {
	return SizeConstraint{Value: clampZero(v), Mode: Exactly}
}
func SCMaximum(v int) SizeConstraint {
	return SizeConstraint{Value: clampZero(v), Mode: Maximum}
}
func SCNoLimit() SizeConstraint {
	return SizeConstraint{}
}

//----------

func (sc SizeConstraint) Limited() bool {
	return sc.Mode != NoLimit
}

// Returns the size granted for the desired size, and if it was clamped to a smaller value.
func (sc SizeConstraint) Adapt(desired int) (int, bool) {
	switch sc.Mode {
	case Exactly:
		return sc.Value, desired > sc.Value
	case Maximum:
		if desired > sc.Value {
			return sc.Value, true
		}
	}
	return desired, false
}

// Constraint with n less space (ex: margins). A no-limit constraint is kept.
func (sc SizeConstraint) Sub(n int) SizeConstraint {
	if sc.Mode == NoLimit {
		return sc
	}
	sc.Value = clampZero(sc.Value - n)
	return sc
}

// Same constraint value but at most.
func (sc SizeConstraint) Loosen() SizeConstraint {
	if sc.Mode == Exactly {
		sc.Mode = Maximum
	}
	return sc
}

func (sc SizeConstraint) String() string {
	if sc.Mode == NoLimit {
		return sc.Mode.String()
	}
	return fmt.Sprintf("%v(%d)", sc.Mode, sc.Value)
}

//----------

type MeasureResult struct {
	Size image.Point

	// the granted size is smaller then the desired size
	TooSmallX, TooSmallY bool
}

// Result of adapting the desired size to both constraints.
func MakeMeasureResult(desired image.Point, wc, hc SizeConstraint) MeasureResult {
	var mr MeasureResult
	mr.Size.X, mr.TooSmallX = wc.Adapt(desired.X)
	mr.Size.Y, mr.TooSmallY = hc.Adapt(desired.Y)
	return mr
}

func (mr MeasureResult) TooSmall() bool {
	return mr.TooSmallX || mr.TooSmallY
}

// Accumulates the too-small flags of u.
func (mr *MeasureResult) AddTooSmall(u MeasureResult) {
	mr.TooSmallX = mr.TooSmallX || u.TooSmallX
	mr.TooSmallY = mr.TooSmallY || u.TooSmallY
}

func (mr MeasureResult) String() string {
	s := fmt.Sprintf("%v", mr.Size)
	if mr.TooSmallX {
		s += "!x"
	}
	if mr.TooSmallY {
		s += "!y"
	}
	return s
}

//----------

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
