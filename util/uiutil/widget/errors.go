package widget

import "github.com/pkg/errors"

// Errors returned at the API boundary for bad caller input. Broken internal state (ex: a dependency cycle found while laying out) panics instead.
var (
	ErrBadConstraintArg       = errors.New("bad constraint argument")
	ErrBadDependency          = errors.New("bad dependency id")
	ErrUnregisteredDependency = errors.New("dependency not registered in layout")
	ErrItemNotFound           = errors.New("item not found in layout")
	ErrItemExists             = errors.New("item already in layout")
	ErrDependencyCycle        = errors.New("dependency cycle")
	ErrModalFocusHeld         = errors.New("modal focus held by another node")
	ErrNilNode                = errors.New("nil node")
)
