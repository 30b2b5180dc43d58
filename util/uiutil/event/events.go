package event

import (
	"image"
)

//----------

// Returned by event handlers. Dispatch stops at the first handler returning true.
type Handled bool

//----------

type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseUp struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

type MouseDragStart struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseDragEnd struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseDragMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

type MouseClick struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}

//----------

type KeyDown struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}
type KeyUp struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

//----------

// Sent to the node that gained/lost the keyboard focus.
type FocusGained struct{}
type FocusLost struct {
	// focus was taken away by a modal focus request
	ByModal bool
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	ModAlt
)

//----------

type KeySym int

const (
	KSymNone KeySym = iota

	// let ascii codes keep their values (adding 256 ensures gap)
	KSym_dummy_ KeySym = 256 + iota

	KSymTab
	KSymTabLeft
	KSymReturn
	KSymEscape
	KSymSpace
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
)

//----------

// drag and drop
type DndPosition struct {
	Point image.Point
	Types []DndType
	Reply func(DndAction)
}
type DndDrop struct {
	Point       image.Point
	ReplyAccept func(bool)
	RequestData func(DndType) ([]byte, error)
}

type DndAction int

const (
	DndADeny DndAction = iota
	DndACopy
	DndAMove
	DndALink
)

type DndType int

const (
	TextURLListDndT DndType = iota
	TextPlainDndT
)

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// Bit set of pressed buttons.
type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) != 0
}
