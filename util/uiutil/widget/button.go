package widget

import (
	"image"

	"github.com/jmigpin/lgui/util/uiutil/event"
)

// Focusable label with a click event (ButtonEvClick). Clicks come from the root mouse filters or from the return/space keys.
type Button struct {
	ENode
	Label *Label
}

func NewButton(text string) *Button {
	b := &Button{}
	b.SetWrapper(b)
	b.SetFocusable(true)

	b.Label = NewLabel(text)
	al := NewAlignLayout()
	b.SetLayout(al)
	it, err := al.AddItem(b.Label, Alignment{AlignCenter, AlignCenter})
	if err != nil {
		panic(err)
	}
	it.Margins = MarginsAll(2)
	return b
}

func (b *Button) OnInputEvent(ev0 interface{}, p image.Point) event.Handled {
	switch ev := ev0.(type) {
	case *event.MouseClick:
		if ev.Button == event.ButtonLeft {
			b.click()
			return true
		}
	case *event.KeyDown:
		switch ev.KeySym {
		case event.KSymReturn, event.KSymSpace:
			b.click()
			return true
		}
	}
	return false
}

func (b *Button) click() {
	b.Events.RunCallbacks(ButtonEvClick, &ButtonClickEvent{b})
}

//----------

const (
	ButtonEvClick = nodeEvEnd + iota // ev=*ButtonClickEvent
)

type ButtonClickEvent struct {
	Button *Button
}
