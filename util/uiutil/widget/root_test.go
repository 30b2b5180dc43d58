package widget

import (
	"image"
	"testing"

	"github.com/jmigpin/lgui/util/uiutil/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootButton(t *testing.T) {
	root := NewRoot(RootConfig{})
	btn := NewButton("ok")
	clicks := 0
	btn.Events.Add(ButtonEvClick, func(ev interface{}) {
		assert.Equal(t, btn, ev.(*ButtonClickEvent).Button)
		clicks++
	})
	root.Append(btn)
	root.Resize(image.Point{100, 30})
	assert.Equal(t, image.Rect(0, 0, 100, 30), btn.Bounds)
	assert.False(t, root.LayoutMarkedTree())

	// label centered inside the button
	lb := btn.Label.Bounds
	assert.False(t, lb.Empty())
	assert.True(t, lb.In(btn.Bounds))
	assert.Equal(t, 50, (lb.Min.X+lb.Max.X+1)/2)

	root.HandleEvent(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	assert.True(t, btn.HasFocus())
	root.HandleEvent(&event.MouseUp{Point: image.Pt(10, 11), Button: event.ButtonLeft})
	assert.Equal(t, 1, clicks)

	// moved away
	root.HandleEvent(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	root.HandleEvent(&event.MouseMove{Point: image.Pt(40, 10)})
	root.HandleEvent(&event.MouseUp{Point: image.Pt(40, 10), Button: event.ButtonLeft})
	assert.Equal(t, 1, clicks)

	// keys use the last pointer position
	root.HandleEvent(&event.KeyDown{Point: image.Pt(40, 10), KeySym: event.KSymReturn})
	root.HandleEvent(&event.KeyDown{Point: image.Pt(40, 10), KeySym: event.KSymSpace})
	root.HandleEvent(&event.KeyDown{Point: image.Pt(40, 10), KeySym: event.KSymEscape})
	assert.Equal(t, 3, clicks)

	btn.Label.SetText("a longer text")
	assert.True(t, root.LayoutMarkedTree())
	assert.False(t, root.LayoutMarkedTree())
	assert.Greater(t, btn.Label.Bounds.Dx(), lb.Dx())
}

func TestRootTheme(t *testing.T) {
	root := NewRoot(RootConfig{Theme: &Theme{}})
	lb := NewLabel("x")
	root.Append(lb)
	assert.NotNil(t, root.Theme())
	assert.Equal(t, ThemeFontOrDefault(nil), TreeThemeFont(lb.Embed()))

	mr := lb.Measure(SCNoLimit(), SCNoLimit())
	assert.Greater(t, mr.Size.X, 0)
	assert.Greater(t, mr.Size.Y, 0)

	lb.SetText("x\nx")
	mr2 := lb.Measure(SCNoLimit(), SCNoLimit())
	assert.Equal(t, mr.Size.X, mr2.Size.X)
	assert.Equal(t, 2*mr.Size.Y, mr2.Size.Y)
}

func TestRootResizeEvent(t *testing.T) {
	root := NewRoot(RootConfig{})
	r := newRect(10, 10)
	root.Append(r)
	sizes := []image.Rectangle{}
	r.Events.Add(NodeEvSizeChanged, func(ev interface{}) {
		sizes = append(sizes, ev.(*NodeBoundsEvent).OldBounds)
	})
	root.Resize(image.Point{20, 20})
	root.Resize(image.Point{30, 20})
	require.Len(t, sizes, 2)
	assert.Equal(t, image.Rect(0, 0, 20, 20), sizes[1])
}
