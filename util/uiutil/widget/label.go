package widget

import (
	"image"
	"strings"

	"golang.org/x/image/font"
)

// Single font text node. Lines are split at newlines, there is no wrapping.
type Label struct {
	ENode
	text string
}

func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.SetWrapper(l)
	return l
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.MarkNeedsLayout()
}

//----------

func (l *Label) Measure(wc, hc SizeConstraint) MeasureResult {
	return MakeMeasureResult(l.textSize(), wc, hc)
}

func (l *Label) MinSizeHint() image.Point {
	return l.textSize()
}

func (l *Label) textSize() image.Point {
	face := TreeThemeFont(&l.EmbedNode).Face(nil)
	lineHeight := face.Metrics().Height.Ceil()
	lines := strings.Split(l.text, "\n")
	w := 0
	for _, s := range lines {
		w = max(w, font.MeasureString(face, s).Ceil())
	}
	return image.Point{w, lineHeight * len(lines)}
}
