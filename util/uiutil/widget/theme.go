package widget

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// nil is a valid receiver.
type Theme struct {
	Font ThemeFont
}

func (t *Theme) Copy() *Theme {
	if t == nil {
		return &Theme{}
	}
	u := *t
	return &u
}

//----------

// Closest theme font up the tree, or the default font.
func TreeThemeFont(en *EmbedNode) ThemeFont {
	for n := en; n != nil; n = n.Parent {
		if n.theme != nil && n.theme.Font != nil {
			return n.theme.Font
		}
	}
	return defaultThemeFont()
}

func ThemeFontOrDefault(t *Theme) ThemeFont {
	if t != nil && t.Font != nil {
		return t.Font
	}
	return defaultThemeFont()
}

//----------

type ThemeFont interface {
	Face(*ThemeFontOptions) font.Face
	Clear() // clears internal faces
}

type ThemeFontOptions struct {
	Size ThemeFontOptionsSize
}

type ThemeFontOptionsSize int

const (
	NormalTFOS ThemeFontOptionsSize = iota // default
	SmallTFOS
)

//----------

// Truetype theme font.
type TTThemeFont struct {
	opt    truetype.Options
	ttfont *truetype.Font
	faces  map[truetype.Options]font.Face
}

func NewTTThemeFont(ttf []byte, opt *truetype.Options) (*TTThemeFont, error) {
	ttfont, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	tf := &TTThemeFont{
		ttfont: ttfont,
		faces:  map[truetype.Options]font.Face{},
	}
	if opt != nil {
		tf.opt = *opt
	}
	return tf, nil
}

func (tf *TTThemeFont) Face(ffopt *ThemeFontOptions) font.Face {
	opt2 := tf.opt
	if ffopt != nil && ffopt.Size == SmallTFOS {
		size := opt2.Size
		if size == 0 {
			size = 12 // truetype default
		}
		opt2.Size = size * 2 / 3
	}
	face, ok := tf.faces[opt2]
	if !ok {
		face = truetype.NewFace(tf.ttfont, &opt2)
		tf.faces[opt2] = face
	}
	return face
}

func (tf *TTThemeFont) Clear() {
	for _, f := range tf.faces {
		_ = f.Close()
	}
	tf.faces = map[truetype.Options]font.Face{}
}

//----------

var dtf struct {
	once sync.Once
	tf   ThemeFont
}

func defaultThemeFont() ThemeFont {
	dtf.once.Do(func() {
		tf, err := NewTTThemeFont(goregular.TTF, &truetype.Options{Hinting: font.HintingFull})
		if err != nil {
			panic(err)
		}
		dtf.tf = tf
	})
	return dtf.tf
}
