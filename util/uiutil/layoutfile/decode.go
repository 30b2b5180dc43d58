// Layout descriptions: a tree of nodes in a YAML or TOML document, built into a widget tree.
package layoutfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown layout file format")

// Root of a document.
type Doc struct {
	Size []int `yaml:"size" toml:"size"` // optional default size [w,h]
	Root *Node `yaml:"root" toml:"root"`
}

type Node struct {
	Name   string `yaml:"name" toml:"name"`
	Kind   string `yaml:"kind" toml:"kind"` // container (default), rectangle, label, button
	Size   []int  `yaml:"size" toml:"size"` // rectangle natural size [w,h]
	Text   string `yaml:"text" toml:"text"`
	Hidden bool   `yaml:"hidden" toml:"hidden"`

	// layout of the childs: relative, hbox, vbox, flow, table, align
	Layout     string `yaml:"layout" toml:"layout"`
	Spacing    []int  `yaml:"spacing" toml:"spacing"`       // 1 or 2 values (h,v)
	ColStretch []int  `yaml:"colStretch" toml:"colStretch"` // table
	RowStretch []int  `yaml:"rowStretch" toml:"rowStretch"` // table

	Item     Item    `yaml:"item" toml:"item"` // params inside the parent layout
	Children []*Node `yaml:"children" toml:"children"`
}

// Parameters of a node inside the parent layout.
type Item struct {
	Margins []int    `yaml:"margins" toml:"margins"` // 1 or 4 values (left,top,right,bottom)
	Align   []string `yaml:"align" toml:"align"`     // x,y: stretch, start, center, end
	Stretch int      `yaml:"stretch" toml:"stretch"` // box
	Row     int      `yaml:"row" toml:"row"`         // table
	Col     int      `yaml:"col" toml:"col"`         // table

	// relative constraints, "kind [arg]" (ex: "alignParentRight", "below title", "alignLeftParentPerc 0.25")
	Relative []string `yaml:"relative" toml:"relative"`
}

//----------

type Decoder interface {
	Decode(v any) error
}

type DecoderFunc func(r io.Reader) Decoder

func decoderFunc(format string) (DecoderFunc, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return func(r io.Reader) Decoder {
			d := yaml.NewDecoder(r)
			d.KnownFields(true)
			return d
		}, nil
	case "toml":
		return func(r io.Reader) Decoder {
			d := toml.NewDecoder(r)
			d.DisallowUnknownFields()
			return d
		}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Format from the filename extension.
func FormatOf(filename string) string {
	return strings.TrimPrefix(filepath.Ext(filename), ".")
}

//----------

func Decode(data []byte, format string) (*Doc, error) {
	fn, err := decoderFunc(format)
	if err != nil {
		return nil, err
	}
	doc := &Doc{}
	if err := fn(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, errors.Wrapf(err, "decode %v", format)
	}
	if doc.Root == nil {
		return nil, errors.New("missing root node")
	}
	if len(doc.Size) != 0 && len(doc.Size) != 2 {
		return nil, errors.Errorf("bad size: %v", doc.Size)
	}
	return doc, nil
}

func DecodeFile(filename string) (*Doc, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, FormatOf(filename))
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return doc, nil
}
