package layoutfile

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/jmigpin/lgui/util/uiutil/widget"
	"github.com/pkg/errors"
)

var ErrBadNode = errors.New("bad node")

// Widget tree built from a document.
type Tree struct {
	Root  *widget.Root
	Top   widget.Node // built from Doc.Root
	Size  image.Point // document default size
	names map[string]widget.Node
	order []string // named nodes in document order
}

func Build(doc *Doc, cfg widget.RootConfig) (*Tree, error) {
	t := &Tree{
		Root:  widget.NewRoot(cfg),
		names: map[string]widget.Node{},
	}
	if len(doc.Size) == 2 {
		t.Size = image.Point{doc.Size[0], doc.Size[1]}
	}
	top, err := t.build(doc.Root)
	if err != nil {
		return nil, err
	}
	t.Top = top
	t.Root.Append(top)
	return t, nil
}

func (t *Tree) Node(name string) widget.Node {
	return t.names[name]
}

// Lays out the tree with the given size, or the document size if zero.
func (t *Tree) Layout(size image.Point) {
	if size == (image.Point{}) {
		size = t.Size
	}
	t.Root.Resize(size)
}

// Writes the bounds of the named nodes in document order.
func (t *Tree) Dump(w io.Writer) error {
	for _, name := range t.order {
		b := t.names[name].Embed().Bounds
		if _, err := fmt.Fprintf(w, "%s: %v\n", name, b); err != nil {
			return err
		}
	}
	return nil
}

//----------

func (t *Tree) build(n *Node) (widget.Node, error) {
	wn, err := t.newNode(n)
	if err != nil {
		return nil, err
	}
	if n.Name != "" {
		if _, ok := t.names[n.Name]; ok {
			return nil, errors.Wrapf(ErrBadNode, "duplicate name: %q", n.Name)
		}
		t.names[n.Name] = wn
		t.order = append(t.order, n.Name)
	}

	childs := make([]widget.Node, 0, len(n.Children))
	for _, c := range n.Children {
		wc, err := t.build(c)
		if err != nil {
			return nil, err
		}
		childs = append(childs, wc)
	}
	if len(childs) > 0 {
		if err := t.buildLayout(n, wn, childs); err != nil {
			return nil, errors.Wrapf(err, "node %q", n.Name)
		}
	}

	if n.Hidden {
		wn.Embed().SetVisible(false)
	}
	return wn, nil
}

func (t *Tree) newNode(n *Node) (widget.Node, error) {
	kind := n.Kind
	if kind == "" {
		kind = "container"
	}
	if kind != "container" && len(n.Children) > 0 {
		return nil, errors.Wrapf(ErrBadNode, "%q: %v can't have children", n.Name, kind)
	}
	switch kind {
	case "container":
		c := &widget.ENode{}
		c.SetWrapper(c)
		return c, nil
	case "rectangle":
		if len(n.Size) != 2 {
			return nil, errors.Wrapf(ErrBadNode, "%q: rectangle size: %v", n.Name, n.Size)
		}
		return widget.NewRectangle(image.Point{n.Size[0], n.Size[1]}), nil
	case "label":
		return widget.NewLabel(n.Text), nil
	case "button":
		return widget.NewButton(n.Text), nil
	}
	return nil, errors.Wrapf(ErrBadNode, "%q: unknown kind: %q", n.Name, kind)
}

//----------

func (t *Tree) buildLayout(n *Node, wn widget.Node, childs []widget.Node) error {
	hs, vs, err := spacing(n.Spacing)
	if err != nil {
		return err
	}
	ne := wn.Embed()

	switch n.Layout {
	case "":
		ne.Append(childs...)
		return nil
	case "relative":
		rl := widget.NewRelativeLayout()
		ne.SetLayout(rl)
		// all items first, constraints can refer to any sibling
		for i, c := range childs {
			if err := rl.AddItem(c); err != nil {
				return err
			}
			if err := setItem(&rl.Item(c).LayoutItem, &n.Children[i].Item); err != nil {
				return err
			}
		}
		for i, c := range childs {
			cs, err := t.relConstraints(n.Children[i].Item.Relative)
			if err != nil {
				return errors.Wrapf(err, "child %q", n.Children[i].Name)
			}
			if err := rl.AddConstraints(c, cs...); err != nil {
				return errors.Wrapf(err, "child %q", n.Children[i].Name)
			}
		}
		// a cycle would panic when laying out
		for _, yAxis := range []bool{false, true} {
			if _, err := rl.SortedElements(yAxis); err != nil {
				return err
			}
		}
	case "hbox", "vbox":
		bl := widget.NewBoxLayout(n.Layout == "vbox")
		bl.Spacing = hs
		if n.Layout == "vbox" {
			bl.Spacing = vs
		}
		ne.SetLayout(bl)
		for i, c := range childs {
			it, err := bl.AddItem(c, n.Children[i].Item.Stretch)
			if err != nil {
				return err
			}
			if err := setItem(&it.LayoutItem, &n.Children[i].Item); err != nil {
				return err
			}
		}
	case "flow":
		fl := widget.NewFlowLayout()
		fl.HSpacing, fl.VSpacing = hs, vs
		ne.SetLayout(fl)
		for i, c := range childs {
			it, err := fl.AddItem(c)
			if err != nil {
				return err
			}
			if err := setItem(it, &n.Children[i].Item); err != nil {
				return err
			}
		}
	case "table":
		tl := widget.NewTableLayout()
		tl.HSpacing, tl.VSpacing = hs, vs
		ne.SetLayout(tl)
		for i, s := range n.ColStretch {
			if err := tl.SetColumnStretch(i, s); err != nil {
				return err
			}
		}
		for i, s := range n.RowStretch {
			if err := tl.SetRowStretch(i, s); err != nil {
				return err
			}
		}
		for i, c := range childs {
			ci := &n.Children[i].Item
			it, err := tl.AddItem(c, ci.Row, ci.Col)
			if err != nil {
				return err
			}
			if err := setItem(&it.LayoutItem, ci); err != nil {
				return err
			}
		}
	case "align":
		al := widget.NewAlignLayout()
		ne.SetLayout(al)
		for i, c := range childs {
			it, err := al.AddItem(c, widget.Alignment{})
			if err != nil {
				return err
			}
			if err := setItem(it, &n.Children[i].Item); err != nil {
				return err
			}
		}
	default:
		return errors.Wrapf(ErrBadNode, "unknown layout: %q", n.Layout)
	}
	return nil
}

func spacing(u []int) (int, int, error) {
	switch len(u) {
	case 0:
		return 0, 0, nil
	case 1:
		return u[0], u[0], nil
	case 2:
		return u[0], u[1], nil
	}
	return 0, 0, errors.Wrapf(ErrBadNode, "spacing: %v", u)
}

//----------

func setItem(it *widget.LayoutItem, fi *Item) error {
	switch len(fi.Margins) {
	case 0:
	case 1:
		it.Margins = widget.MarginsAll(fi.Margins[0])
	case 4:
		m := fi.Margins
		it.Margins = widget.Margins{Left: m[0], Top: m[1], Right: m[2], Bottom: m[3]}
	default:
		return errors.Wrapf(ErrBadNode, "margins: %v", fi.Margins)
	}

	switch len(fi.Align) {
	case 0:
	case 2:
		x, err := alignMode(fi.Align[0])
		if err != nil {
			return err
		}
		y, err := alignMode(fi.Align[1])
		if err != nil {
			return err
		}
		it.Align = widget.Alignment{X: x, Y: y}
	default:
		return errors.Wrapf(ErrBadNode, "align: %v", fi.Align)
	}
	return nil
}

func alignMode(s string) (widget.AlignMode, error) {
	switch strings.ToLower(s) {
	case "stretch":
		return widget.AlignStretch, nil
	case "start":
		return widget.AlignStart, nil
	case "center":
		return widget.AlignCenter, nil
	case "end":
		return widget.AlignEnd, nil
	}
	return 0, errors.Wrapf(ErrBadNode, "align mode: %q", s)
}

//----------

var relKinds = func() map[string]widget.RelConstraintKind {
	m := map[string]widget.RelConstraintKind{}
	for k := widget.RelConstraintKind(0); k <= widget.RelCenterInParent; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// Parses "kind [arg]" strings. The argument is a percentage or a sibling name.
func (t *Tree) relConstraints(u []string) ([]widget.Constraint, error) {
	cs := []widget.Constraint{}
	for _, s := range u {
		f := strings.Fields(s)
		if len(f) == 0 || len(f) > 2 {
			return nil, errors.Wrapf(widget.ErrBadConstraintArg, "%q", s)
		}
		k, ok := relKinds[strings.ToLower(f[0])]
		if !ok {
			return nil, errors.Wrapf(widget.ErrBadConstraintArg, "unknown kind: %q", f[0])
		}
		c := widget.Constraint{Kind: k}
		switch {
		case k.HasDependency():
			if len(f) != 2 {
				return nil, errors.Wrapf(widget.ErrBadConstraintArg, "%q: missing sibling", s)
			}
			dep, ok := t.names[f[1]]
			if !ok {
				return nil, errors.Wrapf(widget.ErrUnregisteredDependency, "%q", f[1])
			}
			c.Dep = dep
		case k.IsPerc():
			if len(f) != 2 {
				return nil, errors.Wrapf(widget.ErrBadConstraintArg, "%q: missing percentage", s)
			}
			p, err := strconv.ParseFloat(f[1], 64)
			if err != nil {
				return nil, errors.Wrapf(widget.ErrBadConstraintArg, "%q: %v", s, err)
			}
			c.Perc = p
		default:
			if len(f) != 1 {
				return nil, errors.Wrapf(widget.ErrBadConstraintArg, "%q: unexpected argument", s)
			}
		}
		cs = append(cs, c)
	}
	return cs, nil
}
