package widget

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/jmigpin/lgui/util/uiutil/event"
	"github.com/pkg/errors"
)

// Implemented by the tree root.
type FocusContext interface {
	FocusManager() *FocusManager
}

//----------

// Keeps the keyboard focus of one tree. Modal focus restricts the focus (and the input events) to the subtree of the modal node.
type FocusManager struct {
	root    Node
	logger  *slog.Logger
	focused Node
	modal   []Node // stack, nested modals must be descendants of the top
}

func NewFocusManager(root Node, logger *slog.Logger) *FocusManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &FocusManager{root: root, logger: logger}
}

func (fm *FocusManager) Focused() Node {
	return fm.focused
}

// Top modal node, or nil.
func (fm *FocusManager) ModalFocus() Node {
	if len(fm.modal) == 0 {
		return nil
	}
	return fm.modal[len(fm.modal)-1]
}

//----------

// Returns true if the node has the focus after the call. Requesting the focus for the focused node has no side effects.
func (fm *FocusManager) RequestFocus(n Node) bool {
	if n == nil {
		return false
	}
	if fm.focused == n {
		return true
	}
	if !n.Embed().Focusable() || !fm.inModal(n) {
		return false
	}
	fm.setFocus(n, false)
	return true
}

// Returns false if the node doesn't have the focus.
func (fm *FocusManager) ReleaseFocus(n Node) bool {
	if n == nil || fm.focused != n {
		return false
	}
	fm.setFocus(nil, false)
	return true
}

func (fm *FocusManager) setFocus(n Node, byModal bool) {
	old := fm.focused
	fm.focused = n
	if old != nil {
		old.Embed().marks.Remove(MarkFocused)
		old.OnInputEvent(&event.FocusLost{ByModal: byModal}, image.Point{})
	}
	if n != nil {
		n.Embed().marks.Add(MarkFocused)
		n.OnInputEvent(&event.FocusGained{}, image.Point{})
	}
}

//----------

// Restricts the focus to the subtree of n. Fails if a modal node is held and n is not inside its subtree.
func (fm *FocusManager) RequestModalFocus(n Node) error {
	if n == nil {
		return errors.Wrap(ErrNilNode, "modal focus")
	}
	top := fm.ModalFocus()
	if top == n {
		return nil
	}
	if top != nil && !top.Embed().IsAncestorOf(n.Embed()) {
		return errors.Wrapf(ErrModalFocusHeld, "held by %T, requested by %T", top, n)
	}
	fm.modal = append(fm.modal, n)
	if fm.focused != nil && !fm.inModal(fm.focused) {
		fm.setFocus(nil, true)
	}
	return nil
}

// Returns false (and logs a warning) if n is not the top modal node.
func (fm *FocusManager) ReleaseModalFocus(n Node) bool {
	top := fm.ModalFocus()
	if top == nil || top != n {
		fm.logger.Warn("release modal focus: not the modal node",
			"node", fmt.Sprintf("%T", n),
			"modal", fmt.Sprintf("%T", top))
		return false
	}
	fm.modal = fm.modal[:len(fm.modal)-1]
	return true
}

// Node is inside the top modal subtree, or there is no modal.
func (fm *FocusManager) inModal(n Node) bool {
	top := fm.ModalFocus()
	return top == nil || top.Embed().IsAncestorOf(n.Embed())
}

//----------

// Moves the focus to the next focusable node in tree order, wrapping around. Returns false if there is no focusable node.
func (fm *FocusManager) FocusNext() bool {
	return fm.focusStep(1)
}

func (fm *FocusManager) FocusPrev() bool {
	return fm.focusStep(-1)
}

func (fm *FocusManager) focusStep(step int) bool {
	scope := fm.ModalFocus()
	if scope == nil {
		scope = fm.root
	}
	if scope == nil {
		return false
	}
	u := focusables(scope, nil)
	if len(u) == 0 {
		return false
	}
	i := -1
	for k, n := range u {
		if n == fm.focused {
			i = k
			break
		}
	}
	if i < 0 && step < 0 {
		i = 0 // previous of none is the last
	}
	j := (i + step + len(u)) % len(u)
	return fm.RequestFocus(u[j])
}

// Depth first, skipping hidden subtrees.
func focusables(n Node, u []Node) []Node {
	ne := n.Embed()
	if !ne.Visible() {
		return u
	}
	if ne.Focusable() {
		u = append(u, n)
	}
	ne.IterateWrappers2(func(c Node) {
		u = focusables(c, u)
	})
	return u
}

//----------

// The subtree of en was detached from the tree.
func (fm *FocusManager) nodeRemoved(en *EmbedNode) {
	for i, m := range fm.modal {
		if en.IsAncestorOf(m.Embed()) {
			fm.logger.Debug("modal node removed", "node", fmt.Sprintf("%T", m))
			fm.modal = fm.modal[:i]
			break
		}
	}
	if fm.focused != nil && en.IsAncestorOf(fm.focused.Embed()) {
		fm.setFocus(nil, false)
	}
}

// Handles tab traversal. Returns true if the key was used.
func (fm *FocusManager) handleKey(ev *event.KeyDown) bool {
	switch ev.KeySym {
	case event.KSymTab:
		if ev.Mods.HasAny(event.ModShift) {
			return fm.FocusPrev()
		}
		return fm.FocusNext()
	case event.KSymTabLeft:
		return fm.FocusPrev()
	}
	return false
}
