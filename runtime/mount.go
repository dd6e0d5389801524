package runtime

import (
	"errors"
	"fmt"

	"github.com/vcrobe/crosslab/vdom"
)

// ErrNilParent is returned when a component is attached without a container.
var ErrNilParent = errors.New("mount: parent element is nil")

// Mount owns the single live element rendered for one component.
// Every Attach or Refresh releases the previous element before building the
// next one, so a component never leaves stale nodes or listeners behind.
type Mount struct {
	comp   Component
	parent vdom.Element
	el     vdom.Element
}

// NewMount creates a detached mount for comp.
func NewMount(comp Component) *Mount {
	return &Mount{comp: comp}
}

// Attached reports whether the component currently has a live element.
func (m *Mount) Attached() bool {
	return m.el != nil
}

// Element returns the live element, or nil when detached.
func (m *Mount) Element() vdom.Element {
	return m.el
}

// Parent returns the container the element is attached to, or nil when detached.
func (m *Mount) Parent() vdom.Element {
	return m.parent
}

// Attach renders the component into parent.
// Attaching again to the same parent replaces the element in place; attaching
// to a different parent removes it from the old one first.
func (m *Mount) Attach(parent vdom.Element) error {
	if parent == nil {
		return ErrNilParent
	}

	if m.el != nil && m.parent != parent {
		if err := m.Detach(); err != nil {
			return err
		}
	}

	n := m.comp.Render()
	if n == nil {
		return fmt.Errorf("mount: component rendered nothing")
	}

	old := m.el
	if old != nil {
		old.Release()
	}

	el, err := parent.OwnerDocument().CreateElement(n)
	if err != nil {
		if old != nil {
			// old has no listeners left; don't leave it behind as a dead node.
			_ = m.parent.RemoveChild(old)
			m.el = nil
			m.parent = nil
		}
		return fmt.Errorf("mount: render %s: %w", n.Tag, err)
	}

	if old != nil {
		err = parent.ReplaceChild(el, old)
		if errors.Is(err, vdom.ErrNotChild) {
			// The old element was moved away by someone else; fall back to appending.
			err = parent.AppendChild(el)
		}
	} else {
		err = parent.AppendChild(el)
	}
	if err != nil {
		el.Release()
		return fmt.Errorf("mount: attach %s: %w", n.Tag, err)
	}

	m.parent = parent
	m.el = el
	return nil
}

// Refresh re-renders the component against its current parent.
// It is a no-op when the component was never attached.
func (m *Mount) Refresh() error {
	if m.el == nil {
		return nil
	}
	return m.Attach(m.parent)
}

// Detach removes and releases the live element.
func (m *Mount) Detach() error {
	if m.el == nil {
		return nil
	}

	m.el.Release()
	err := m.parent.RemoveChild(m.el)
	m.el = nil
	m.parent = nil
	if err != nil && !errors.Is(err, vdom.ErrNotChild) {
		return fmt.Errorf("mount: detach: %w", err)
	}
	return nil
}
