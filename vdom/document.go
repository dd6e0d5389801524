package vdom

import "errors"

var (
	// ErrNotContainer is returned when a child is attached to a void element such as <input>.
	ErrNotContainer = errors.New("element cannot contain children")

	// ErrNotChild is returned when removing or replacing a node that is not a child of the parent.
	ErrNotChild = errors.New("node is not a child of this element")

	// ErrForeignElement is returned when elements from different document implementations are mixed.
	ErrForeignElement = errors.New("element belongs to a different document")
)

// Document is the host tree that VNodes are materialized into.
// The browser DOM and the in-memory tree used by tests both implement it.
type Document interface {
	// Body returns the root container that pages attach their content to.
	Body() Element

	// CreateElement builds a detached element tree for n, wiring its event handlers.
	CreateElement(n *VNode) (Element, error)
}

// Element is a live node owned by a Document.
type Element interface {
	OwnerDocument() Document

	// AppendChild attaches child as the last child. A child that already has a
	// parent is moved, as in the DOM.
	AppendChild(child Element) error

	// ReplaceChild puts newChild at oldChild's position and detaches oldChild.
	ReplaceChild(newChild, oldChild Element) error

	RemoveChild(child Element) error

	// SetText replaces the element's text content.
	SetText(text string)

	// SetStyle sets one inline CSS property.
	SetStyle(prop, value string)

	// Release drops the event handlers wired by CreateElement for this subtree.
	// The element stays usable as a plain node afterwards.
	Release()
}

// voidTags lists HTML elements that never have children.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoid reports whether tag names an HTML void element.
func IsVoid(tag string) bool {
	return voidTags[tag]
}
