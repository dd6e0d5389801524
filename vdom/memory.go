package vdom

import (
	"fmt"
	"slices"
)

// Compile-time assertions for the in-memory host.
var (
	_ Document = (*MemoryDocument)(nil)
	_ Element  = (*MemoryElement)(nil)
)

// MemoryDocument is an in-memory host tree. It needs no browser, so tests and
// native builds render into it and inspect the result.
// It is not safe for concurrent use, matching the single-threaded DOM.
type MemoryDocument struct {
	body *MemoryElement
}

// NewMemoryDocument creates a document with an empty <body>.
func NewMemoryDocument() *MemoryDocument {
	d := &MemoryDocument{}
	d.body = d.newElement("body")
	return d
}

// Body returns the document's <body> element.
func (d *MemoryDocument) Body() Element {
	return d.body
}

// MemoryBody returns the concrete <body> element for inspection.
func (d *MemoryDocument) MemoryBody() *MemoryElement {
	return d.body
}

// CreateElement builds a detached element tree for n.
func (d *MemoryDocument) CreateElement(n *VNode) (Element, error) {
	el, err := d.create(n)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (d *MemoryDocument) create(n *VNode) (*MemoryElement, error) {
	if n == nil || n.Tag == "" {
		return nil, fmt.Errorf("create element: empty node")
	}

	el := d.newElement(n.Tag)
	el.text = n.Content
	for k, v := range n.Attributes {
		el.attrs[k] = fmt.Sprint(v)
	}
	for k, v := range n.Styles {
		el.style[k] = v
	}
	for event, h := range n.Handlers {
		el.listeners[event] = append(el.listeners[event], h)
	}

	// Text content wins over children, as with textContent in the DOM.
	if n.Content != "" {
		return el, nil
	}
	for _, child := range n.Children {
		c, err := d.create(child)
		if err != nil {
			return nil, err
		}
		if err := el.AppendChild(c); err != nil {
			return nil, err
		}
	}
	return el, nil
}

func (d *MemoryDocument) newElement(tag string) *MemoryElement {
	return &MemoryElement{
		doc:       d,
		tag:       tag,
		attrs:     make(map[string]string),
		style:     make(map[string]string),
		listeners: make(map[string][]func()),
	}
}

// MemoryElement is a node of a MemoryDocument.
type MemoryElement struct {
	doc       *MemoryDocument
	tag       string
	text      string
	attrs     map[string]string
	style     map[string]string
	listeners map[string][]func()
	parent    *MemoryElement
	children  []*MemoryElement
}

func (e *MemoryElement) OwnerDocument() Document {
	return e.doc
}

// Tag returns the element's tag name.
func (e *MemoryElement) Tag() string { return e.tag }

// Text returns the element's own text content.
func (e *MemoryElement) Text() string { return e.text }

// Attr returns an attribute value and whether it is set.
func (e *MemoryElement) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Style returns an inline CSS property, or "" when unset.
func (e *MemoryElement) Style(prop string) string { return e.style[prop] }

// Parent returns the parent element, or nil when detached.
func (e *MemoryElement) Parent() *MemoryElement { return e.parent }

// Children returns a copy of the child list.
func (e *MemoryElement) Children() []*MemoryElement {
	return slices.Clone(e.children)
}

// ListenerCount returns how many handlers are attached for event.
func (e *MemoryElement) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch fires event on the element, calling its handlers in registration order.
// Events do not bubble.
func (e *MemoryElement) Dispatch(event string) {
	for _, h := range slices.Clone(e.listeners[event]) {
		callHandler(event, h)
	}
}

func (e *MemoryElement) AppendChild(child Element) error {
	c, err := e.adopt(child)
	if err != nil {
		return err
	}
	c.detach()
	c.parent = e
	e.children = append(e.children, c)
	return nil
}

func (e *MemoryElement) ReplaceChild(newChild, oldChild Element) error {
	n, err := e.adopt(newChild)
	if err != nil {
		return err
	}
	o, ok := oldChild.(*MemoryElement)
	if !ok {
		return ErrForeignElement
	}
	if n == o {
		return nil
	}
	if e.indexOf(o) < 0 {
		return ErrNotChild
	}

	n.detach()
	// Detaching n may shift o's index.
	i := e.indexOf(o)
	e.children[i] = n
	n.parent = e
	o.parent = nil
	return nil
}

func (e *MemoryElement) RemoveChild(child Element) error {
	c, ok := child.(*MemoryElement)
	if !ok {
		return ErrForeignElement
	}
	if e.indexOf(c) < 0 {
		return ErrNotChild
	}
	c.detach()
	return nil
}

func (e *MemoryElement) SetText(text string) {
	e.text = text
	e.children = nil
}

func (e *MemoryElement) SetStyle(prop, value string) {
	e.style[prop] = value
}

func (e *MemoryElement) Release() {
	clear(e.listeners)
	for _, c := range e.children {
		c.Release()
	}
}

// adopt checks that child can be placed under e.
func (e *MemoryElement) adopt(child Element) (*MemoryElement, error) {
	c, ok := child.(*MemoryElement)
	if !ok || c == nil || c.doc != e.doc {
		return nil, ErrForeignElement
	}
	if IsVoid(e.tag) {
		return nil, fmt.Errorf("<%s>: %w", e.tag, ErrNotContainer)
	}
	for p := e; p != nil; p = p.parent {
		if p == c {
			return nil, fmt.Errorf("<%s>: cannot attach an ancestor as a child", c.tag)
		}
	}
	return c, nil
}

func (e *MemoryElement) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	if i := p.indexOf(e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

func (e *MemoryElement) indexOf(c *MemoryElement) int {
	return slices.Index(e.children, c)
}
