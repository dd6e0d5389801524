//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"
)

// Compile-time assertions for the browser host.
var (
	_ Document = (*DOMDocument)(nil)
	_ Element  = (*DOMElement)(nil)
)

// DOMDocument materializes VNodes into the browser's document.
type DOMDocument struct {
	doc  js.Value
	body *DOMElement
}

// NewDOMDocument wraps the global document object.
func NewDOMDocument() (*DOMDocument, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, fmt.Errorf("global document is not available")
	}
	return &DOMDocument{doc: doc}, nil
}

// Body returns the document's <body> element. The same Element is returned on
// every call so callers can compare it.
func (d *DOMDocument) Body() Element {
	if d.body == nil {
		d.body = d.wrap(d.doc.Get("body"))
	}
	return d.body
}

// Query returns the first element matching the CSS selector.
func (d *DOMDocument) Query(selector string) (Element, error) {
	if selector == "" {
		return nil, fmt.Errorf("empty selector")
	}
	el := d.doc.Call("querySelector", selector)
	if !el.Truthy() {
		return nil, fmt.Errorf("mount element not found for selector %q", selector)
	}
	return d.wrap(el), nil
}

// CreateElement builds a detached DOM subtree for n.
// The js.Func callbacks for the whole subtree are owned by the returned element.
func (d *DOMDocument) CreateElement(n *VNode) (Element, error) {
	root := d.wrap(js.Undefined())
	v, err := d.createElement(n, root)
	if err != nil {
		root.Release()
		return nil, err
	}
	root.v = v
	return root, nil
}

func (d *DOMDocument) createElement(n *VNode, owner *DOMElement) (js.Value, error) {
	if n == nil || n.Tag == "" {
		return js.Undefined(), fmt.Errorf("create element: empty node")
	}

	el := d.doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	style := el.Get("style")
	for k, v := range n.Styles {
		style.Call("setProperty", k, v)
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	} else if !IsVoid(n.Tag) {
		for _, child := range n.Children {
			childEl, err := d.createElement(child, owner)
			if err != nil {
				return js.Undefined(), err
			}
			el.Call("appendChild", childEl)
		}
	}

	for event, h := range n.Handlers {
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			callHandler(event, h)
			return nil
		})
		el.Call("addEventListener", event, cb)
		owner.listeners = append(owner.listeners, listener{target: el, event: event, fn: cb})
	}

	return el, nil
}

func (d *DOMDocument) wrap(v js.Value) *DOMElement {
	return &DOMElement{doc: d, v: v}
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// DOMElement is a browser element created or looked up through a DOMDocument.
type DOMElement struct {
	doc       *DOMDocument
	v         js.Value
	listeners []listener
}

// Value exposes the underlying js.Value.
func (e *DOMElement) Value() js.Value { return e.v }

func (e *DOMElement) OwnerDocument() Document { return e.doc }

func (e *DOMElement) AppendChild(child Element) error {
	c, err := e.adopt(child)
	if err != nil {
		return err
	}
	e.v.Call("appendChild", c.v)
	return nil
}

func (e *DOMElement) ReplaceChild(newChild, oldChild Element) error {
	n, err := e.adopt(newChild)
	if err != nil {
		return err
	}
	o, ok := oldChild.(*DOMElement)
	if !ok {
		return ErrForeignElement
	}
	if !o.v.Get("parentNode").Equal(e.v) {
		return ErrNotChild
	}
	e.v.Call("replaceChild", n.v, o.v)
	return nil
}

func (e *DOMElement) RemoveChild(child Element) error {
	c, ok := child.(*DOMElement)
	if !ok {
		return ErrForeignElement
	}
	if !c.v.Get("parentNode").Equal(e.v) {
		return ErrNotChild
	}
	e.v.Call("removeChild", c.v)
	return nil
}

func (e *DOMElement) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *DOMElement) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

// Release removes the event listeners wired by CreateElement and frees their js.Func objects.
func (e *DOMElement) Release() {
	for _, l := range e.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	e.listeners = nil
}

func (e *DOMElement) adopt(child Element) (*DOMElement, error) {
	c, ok := child.(*DOMElement)
	if !ok || c == nil || c.doc != e.doc {
		return nil, ErrForeignElement
	}
	if tag := e.v.Get("localName"); tag.Truthy() && IsVoid(tag.String()) {
		return nil, fmt.Errorf("<%s>: %w", tag.String(), ErrNotContainer)
	}
	return c, nil
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		}
		// If false, don't set the attribute at all
		return
	}

	el.Call("setAttribute", key, fmt.Sprint(value))
}
