package vdom

import "github.com/vcrobe/crosslab/events"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string            // The HTML tag name
	Attributes map[string]any    // The attributes of the node
	Styles     map[string]string // Inline CSS properties, keyed by property name
	Children   []*VNode          // The child nodes
	Content    string            // The text content of the node
	Handlers   map[string]func() // Event handlers keyed by DOM event name
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is moved into Handlers so it doesn't
// get rendered as an HTML attribute.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	n := &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				n.On(events.Click, f)
				delete(attributes, "onClick")
			}
		}
	}
	return n
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// SetStyle sets an inline CSS property and returns the node for chaining.
func (v *VNode) SetStyle(prop, value string) *VNode {
	if v.Styles == nil {
		v.Styles = make(map[string]string)
	}
	v.Styles[prop] = value
	return v
}

// On registers the handler for a DOM event and returns the node for chaining.
// A later registration for the same event replaces the earlier one.
func (v *VNode) On(event string, handler func()) *VNode {
	if handler == nil {
		return v
	}
	if v.Handlers == nil {
		v.Handlers = make(map[string]func())
	}
	v.Handlers[event] = handler
	return v
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
