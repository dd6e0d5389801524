//go:build !wasm
// +build !wasm

package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreate(t *testing.T, d *MemoryDocument, n *VNode) *MemoryElement {
	t.Helper()
	el, err := d.CreateElement(n)
	require.NoError(t, err)
	return el.(*MemoryElement)
}

// TestMemoryDocument_CreateElement verifies that attributes, styles, text and
// children of a VNode are materialized.
func TestMemoryDocument_CreateElement(t *testing.T) {
	doc := NewMemoryDocument()

	n := Div(map[string]any{"id": "root", "data-attr": -1.3},
		Button("Click me", nil).SetStyle("width", "100px"),
		Button("Other", nil),
	)
	el := mustCreate(t, doc, n)

	assert.Equal(t, "div", el.Tag())
	id, ok := el.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "root", id)
	v, _ := el.Attr("data-attr")
	assert.Equal(t, "-1.3", v)

	require.Len(t, el.Children(), 2)
	first := el.Children()[0]
	assert.Equal(t, "Click me", first.Text())
	assert.Equal(t, "100px", first.Style("width"))
	assert.Same(t, el, first.Parent())
	assert.Nil(t, el.Parent(), "created elements start detached")
}

func TestMemoryDocument_CreateElementRejectsEmptyNode(t *testing.T) {
	doc := NewMemoryDocument()

	_, err := doc.CreateElement(nil)
	assert.Error(t, err)

	_, err = doc.CreateElement(Div(nil, &VNode{}))
	assert.Error(t, err)
}

func TestNewVNode_MovesOnClickIntoHandlers(t *testing.T) {
	clicked := 0
	n := Button("Go", map[string]any{"onClick": func() { clicked++ }})

	_, inAttrs := n.Attributes["onClick"]
	assert.False(t, inAttrs)
	require.Contains(t, n.Handlers, "click")

	el := mustCreate(t, NewMemoryDocument(), n)
	el.Dispatch("click")
	assert.Equal(t, 1, clicked)
}

func TestMemoryElement_AppendMovesChild(t *testing.T) {
	doc := NewMemoryDocument()
	a := mustCreate(t, doc, Div(nil))
	b := mustCreate(t, doc, Div(nil))
	child := mustCreate(t, doc, Button("x", nil))

	require.NoError(t, a.AppendChild(child))
	require.NoError(t, b.AppendChild(child))

	assert.Empty(t, a.Children())
	assert.Equal(t, []*MemoryElement{child}, b.Children())
	assert.Same(t, b, child.Parent())
}

func TestMemoryElement_ReplaceChildKeepsPosition(t *testing.T) {
	doc := NewMemoryDocument()
	parent := mustCreate(t, doc, Div(nil))
	first := mustCreate(t, doc, Button("1", nil))
	second := mustCreate(t, doc, Button("2", nil))
	third := mustCreate(t, doc, Button("3", nil))
	replacement := mustCreate(t, doc, Button("2b", nil))

	for _, c := range []*MemoryElement{first, second, third} {
		require.NoError(t, parent.AppendChild(c))
	}

	require.NoError(t, parent.ReplaceChild(replacement, second))

	assert.Equal(t, []*MemoryElement{first, replacement, third}, parent.Children())
	assert.Nil(t, second.Parent())
	assert.ErrorIs(t, parent.ReplaceChild(replacement, second), ErrNotChild)
}

func TestMemoryElement_RemoveChild(t *testing.T) {
	doc := NewMemoryDocument()
	parent := mustCreate(t, doc, Div(nil))
	child := mustCreate(t, doc, Button("x", nil))

	assert.ErrorIs(t, parent.RemoveChild(child), ErrNotChild)

	require.NoError(t, parent.AppendChild(child))
	require.NoError(t, parent.RemoveChild(child))
	assert.Empty(t, parent.Children())
	assert.Nil(t, child.Parent())
}

func TestMemoryElement_VoidElementIsNotAContainer(t *testing.T) {
	doc := NewMemoryDocument()
	input := mustCreate(t, doc, NewVNode("input", map[string]any{"type": "text"}, nil, ""))
	child := mustCreate(t, doc, Button("x", nil))

	assert.ErrorIs(t, input.AppendChild(child), ErrNotContainer)
}

func TestMemoryElement_RejectsForeignAndAncestorNodes(t *testing.T) {
	doc := NewMemoryDocument()
	other := NewMemoryDocument()
	parent := mustCreate(t, doc, Div(nil))
	foreign := mustCreate(t, other, Div(nil))

	assert.ErrorIs(t, parent.AppendChild(foreign), ErrForeignElement)

	child := mustCreate(t, doc, Div(nil))
	require.NoError(t, parent.AppendChild(child))
	assert.Error(t, child.AppendChild(parent))
}

func TestMemoryElement_ReleaseDropsListeners(t *testing.T) {
	doc := NewMemoryDocument()
	calls := 0
	n := Div(nil, Button("x", nil).On("mousedown", func() { calls++ }))
	el := mustCreate(t, doc, n)
	btn := el.Children()[0]

	btn.Dispatch("mousedown")
	require.Equal(t, 1, calls)

	el.Release()
	btn.Dispatch("mousedown")

	assert.Equal(t, 1, calls)
	assert.Zero(t, btn.ListenerCount("mousedown"))
}

func TestMemoryElement_SetTextDropsChildren(t *testing.T) {
	doc := NewMemoryDocument()
	el := mustCreate(t, doc, Div(nil, Button("x", nil)))

	el.SetText("plain")

	assert.Equal(t, "plain", el.Text())
	assert.Empty(t, el.Children())
}
