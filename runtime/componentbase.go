package runtime

import "github.com/vcrobe/crosslab/vdom"

// ComponentBase is a struct that components can embed to own their Mount and
// gain access to the StateHasChanged method.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	mount *Mount
}

// Init binds the embedding component to its mount. Constructors call it once
// with the outer component.
func (b *ComponentBase) Init(self Component) {
	b.mount = NewMount(self)
}

// RenderTo attaches the component to parent, replacing any element it
// rendered before.
func (b *ComponentBase) RenderTo(parent vdom.Element) error {
	return b.mount.Attach(parent)
}

// Element returns the component's live element, or nil before the first render.
func (b *ComponentBase) Element() vdom.Element {
	return b.mount.Element()
}

// Unmount removes the component's element from the document.
func (b *ComponentBase) Unmount() error {
	return b.mount.Detach()
}

// StateHasChanged signals that the component's state has been updated and its
// element should be rebuilt. Components that were never rendered stay detached.
func (b *ComponentBase) StateHasChanged() error {
	return b.mount.Refresh()
}
