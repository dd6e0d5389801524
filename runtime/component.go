package runtime

import "github.com/vcrobe/crosslab/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// It must not touch the document; attaching is the Mount's job.
	Render() *vdom.VNode
}
