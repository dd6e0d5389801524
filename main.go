//go:build js || wasm
// +build js wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/vcrobe/crosslab/demo"
	"github.com/vcrobe/crosslab/events"
	"github.com/vcrobe/crosslab/internal/config"
	"github.com/vcrobe/crosslab/internal/logger"
	"github.com/vcrobe/crosslab/vdom"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Error loading configuration: " + err.Error())
	}
	log := logger.SetupConsoleLogger(cfg)

	// Build the page once the document is parsed.
	ready := make(chan struct{})
	if js.Global().Get("document").Get("readyState").String() == "loading" {
		var onReady js.Func
		onReady = js.FuncOf(func(this js.Value, args []js.Value) any {
			close(ready)
			onReady.Release()
			return nil
		})
		js.Global().Get("document").Call("addEventListener", events.DOMContentLoaded, onReady)
	} else {
		close(ready)
	}
	<-ready

	doc, err := vdom.NewDOMDocument()
	if err != nil {
		log.Error("Browser document unavailable", "error", err)
		return
	}

	page, err := demo.Setup(doc, log)
	if err != nil {
		log.Error("Error rendering demo", "error", err)
		return
	}

	go func() {
		if err := page.Run(context.Background(), cfg.UpdateDelay); err != nil {
			log.Error("Error updating demo", "error", err)
		}
	}()

	// Keep the Go program running
	select {}
}
