// Package demo builds the showcase page: three buttons in a flex row, the
// first of which is relabelled and recolored after a delay.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vcrobe/crosslab/vdom"
	"github.com/vcrobe/crosslab/widgets"
)

// Demo holds the page's container and buttons.
type Demo struct {
	Container vdom.Element
	Buttons   []*widgets.Button

	logger *slog.Logger
}

// Setup appends the button row to doc's body and renders the three buttons.
func Setup(doc vdom.Document, logger *slog.Logger) (*Demo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	row := vdom.Div(nil).
		SetStyle("display", "flex").
		SetStyle("gap", "10px").
		SetStyle("padding", "20px")

	container, err := doc.CreateElement(row)
	if err != nil {
		return nil, fmt.Errorf("demo: create container: %w", err)
	}
	if err := doc.Body().AppendChild(container); err != nil {
		return nil, fmt.Errorf("demo: attach container: %w", err)
	}

	log := widgets.WithLogger(logger)
	d := &Demo{
		Container: container,
		Buttons: []*widgets.Button{
			widgets.NewButton(log, widgets.WithLabel("Submit"), widgets.WithBackgroundColor("#4CAF50")),
			widgets.NewButton(log, widgets.WithLabel("Cancel"), widgets.WithWidth(120), widgets.WithBackgroundColor("#F44336")),
			widgets.NewButton(log, widgets.WithLabel("More Info"), widgets.WithWidth(150), widgets.WithHeight(60), widgets.WithBackgroundColor("#2196F3")),
		},
		logger: logger,
	}

	for _, b := range d.Buttons {
		if err := b.RenderTo(container); err != nil {
			return nil, fmt.Errorf("demo: render %q: %w", b.Label(), err)
		}
	}

	logger.Debug("demo rendered", "buttons", len(d.Buttons))
	return d, nil
}

// Update relabels the first button and switches it to amber.
func (d *Demo) Update() error {
	first := d.Buttons[0]
	first.UpdateLabel("Confirmed")
	if err := first.UpdateStyles(widgets.StyleUpdate{BackgroundColor: widgets.Ptr("#FFC107")}); err != nil {
		return fmt.Errorf("demo: update %q: %w", first.Label(), err)
	}

	d.logger.Debug("demo updated", "label", first.Label())
	return nil
}

// Run waits for delay once and then calls Update. It returns ctx.Err() if the
// context ends first.
func (d *Demo) Run(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return d.Update()
	}
}
