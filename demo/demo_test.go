//go:build !wasm

package demo

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/crosslab/console"
	"github.com/vcrobe/crosslab/events"
	"github.com/vcrobe/crosslab/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(console.NewSinkHandler(func(slog.Level, string) {}, nil))
}

func setup(t *testing.T) (*Demo, *vdom.MemoryElement) {
	t.Helper()
	doc := vdom.NewMemoryDocument()
	d, err := Setup(doc, quietLogger())
	require.NoError(t, err)

	body := doc.MemoryBody()
	require.Len(t, body.Children(), 1)
	return d, body.Children()[0]
}

func TestSetup_RendersThreeButtonsInFlexRow(t *testing.T) {
	d, row := setup(t)

	assert.Same(t, row, d.Container)
	assert.Equal(t, "flex", row.Style("display"))
	assert.Equal(t, "10px", row.Style("gap"))
	assert.Equal(t, "20px", row.Style("padding"))

	children := row.Children()
	require.Len(t, children, 3)

	want := []struct {
		label, width, height, background string
	}{
		{"Submit", "100px", "50px", "#4CAF50"},
		{"Cancel", "120px", "50px", "#F44336"},
		{"More Info", "150px", "60px", "#2196F3"},
	}
	for i, w := range want {
		assert.Equal(t, w.label, children[i].Text())
		assert.Equal(t, w.width, children[i].Style("width"))
		assert.Equal(t, w.height, children[i].Style("height"))
		assert.Equal(t, w.background, children[i].Style("background-color"))
	}
}

func TestUpdate_RelabelsAndRestylesFirstButton(t *testing.T) {
	d, row := setup(t)

	require.NoError(t, d.Update())

	children := row.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "Confirmed", children[0].Text())
	assert.Equal(t, "#FFC107", children[0].Style("background-color"))
	assert.Equal(t, "Cancel", children[1].Text())

	children[0].Dispatch(events.MouseOver)
	assert.Equal(t, "#cc9a05", children[0].Style("background-color"))
}

func TestRun_UpdatesAfterDelay(t *testing.T) {
	d, row := setup(t)

	require.NoError(t, d.Run(context.Background(), time.Millisecond))

	assert.Equal(t, "Confirmed", row.Children()[0].Text())
}

func TestRun_StopsOnCancel(t *testing.T) {
	d, row := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Submit", row.Children()[0].Text())
}
