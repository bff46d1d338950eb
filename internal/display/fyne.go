//go:build gui

package display

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Fyne simulates a square e-ink panel inside a Fyne window.
type Fyne struct {
	label *widget.Label
	panel fyne.CanvasObject
	buf   strings.Builder
}

// NewFyne creates a panel of side x side device-independent pixels.
func NewFyne(side float32) *Fyne {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord

	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = color.Gray{Y: 0x88}
	frame.StrokeWidth = 2

	return &Fyne{
		label: label,
		panel: container.NewGridWrap(
			fyne.NewSize(side, side),
			container.NewStack(frame, container.NewPadded(label)),
		),
	}
}

// Object returns the canvas object to place in the window.
func (f *Fyne) Object() fyne.CanvasObject { return f.panel }

func (f *Fyne) Clear()           { f.buf.Reset() }
func (f *Fyne) Draw(text string) { f.buf.WriteString(text) }

// Refresh pushes the drawn text to the label, which repaints it.
func (f *Fyne) Refresh() error {
	f.label.SetText(f.buf.String())
	return nil
}
