// Package ui draws the control panel and recorded-results table.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gaslab/telemetry"
)

// State carries the control values between the panel and the caller.
// Draw reads the current values and returns the (possibly changed) ones;
// the panel itself keeps no simulation state.
type State struct {
	Temperature float32
	Catalyst    bool
	Paused      bool

	// One-shot button results, valid for the frame Draw returned them.
	RecordClicked   bool
	SnapshotClicked bool
	ClearClicked    bool
}

// Controls is the right-hand control panel.
type Controls struct {
	panel            rl.Rectangle
	tempMin, tempMax float32
}

// NewControls creates the panel at the given screen rectangle with the
// temperature slider bounds.
func NewControls(panel rl.Rectangle, tempMin, tempMax float32) *Controls {
	return &Controls{panel: panel, tempMin: tempMin, tempMax: tempMax}
}

// Draw renders the panel and returns the updated control state.
func (c *Controls) Draw(state State, records []telemetry.RunRecord) State {
	const padding = float32(10)
	x := c.panel.X + padding
	y := c.panel.Y + padding
	w := c.panel.Width - 2*padding

	rl.DrawRectangleLines(int32(c.panel.X), int32(c.panel.Y),
		int32(c.panel.Width), int32(c.panel.Height),
		rl.Color{R: 120, G: 120, B: 130, A: 255})

	rl.DrawText("Controls", int32(x), int32(y), 16, rl.RayWhite)
	y += 28

	// Temperature slider
	rl.DrawText(fmt.Sprintf("Temperature: %.0f K", state.Temperature), int32(x), int32(y), 14, rl.LightGray)
	y += 20
	state.Temperature = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w, Height: 20},
		fmt.Sprintf("%.0f", c.tempMin), fmt.Sprintf("%.0f", c.tempMax),
		state.Temperature, c.tempMin, c.tempMax,
	)
	y += 32

	// Catalyst and pause toggles
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 5, Height: 26},
		toggleText(state.Catalyst, "Catalyst: on", "Catalyst: off")) {
		state.Catalyst = !state.Catalyst
	}
	if gui.Button(rl.Rectangle{X: x + w/2 + 5, Y: y, Width: w/2 - 5, Height: 26},
		toggleText(state.Paused, "Resume", "Pause")) {
		state.Paused = !state.Paused
	}
	y += 36

	// One-shot actions
	state.RecordClicked = gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 5, Height: 26}, "Record")
	state.SnapshotClicked = gui.Button(rl.Rectangle{X: x + w/2 + 5, Y: y, Width: w/2 - 5, Height: 26}, "Snapshot")
	y += 36

	// Recorded results table
	rl.DrawText("Recorded", int32(x), int32(y), 16, rl.RayWhite)
	state.ClearClicked = gui.Button(rl.Rectangle{X: x + w - 60, Y: y - 2, Width: 60, Height: 20}, "Clear")
	y += 24

	rl.DrawText("T      Ea    mode  %>Ea   rate", int32(x), int32(y), 12, rl.Gray)
	y += 16

	// Newest rows first, as many as fit in the panel
	maxRows := int((c.panel.Y + c.panel.Height - y - padding) / 16)
	start := len(records) - maxRows
	if start < 0 {
		start = 0
	}
	for i := len(records) - 1; i >= start; i-- {
		rec := records[i]
		line := fmt.Sprintf("%-6.0f %-5.0f %-5.0f %-6.1f %s",
			rec.Temperature, rec.Threshold, rec.ModeEnergy, rec.PercentAbove, rec.RateLabel)
		rl.DrawText(line, int32(x), int32(y), 12, rl.LightGray)
		y += 16
	}

	return state
}

// toggleText picks a label based on a boolean state.
func toggleText(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}
