package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gaslab/boltzmann"
)

// CurveRenderer renders the energy distribution curve and its summary.
type CurveRenderer struct {
	panel rl.Rectangle
}

// NewCurveRenderer creates a curve renderer for the given screen panel.
func NewCurveRenderer(panel rl.Rectangle) *CurveRenderer {
	return &CurveRenderer{panel: panel}
}

// Draw renders the curve scaled into the panel with the activation
// threshold marked, plus the summary readouts underneath.
func (r *CurveRenderer) Draw(curve []boltzmann.EnergyPoint, summary boltzmann.Summary, eMax float64) {
	p := r.panel

	rl.DrawRectangleLines(int32(p.X), int32(p.Y), int32(p.Width), int32(p.Height),
		rl.Color{R: 120, G: 120, B: 130, A: 255})
	rl.DrawText("Energy distribution", int32(p.X)+8, int32(p.Y)+6, 16, rl.RayWhite)

	if len(curve) == 0 || eMax <= 0 {
		return
	}

	// Vertical scale from the curve's own peak so the shape fills the
	// panel at any temperature.
	var peak float64
	for _, pt := range curve {
		if pt.Density > peak {
			peak = pt.Density
		}
	}
	if peak == 0 {
		return
	}

	plotX := p.X + 8
	plotY := p.Y + 30
	plotW := p.Width - 16
	plotH := p.Height - 70

	toScreen := func(pt boltzmann.EnergyPoint) rl.Vector2 {
		return rl.Vector2{
			X: plotX + float32(pt.Energy/eMax)*plotW,
			Y: plotY + plotH - float32(pt.Density/peak)*plotH,
		}
	}

	// Threshold marker behind the curve
	tx := plotX + float32(summary.Threshold/eMax)*plotW
	rl.DrawLineV(
		rl.Vector2{X: tx, Y: plotY},
		rl.Vector2{X: tx, Y: plotY + plotH},
		rl.Color{R: 220, G: 120, B: 60, A: 200},
	)

	prev := toScreen(curve[0])
	for _, pt := range curve[1:] {
		next := toScreen(pt)
		rl.DrawLineV(prev, next, rl.Color{R: 110, G: 190, B: 250, A: 255})
		prev = next
	}

	// Summary readouts
	textY := int32(plotY + plotH + 8)
	rl.DrawText(
		fmt.Sprintf("mode %.0f   mean %.0f", summary.ModeEnergy, summary.MeanEnergy),
		int32(plotX), textY, 14, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("%.1f%% above Ea=%.0f  (%s)",
			summary.PercentAbove, summary.Threshold, boltzmann.RateLabel(summary.PercentAbove)),
		int32(plotX), textY+18, 14, rl.LightGray,
	)
}
