package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gaslab/config"
	"github.com/pthm-cable/gaslab/renderer"
	"github.com/pthm-cable/gaslab/sim"
	"github.com/pthm-cable/gaslab/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := sim.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *headless {
		runHeadless(opts, rngSeed, *maxTicks, *snapshotDir)
		return
	}
	runGraphical(cfg, opts, rngSeed, *maxTicks, *snapshotDir)
}

// runHeadless steps the simulation as fast as the CPU allows, no raylib.
func runHeadless(opts sim.Options, rngSeed int64, maxTicks int, snapshotDir string) {
	s, err := sim.New(opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	slog.Info("starting headless simulation",
		"seed", rngSeed,
		"max_ticks", maxTicks,
	)

	for {
		s.Step()

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			if snapshotDir != "" {
				if path, err := s.SaveSnapshot(snapshotDir); err != nil {
					slog.Error("snapshot failed", "error", err)
				} else {
					slog.Info("snapshot written", "path", path)
				}
			}
			return
		}
	}
}

func runGraphical(cfg *config.Config, opts sim.Options, rngSeed int64, maxTicks int, snapshotDir string) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Gas Lab")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := sim.New(opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	const margin = float32(20)
	boxW := float32(cfg.World.Width)
	boxH := float32(cfg.World.Height)

	particles := renderer.NewParticleRenderer(margin, margin*2)
	curvePanel := rl.Rectangle{
		X:      margin + boxW + margin,
		Y:      margin * 2,
		Width:  260,
		Height: 300,
	}
	curve := renderer.NewCurveRenderer(curvePanel)
	controlPanel := rl.Rectangle{
		X:      curvePanel.X + curvePanel.Width + margin,
		Y:      margin * 2,
		Width:  float32(cfg.Screen.Width) - (curvePanel.X + curvePanel.Width + 2*margin),
		Height: float32(cfg.Screen.Height) - 3*margin,
	}
	controls := ui.NewControls(controlPanel,
		float32(cfg.Temperature.Min), float32(cfg.Temperature.Max))

	slog.Info("starting simulation",
		"seed", rngSeed,
		"particles", cfg.Ensemble.Count,
	)

	for !rl.WindowShouldClose() {
		state := ui.State{
			Temperature: float32(s.Temperature()),
			Catalyst:    s.Catalyst(),
			Paused:      s.Paused(),
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 24, G: 26, B: 32, A: 255})

		rl.DrawText("Gas Lab", int32(margin), 10, 20, rl.RayWhite)

		state = controls.Draw(state, s.Recorder().Records())
		applyControls(s, state, snapshotDir)

		s.Step()

		particles.Draw(s.Particles(), boxW, boxH, float32(s.TargetSpeed()))
		curve.Draw(s.Curve(), s.Summary(), cfg.Distribution.EnergyMax)

		rl.EndDrawing()

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			break
		}
	}
}

// applyControls pushes panel state changes back into the simulation.
func applyControls(s *sim.Sim, state ui.State, snapshotDir string) {
	if float64(state.Temperature) != s.Temperature() {
		s.SetTemperature(float64(state.Temperature))
	}
	if state.Catalyst != s.Catalyst() {
		s.SetCatalyst(state.Catalyst)
	}
	if state.Paused != s.Paused() {
		s.SetPaused(state.Paused)
	}
	if state.RecordClicked {
		if rec, err := s.Record(); err != nil {
			slog.Error("record failed", "error", err)
		} else {
			slog.Info("recorded",
				"temperature", rec.Temperature,
				"catalyst", rec.Catalyst,
				"percent_above", rec.PercentAbove,
				"rate", rec.RateLabel,
			)
		}
	}
	if state.SnapshotClicked {
		dir := snapshotDir
		if dir == "" {
			dir = "."
		}
		if path, err := s.SaveSnapshot(dir); err != nil {
			slog.Error("snapshot failed", "error", err)
		} else {
			slog.Info("snapshot written", "path", path)
		}
	}
	if state.ClearClicked {
		s.Recorder().Clear()
	}
}
