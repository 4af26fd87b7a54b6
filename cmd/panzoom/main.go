// Command panzoom runs the infinite-canvas editor.
//
// By default it opens a desktop window (requires cgo). With -headless it
// replays a short scripted session and writes the resulting frame to a PNG
// file instead. Canvas and viewport settings come from PANZOOM_* environment
// variables; -width and -height override the viewport size.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/panzoom"
	"github.com/gogpu/panzoom/editor"
	"github.com/gogpu/panzoom/internal/host"
	"github.com/gogpu/panzoom/minimap"
	"github.com/gogpu/panzoom/render"
)

func main() {
	var (
		headless = flag.Bool("headless", false, "render a scripted session to a PNG and exit")
		output   = flag.String("output", "panzoom.png", "output file for -headless")
		width    = flag.Int("width", 0, "viewport width (overrides PANZOOM_VIEWPORT_WIDTH)")
		height   = flag.Int("height", 0, "viewport height (overrides PANZOOM_VIEWPORT_HEIGHT)")
		verbose  = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	panzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*headless, *output, *width, *height); err != nil {
		log.Fatal(err)
	}
}

func run(headless bool, output string, width, height int) error {
	cfg, err := panzoom.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	if width > 0 {
		cfg.ViewportWidth = float64(width)
	}
	if height > 0 {
		cfg.ViewportHeight = float64(height)
	}

	ctrl, err := panzoom.NewController(cfg)
	if err != nil {
		return err
	}
	proj, err := minimap.NewProjector(ctrl)
	if err != nil {
		return err
	}
	defer proj.Close()
	ed, err := editor.New(ctrl, editor.WithOverview(proj))
	if err != nil {
		return err
	}
	r, err := render.New()
	if err != nil {
		return err
	}
	defer r.Close()

	d := host.NewDriver(ed, proj)
	slog.Info("starting",
		slog.String("version", panzoom.Version),
		slog.Bool("headless", headless),
		slog.Float64("viewport_width", cfg.ViewportWidth),
		slog.Float64("viewport_height", cfg.ViewportHeight))
	if !headless {
		return host.RunWindow(d, proj, r, cfg)
	}

	replay(d, cfg)
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := r.RenderPNG(f, render.Capture(ed, proj)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	slog.Info("frame saved",
		slog.String("path", output),
		slog.Int("rectangles", ed.Board().Len()))
	return nil
}

// replay drives a short session through d: three rectangles drawn in
// create mode, an overview click and a re-center, then a pan and two
// zoom-out wheel steps in pan mode.
func replay(d *host.Driver, cfg panzoom.Config) {
	now := time.Now()
	tick := func(in host.Input) {
		now = now.Add(time.Second / 60)
		in.Now = now
		d.Step(in)
	}
	drag := func(from, to panzoom.Point) {
		const steps = 8
		tick(host.Input{Cursor: from, Pressed: true})
		for i := 1; i <= steps; i++ {
			s := float64(i) / steps
			tick(host.Input{Cursor: from.Add(to.Sub(from).Mul(s)), Pressed: true})
		}
		tick(host.Input{Cursor: to})
		// Keep consecutive drags from pairing up as a double-click.
		now = now.Add(time.Second)
	}

	w, h := cfg.ViewportWidth, cfg.ViewportHeight
	at := func(fx, fy float64) panzoom.Point { return panzoom.Pt(w*fx, h*fy) }

	tick(host.Input{ToggleMode: true})
	drag(at(0.15, 0.2), at(0.33, 0.45))
	drag(at(0.45, 0.4), at(0.7, 0.65))
	drag(at(0.25, 0.6), at(0.4, 0.85))

	tick(host.Input{ToggleMode: true})

	// Near the overview's bottom-right corner, away from proxies and the
	// indicator.
	corner := panzoom.Pt(w-cfg.OverviewMargin-10, h-cfg.OverviewMargin-10)
	tick(host.Input{Cursor: corner, Pressed: true})
	tick(host.Input{Cursor: corner})
	now = now.Add(time.Second)
	tick(host.Input{Recenter: true})

	drag(at(0.5, 0.5), at(0.42, 0.42))
	tick(host.Input{Cursor: at(0.5, 0.5), WheelY: -1})
	tick(host.Input{Cursor: at(0.5, 0.5), WheelY: -1})

	// Let the overview's deferred refresh fire.
	now = now.Add(cfg.InitialRefreshDelay)
	tick(host.Input{Cursor: at(0.5, 0.5)})
}
