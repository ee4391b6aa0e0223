// Hovergrid shows a grid of images that lurch in the direction the mouse was
// moving when it enters them, then settle back with a small rotation wobble.
//
// Images are read from the assets directory as 01.png .. NN.png; missing
// files are replaced by generated placeholders.
//
//	hovergrid -assets ./images -config hovergrid.yaml
//	hovergrid -script sweep.json   # scripted run, exits when done
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/phanxgames/hovergrid"
	"github.com/phanxgames/hovergrid/config"
	"github.com/phanxgames/hovergrid/ecs"
	"github.com/phanxgames/hovergrid/effect"
	"github.com/phanxgames/hovergrid/media"
	"github.com/yohamta/donburi"
)

func main() {
	configPath := flag.String("config", "hovergrid.yaml", "YAML config file (optional)")
	assetsDir := flag.String("assets", "", "directory holding 01.png .. NN.png (overrides config)")
	scriptPath := flag.String("script", "", "JSON test script to run, exiting when done")
	debug := flag.Bool("debug", false, "log timeline and frame stats")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}
	if *debug {
		cfg.Debug = true
	}

	if err := run(cfg, *scriptPath); err != nil {
		log.Fatal(err)
	}
}

// run builds the grid, mounts the effect and blocks until the window closes
// or the script finishes. Hover counts are logged on the way out.
func run(cfg config.Config, scriptPath string) error {
	var runner *hovergrid.TestRunner
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if runner, err = hovergrid.LoadTestScript(data); err != nil {
			return err
		}
	}

	scene := hovergrid.NewScene()
	scene.ClearColor = cfg.Window.BackgroundColor()
	scene.SetDebugMode(cfg.Debug)

	loader := media.Loader{FS: os.DirFS(cfg.Assets.Dir)}
	layout := media.Layout{
		Columns:    cfg.Grid.Columns,
		CellSize:   cfg.Grid.CellSize,
		Gap:        cfg.Grid.Gap,
		ImageScale: cfg.Grid.ImageScale,
	}.Centered(cfg.Grid.Count, float64(cfg.Window.Width), float64(cfg.Window.Height))
	if cfg.Grid.AltFontSize > 0 {
		font, err := hovergrid.DefaultFont(cfg.Grid.AltFontSize)
		if err != nil {
			return err
		}
		layout.AltFont = font
	}
	grid := media.Build(scene.Root(), layout, loader.LoadAll(cfg.Grid.Count))

	opts := effect.DefaultOptions()
	opts.Params = cfg.Effect.Params()
	if cfg.Effect.Seed != 0 {
		opts.Angles = effect.RandomAngles(rand.New(rand.NewPCG(cfg.Effect.Seed, cfg.Effect.Seed)))
	}
	fx := effect.Mount(scene, grid, opts)
	defer fx.Unmount()

	tracker := ecs.TrackHovers(scene, donburi.NewWorld(), grid.Children())
	defer logHovers(tracker)
	defer tracker.Stop()
	scene.SetUpdateFunc(func() error {
		tracker.Process()
		return nil
	})

	runCfg := hovergrid.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowFPS: cfg.Window.ShowFPS,
	}
	if runner != nil {
		scene.SetTestRunner(runner)
		runCfg.ExitWhenDone = true
	}
	return hovergrid.Run(scene, runCfg)
}

// logHovers prints the enter count of every cell.
func logHovers(tracker *ecs.HoverTracker) {
	tracker.Process()
	for _, st := range tracker.Stats() {
		log.Printf("[hovergrid] %s entered %d times", st.Name, st.Hovers)
	}
}
