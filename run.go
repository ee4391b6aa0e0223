package hovergrid

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ExitWhenDone stops the loop once the attached TestRunner finishes.
	ExitWhenDone bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
	// drained counts frames drawn after the script finished so queued
	// screenshots are flushed before exiting.
	drained int
}

func (g *game) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.cfg.ExitWhenDone && g.scene.testRunner != nil && g.scene.testRunner.Done() {
		g.drained++
		if g.drained > 1 {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTimelines: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.scene.ActiveTimelines()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives scene until the window is closed, the update
// function returns an error, or a scripted run finishes with ExitWhenDone.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("hovergrid: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
