// Package hovergrid is a small retained-mode scene graph for [Ebitengine],
// built to host pointer-driven image effects.
//
// It provides nodes with a transform hierarchy, hit testing with scoped
// pointer enter/leave/move listeners, a timeline player for overlapping
// tweens (via [gween]), input injection and a JSON test runner for scripted
// runs. The hover inertia effect itself lives in hovergrid/effect and the
// image grid in hovergrid/media.
//
// # Quick start
//
//	scene := hovergrid.NewScene()
//	grid := media.Build(scene.Root(), layout, loader.LoadAll(12))
//	fx := effect.Mount(scene, grid, effect.DefaultOptions())
//	defer fx.Unmount()
//	hovergrid.Run(scene, hovergrid.RunConfig{Title: "grid", Width: 960, Height: 720})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Listeners
//
// [Scene.Listen] registers a callback for one [EventType], optionally scoped
// to a subtree. Scoped enter/leave follow the subtree rather than individual
// nodes, so moving between a cell and its image does not re-fire enter.
// Every registration returns a [CallbackHandle]; call Remove to unregister.
//
// # Timelines
//
// A [Timeline] holds [Track] values placed at offsets with [AtEnd], [At],
// [Relative] and [AlignWith]. Tracks may overlap; later tracks win when
// they write the same field. Hand a timeline to [Scene.Play] and the scene
// advances it each frame and drops it when it completes.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package hovergrid
