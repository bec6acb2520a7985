// Package app assembles the scene, its controllers and the key bindings, and
// runs the frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"moonlit-scene/config"
	"moonlit-scene/controls"
	"moonlit-scene/core"
	"moonlit-scene/materials"
	"moonlit-scene/scene"
)

// Host is the window the scene is shown in.
type Host interface {
	SetKeyHandler(handler core.KeyHandler)
	SetResizeHandler(handler core.ResizeHandler)
	FramebufferSize() (int, int)
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	Destroy() error
}

// Renderer draws a scene as seen from a camera.
type Renderer interface {
	Render(s *scene.Scene, camera *scene.Camera) error
	SetOutputSize(width, height int)
	// DrawStats reports what the last Render call drew and skipped.
	DrawStats() (objects, triangles, culled int)
	Destroy() error
}

// App owns every piece of runtime state.
type App struct {
	Scene    *scene.Scene
	Catalog  *materials.Catalog
	State    *controls.State
	Objects  []*scene.Node
	Dispatch *controls.Dispatcher

	host     Host
	renderer Renderer
	log      *zap.Logger

	// StatsInterval is how often Run logs the frame rate and draw counts.
	StatsInterval time.Duration

	frames int
}

// New builds the scene in a fixed order: scene and ambient light, camera,
// directional light, objects, and finally the host callbacks. No callback
// can fire before the state it touches exists.
func New(cfg config.Config, host Host, renderer Renderer, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []materials.Option
	if cfg.Scene.RestyleHouse {
		opts = append(opts, materials.WithFlatOnly())
	}
	a := &App{
		Scene:    scene.NewScene(),
		Catalog:  materials.NewCatalog(opts...),
		host:     host,
		renderer: renderer,
		log:      log,

		StatsInterval: 5 * time.Second,
	}
	controls.AddAmbientLight(a.Scene)

	width, height := host.FramebufferSize()
	camera := controls.NewCameraController(width, height, renderer, log.Named("camera"))
	camera.Resize(width, height)
	lighting := controls.NewLightingController(a.Scene, log.Named("lighting"))

	a.Objects = scene.Populate(a.Scene, cfg.Layout(), a.Catalog, scene.ShadingGouraud)
	shading := controls.NewShadingController(a.Catalog, a.Scene, log.Named("shading"))
	if style := cfg.ShadingStyle(); style != shading.Style() {
		shading.Apply(style)
	}

	a.State = &controls.State{
		Camera:   camera,
		Lighting: lighting,
		Shading:  shading,
		Redraw:   a.render,
	}
	a.Dispatch = controls.NewDispatcher(a.State, log.Named("input"))

	host.SetKeyHandler(a.Dispatch.HandleKey)
	host.SetResizeHandler(camera.Resize)

	log.Info("Scene ready",
		zap.String("layout", cfg.Scene.Layout),
		zap.Int("objects", len(a.Objects)),
		zap.Stringer("camera", camera.Mode()),
		zap.Stringer("shading", shading.Style()),
		zap.Bool("restyle_house", cfg.Scene.RestyleHouse))
	return a, nil
}

// Run drives the frame loop until ctx is done or the host asks to close.
func (a *App) Run(ctx context.Context) error {
	lastStats := time.Now()
	framesAtStats := 0

	for !a.host.ShouldClose() {
		select {
		case <-ctx.Done():
			a.log.Info("Frame loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		a.host.PollEvents()
		if err := a.animate(); err != nil {
			a.log.Error("Frame failed", zap.Int("frame", a.frames), zap.Error(err))
			return err
		}
		a.host.SwapBuffers()

		if elapsed := time.Since(lastStats); elapsed >= a.StatsInterval {
			fps := float64(a.frames-framesAtStats) / elapsed.Seconds()
			objects, triangles, culled := a.renderer.DrawStats()
			a.log.Debug("Frame stats",
				zap.Float64("fps", fps),
				zap.Int("frames", a.frames),
				zap.Int("objects", objects),
				zap.Int("triangles", triangles),
				zap.Int("culled", culled))
			lastStats = time.Now()
			framesAtStats = a.frames
		}
	}
	a.log.Info("Window closed", zap.Int("frames", a.frames))
	return nil
}

// animate advances one frame.
func (a *App) animate() error {
	a.update()
	return a.render()
}

// update is the per-frame hook; the scene is static.
func (a *App) update() {}

func (a *App) render() error {
	if err := a.renderer.Render(a.Scene, a.State.Camera.Camera()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	a.frames++
	return nil
}

// Frames is the number of frames rendered so far, forced redraws included.
func (a *App) Frames() int { return a.frames }

// Close releases the renderer and then the host.
func (a *App) Close() error {
	return multierr.Combine(
		a.renderer.Destroy(),
		a.host.Destroy(),
	)
}
