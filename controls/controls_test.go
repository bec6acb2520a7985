package controls

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"moonlit-scene/materials"
	"moonlit-scene/scene"
)

type outputRecorder struct {
	sizes [][2]int
}

func (o *outputRecorder) SetOutputSize(width, height int) {
	o.sizes = append(o.sizes, [2]int{width, height})
}

type fixture struct {
	scene    *scene.Scene
	catalog  *materials.Catalog
	output   *outputRecorder
	state    *State
	redraws  int
	dispatch *Dispatcher
}

// newFixture builds the house scene in the same order the application does.
func newFixture(t *testing.T, opts ...materials.Option) *fixture {
	t.Helper()
	log := zaptest.NewLogger(t)

	f := &fixture{
		scene:   scene.NewScene(),
		catalog: materials.NewCatalog(opts...),
		output:  &outputRecorder{},
	}
	AddAmbientLight(f.scene)
	camera := NewCameraController(800, 600, f.output, log)
	lighting := NewLightingController(f.scene, log)
	scene.Populate(f.scene, scene.HouseLayout(), f.catalog, scene.ShadingGouraud)

	f.state = &State{
		Camera:   camera,
		Lighting: lighting,
		Shading:  NewShadingController(f.catalog, f.scene, log),
		Redraw: func() error {
			f.redraws++
			return nil
		},
	}
	f.dispatch = NewDispatcher(f.state, log)
	return f
}

func nopLogger() *zap.Logger { return zap.NewNop() }
