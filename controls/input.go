package controls

import (
	"go.uber.org/zap"

	"moonlit-scene/core"
	"moonlit-scene/scene"
)

// State is everything the key bindings act on.
type State struct {
	Camera   *CameraController
	Lighting *LightingController
	Shading  *ShadingController

	// Redraw renders a frame immediately, outside the frame loop.
	Redraw func() error
}

// Dispatcher maps key presses onto State transitions.
//
//	1  switch to the perspective camera
//	D  toggle the directional light
//	Q  Gouraud shading
//	W  Phong shading
//	E  Toon shading
//	R  toggle lighting and redraw
//
// Keys are physical key codes, so letters work with or without shift.
type Dispatcher struct {
	state *State
	log   *zap.Logger
}

// NewDispatcher panics unless every part of state has been built; handlers
// must not be registered before the scene is complete.
func NewDispatcher(state *State, log *zap.Logger) *Dispatcher {
	if state == nil || state.Camera == nil || state.Lighting == nil || state.Shading == nil || state.Redraw == nil {
		panic("controls: dispatcher created before the scene was built")
	}
	return &Dispatcher{state: state, log: log}
}

// HandleKey has the signature of core.KeyHandler.
func (d *Dispatcher) HandleKey(key int, pressed bool) {
	if pressed {
		d.KeyDown(key)
	} else {
		d.KeyUp(key)
	}
}

func (d *Dispatcher) KeyDown(key int) {
	if key == core.Key1 {
		d.state.Camera.Switch()
	}
	// Independent of the shading keys below.
	if key == core.KeyD {
		d.state.Lighting.ToggleDirectionalLight()
	}

	switch key {
	case core.KeyQ:
		d.setShading(scene.ShadingGouraud)
	case core.KeyW:
		d.setShading(scene.ShadingPhong)
	case core.KeyE:
		d.setShading(scene.ShadingToon)
	case core.KeyR:
		enabled := d.state.Lighting.ToggleEnabled()
		d.log.Info("Lighting toggled", zap.Bool("enabled", enabled))
		if err := d.state.Redraw(); err != nil {
			d.log.Error("Redraw failed", zap.Error(err))
		}
	}
}

// KeyUp does nothing yet.
func (d *Dispatcher) KeyUp(key int) {}

func (d *Dispatcher) setShading(style scene.ShadingStyle) {
	d.state.Shading.Apply(style)
	d.log.Info("Shading changed", zap.Stringer("style", style))
}
