package controls

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"moonlit-scene/core"
	"moonlit-scene/scene"
)

const (
	AmbientLightName     = "ambientLight"
	DirectionalLightName = "directionalLight"
)

// AddAmbientLight adds the dim, always-on fill light.
func AddAmbientLight(s *scene.Scene) *scene.Light {
	l := &scene.Light{
		Name:      AmbientLightName,
		Type:      scene.LightTypeAmbient,
		Color:     core.ColorHex(0x111111),
		Intensity: 2,
		Visible:   true,
	}
	s.AddLight(l)
	return l
}

// LightingController switches the directional light. The ambient light is
// not controllable.
type LightingController struct {
	Ambient     *scene.Light
	Directional *scene.Light

	// Enabled is the user-facing lighting flag; applying it sets the
	// directional light's visibility.
	Enabled bool

	log *zap.Logger
}

// NewLightingController adds the directional light to s. The ambient light
// must already be in s.
func NewLightingController(s *scene.Scene, log *zap.Logger) *LightingController {
	ambient := s.Light(AmbientLightName)
	if ambient == nil {
		panic("controls: scene has no ambient light")
	}
	directional := &scene.Light{
		Name:      DirectionalLightName,
		Type:      scene.LightTypeDirectional,
		Position:  mgl32.Vec3{1, 1, 1},
		Color:     core.ColorWhite,
		Intensity: 1,
		Visible:   true,
	}
	s.AddLight(directional)

	return &LightingController{
		Ambient:     ambient,
		Directional: directional,
		Enabled:     true,
		log:         log,
	}
}

// ToggleDirectionalLight flips the directional light's visibility.
func (l *LightingController) ToggleDirectionalLight() {
	l.Directional.Visible = !l.Directional.Visible
	l.log.Debug("Directional light toggled", zap.Bool("visible", l.Directional.Visible))
}

// SetEnabled stores the flag and applies it to the directional light.
func (l *LightingController) SetEnabled(enabled bool) {
	l.Enabled = enabled
	l.Directional.Visible = enabled
	l.log.Debug("Lighting applied", zap.Bool("enabled", enabled))
}

// ToggleEnabled inverts Enabled, applies it and returns the new value.
func (l *LightingController) ToggleEnabled() bool {
	l.SetEnabled(!l.Enabled)
	return l.Enabled
}
