package controls

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonlit-scene/scene"
)

func TestLightingControllerSetup(t *testing.T) {
	s := scene.NewScene()
	ambient := AddAmbientLight(s)
	l := NewLightingController(s, nopLogger())

	require.Len(t, s.Lights, 2)
	assert.Same(t, ambient, l.Ambient)
	assert.Same(t, l.Directional, s.Light(DirectionalLightName))
	assert.Equal(t, scene.LightTypeDirectional, l.Directional.Type)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Directional.Position)
	assert.Equal(t, float32(1), l.Directional.Intensity)
	assert.True(t, l.Enabled)
	assert.True(t, l.Directional.Visible)
	assert.True(t, l.Ambient.Visible)
}

func TestToggleDirectionalLightIsAFlip(t *testing.T) {
	s := scene.NewScene()
	AddAmbientLight(s)
	l := NewLightingController(s, nopLogger())

	l.ToggleDirectionalLight()
	assert.False(t, l.Directional.Visible)
	l.ToggleDirectionalLight()
	assert.True(t, l.Directional.Visible)

	assert.True(t, l.Ambient.Visible, "ambient light is not controllable")
	assert.Equal(t, float32(1), l.Directional.Intensity)
}

func TestToggleEnabledAppliesVisibility(t *testing.T) {
	s := scene.NewScene()
	AddAmbientLight(s)
	l := NewLightingController(s, nopLogger())

	assert.False(t, l.ToggleEnabled())
	assert.False(t, l.Directional.Visible)
	assert.True(t, l.ToggleEnabled())
	assert.True(t, l.Directional.Visible)

	// Enabled wins over an earlier direct toggle.
	l.ToggleDirectionalLight()
	l.SetEnabled(true)
	assert.True(t, l.Directional.Visible)
}

func TestLightingControllerNeedsAmbientFirst(t *testing.T) {
	assert.Panics(t, func() { NewLightingController(scene.NewScene(), nopLogger()) })
}
