package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"moonlit-scene/scene"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, scene.ShadingGouraud, cfg.ShadingStyle())
	assert.Len(t, cfg.Layout(), len(scene.HouseLayout()))
	assert.False(t, cfg.Scene.RestyleHouse)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moonlit.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 800
height = 600

[scene]
layout = "tree"
shading = "toon"
restyle_house = true

[log]
dev = true
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Moonlit Scene", cfg.Window.Title, "unset keys keep defaults")
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, scene.ShadingToon, cfg.ShadingStyle())
	assert.Len(t, cfg.Layout(), len(scene.TreeLayout()))
	assert.True(t, cfg.Scene.RestyleHouse)
	assert.True(t, cfg.Log.Dev)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("[window]\ncolour = \"red\"\n"), &cfg)
	assert.Error(t, err)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Scene.Layout = "castle"
	cfg.Scene.Shading = "cel"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestShadingStylePanicsWhenInvalid(t *testing.T) {
	cfg := Default()
	cfg.Scene.Shading = "cel"
	assert.Panics(t, func() { cfg.ShadingStyle() })
}
