package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColorHex(t *testing.T) {
	c := ColorHex(0x8B4513)
	assert.InDelta(t, 139.0/255, c.R, 1e-6)
	assert.InDelta(t, 69.0/255, c.G, 1e-6)
	assert.InDelta(t, 19.0/255, c.B, 1e-6)
	assert.Equal(t, float32(1), c.A)

	assert.Equal(t, ColorWhite, ColorHex(0xffffff))
	assert.Equal(t, ColorBlack, ColorHex(0x000000))
}

func TestColorScaleKeepsAlpha(t *testing.T) {
	c := ColorHex(0x111111).Scale(2)
	assert.InDelta(t, 34.0/255, c.R, 1e-6)
	assert.Equal(t, float32(1), c.A)
}

func TestTransformIdentity(t *testing.T) {
	m := NewTransform().GetMatrix()
	assert.True(t, m.ApproxEqual(mgl32.Ident4()), "expected identity, got %v", m)
}

func TestTransformTranslateThenRotate(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{3, -2, 0}
	tr.Rotation = mgl32.Vec3{0, 0, math.Pi / 2}

	// +X rotated a quarter turn about Z lands on +Y, then gets translated.
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.GetMatrix())
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{3, -1, 0}, 1e-5), "got %v", p)
}
