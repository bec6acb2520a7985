package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMode is the projection kind of a Camera.
type CameraMode int

const (
	CameraOrthographic CameraMode = iota
	CameraPerspective
)

func (m CameraMode) String() string {
	switch m {
	case CameraOrthographic:
		return "orthographic"
	case CameraPerspective:
		return "perspective"
	}
	return fmt.Sprintf("CameraMode(%d)", int(m))
}

const (
	// OrthoHalfHeight is the vertical half-extent of the orthographic volume;
	// the horizontal half-extent is this times the aspect ratio.
	OrthoHalfHeight = 10
	OrthoNear       = 0
	OrthoFar        = 10

	PerspectiveFOV  = 75 // vertical, degrees
	PerspectiveNear = 0.1
	PerspectiveFar  = 1000
)

var (
	DefaultEye    = mgl32.Vec3{0, 0, 5}
	DefaultTarget = mgl32.Vec3{0, 0, 0}
)

// Camera is a view camera with either an orthographic or a perspective
// projection. The mode is fixed for the lifetime of a Camera; switching
// projection means building a new one.
type Camera struct {
	Mode        CameraMode
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Orthographic clip bounds
	Left, Right, Bottom, Top float32

	// Perspective vertical field of view in degrees
	FOV float32

	projectionMatrix mgl32.Mat4
	dirty            bool
}

// NewOrthographicCamera frames a 20-unit-tall volume sized to the viewport.
func NewOrthographicCamera(width, height int) *Camera {
	c := &Camera{
		Mode:        CameraOrthographic,
		Up:          mgl32.Vec3{0, 1, 0},
		AspectRatio: 1,
		NearPlane:   OrthoNear,
		FarPlane:    OrthoFar,
		Left:        -OrthoHalfHeight,
		Right:       OrthoHalfHeight,
		Bottom:      -OrthoHalfHeight,
		Top:         OrthoHalfHeight,
	}
	c.UpdateAspectRatio(width, height)
	c.dirty = true
	return c
}

// NewPerspectiveCamera builds a 75° camera sized to the viewport.
func NewPerspectiveCamera(width, height int) *Camera {
	c := &Camera{
		Mode:        CameraPerspective,
		Up:          mgl32.Vec3{0, 1, 0},
		AspectRatio: 1,
		NearPlane:   PerspectiveNear,
		FarPlane:    PerspectiveFar,
		FOV:         PerspectiveFOV,
	}
	c.UpdateAspectRatio(width, height)
	c.dirty = true
	return c
}

// UpdateAspectRatio recomputes the aspect-dependent projection parameters.
// Degenerate sizes (a minimised window) keep the previous parameters.
func (c *Camera) UpdateAspectRatio(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
	if c.Mode == CameraOrthographic {
		c.Left = -OrthoHalfHeight * c.AspectRatio
		c.Right = OrthoHalfHeight * c.AspectRatio
		c.Top = OrthoHalfHeight
		c.Bottom = -OrthoHalfHeight
	}
	c.dirty = true
}

func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.Position = pos
}

func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	if c.dirty {
		c.updateProjection()
	}
	return c.projectionMatrix
}

func (c *Camera) GetViewProjectionMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

func (c *Camera) updateProjection() {
	switch c.Mode {
	case CameraOrthographic:
		c.projectionMatrix = mgl32.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.NearPlane, c.FarPlane)
	case CameraPerspective:
		c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
	}
	c.dirty = false
}
