package controls

import (
	"go.uber.org/zap"

	"moonlit-scene/scene"
)

// OutputSizer receives the new drawable size after every resize.
type OutputSizer interface {
	SetOutputSize(width, height int)
}

// CameraController owns the single active camera and the viewport size.
type CameraController struct {
	camera *scene.Camera
	width  int
	height int
	output OutputSizer
	log    *zap.Logger
}

// NewCameraController starts with an orthographic camera at scene.DefaultEye
// looking at scene.DefaultTarget.
func NewCameraController(width, height int, output OutputSizer, log *zap.Logger) *CameraController {
	if output == nil {
		panic("controls: camera controller needs an output")
	}
	camera := scene.NewOrthographicCamera(width, height)
	camera.SetPosition(scene.DefaultEye)
	camera.LookAt(scene.DefaultTarget)

	return &CameraController{
		camera: camera,
		width:  width,
		height: height,
		output: output,
		log:    log,
	}
}

func (c *CameraController) Camera() *scene.Camera { return c.camera }

func (c *CameraController) Mode() scene.CameraMode { return c.camera.Mode }

// Viewport returns the last size passed to Resize.
func (c *CameraController) Viewport() (int, int) { return c.width, c.height }

// Switch replaces an orthographic camera with a perspective one at the same
// eye and target. A perspective camera stays as it is. Either way the
// projection is refreshed for the current viewport.
func (c *CameraController) Switch() {
	if c.camera.Mode == scene.CameraOrthographic {
		next := scene.NewPerspectiveCamera(c.width, c.height)
		next.SetPosition(c.camera.Position)
		next.LookAt(c.camera.Target)
		c.camera = next
		c.log.Info("Camera switched", zap.Stringer("mode", next.Mode))
	}
	c.Resize(c.width, c.height)
}

// Resize recomputes the projection for a viewport of width x height and
// forwards the size to the output. Calling it again with the same size is a
// no-op in effect.
func (c *CameraController) Resize(width, height int) {
	c.width, c.height = width, height
	c.camera.UpdateAspectRatio(width, height)
	c.output.SetOutputSize(width, height)
	c.log.Debug("Viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("mode", c.camera.Mode))
}
