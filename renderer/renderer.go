package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"moonlit-scene/internal/opengl"
	"moonlit-scene/scene"
)

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl  *opengl.Renderer
	log *zap.Logger

	// FrustumCulling skips objects whose bounds fall outside the camera volume.
	FrustumCulling bool

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastTriangles int
	lastCulled    int
}

// NewRenderEngine initialises the OpenGL backend for a drawable of
// width x height. The GL context must be current on the calling thread.
func NewRenderEngine(width, height int, log *zap.Logger) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	re := &RenderEngine{gl: glRenderer, log: log, FrustumCulling: true}
	re.SetOutputSize(width, height)

	log.Info("Render engine initialized", zap.String("backend", "opengl"), zap.String("version", glRenderer.Version()))
	return re, nil
}

// SetOutputSize resizes the viewport. Degenerate sizes are ignored.
func (re *RenderEngine) SetOutputSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	re.gl.SetViewport(width, height)
}

// Render draws every visible object of s as seen from camera.
func (re *RenderEngine) Render(s *scene.Scene, camera *scene.Camera) error {
	if s == nil || camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	lighting := collectLighting(s)
	re.gl.BeginFrame(s.Background)

	frustum := camera.Frustum()

	objects, triangles, culled := 0, 0, 0
	for _, node := range s.VisibleObjects() {
		if re.FrustumCulling && !frustum.ContainsNode(node) {
			culled++
			continue
		}
		if err := re.gl.DrawNode(node, camera, lighting); err != nil {
			return err
		}
		objects++
		triangles += node.Mesh.TriangleCount()
	}
	re.lastObjects = objects
	re.lastTriangles = triangles
	re.lastCulled = culled
	return nil
}

// collectLighting sums the ambient lights and takes the first directional
// light. A hidden light contributes no radiance.
func collectLighting(s *scene.Scene) opengl.Lighting {
	lighting := opengl.Lighting{
		Ambient:   s.AmbientRadiance(),
		Direction: mgl32.Vec3{0, 1, 0},
	}
	if key := s.DirectionalLight(); key != nil {
		lighting.Direction = key.Direction().Mul(-1)
		lighting.LightColor = key.Radiance()
	}
	return lighting
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, triangles, culled int) {
	return re.lastObjects, re.lastTriangles, re.lastCulled
}

// Destroy releases every GPU resource held by the backend.
func (re *RenderEngine) Destroy() error {
	re.gl.Destroy()
	return nil
}
