package controls

import (
	"go.uber.org/zap"

	"moonlit-scene/scene"
)

// Resolver picks the material a role wears under a shading style.
type Resolver interface {
	Resolve(role scene.Role, style scene.ShadingStyle) *scene.Material
}

// ShadingController tracks the active style and restyles the scene.
type ShadingController struct {
	resolver Resolver
	scene    *scene.Scene
	style    scene.ShadingStyle
	log      *zap.Logger
}

func NewShadingController(resolver Resolver, s *scene.Scene, log *zap.Logger) *ShadingController {
	if resolver == nil || s == nil {
		panic("controls: shading controller needs a resolver and a scene")
	}
	return &ShadingController{
		resolver: resolver,
		scene:    s,
		style:    scene.ShadingGouraud,
		log:      log,
	}
}

func (c *ShadingController) Style() scene.ShadingStyle { return c.style }

// Apply makes style active and reassigns the material of every object in the
// scene. Materials come from the resolver, nothing is allocated.
func (c *ShadingController) Apply(style scene.ShadingStyle) {
	c.style = style
	count := 0
	c.scene.Root.Traverse(func(n *scene.Node) {
		if n.Mesh == nil {
			return
		}
		n.Material = c.resolver.Resolve(n.Role, style)
		count++
	})
	c.log.Debug("Shading applied", zap.Stringer("style", style), zap.Int("objects", count))
}
