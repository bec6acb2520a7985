package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"moonlit-scene/core"
)

// LightType distinguishes the supported light kinds.
type LightType int

const (
	LightTypeAmbient LightType = iota
	LightTypeDirectional
)

// Light is a light source. A directional light shines from Position toward
// the origin; an ambient light ignores Position.
type Light struct {
	Name      string
	Type      LightType
	Position  mgl32.Vec3
	Color     core.Color
	Intensity float32
	Visible   bool
}

// Radiance is the color the light contributes, zero when hidden.
func (l *Light) Radiance() core.Color {
	if !l.Visible {
		return core.Color{A: 1}
	}
	return l.Color.Scale(l.Intensity)
}

// Direction points from the light toward the origin.
func (l *Light) Direction() mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}

// Scene holds the renderable objects and the lights illuminating them.
type Scene struct {
	Root       *Node
	Lights     []*Light
	Background core.Color
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("Root"),
		Lights:     make([]*Light, 0),
		Background: core.ColorBlack,
	}
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// Light returns the light with the given name, or nil.
func (s *Scene) Light(name string) *Light {
	for _, l := range s.Lights {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Find returns the node with the given name, or nil.
func (s *Scene) Find(name string) *Node {
	return s.Root.Find(name)
}

// Objects returns every node carrying a mesh, in insertion order.
func (s *Scene) Objects() []*Node {
	var objects []*Node
	s.Root.Traverse(func(node *Node) {
		if node.Mesh != nil {
			objects = append(objects, node)
		}
	})
	return objects
}

// VisibleObjects is Objects filtered by the Visible flag.
func (s *Scene) VisibleObjects() []*Node {
	var visible []*Node
	for _, node := range s.Objects() {
		if node.Visible {
			visible = append(visible, node)
		}
	}
	return visible
}

// AmbientRadiance is the summed radiance of every ambient light.
func (s *Scene) AmbientRadiance() core.Color {
	total := core.Color{A: 1}
	for _, l := range s.Lights {
		if l.Type != LightTypeAmbient {
			continue
		}
		r := l.Radiance()
		total.R += r.R
		total.G += r.G
		total.B += r.B
	}
	return total
}

// DirectionalLight returns the first directional light, or nil.
func (s *Scene) DirectionalLight() *Light {
	for _, l := range s.Lights {
		if l.Type == LightTypeDirectional {
			return l
		}
	}
	return nil
}
