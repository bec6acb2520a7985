package scene

import (
	"fmt"
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// GeometryKind names a primitive mesh generator.
type GeometryKind int

const (
	GeometrySphere GeometryKind = iota
	GeometryCylinder
	GeometryBox
	GeometryCone
)

// Geometry describes a primitive mesh. Fields not used by Kind are ignored.
type Geometry struct {
	Kind     GeometryKind
	Radius   float32
	Width    float32
	Height   float32
	Depth    float32
	Segments int
	Rings    int
}

func Sphere(radius float32, segments, rings int) Geometry {
	return Geometry{Kind: GeometrySphere, Radius: radius, Segments: segments, Rings: rings}
}

func Cylinder(radius, height float32, segments int) Geometry {
	return Geometry{Kind: GeometryCylinder, Radius: radius, Height: height, Segments: segments}
}

func Box(width, height, depth float32) Geometry {
	return Geometry{Kind: GeometryBox, Width: width, Height: height, Depth: depth}
}

func Cone(radius, height float32, segments int) Geometry {
	return Geometry{Kind: GeometryCone, Radius: radius, Height: height, Segments: segments}
}

// Build generates the mesh for g.
func (g Geometry) Build() *Mesh {
	switch g.Kind {
	case GeometrySphere:
		return CreateSphere(g.Radius, g.Segments, g.Rings)
	case GeometryCylinder:
		return CreateCylinder(g.Radius, g.Height, g.Segments)
	case GeometryBox:
		return CreateBox(g.Width, g.Height, g.Depth)
	case GeometryCone:
		return CreateCone(g.Radius, g.Height, g.Segments)
	}
	panic(fmt.Sprintf("scene: unknown geometry kind %d", g.Kind))
}

// Placement is one object of a layout.
type Placement struct {
	Name     string
	Role     Role
	Geometry Geometry
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler radians, X then Y then Z
}

// Layout is an ordered list of placements; order is render order.
type Layout []Placement

const quarterTurn = stdmath.Pi / 4

// TreeLayout is the moon above a tree with two branches and three crowns.
func TreeLayout() Layout {
	layout := Layout{
		{Name: "moon", Role: RoleMoon, Geometry: Sphere(1, 32, 32), Position: mgl32.Vec3{4, 4, -2}},
		{Name: "trunk", Role: RoleTrunk, Geometry: Cylinder(0.15, 2, 16), Position: mgl32.Vec3{3, -2, 0}},
		{
			Name: "branch1", Role: RoleBranch, Geometry: Cylinder(0.1, 1, 16),
			Position: mgl32.Vec3{3.3, -2, 0}, Rotation: mgl32.Vec3{quarterTurn, 0, quarterTurn},
		},
		{
			Name: "branch2", Role: RoleBranch, Geometry: Cylinder(0.1, 1, 16),
			Position: mgl32.Vec3{3.75, -2, 0}, Rotation: mgl32.Vec3{-quarterTurn, 0, -quarterTurn},
		},
	}
	radii := []float32{0.7, 0.6, 0.5}
	for i, r := range radii {
		layout = append(layout, Placement{
			Name:     fmt.Sprintf("crown%d", i+1),
			Role:     RoleCrown,
			Geometry: Sphere(r, 16, 16),
			Position: mgl32.Vec3{3, -0.5 + float32(i)*0.4, 0},
		})
	}
	return layout
}

// HouseLayout is TreeLayout plus a house with windows, door, chimney and roof.
func HouseLayout() Layout {
	window := Box(0.4, 0.4, 0.1)
	return append(TreeLayout(),
		Placement{Name: "house", Role: RoleHouse, Geometry: Box(2, 2, 2)},
		Placement{Name: "window1", Role: RoleWindow, Geometry: window, Position: mgl32.Vec3{-0.6, 0.5, 1}},
		Placement{Name: "window2", Role: RoleWindow, Geometry: window, Position: mgl32.Vec3{0.6, 0.5, 1}},
		Placement{Name: "door", Role: RoleDoor, Geometry: Box(0.6, 1, 0.1), Position: mgl32.Vec3{0, -0.5, 1}},
		Placement{Name: "chimney", Role: RoleChimney, Geometry: Box(0.4, 0.5, 0.8), Position: mgl32.Vec3{-0.6, 1.5, 0.8}},
		Placement{
			Name: "roof", Role: RoleRoof, Geometry: Cone(2.2, 1, 4),
			Position: mgl32.Vec3{0, 1.5, 0}, Rotation: mgl32.Vec3{0, quarterTurn, 0},
		},
	)
}

// LayoutByName resolves the layout names accepted in configuration.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "tree":
		return TreeLayout(), nil
	case "house":
		return HouseLayout(), nil
	}
	return nil, fmt.Errorf("unknown layout %q", name)
}

// MaterialSource supplies the material a role starts with.
type MaterialSource interface {
	MaterialFor(role Role, style ShadingStyle) *Material
}

// Populate adds one node per placement to s, each with the style material of
// its role, and returns the nodes in layout order.
func Populate(s *Scene, layout Layout, materials MaterialSource, style ShadingStyle) []*Node {
	nodes := make([]*Node, 0, len(layout))
	for _, p := range layout {
		node := NewNode(p.Name)
		node.Role = p.Role
		node.Mesh = p.Geometry.Build()
		node.Material = materials.MaterialFor(p.Role, style)
		node.SetPosition(p.Position)
		node.SetRotation(p.Rotation)
		s.AddNode(node)
		nodes = append(nodes, node)
	}
	return nodes
}
