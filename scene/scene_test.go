package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonlit-scene/core"
)

func TestSceneObjectsSkipsNodesWithoutMesh(t *testing.T) {
	s := NewScene()
	group := NewNode("group")
	leaf := NewNode("leaf")
	leaf.Mesh = CreateBox(1, 1, 1)
	group.AddChild(leaf)
	s.AddNode(group)

	assert.Equal(t, []*Node{leaf}, s.Objects())
	assert.Same(t, leaf, s.Find("leaf"))
	assert.Nil(t, s.Find("missing"))
}

func TestVisibleObjects(t *testing.T) {
	s := NewScene()
	a, b := NewNode("a"), NewNode("b")
	a.Mesh, b.Mesh = CreateBox(1, 1, 1), CreateBox(1, 1, 1)
	b.Visible = false
	s.AddNode(a)
	s.AddNode(b)

	assert.Equal(t, []*Node{a}, s.VisibleObjects())
}

func TestWorldMatrixFollowsParent(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	child.SetPosition(mgl32.Vec3{1, 0, 0})
	_ = child.GetWorldMatrix()

	parent.SetPosition(mgl32.Vec3{0, 2, 0})
	p := mgl32.TransformCoordinate(mgl32.Vec3{}, child.GetWorldMatrix())
	assert.True(t, p.ApproxEqual(mgl32.Vec3{1, 2, 0}), "got %v", p)

	parent.RemoveChild(child)
	assert.Nil(t, child.Parent)
	p = mgl32.TransformCoordinate(mgl32.Vec3{}, child.GetWorldMatrix())
	assert.True(t, p.ApproxEqual(mgl32.Vec3{1, 0, 0}), "got %v", p)
}

func TestLightRadianceAndDirection(t *testing.T) {
	l := &Light{
		Name:      "sun",
		Type:      LightTypeDirectional,
		Position:  mgl32.Vec3{1, 1, 1},
		Color:     core.ColorWhite,
		Intensity: 1,
		Visible:   true,
	}
	assert.Equal(t, core.ColorWhite, l.Radiance())

	d := l.Direction()
	assert.InDelta(t, 1, d.Len(), 1e-6)
	assert.Less(t, d.Y(), float32(0))

	l.Visible = false
	assert.Equal(t, core.Color{A: 1}, l.Radiance())

	s := NewScene()
	s.AddLight(l)
	require.Same(t, l, s.Light("sun"))
	assert.Nil(t, s.Light("moon"))
}

func TestRoleAndStyleNames(t *testing.T) {
	assert.Len(t, AllRoles(), 9)
	assert.Equal(t, "chimney", RoleChimney.String())
	assert.Equal(t, "Role(42)", Role(42).String())

	for _, st := range AllShadingStyles() {
		parsed, err := ParseShadingStyle(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
	parsed, err := ParseShadingStyle("PHONG")
	require.NoError(t, err)
	assert.Equal(t, ShadingPhong, parsed)

	_, err = ParseShadingStyle("cel")
	assert.Error(t, err)
}

func TestSceneLightingSummary(t *testing.T) {
	s := NewScene()
	assert.Nil(t, s.DirectionalLight())
	assert.Equal(t, core.Color{A: 1}, s.AmbientRadiance())

	dim := core.ColorHex(0x111111)
	s.AddLight(&Light{Name: "a", Type: LightTypeAmbient, Color: dim, Intensity: 2, Visible: true})
	s.AddLight(&Light{Name: "hidden", Type: LightTypeAmbient, Color: core.ColorWhite, Intensity: 1})
	key := &Light{Name: "key", Type: LightTypeDirectional, Color: core.ColorWhite, Intensity: 1, Visible: true}
	s.AddLight(key)
	s.AddLight(&Light{Name: "fill", Type: LightTypeDirectional, Color: core.ColorWhite, Intensity: 1, Visible: true})

	ambient := s.AmbientRadiance()
	assert.InDelta(t, dim.R*2, ambient.R, 1e-6)
	assert.InDelta(t, dim.B*2, ambient.B, 1e-6)
	assert.Equal(t, float32(1), ambient.A)
	assert.Same(t, key, s.DirectionalLight())
}
