package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonlit-scene/core"
)

type stubMaterials struct {
	table map[Role]map[ShadingStyle]*Material
}

func newStubMaterials() *stubMaterials {
	s := &stubMaterials{table: make(map[Role]map[ShadingStyle]*Material)}
	for _, r := range AllRoles() {
		s.table[r] = make(map[ShadingStyle]*Material)
		for _, st := range AllShadingStyles() {
			s.table[r][st] = NewMaterial(r, st, core.ColorWhite)
		}
	}
	return s
}

func (s *stubMaterials) MaterialFor(role Role, style ShadingStyle) *Material {
	return s.table[role][style]
}

func countRoles(l Layout) map[Role]int {
	counts := make(map[Role]int)
	for _, p := range l {
		counts[p.Role]++
	}
	return counts
}

func TestTreeLayout(t *testing.T) {
	l := TreeLayout()
	assert.Len(t, l, 7)
	assert.Equal(t, map[Role]int{RoleMoon: 1, RoleTrunk: 1, RoleBranch: 2, RoleCrown: 3}, countRoles(l))
	assert.Equal(t, mgl32.Vec3{4, 4, -2}, l[0].Position)
}

func TestHouseLayoutExtendsTree(t *testing.T) {
	tree := TreeLayout()
	house := HouseLayout()

	require.Len(t, house, len(tree)+6)
	assert.Equal(t, tree, house[:len(tree)])
	counts := countRoles(house)
	assert.Equal(t, 1, counts[RoleHouse])
	assert.Equal(t, 2, counts[RoleWindow])
	assert.Equal(t, 1, counts[RoleDoor])
	assert.Equal(t, 1, counts[RoleChimney])
	assert.Equal(t, 1, counts[RoleRoof])
}

func TestLayoutByName(t *testing.T) {
	l, err := LayoutByName("house")
	require.NoError(t, err)
	assert.Len(t, l, len(HouseLayout()))

	_, err = LayoutByName("castle")
	assert.Error(t, err)
}

func TestPopulate(t *testing.T) {
	s := NewScene()
	mats := newStubMaterials()

	nodes := Populate(s, HouseLayout(), mats, ShadingGouraud)
	require.Len(t, nodes, len(HouseLayout()))
	assert.Equal(t, nodes, s.Objects())

	roof := s.Find("roof")
	require.NotNil(t, roof)
	assert.Equal(t, RoleRoof, roof.Role)
	assert.Same(t, mats.MaterialFor(RoleRoof, ShadingGouraud), roof.Material)
	assert.Equal(t, mgl32.Vec3{0, 1.5, 0}, roof.Transform.Position)
	assert.InDelta(t, quarterTurn, roof.Transform.Rotation.Y(), 1e-6)

	branch := s.Find("branch2")
	require.NotNil(t, branch)
	assert.Equal(t, RoleBranch, branch.Role)
	assert.NotNil(t, branch.Mesh)
}

func TestGeometryBuildPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { Geometry{Kind: GeometryKind(42)}.Build() })
}
