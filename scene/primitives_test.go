package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidMesh(t *testing.T, m *Mesh) {
	t.Helper()
	require.NotEmpty(t, m.Vertices)
	require.Zero(t, len(m.Indices)%3, "index count must be a multiple of 3")
	for _, idx := range m.Indices {
		require.Less(t, int(idx), len(m.Vertices))
	}
	for _, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-4, "normal %v is not unit length", v.Normal)
	}
}

func assertSize(t *testing.T, want mgl32.Vec3, m *Mesh) {
	t.Helper()
	got := m.LocalAABB.Size()
	assert.True(t, got.ApproxEqualThreshold(want, 1e-4), "size: want %v, got %v", want, got)
}

func TestCreateSphere(t *testing.T) {
	m := CreateSphere(0.7, 16, 16)
	assertValidMesh(t, m)
	assert.Len(t, m.Vertices, 17*17)
	assert.Equal(t, 16*16*2, m.TriangleCount())
	assertSize(t, mgl32.Vec3{1.4, 1.4, 1.4}, m)
	for _, v := range m.Vertices {
		assert.InDelta(t, 0.7, v.Position.Len(), 1e-4)
	}
}

func TestCreateSphereClampsSegments(t *testing.T) {
	m := CreateSphere(1, 1, 1)
	assert.Len(t, m.Vertices, 3*4)
}

func TestCreateCylinder(t *testing.T) {
	m := CreateCylinder(0.15, 2, 16)
	assertValidMesh(t, m)
	assert.Equal(t, 16*2+16*2, m.TriangleCount())
	assertSize(t, mgl32.Vec3{0.3, 2, 0.3}, m)
}

func TestCreateBox(t *testing.T) {
	m := CreateBox(0.6, 1, 0.1)
	assertValidMesh(t, m)
	assert.Len(t, m.Vertices, 24)
	assert.Equal(t, 12, m.TriangleCount())
	assertSize(t, mgl32.Vec3{0.6, 1, 0.1}, m)
}

func TestCreateBoxFacesPointOutward(t *testing.T) {
	m := CreateBox(2, 2, 2)
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d winds inward", i/3)
	}
}

func TestCreateConeRoof(t *testing.T) {
	m := CreateCone(2.2, 1, 4)
	assertValidMesh(t, m)
	assert.Equal(t, 4+4, m.TriangleCount())
	assert.Equal(t, mgl32.Vec3{0, 0.5, 0}, m.Vertices[0].Position)
	assert.InDelta(t, 1, m.LocalAABB.Size().Y(), 1e-5)
	assert.InDelta(t, -0.5, m.LocalAABB.Min.Y(), 1e-5)
}
