package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"moonlit-scene/core"
)

var (
	up   = mgl32.Vec3{0, 1, 0}
	down = mgl32.Vec3{0, -1, 0}
)

// unitCircle returns cos and sin of the i-th of n evenly spaced angles.
func unitCircle(i, n int) (float32, float32) {
	theta := float64(i) * 2.0 * stdmath.Pi / float64(n)
	return float32(stdmath.Cos(theta)), float32(stdmath.Sin(theta))
}

// CreateSphere generates a UV-sphere mesh
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	vertices := make([]core.Vertex, 0, (rings+1)*(segments+1))
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			cosT, sinT := unitCircle(seg, segments)
			normal := mgl32.Vec3{sinPhi * cosT, cosPhi, sinPhi * sinT}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateCylinder generates a capped cylinder centred on the origin along Y.
func CreateCylinder(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2.0

	for i := 0; i <= segments; i++ {
		cosT, sinT := unitCircle(i, segments)
		normal := mgl32.Vec3{cosT, 0, sinT}
		vertices = append(vertices,
			core.Vertex{Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius}, Normal: normal},
			core.Vertex{Position: mgl32.Vec3{cosT * radius, halfHeight, sinT * radius}, Normal: normal},
		)
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	vertices, indices = appendCap(vertices, indices, radius, halfHeight, segments, up)
	vertices, indices = appendCap(vertices, indices, radius, -halfHeight, segments, down)

	return CreateMeshFromData("Cylinder", vertices, indices)
}

// CreateCone generates a cone with its apex on +Y and a flat base.
// A low segment count gives a pyramid; four segments make a hip roof.
func CreateCone(radius, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	halfHeight := height / 2.0

	slope := stdmath.Atan2(float64(radius), float64(height))
	ny := float32(stdmath.Sin(slope))
	nr := float32(stdmath.Cos(slope))

	vertices = append(vertices, core.Vertex{Position: mgl32.Vec3{0, halfHeight, 0}, Normal: up})
	for i := 0; i <= segments; i++ {
		cosT, sinT := unitCircle(i, segments)
		vertices = append(vertices, core.Vertex{
			Position: mgl32.Vec3{cosT * radius, -halfHeight, sinT * radius},
			Normal:   mgl32.Vec3{cosT * nr, ny, sinT * nr}.Normalize(),
		})
	}
	for i := 0; i < segments; i++ {
		indices = append(indices, 0, uint32(i+2), uint32(i+1))
	}

	vertices, indices = appendCap(vertices, indices, radius, -halfHeight, segments, down)

	return CreateMeshFromData("Cone", vertices, indices)
}

// appendCap adds a triangle fan disc at height y facing normal.
func appendCap(vertices []core.Vertex, indices []uint32, radius, y float32, segments int, normal mgl32.Vec3) ([]core.Vertex, []uint32) {
	center := uint32(len(vertices))
	vertices = append(vertices, core.Vertex{Position: mgl32.Vec3{0, y, 0}, Normal: normal})

	for i := 0; i < segments; i++ {
		cosT, sinT := unitCircle(i, segments)
		cosN, sinN := unitCircle(i+1, segments)

		v1 := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: mgl32.Vec3{cosT * radius, y, sinT * radius}, Normal: normal},
			core.Vertex{Position: mgl32.Vec3{cosN * radius, y, sinN * radius}, Normal: normal},
		)
		if normal.Y() > 0 {
			indices = append(indices, center, v1+1, v1)
		} else {
			indices = append(indices, center, v1, v1+1)
		}
	}
	return vertices, indices
}

// CreateBox generates an axis-aligned box centred on the origin.
func CreateBox(width, height, depth float32) *Mesh {
	x, y, z := width/2, height/2, depth/2

	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
	}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range f.corners {
			vertices = append(vertices, core.Vertex{Position: c, Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return CreateMeshFromData("Box", vertices, indices)
}
