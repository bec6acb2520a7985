package scene

import "github.com/go-gl/mathgl/mgl32"

// Plane represents a half-space: ax + by + cz + d = 0
// Normal (a, b, c) points into the "inside" of the frustum.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts the six normalized frustum planes from a
// view-projection matrix (Gribb/Hartmann).
func FrustumFromVP(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)

	var f Frustum
	f.Planes[0] = normalizePlane(r3.Add(r0))
	f.Planes[1] = normalizePlane(r3.Sub(r0))
	f.Planes[2] = normalizePlane(r3.Add(r1))
	f.Planes[3] = normalizePlane(r3.Sub(r1))
	f.Planes[4] = normalizePlane(r3.Add(r2))
	f.Planes[5] = normalizePlane(r3.Sub(r2))
	return f
}

func normalizePlane(v mgl32.Vec4) Plane {
	n := v.Vec3()
	l := n.Len()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Mul(1 / l), D: v.W() / l}
}

// IntersectsFrustum returns false if the AABB is completely outside the frustum.
// For each plane only the corner furthest along the plane normal is tested.
func (b AABB) IntersectsFrustum(f *Frustum) bool {
	for _, p := range f.Planes {
		corner := b.Max
		for i := 0; i < 3; i++ {
			if p.Normal[i] < 0 {
				corner[i] = b.Min[i]
			}
		}
		if p.DistanceTo(corner) < 0 {
			return false
		}
	}
	return true
}

// Transform returns the world-space AABB enclosing b's eight corners under m.
func (b AABB) Transform(m mgl32.Mat4) AABB {
	var out AABB
	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		wp := mgl32.TransformCoordinate(corner, m)
		if i == 0 {
			out = AABB{Min: wp, Max: wp}
			continue
		}
		for k := 0; k < 3; k++ {
			if wp[k] < out.Min[k] {
				out.Min[k] = wp[k]
			}
			if wp[k] > out.Max[k] {
				out.Max[k] = wp[k]
			}
		}
	}
	return out
}

// WorldAABB is the node's mesh bounds in world space.
func (n *Node) WorldAABB() AABB {
	if n.Mesh == nil {
		return AABB{}
	}
	return n.Mesh.LocalAABB.Transform(n.GetWorldMatrix())
}

// ContainsNode reports whether any part of the node's mesh can fall inside f.
func (f *Frustum) ContainsNode(n *Node) bool {
	return n.WorldAABB().IntersectsFrustum(f)
}

// Frustum is the camera's current view volume.
func (c *Camera) Frustum() Frustum {
	return FrustumFromVP(c.GetViewProjectionMatrix())
}

// InView reports whether any part of the node can fall inside the camera's
// view volume.
func (c *Camera) InView(n *Node) bool {
	f := c.Frustum()
	return f.ContainsNode(n)
}
