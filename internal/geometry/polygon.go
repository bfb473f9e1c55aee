package geometry

import (
	"github.com/chewxy/math32"
)

// Normals shorter than this are treated as degenerate
const degenerateNormalLength = 1e-12

// A planar polygon given by its boundary vertices in winding order. Convex and concave
// polygons are both supported; holes are not.
type Polygon struct {
	Vertices []Vertex
}

func NewPolygon(vertices ...Vertex) *Polygon {
	return &Polygon{Vertices: vertices}
}

// Tessellates the polygon by ear clipping in the plane of its Newell normal. Emitted triangles keep
// the winding of the boundary. Degenerate polygons (collinear or self intersecting) that leave no
// clippable ear are completed with a triangle fan. The tolerance is not needed for planar faces.
func (p *Polygon) Tessellate(tolerance float64) ([]Vertex, []Triangle) {
	n := len(p.Vertices)
	switch {
	case n < 3:
		return p.Vertices, nil
	case n == 3:
		return p.Vertices, []Triangle{{0, 1, 2}}
	}

	normal := p.Normal()
	if math32.Sqrt(normal.Dot(normal)) < degenerateNormalLength {
		return p.Vertices, fan(identityIndices(n))
	}

	points, orientation := project(p.Vertices, normal)
	return p.Vertices, clipEars(points, orientation)
}

// Computes the (non normalized) Newell normal of the polygon
func (p *Polygon) Normal() Vertex {
	var normal Vertex
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		cur := p.Vertices[i]
		next := p.Vertices[(i+1)%n]
		normal[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		normal[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		normal[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	return normal
}

type point2 [2]float32

// Projects the vertices on the coordinate plane orthogonal to the dominant axis of the normal.
// The returned orientation is +1 when the projected boundary runs counter clockwise, -1 otherwise.
func project(vertices []Vertex, normal Vertex) ([]point2, float32) {
	axis := 0
	for i := 1; i < 3; i++ {
		if math32.Abs(normal[i]) > math32.Abs(normal[axis]) {
			axis = i
		}
	}
	u, v := (axis+1)%3, (axis+2)%3

	points := make([]point2, len(vertices))
	for i, vertex := range vertices {
		points[i] = point2{vertex[u], vertex[v]}
	}

	orientation := float32(1)
	if normal[axis] < 0 {
		orientation = -1
	}
	return points, orientation
}

func clipEars(points []point2, orientation float32) []Triangle {
	remaining := identityIndices(len(points))
	triangles := make([]Triangle, 0, len(points)-2)

	for len(remaining) > 3 {
		ear := findEar(points, remaining, orientation)
		if ear < 0 {
			return append(triangles, fan(remaining)...)
		}

		m := len(remaining)
		prev, cur, next := remaining[(ear+m-1)%m], remaining[ear], remaining[(ear+1)%m]
		triangles = append(triangles, Triangle{prev, cur, next})
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}

	return append(triangles, Triangle{remaining[0], remaining[1], remaining[2]})
}

// Returns the position in remaining of a vertex whose triangle with its neighbours is convex
// and contains no other remaining vertex, or -1 when no such vertex exists
func findEar(points []point2, remaining []int, orientation float32) int {
	m := len(remaining)
	for i := 0; i < m; i++ {
		a := points[remaining[(i+m-1)%m]]
		b := points[remaining[i]]
		c := points[remaining[(i+1)%m]]

		if cross(a, b, c)*orientation <= 0 {
			continue
		}

		isEar := true
		for j := 0; j < m; j++ {
			if j == i || j == (i+m-1)%m || j == (i+1)%m {
				continue
			}
			if insideTriangle(points[remaining[j]], a, b, c, orientation) {
				isEar = false
				break
			}
		}
		if isEar {
			return i
		}
	}
	return -1
}

func cross(a, b, c point2) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func insideTriangle(p, a, b, c point2, orientation float32) bool {
	return cross(a, b, p)*orientation >= 0 &&
		cross(b, c, p)*orientation >= 0 &&
		cross(c, a, p)*orientation >= 0
}

func fan(indices []int) []Triangle {
	if len(indices) < 3 {
		return nil
	}
	triangles := make([]Triangle, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		triangles = append(triangles, Triangle{indices[0], indices[i], indices[i+1]})
	}
	return triangles
}

func identityIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
