package geometry

// A point in model space, stored with the single precision used by the output format
type Vertex [3]float32

// Diffuse color with R, G, B components in the [0, 1] range
type Color [3]float32

// Three indices into a vertex array
type Triangle [3]int

// A polygonal face that can be tessellated on demand. Tessellate returns the face's own local vertex
// array and the triangles that cover it, expressed as indices into that local array.
// The tolerance bounds the deviation allowed for curved faces; planar faces may ignore it.
type Face interface {
	Tessellate(tolerance float64) ([]Vertex, []Triangle)
}

// A face that is already tessellated
type TriangleList struct {
	Vertices  []Vertex
	Triangles []Triangle
}

func (t *TriangleList) Tessellate(tolerance float64) ([]Vertex, []Triangle) {
	return t.Vertices, t.Triangles
}

func (v Vertex) Sub(o Vertex) Vertex {
	return Vertex{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vertex) Add(o Vertex) Vertex {
	return Vertex{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vertex) Cross(o Vertex) Vertex {
	return Vertex{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vertex) Dot(o Vertex) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}
