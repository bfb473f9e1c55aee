package axis_converter

import (
	"github.com/ecopia-map/export3ds/internal/converters"
	"github.com/ecopia-map/export3ds/internal/geometry"
)

// Rotates Y-up coordinates into the Z-up frame used by 3DS: (x, y, z) becomes (x, -z, y).
// The rotation is proper, so face winding and handedness are preserved.
type YUpToZUpConverter struct{}

func NewYUpToZUpConverter() converters.VertexConverter {
	return &YUpToZUpConverter{}
}

func (c *YUpToZUpConverter) Convert(vertex geometry.Vertex) geometry.Vertex {
	return geometry.Vertex{vertex[0], -vertex[2], vertex[1]}
}
