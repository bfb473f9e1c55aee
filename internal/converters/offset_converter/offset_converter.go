package offset_converter

import (
	"github.com/ecopia-map/export3ds/internal/converters"
	"github.com/ecopia-map/export3ds/internal/geometry"
)

type OffsetConverter struct {
	Offset geometry.Vertex
}

func NewOffsetConverter(offset geometry.Vertex) converters.VertexConverter {
	return &OffsetConverter{
		Offset: offset,
	}
}

// Builds a converter that only shifts vertices along Z
func NewZOffsetConverter(zOffset float64) converters.VertexConverter {
	return NewOffsetConverter(geometry.Vertex{0, 0, float32(zOffset)})
}

func (c *OffsetConverter) Convert(vertex geometry.Vertex) geometry.Vertex {
	return vertex.Add(c.Offset)
}
