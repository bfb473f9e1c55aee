package converters

import "github.com/ecopia-map/export3ds/internal/geometry"

type VertexConverter interface {
	Convert(vertex geometry.Vertex) geometry.Vertex
}

type identityConverter struct{}

func NewIdentityConverter() VertexConverter {
	return &identityConverter{}
}

func (c *identityConverter) Convert(vertex geometry.Vertex) geometry.Vertex {
	return vertex
}

// Applies converters in order
type chainConverter struct {
	converters []VertexConverter
}

func NewChainConverter(converters ...VertexConverter) VertexConverter {
	return &chainConverter{converters: converters}
}

func (c *chainConverter) Convert(vertex geometry.Vertex) geometry.Vertex {
	for _, converter := range c.converters {
		vertex = converter.Convert(vertex)
	}
	return vertex
}
