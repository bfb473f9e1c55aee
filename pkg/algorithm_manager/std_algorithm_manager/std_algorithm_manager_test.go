package std_algorithm_manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/internal/geometry"
)

func TestVertexConverterFollowsOptions(t *testing.T) {
	opts := exporter.DefaultOptions()
	identity := NewAlgorithmManager(opts).GetVertexConverterAlgorithm()
	assert.Equal(t, geometry.Vertex{1, 2, 3}, identity.Convert(geometry.Vertex{1, 2, 3}))

	opts.UpAxis = exporter.UpAxisY
	opts.ZOffset = 10
	converter := NewAlgorithmManager(opts).GetVertexConverterAlgorithm()
	assert.Equal(t, geometry.Vertex{1, -3, 12}, converter.Convert(geometry.Vertex{1, 2, 3}))

	opts.UpAxis = exporter.UpAxisZ
	converter = NewAlgorithmManager(opts).GetVertexConverterAlgorithm()
	assert.Equal(t, geometry.Vertex{1, 2, 13}, converter.Convert(geometry.Vertex{1, 2, 3}))
}

func TestVertexConverterOffsetOnly(t *testing.T) {
	opts := exporter.DefaultOptions()
	opts.ZOffset = -2.5
	converter := NewAlgorithmManager(opts).GetVertexConverterAlgorithm()
	assert.Equal(t, geometry.Vertex{1, 2, 0.5}, converter.Convert(geometry.Vertex{1, 2, 3}))
}
