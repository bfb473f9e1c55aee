package std_algorithm_manager

import (
	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/converters"
	"github.com/ecopia-map/export3ds/internal/converters/axis_converter"
	"github.com/ecopia-map/export3ds/internal/converters/offset_converter"
	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/pkg/algorithm_manager"
)

type StandardAlgorithmManager struct {
	vertexConverter converters.VertexConverter
}

// Builds the vertex converter chain from the options: the axis rotation first, then the Z offset
func NewAlgorithmManager(opts *exporter.Options) algorithm_manager.AlgorithmManager {
	chain := make([]converters.VertexConverter, 0, 2)
	if opts.UpAxis == exporter.UpAxisY {
		chain = append(chain, axis_converter.NewYUpToZUpConverter())
	}
	if opts.ZOffset != 0 {
		chain = append(chain, offset_converter.NewZOffsetConverter(opts.ZOffset))
	}

	glog.V(1).Infof("vertex conversion: %s-up input, %d converters, z offset %g", opts.UpAxis, len(chain), opts.ZOffset)

	var vertexConverter converters.VertexConverter
	switch len(chain) {
	case 0:
		vertexConverter = converters.NewIdentityConverter()
	case 1:
		vertexConverter = chain[0]
	default:
		vertexConverter = converters.NewChainConverter(chain...)
	}

	return &StandardAlgorithmManager{
		vertexConverter: vertexConverter,
	}
}

func (m *StandardAlgorithmManager) GetVertexConverterAlgorithm() converters.VertexConverter {
	return m.vertexConverter
}
