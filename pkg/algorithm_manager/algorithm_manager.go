package algorithm_manager

import (
	"github.com/ecopia-map/export3ds/internal/converters"
)

type AlgorithmManager interface {
	GetVertexConverterAlgorithm() converters.VertexConverter
}
