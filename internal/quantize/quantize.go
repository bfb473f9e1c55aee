// Package quantize turns float coordinates and colors into fixed-point keys used to deduplicate
// vertices and materials.
//
// Values are rounded half away from zero, applied to the shortest decimal representation of the
// float32 value (so 0.00005 becomes 0.0001 at four places). Negative values that round to zero share
// the key of zero.
package quantize

import (
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/shopspring/decimal"

	"github.com/ecopia-map/export3ds/internal/geometry"
)

const (
	DefaultVertexPrecision int32 = 4
	DefaultColorPrecision  int32 = 3
)

// Fixed point representation of a vertex: each coordinate multiplied by 10^precision and rounded
type VertexKey [3]int64

// Fixed point representation of a color: each component multiplied by 10^precision and rounded
type ColorKey [3]int64

// Rounds value to the given number of decimal places
func Round(value float32, precision int32) decimal.Decimal {
	return decimal.NewFromFloat32(value).Round(precision)
}

// Returns the rounded value scaled to an integer. Infinities map to the int64 extremes and every
// NaN shares one key. Finite values whose scaled form does not fit an int64 (about 9.2e14 at four
// places) saturate to the infinity keys.
func Fixed(value float32, precision int32) int64 {
	switch {
	case math32.IsNaN(value):
		return nanKey
	case math32.IsInf(value, 1):
		return math.MaxInt64
	case math32.IsInf(value, -1):
		return math.MinInt64
	}
	scaled := Round(value, precision).Shift(precision)
	if !scaled.BigInt().IsInt64() {
		if scaled.Sign() > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return scaled.IntPart()
}

const nanKey = math.MinInt64 + 1

func KeyForVertex(v geometry.Vertex, precision int32) VertexKey {
	return VertexKey{Fixed(v[0], precision), Fixed(v[1], precision), Fixed(v[2], precision)}
}

func KeyForColor(c geometry.Color, precision int32) ColorKey {
	return ColorKey{Fixed(c[0], precision), Fixed(c[1], precision), Fixed(c[2], precision)}
}

// Renders the color as its rounded components, each followed by a space, e.g. "1.000 0.000 0.000 ".
// The result is used as material name, two colors share a name exactly when they share a key.
func ColorName(c geometry.Color, precision int32) string {
	var sb strings.Builder
	for _, component := range c {
		if math32.IsNaN(component) || math32.IsInf(component, 0) {
			sb.WriteString(strconv.FormatFloat(float64(component), 'f', -1, 32))
		} else {
			sb.WriteString(Round(component, precision).StringFixed(precision))
		}
		sb.WriteString(" ")
	}
	return sb.String()
}
