package quantize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecopia-map/export3ds/internal/geometry"
)

func TestVertexKeyCollapsesBelowPrecision(t *testing.T) {
	a := KeyForVertex(geometry.Vertex{0.00001, 0, 0}, DefaultVertexPrecision)
	b := KeyForVertex(geometry.Vertex{0.00002, 0, 0}, DefaultVertexPrecision)
	assert.Equal(t, a, b)
	assert.Equal(t, VertexKey{0, 0, 0}, a)

	c := KeyForVertex(geometry.Vertex{0.0001, 0, 0}, DefaultVertexPrecision)
	assert.NotEqual(t, a, c)
}

func TestRoundingAtBoundaries(t *testing.T) {
	cases := []struct {
		value    float32
		expected int64
	}{
		{0.00004, 0},
		{0.00005, 1},
		{0.00006, 1},
		{-0.00004, 0},
		{-0.00005, -1},
		{1.23455, 12346},
		{-2.5, -25000},
		{123.4567, 1234567},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Fixed(c.value, DefaultVertexPrecision), "value %v", c.value)
	}
}

func TestNonFiniteValues(t *testing.T) {
	nan := float32(math.NaN())
	assert.Equal(t, Fixed(nan, 4), Fixed(-nan, 4))
	assert.Equal(t, int64(math.MaxInt64), Fixed(float32(math.Inf(1)), 4))
	assert.Equal(t, int64(math.MinInt64), Fixed(float32(math.Inf(-1)), 4))
	assert.Equal(t, "NaN 0.000 +Inf ", ColorName(geometry.Color{nan, 0, float32(math.Inf(1))}, 3))
}

func TestOutOfRangeValuesSaturate(t *testing.T) {
	assert.Equal(t, int64(9_000_000_000_000_000_000), Fixed(9e14, DefaultVertexPrecision))
	assert.Equal(t, int64(math.MaxInt64), Fixed(1e15, DefaultVertexPrecision))
	assert.Equal(t, int64(math.MaxInt64), Fixed(3e38, DefaultVertexPrecision))
	assert.Equal(t, int64(math.MinInt64), Fixed(-1e15, DefaultVertexPrecision))

	nanKey := Fixed(float32(math.NaN()), DefaultVertexPrecision)
	assert.NotEqual(t, nanKey, Fixed(-3e38, DefaultVertexPrecision))
	assert.Equal(t, KeyForVertex(geometry.Vertex{1e15, 0, 0}, 4), KeyForVertex(geometry.Vertex{float32(math.Inf(1)), 0, 0}, 4))
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "1.000 0.000 0.000 ", ColorName(geometry.Color{1, 0, 0}, DefaultColorPrecision))
	assert.Equal(t, "0.800 0.800 0.800 ", ColorName(geometry.Color{0.8, 0.8, 0.8}, DefaultColorPrecision))
	assert.Equal(t, "0.123 0.001 0.000 ", ColorName(geometry.Color{0.1234, 0.0005, -0.0001}, DefaultColorPrecision))
}

func TestColorKeyAgreesWithName(t *testing.T) {
	a := geometry.Color{0.1001, 0.5, 0.25}
	b := geometry.Color{0.1004, 0.5, 0.25}
	c := geometry.Color{0.1006, 0.5, 0.25}

	assert.Equal(t, KeyForColor(a, 3), KeyForColor(b, 3))
	assert.Equal(t, ColorName(a, 3), ColorName(b, 3))

	assert.NotEqual(t, KeyForColor(a, 3), KeyForColor(c, 3))
	assert.NotEqual(t, ColorName(a, 3), ColorName(c, 3))
}
