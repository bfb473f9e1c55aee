package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/export3ds/internal/geometry"
	"github.com/ecopia-map/export3ds/internal/scene"
)

func quad(z float32) *geometry.Polygon {
	return geometry.NewPolygon(
		geometry.Vertex{0, 0, z},
		geometry.Vertex{1, 0, z},
		geometry.Vertex{1, 1, z},
		geometry.Vertex{0, 1, z},
	)
}

func TestReduceSharesVerticesAcrossFaces(t *testing.T) {
	object := scene.NewMesh("Strip")
	object.AddFace(quad(0), geometry.Color{1, 0, 0})
	// shares the edge x=1 with the first quad
	object.AddFace(geometry.NewPolygon(
		geometry.Vertex{1, 0, 0},
		geometry.Vertex{2, 0, 0},
		geometry.Vertex{2, 1, 0},
		geometry.Vertex{1, 1, 0},
	), geometry.Color{1, 0, 0})

	reduced, err := Reduce(object, DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, "Strip", reduced.Name)
	assert.Len(t, reduced.Vertices, 6)
	assert.Len(t, reduced.Triangles, 4)
	for _, triangle := range reduced.Triangles {
		for _, index := range triangle {
			assert.Less(t, index, len(reduced.Vertices))
		}
	}
	// first seen order
	assert.Equal(t, geometry.Vertex{0, 0, 0}, reduced.Vertices[0])
	assert.Equal(t, geometry.Vertex{2, 0, 0}, reduced.Vertices[4])
}

func TestReduceCollapsesVerticesAtPrecision(t *testing.T) {
	object := scene.NewMesh("Near")
	object.AddFace(&geometry.TriangleList{
		Vertices:  []geometry.Vertex{{0.00001, 0, 0}, {0.00002, 0, 0}, {0, 1, 0}},
		Triangles: []geometry.Triangle{{0, 1, 2}},
	}, geometry.Color{0, 0, 0})

	reduced, err := Reduce(object, DefaultSettings())
	require.NoError(t, err)
	assert.Len(t, reduced.Vertices, 2)
	assert.Equal(t, []geometry.Triangle{{0, 0, 1}}, reduced.Triangles)
}

func TestReducePartitionsTrianglesByColor(t *testing.T) {
	red := geometry.Color{1, 0, 0}
	green := geometry.Color{0, 1, 0}

	object := scene.NewMesh("Stack")
	object.AddFace(quad(0), red)
	object.AddFace(quad(1), green)
	object.AddFace(quad(2), geometry.Color{0.9999, 0, 0}) // rounds to red at 3 decimals
	object.AddFace(quad(3), green)

	reduced, err := Reduce(object, DefaultSettings())
	require.NoError(t, err)
	require.Len(t, reduced.Triangles, 8)
	require.Len(t, reduced.Groups, 2)

	assert.Equal(t, "1.000 0.000 0.000 ", reduced.Groups[0].Name)
	assert.Equal(t, red, reduced.Groups[0].Color)
	assert.Equal(t, []int{0, 1, 4, 5}, reduced.Groups[0].Faces)
	assert.Equal(t, "0.000 1.000 0.000 ", reduced.Groups[1].Name)
	assert.Equal(t, []int{2, 3, 6, 7}, reduced.Groups[1].Faces)

	seen := make(map[int]bool)
	for _, group := range reduced.Groups {
		for _, face := range group.Faces {
			assert.False(t, seen[face], "triangle %d in two groups", face)
			seen[face] = true
		}
	}
	assert.Len(t, seen, len(reduced.Triangles))
}

func TestReduceBroadcastsSingleColor(t *testing.T) {
	object := &scene.Mesh{
		Label:         "Uniform",
		FaceList:      []geometry.Face{quad(0), quad(1)},
		DiffuseColors: []geometry.Color{{0, 0, 1}},
	}

	reduced, err := Reduce(object, DefaultSettings())
	require.NoError(t, err)
	require.Len(t, reduced.Groups, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, reduced.Groups[0].Faces)
}

func TestReduceKeepsGroupsOfFacesWithoutTriangles(t *testing.T) {
	object := scene.NewMesh("Sparse")
	object.AddFace(quad(0), geometry.Color{1, 0, 0})
	object.AddFace(geometry.NewPolygon(geometry.Vertex{0, 0, 0}, geometry.Vertex{1, 0, 0}), geometry.Color{0, 1, 0})

	reduced, err := Reduce(object, DefaultSettings())
	require.NoError(t, err)
	require.Len(t, reduced.Groups, 2)
	assert.Empty(t, reduced.Groups[1].Faces)
}

func TestReduceRejectsColorCountMismatch(t *testing.T) {
	object := &scene.Mesh{
		Label:         "Broken",
		FaceList:      []geometry.Face{quad(0), quad(1), quad(2)},
		DiffuseColors: []geometry.Color{{1, 0, 0}, {0, 1, 0}},
	}

	_, err := Reduce(object, DefaultSettings())
	assert.ErrorIs(t, err, ErrColorCountMismatch)
	assert.Contains(t, err.Error(), "Broken")
}

func TestReduceRejectsInvalidTriangle(t *testing.T) {
	object := scene.NewMesh("Bad")
	object.AddFace(&geometry.TriangleList{
		Vertices:  []geometry.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Triangles: []geometry.Triangle{{0, 1, 3}},
	}, geometry.Color{0, 0, 0})

	_, err := Reduce(object, DefaultSettings())
	assert.ErrorIs(t, err, ErrInvalidTriangle)
}

func TestReduceEmptyObject(t *testing.T) {
	reduced, err := Reduce(scene.NewMesh("Empty"), DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, reduced.Vertices)
	assert.Empty(t, reduced.Triangles)
	assert.Empty(t, reduced.Groups)
}

func TestResolveColors(t *testing.T) {
	colors, err := ResolveColors(0, []geometry.Color{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	assert.Empty(t, colors)

	colors, err = ResolveColors(2, []geometry.Color{{1, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []geometry.Color{{1, 0, 0}, {1, 0, 0}}, colors)

	_, err = ResolveColors(2, nil)
	assert.ErrorIs(t, err, ErrColorCountMismatch)
}
