package mesh

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/geometry"
	"github.com/ecopia-map/export3ds/internal/quantize"
	"github.com/ecopia-map/export3ds/internal/scene"
)

// Curvature deviation handed to every face tessellation
const DefaultTolerance = 15.0

var (
	ErrColorCountMismatch = errors.New("face color count does not match face count")
	ErrInvalidTriangle    = errors.New("triangle references a vertex outside its face")
)

// Contains the parameters of the mesh reduction
type Settings struct {
	Tolerance       float64 // Tessellation tolerance
	VertexPrecision int32   // Decimal places used to merge vertices
	ColorPrecision  int32   // Decimal places used to merge colors into materials
}

func DefaultSettings() Settings {
	return Settings{
		Tolerance:       DefaultTolerance,
		VertexPrecision: quantize.DefaultVertexPrecision,
		ColorPrecision:  quantize.DefaultColorPrecision,
	}
}

// The triangles of a mesh sharing one canonical color
type MaterialGroup struct {
	Key   quantize.ColorKey
	Name  string
	Color geometry.Color // first color of the object mapping to Key
	Faces []int          // indices into Mesh.Triangles
}

// A reduced triangle mesh: unique vertices in first seen order, global triangles and their
// partition into material groups
type Mesh struct {
	Name      string
	Vertices  []geometry.Vertex
	Triangles []geometry.Triangle
	Groups    []*MaterialGroup
}

// A face after tessellation, before vertex reduction
type tessellatedFace struct {
	vertices  []geometry.Vertex
	triangles []geometry.Triangle
}

// Tessellates the faces of the object, merges vertices that share a fixed-point key and groups the
// resulting triangles by face color. Vertices are numbered face by face, then vertex by vertex,
// so output is deterministic for a given face order.
func Reduce(object scene.Object, settings Settings) (*Mesh, error) {
	faces := object.Faces()
	colors, err := ResolveColors(len(faces), object.Colors())
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", object.Name(), err)
	}

	tessellated := make([]tessellatedFace, len(faces))
	for i, face := range faces {
		vertices, triangles := face.Tessellate(settings.Tolerance)
		tessellated[i] = tessellatedFace{vertices: vertices, triangles: triangles}
	}

	mesh := &Mesh{
		Name:      object.Name(),
		Vertices:  make([]geometry.Vertex, 0),
		Triangles: make([]geometry.Triangle, 0),
		Groups:    make([]*MaterialGroup, 0),
	}

	// global vertex index of each local vertex, per face
	remap := make([][]int, len(tessellated))
	reduced := make(map[quantize.VertexKey]int)
	for fi, face := range tessellated {
		remap[fi] = make([]int, len(face.vertices))
		for vi, vertex := range face.vertices {
			key := quantize.KeyForVertex(vertex, settings.VertexPrecision)
			index, ok := reduced[key]
			if !ok {
				index = len(mesh.Vertices)
				reduced[key] = index
				mesh.Vertices = append(mesh.Vertices, vertex)
			}
			remap[fi][vi] = index
		}
	}

	sourceFace := make([]int, 0)
	for fi, face := range tessellated {
		for ti, triangle := range face.triangles {
			var global geometry.Triangle
			for k, local := range triangle {
				if local < 0 || local >= len(remap[fi]) {
					return nil, fmt.Errorf("object %q face %d triangle %d: %w", object.Name(), fi, ti, ErrInvalidTriangle)
				}
				global[k] = remap[fi][local]
			}
			mesh.Triangles = append(mesh.Triangles, global)
			sourceFace = append(sourceFace, fi)
		}
	}

	groups := make(map[quantize.ColorKey]*MaterialGroup)
	for _, color := range colors {
		key := quantize.KeyForColor(color, settings.ColorPrecision)
		if _, ok := groups[key]; ok {
			continue
		}
		group := &MaterialGroup{
			Key:   key,
			Name:  quantize.ColorName(color, settings.ColorPrecision),
			Color: color,
			Faces: make([]int, 0),
		}
		groups[key] = group
		mesh.Groups = append(mesh.Groups, group)
	}
	for ti, fi := range sourceFace {
		key := quantize.KeyForColor(colors[fi], settings.ColorPrecision)
		groups[key].Faces = append(groups[key].Faces, ti)
	}

	glog.V(2).Infof("reduced object %q: %d faces, %d vertices, %d triangles, %d materials",
		mesh.Name, len(faces), len(mesh.Vertices), len(mesh.Triangles), len(mesh.Groups))

	return mesh, nil
}

// Returns one color per face. A single color is broadcast to every face; any other count that
// differs from the number of faces is rejected.
func ResolveColors(faceCount int, colors []geometry.Color) ([]geometry.Color, error) {
	switch {
	case faceCount == 0:
		return []geometry.Color{}, nil
	case len(colors) == faceCount:
		return colors, nil
	case len(colors) == 1:
		resolved := make([]geometry.Color, faceCount)
		for i := range resolved {
			resolved[i] = colors[0]
		}
		return resolved, nil
	}
	return nil, fmt.Errorf("%w: %d colors for %d faces", ErrColorCountMismatch, len(colors), faceCount)
}
