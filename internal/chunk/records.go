package chunk

import (
	"errors"
	"fmt"

	"github.com/ecopia-map/export3ds/internal/geometry"
)

type Tag uint16

const (
	TagRGBFloat                  Tag = 0x0010
	TagVersion                   Tag = 0x0002
	TagEditor                    Tag = 0x3D3D
	TagObjectBlock               Tag = 0x4000
	TagMesh                      Tag = 0x4100
	TagVertexList                Tag = 0x4110
	TagFaceList                  Tag = 0x4120
	TagFaceMaterialList          Tag = 0x4130
	TagMain                      Tag = 0x4D4D
	TagMaterialName              Tag = 0xA000
	TagMaterialAmbient           Tag = 0xA010
	TagMaterialDiffuse           Tag = 0xA020
	TagMaterialSpecular          Tag = 0xA030
	TagMaterialShininess         Tag = 0xA040
	TagMaterialShininessStrength Tag = 0xA041
	TagMaterial                  Tag = 0xAFFF
)

// Version number written in the version chunk
const FormatVersion uint32 = 3

// Largest number of entries a u16-counted list can hold
const MaxListEntries = 0xFFFF

var ErrCapacityExceeded = errors.New("chunk capacity exceeded")

func (t Tag) String() string {
	return fmt.Sprintf("0x%04X", uint16(t))
}

// A chunk record. The set of records is closed: only the types declared in this file implement it,
// and encodePayload maps each of them to its bytes.
type Record interface {
	Tag() Tag
	isRecord()
}

// Container records, they carry no payload
type (
	Main                      struct{}
	Editor                    struct{}
	Mesh                      struct{}
	Material                  struct{}
	MaterialAmbient           struct{}
	MaterialDiffuse           struct{}
	MaterialSpecular          struct{}
	MaterialShininess         struct{}
	MaterialShininessStrength struct{}
)

// Carries FormatVersion
type Version struct{}

type ObjectBlock struct {
	Name string
}

type VertexList struct {
	Vertices []geometry.Vertex
}

type FaceList struct {
	Faces [][3]uint16
}

// Lists the faces of a mesh that use the named material
type FaceMaterialList struct {
	Material string
	Faces    []uint16
}

type MaterialName struct {
	Name string
}

type RGBFloat struct {
	Color geometry.Color
}

func (Main) Tag() Tag                      { return TagMain }
func (Version) Tag() Tag                   { return TagVersion }
func (Editor) Tag() Tag                    { return TagEditor }
func (ObjectBlock) Tag() Tag               { return TagObjectBlock }
func (Mesh) Tag() Tag                      { return TagMesh }
func (VertexList) Tag() Tag                { return TagVertexList }
func (FaceList) Tag() Tag                  { return TagFaceList }
func (FaceMaterialList) Tag() Tag          { return TagFaceMaterialList }
func (Material) Tag() Tag                  { return TagMaterial }
func (MaterialName) Tag() Tag              { return TagMaterialName }
func (MaterialAmbient) Tag() Tag           { return TagMaterialAmbient }
func (MaterialDiffuse) Tag() Tag           { return TagMaterialDiffuse }
func (MaterialSpecular) Tag() Tag          { return TagMaterialSpecular }
func (MaterialShininess) Tag() Tag         { return TagMaterialShininess }
func (MaterialShininessStrength) Tag() Tag { return TagMaterialShininessStrength }
func (RGBFloat) Tag() Tag                  { return TagRGBFloat }

func (Main) isRecord()                      {}
func (Version) isRecord()                   {}
func (Editor) isRecord()                    {}
func (ObjectBlock) isRecord()               {}
func (Mesh) isRecord()                      {}
func (VertexList) isRecord()                {}
func (FaceList) isRecord()                  {}
func (FaceMaterialList) isRecord()          {}
func (Material) isRecord()                  {}
func (MaterialName) isRecord()              {}
func (MaterialAmbient) isRecord()           {}
func (MaterialDiffuse) isRecord()           {}
func (MaterialSpecular) isRecord()          {}
func (MaterialShininess) isRecord()         {}
func (MaterialShininessStrength) isRecord() {}
func (RGBFloat) isRecord()                  {}

// Builds a vertex list record, failing if the vertices do not fit the u16 count
func NewVertexList(vertices []geometry.Vertex) (VertexList, error) {
	if len(vertices) > MaxListEntries {
		return VertexList{}, fmt.Errorf("%w: %d vertices, at most %d allowed", ErrCapacityExceeded, len(vertices), MaxListEntries)
	}
	return VertexList{Vertices: vertices}, nil
}

// Builds a face list record, failing if the triangles or any of their indices do not fit in 16 bits
func NewFaceList(triangles []geometry.Triangle) (FaceList, error) {
	if len(triangles) > MaxListEntries {
		return FaceList{}, fmt.Errorf("%w: %d faces, at most %d allowed", ErrCapacityExceeded, len(triangles), MaxListEntries)
	}

	faces := make([][3]uint16, len(triangles))
	for i, triangle := range triangles {
		for j, index := range triangle {
			if index < 0 || index > MaxListEntries {
				return FaceList{}, fmt.Errorf("%w: face %d references vertex %d", ErrCapacityExceeded, i, index)
			}
			faces[i][j] = uint16(index)
		}
	}
	return FaceList{Faces: faces}, nil
}

// Builds a face material list record, failing if the face indices do not fit in 16 bits
func NewFaceMaterialList(material string, faces []int) (FaceMaterialList, error) {
	if len(faces) > MaxListEntries {
		return FaceMaterialList{}, fmt.Errorf("%w: %d faces for material %q, at most %d allowed", ErrCapacityExceeded, len(faces), material, MaxListEntries)
	}

	entries := make([]uint16, len(faces))
	for i, face := range faces {
		if face < 0 || face > MaxListEntries {
			return FaceMaterialList{}, fmt.Errorf("%w: face index %d for material %q", ErrCapacityExceeded, face, material)
		}
		entries[i] = uint16(face)
	}
	return FaceMaterialList{Material: material, Faces: entries}, nil
}
