package scene

import (
	"github.com/ecopia-map/export3ds/internal/geometry"
)

// A mesh-bearing object supplied by the host scene
type Object interface {
	// Display name, written as the object block name
	Name() string
	// Whether the object is currently displayed; hidden objects are not exported
	Visible() bool
	// Polygonal faces, each one tessellated independently
	Faces() []geometry.Face
	// Diffuse color per face, or a single color applied to every face
	Colors() []geometry.Color
}

// Plain in-memory Object implementation
type Mesh struct {
	Label         string
	Hidden        bool
	FaceList      []geometry.Face
	DiffuseColors []geometry.Color
}

// Builds a new visible mesh without faces
func NewMesh(name string) *Mesh {
	return &Mesh{
		Label:         name,
		FaceList:      make([]geometry.Face, 0),
		DiffuseColors: make([]geometry.Color, 0),
	}
}

func (m *Mesh) Name() string {
	return m.Label
}

func (m *Mesh) Visible() bool {
	return !m.Hidden
}

func (m *Mesh) Faces() []geometry.Face {
	return m.FaceList
}

func (m *Mesh) Colors() []geometry.Color {
	return m.DiffuseColors
}

// Appends a face together with its own diffuse color
func (m *Mesh) AddFace(face geometry.Face, color geometry.Color) {
	m.FaceList = append(m.FaceList, face)
	m.DiffuseColors = append(m.DiffuseColors, color)
}
