package document

import (
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/chunk"
	"github.com/ecopia-map/export3ds/internal/mesh"
	"github.com/ecopia-map/export3ds/internal/quantize"
	"github.com/ecopia-map/export3ds/internal/scene"
)

// An export session: the chunk tree of one output file plus the material table shared by all the
// objects added to it. A Document is not safe for concurrent use.
type Document struct {
	settings  mesh.Settings
	root      *chunk.Node
	editor    *chunk.Node
	materials map[quantize.ColorKey]string
	objects   int
}

// Builds an empty document: a root chunk holding the version chunk and an empty editor chunk
func New(settings mesh.Settings) *Document {
	root := chunk.New(chunk.Main{})
	root.AddChild(chunk.New(chunk.Version{}))
	editor := root.AddChild(chunk.New(chunk.Editor{}))

	return &Document{
		settings:  settings,
		root:      root,
		editor:    editor,
		materials: make(map[quantize.ColorKey]string),
	}
}

func (d *Document) Root() *chunk.Node {
	return d.root
}

// Number of distinct materials created so far
func (d *Document) MaterialCount() int {
	return len(d.materials)
}

// Number of object blocks added so far
func (d *Document) ObjectCount() int {
	return d.objects
}

// Converts the object into an object block and appends it to the editor chunk. Materials for colors
// never seen before in this document are appended first, so a material always precedes the objects
// using it. Adding the same object twice writes it twice.
func (d *Document) AddObject(object scene.Object) error {
	reduced, err := mesh.Reduce(object, d.settings)
	if err != nil {
		return err
	}

	objectBlock, err := d.buildObjectBlock(reduced)
	if err != nil {
		return fmt.Errorf("object %q: %w", reduced.Name, err)
	}

	for _, group := range reduced.Groups {
		if _, ok := d.materials[group.Key]; ok {
			continue
		}
		d.materials[group.Key] = group.Name
		d.editor.AddChild(newMaterial(group))
		glog.V(2).Infof("added material %q", group.Name)
	}

	d.editor.AddChild(objectBlock)
	d.objects++
	return nil
}

// Serializes the whole chunk tree
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.root.WriteTo(w)
}

func (d *Document) buildObjectBlock(reduced *mesh.Mesh) (*chunk.Node, error) {
	vertexList, err := chunk.NewVertexList(reduced.Vertices)
	if err != nil {
		return nil, err
	}
	faceList, err := chunk.NewFaceList(reduced.Triangles)
	if err != nil {
		return nil, err
	}

	objectBlock := chunk.New(chunk.ObjectBlock{Name: reduced.Name})
	meshNode := objectBlock.AddChild(chunk.New(chunk.Mesh{}))
	meshNode.AddChild(chunk.New(vertexList))
	faceNode := meshNode.AddChild(chunk.New(faceList))

	for _, group := range reduced.Groups {
		faceMaterials, err := chunk.NewFaceMaterialList(group.Name, group.Faces)
		if err != nil {
			return nil, err
		}
		faceNode.AddChild(chunk.New(faceMaterials))
	}

	return objectBlock, nil
}

func newMaterial(group *mesh.MaterialGroup) *chunk.Node {
	material := chunk.New(chunk.Material{})
	material.AddChild(chunk.New(chunk.MaterialName{Name: group.Name}))
	material.AddChild(chunk.New(chunk.MaterialDiffuse{})).AddChild(chunk.New(chunk.RGBFloat{Color: group.Color}))
	return material
}
