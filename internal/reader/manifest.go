package reader

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/ecopia-map/export3ds/internal/converters"
	"github.com/ecopia-map/export3ds/internal/geometry"
	"github.com/ecopia-map/export3ds/internal/scene"
)

type ManifestFormat int

const (
	ManifestYAML ManifestFormat = iota
	ManifestTOML
)

func (f ManifestFormat) String() string {
	switch f {
	case ManifestYAML:
		return "yaml"
	case ManifestTOML:
		return "toml"
	}
	return fmt.Sprintf("ManifestFormat(%d)", int(f))
}

const manifestSchemaJSON = `{
	"type": "object",
	"required": ["objects"],
	"properties": {
		"objects": {
			"type": "array",
			"items": {"$ref": "#/$defs/object"}
		}
	},
	"$defs": {
		"vertex": {
			"type": "array",
			"items": {"type": "number"},
			"minItems": 3,
			"maxItems": 3
		},
		"color": {
			"type": "array",
			"items": {"type": "number", "minimum": 0, "maximum": 1},
			"minItems": 3,
			"maxItems": 3
		},
		"object": {
			"type": "object",
			"required": ["name", "vertices", "faces"],
			"additionalProperties": false,
			"properties": {
				"name": {"type": "string"},
				"visible": {"type": "boolean"},
				"vertices": {"type": "array", "items": {"$ref": "#/$defs/vertex"}},
				"faces": {
					"type": "array",
					"items": {
						"type": "array",
						"items": {"type": "integer", "minimum": 0},
						"minItems": 3
					}
				},
				"color": {"$ref": "#/$defs/color"},
				"colors": {"type": "array", "items": {"$ref": "#/$defs/color"}}
			},
			"oneOf": [
				{"required": ["color"]},
				{"required": ["colors"]}
			]
		}
	}
}`

var manifestSchema = jsonschema.MustCompileString("manifest.schema.json", manifestSchemaJSON)

type manifest struct {
	Objects []manifestObject `yaml:"objects" toml:"objects"`
}

type manifestObject struct {
	Name     string      `yaml:"name" toml:"name"`
	Visible  *bool       `yaml:"visible" toml:"visible"`
	Vertices [][]float64 `yaml:"vertices" toml:"vertices"`
	Faces    [][]int     `yaml:"faces" toml:"faces"`
	Color    []float64   `yaml:"color" toml:"color"`
	Colors   [][]float64 `yaml:"colors" toml:"colors"`
}

// Reads scene manifests: a list of named objects, each with its vertices, polygonal faces indexing
// them and either one color or a color per face. Documents are checked against a JSON schema before
// being decoded.
type ManifestReader struct {
	format    ManifestFormat
	converter converters.VertexConverter
}

func NewManifestReader(format ManifestFormat, converter converters.VertexConverter) *ManifestReader {
	if converter == nil {
		converter = converters.NewIdentityConverter()
	}
	return &ManifestReader{format: format, converter: converter}
}

func (r *ManifestReader) Read(path string) ([]scene.Object, error) {
	file, err := OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	objects, err := r.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(2).Infof("read %d objects from %s (%s)", len(objects), path, r.format)
	return objects, nil
}

// Validates and decodes a manifest document
func (r *ManifestReader) Decode(data []byte) ([]scene.Object, error) {
	if err := r.validate(data); err != nil {
		return nil, err
	}

	var doc manifest
	if err := r.unmarshal(data, &doc); err != nil {
		return nil, err
	}

	objects := make([]scene.Object, 0, len(doc.Objects))
	for i, entry := range doc.Objects {
		object, err := r.toMesh(entry)
		if err != nil {
			return nil, fmt.Errorf("objects[%d] %q: %w", i, entry.Name, err)
		}
		objects = append(objects, object)
	}
	return objects, nil
}

func (r *ManifestReader) unmarshal(data []byte, v interface{}) error {
	switch r.format {
	case ManifestYAML:
		return yaml.Unmarshal(data, v)
	case ManifestTOML:
		return toml.Unmarshal(data, v)
	}
	return fmt.Errorf("unknown manifest format %s", r.format)
}

func (r *ManifestReader) validate(data []byte) error {
	var generic interface{}
	if err := r.unmarshal(data, &generic); err != nil {
		return err
	}
	if err := manifestSchema.Validate(generic); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	return nil
}

func (r *ManifestReader) toMesh(entry manifestObject) (*scene.Mesh, error) {
	vertices := make([]geometry.Vertex, len(entry.Vertices))
	for i, v := range entry.Vertices {
		vertices[i] = r.converter.Convert(geometry.Vertex{float32(v[0]), float32(v[1]), float32(v[2])})
	}

	faces := make([]geometry.Face, len(entry.Faces))
	for i, indices := range entry.Faces {
		boundary := make([]geometry.Vertex, len(indices))
		for k, index := range indices {
			if index >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, index, len(vertices))
			}
			boundary[k] = vertices[index]
		}
		faces[i] = geometry.NewPolygon(boundary...)
	}

	colors := make([]geometry.Color, 0, len(entry.Colors)+1)
	if entry.Color != nil {
		colors = append(colors, toColor(entry.Color))
	}
	for _, c := range entry.Colors {
		colors = append(colors, toColor(c))
	}

	mesh := scene.NewMesh(entry.Name)
	mesh.FaceList = faces
	mesh.DiffuseColors = colors
	if entry.Visible != nil {
		mesh.Hidden = !*entry.Visible
	}
	return mesh, nil
}

func toColor(c []float64) geometry.Color {
	return geometry.Color{float32(c[0]), float32(c[1]), float32(c[2])}
}
