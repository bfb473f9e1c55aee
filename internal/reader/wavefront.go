package reader

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/converters"
	"github.com/ecopia-map/export3ds/internal/geometry"
	"github.com/ecopia-map/export3ds/internal/scene"
)

// Diffuse color of faces declared before any usemtl
var DefaultWavefrontColor = geometry.Color{0.7, 0.7, 0.7}

// Name given to faces declared before any o/g statement
const defaultObjectName = "default"

type WavefrontReader struct {
	converter converters.VertexConverter
}

func NewWavefrontReader(converter converters.VertexConverter) *WavefrontReader {
	if converter == nil {
		converter = converters.NewIdentityConverter()
	}
	return &WavefrontReader{converter: converter}
}

// Per-file parse state
type wavefrontParser struct {
	converter converters.VertexConverter

	objects    []*scene.Mesh
	vertexList []geometry.Vertex
	uvCount    int
	normCount  int

	materials map[string]geometry.Color
	curColor  geometry.Color
	curObject *scene.Mesh
}

// Reads a Wavefront OBJ file. Every o or g statement starts a new object; each f statement becomes a
// polygonal face colored with the Kd of the material selected by the last usemtl.
func (r *WavefrontReader) Read(path string) ([]scene.Object, error) {
	p := &wavefrontParser{
		converter:  r.converter,
		objects:    make([]*scene.Mesh, 0),
		vertexList: make([]geometry.Vertex, 0),
		materials:  make(map[string]geometry.Color),
		curColor:   DefaultWavefrontColor,
	}

	file, err := OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := p.parse(path, file); err != nil {
		return nil, err
	}

	objects := make([]scene.Object, 0, len(p.objects))
	for _, object := range p.objects {
		if len(object.FaceList) == 0 {
			glog.Warningf("%s: dropping object %q without faces", path, object.Label)
			continue
		}
		objects = append(objects, object)
	}
	glog.V(2).Infof("read %d objects from %s", len(objects), path)
	return objects, nil
}

func emitError(file string, line int, msgFormat string, args ...interface{}) error {
	return fmt.Errorf("[%s: %d] error: %s", file, line, fmt.Sprintf(msgFormat, args...))
}

func (p *wavefrontParser) parse(path string, r io.Reader) error {
	lineNum := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "mtllib":
			if len(lineTokens) < 2 {
				return emitError(path, lineNum, "unsupported syntax for 'mtllib'; expected at least 1 argument; got 0")
			}
			for _, lib := range lineTokens[1:] {
				libPath := lib
				if !filepath.IsAbs(libPath) {
					libPath = filepath.Join(filepath.Dir(path), lib)
				}
				if err := p.parseMaterials(libPath); err != nil {
					return emitError(path, lineNum, "%s", err.Error())
				}
			}
		case "usemtl":
			if len(lineTokens) != 2 {
				return emitError(path, lineNum, "unsupported syntax for 'usemtl'; expected 1 argument; got %d", len(lineTokens)-1)
			}
			color, exists := p.materials[lineTokens[1]]
			if !exists {
				return emitError(path, lineNum, "undefined material with name '%s'", lineTokens[1])
			}
			p.curColor = color
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return emitError(path, lineNum, "%s", err.Error())
			}
			p.vertexList = append(p.vertexList, p.converter.Convert(geometry.Vertex(v)))
		case "vt":
			p.uvCount++
		case "vn":
			p.normCount++
		case "g", "o":
			if len(lineTokens) < 2 {
				return emitError(path, lineNum, "unsupported syntax for '%s'; expected 1 argument for object name; got %d", lineTokens[0], len(lineTokens)-1)
			}
			p.curObject = scene.NewMesh(strings.Join(lineTokens[1:], " "))
			p.objects = append(p.objects, p.curObject)
		case "f":
			face, err := p.parseFace(lineTokens)
			if err != nil {
				return emitError(path, lineNum, "%s", err.Error())
			}
			if p.curObject == nil {
				p.curObject = scene.NewMesh(defaultObjectName)
				p.objects = append(p.objects, p.curObject)
			}
			p.curObject.AddFace(face, p.curColor)
		default:
			glog.V(3).Infof("[%s: %d] ignoring '%s'", path, lineNum, lineTokens[0])
		}
	}
	return scanner.Err()
}

// Parses a face with any number of vertices. Each argument is one of
// vertexIndex, vertexIndex/uvIndex, vertexIndex//normalIndex or vertexIndex/uvIndex/normalIndex.
// Indices start from 1 and may be negative to count back from the end of the list.
func (p *wavefrontParser) parseFace(lineTokens []string) (*geometry.Polygon, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf("unsupported syntax for 'f'; expected at least 3 arguments; got %d", len(lineTokens)-1)
	}

	vertices := make([]geometry.Vertex, 0, len(lineTokens)-1)
	expIndices := 0
	for arg, token := range lineTokens[1:] {
		vTokens := strings.Split(token, "/")
		if len(vTokens) > 3 {
			return nil, fmt.Errorf("face argument %d has %d indices", arg, len(vTokens))
		}
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return nil, fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vTokens[0], len(p.vertexList))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		if len(vTokens) > 1 && vTokens[1] != "" {
			if _, err := selectFaceCoordIndex(vTokens[1], p.uvCount); err != nil {
				return nil, fmt.Errorf("could not parse tex coord for face argument %d: %s", arg, err.Error())
			}
		}
		if len(vTokens) > 2 && vTokens[2] != "" {
			if _, err := selectFaceCoordIndex(vTokens[2], p.normCount); err != nil {
				return nil, fmt.Errorf("could not parse normal coord for face argument %d: %s", arg, err.Error())
			}
		}
		vertices = append(vertices, p.vertexList[vOffset])
	}

	return geometry.NewPolygon(vertices...), nil
}

// Reads the Kd colors of a material library
func (p *wavefrontParser) parseMaterials(path string) error {
	file, err := OpenInput(path)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNum := 0
	matName := ""
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "newmtl":
			if len(lineTokens) != 2 {
				return emitError(path, lineNum, "unsupported syntax for 'newmtl'; expected 1 argument; got %d", len(lineTokens)-1)
			}
			matName = lineTokens[1]
			if _, exists := p.materials[matName]; exists {
				return emitError(path, lineNum, "material '%s' already defined", matName)
			}
			p.materials[matName] = DefaultWavefrontColor
		case "Kd":
			if matName == "" {
				return emitError(path, lineNum, "got 'Kd' without a 'newmtl'")
			}
			kd, err := parseVec3(lineTokens)
			if err != nil {
				return emitError(path, lineNum, "%s", err.Error())
			}
			p.materials[matName] = geometry.Color(kd)
		default:
			if matName == "" {
				return emitError(path, lineNum, "got '%s' without a 'newmtl'", lineTokens[0])
			}
		}
	}
	return scanner.Err()
}

// Given an index for a face coord type (vertex, normal, tex) calculates the offset into the coord
// list. Negative indices reference elements from the end of the list.
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = int(index - 1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

func parseVec3(lineTokens []string) ([3]float32, error) {
	if len(lineTokens) < 4 {
		return [3]float32{}, fmt.Errorf("unsupported syntax for '%s'; expected 3 arguments; got %d", lineTokens[0], len(lineTokens)-1)
	}

	v := [3]float32{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
