package chunk

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Drops every rune outside the ASCII range
var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// Encodes a string as NUL terminated ASCII. Non ASCII characters, invalid UTF-8 included,
// are silently dropped one by one.
func ASCIIZ(s string) []byte {
	ascii, _, _ := transform.String(asciiOnly, s)
	out := make([]byte, 0, len(ascii)+1)
	out = append(out, ascii...)
	return append(out, 0)
}

// Maps each record variant to its payload bytes
func encodePayload(record Record) []byte {
	switch r := record.(type) {
	case Version:
		return binary.LittleEndian.AppendUint32(nil, FormatVersion)
	case ObjectBlock:
		return ASCIIZ(r.Name)
	case MaterialName:
		return ASCIIZ(r.Name)
	case VertexList:
		out := make([]byte, 0, 2+12*len(r.Vertices))
		out = binary.LittleEndian.AppendUint16(out, uint16(len(r.Vertices)))
		for _, v := range r.Vertices {
			out = appendFloat32s(out, v[0], v[1], v[2])
		}
		return out
	case FaceList:
		out := make([]byte, 0, 2+8*len(r.Faces))
		out = binary.LittleEndian.AppendUint16(out, uint16(len(r.Faces)))
		for _, f := range r.Faces {
			out = binary.LittleEndian.AppendUint16(out, f[0])
			out = binary.LittleEndian.AppendUint16(out, f[1])
			out = binary.LittleEndian.AppendUint16(out, f[2])
			out = binary.LittleEndian.AppendUint16(out, 0) // face flags
		}
		return out
	case FaceMaterialList:
		out := ASCIIZ(r.Material)
		out = binary.LittleEndian.AppendUint16(out, uint16(len(r.Faces)))
		for _, f := range r.Faces {
			out = binary.LittleEndian.AppendUint16(out, f)
		}
		return out
	case RGBFloat:
		return appendFloat32s(nil, r.Color[0], r.Color[1], r.Color[2])
	}

	// containers
	return []byte{}
}

// Returns len(encodePayload(record)) without encoding list payloads
func payloadLength(record Record) int {
	switch r := record.(type) {
	case VertexList:
		return 2 + 12*len(r.Vertices)
	case FaceList:
		return 2 + 8*len(r.Faces)
	case FaceMaterialList:
		return len(ASCIIZ(r.Material)) + 2 + 2*len(r.Faces)
	}
	return len(encodePayload(record))
}

// Guards records built without their constructor against count overflow at write time
func validate(record Record) error {
	count := 0
	switch r := record.(type) {
	case VertexList:
		count = len(r.Vertices)
	case FaceList:
		count = len(r.Faces)
	case FaceMaterialList:
		count = len(r.Faces)
	}
	if count > MaxListEntries {
		return fmt.Errorf("%w: %s record holds %d entries", ErrCapacityExceeded, record.Tag(), count)
	}
	return nil
}

func appendFloat32s(out []byte, values ...float32) []byte {
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}
