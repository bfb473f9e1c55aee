package chunk

import (
	"encoding/binary"
	"io"
)

// Size in bytes of the tag + length header that prefixes every chunk
const HeaderSize = 6

// Represents a node of the chunk tree: a tagged record plus an ordered list of children.
// A node owns its children, the same node must never be attached twice.
type Node struct {
	record   Record
	children []*Node
}

// Builds a new childless node holding the given record
func New(record Record) *Node {
	return &Node{
		record:   record,
		children: make([]*Node, 0),
	}
}

func (n *Node) Tag() Tag {
	return n.record.Tag()
}

func (n *Node) Record() Record {
	return n.record
}

func (n *Node) Children() []*Node {
	return n.children
}

// Appends a child to the node and returns the child, so that nested containers can be built inline.
// No check is done on tag compatibility, callers are responsible for correct nesting.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return child
}

// Returns the payload bytes of the node's record, excluding header and children
func (n *Node) Payload() []byte {
	return encodePayload(n.record)
}

// Computes the encoded length of the node: header, payload and the encoded length of all the children.
// The value is recomputed recursively on every call so that changes to the subtree are always reflected.
func (n *Node) Length() uint32 {
	length := uint32(HeaderSize + payloadLength(n.record))
	for _, child := range n.children {
		length += child.Length()
	}
	return length
}

// Writes the node depth-first: tag, length, payload, then every child in insertion order.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	if err := validate(n.record); err != nil {
		return 0, err
	}

	header := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(header[0:2], uint16(n.Tag()))
	binary.LittleEndian.PutUint32(header[2:6], n.Length())

	var written int64
	c, err := w.Write(header)
	written += int64(c)
	if err != nil {
		return written, err
	}

	c, err = w.Write(n.Payload())
	written += int64(c)
	if err != nil {
		return written, err
	}

	for _, child := range n.children {
		cw, err := child.WriteTo(w)
		written += cw
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
