package fixpoly

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Node is one splitting plane of a BSP tree. The plane is defined by
// one of the model's own faces; OnPlaneStart/OnPlaneCount address the
// run of face ids lying exactly on that plane inside the tree's shared
// OnPlane buffer. Child references are indices into Tree.Nodes, -1
// meaning no child. Nodes never change after load.
type Node struct {
	PlaneFace    int // face id defining the splitting plane
	OnPlaneStart int
	OnPlaneCount int
	Front        int // front child node id, -1 if absent
	Back         int // back child node id, -1 if absent
}

// Tree is a binary space partition over a model's faces: a flat node
// array plus one shared face-id buffer, exactly the arena-plus-offsets
// layout of the binary format. The tree is read-only at render time.
type Tree struct {
	Nodes   []Node
	OnPlane []uint16
}

// Binary layout constants. The on-disk format is little-endian:
// a three-field header, raw vertex/face/node sections, then a
// trailing face-id block whose size is derived from the total length.
const (
	binHeaderSize = 6  // uint16 vertexCount, faceCount, nodeCount
	binVertexSize = 12 // 3 x float32
	binNodeSize   = 10 // 3 x uint16 + 2 x int16

	noChild = -1
)

// DecodeModel parses the binary model format and returns a Model with
// its precomputed BSP tree. The trailing on-plane block is not length
// prefixed; its size is computed from len(data) and the preceding
// sections, which is why the decoder takes the whole file rather than
// a stream.
func DecodeModel(data []byte, opts ...LoadOption) (*Model, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(data) < binHeaderSize {
		return nil, fmt.Errorf("%w: truncated header", ErrMalformedModel)
	}
	nv := int(binary.LittleEndian.Uint16(data[0:]))
	nf := int(binary.LittleEndian.Uint16(data[2:]))
	nn := int(binary.LittleEndian.Uint16(data[4:]))
	if nv > o.maxVertices {
		return nil, fmt.Errorf("%w: %d vertices (max %d)", ErrCapacity, nv, o.maxVertices)
	}
	if nf > o.maxFaces {
		return nil, fmt.Errorf("%w: %d faces (max %d)", ErrCapacity, nf, o.maxFaces)
	}

	m := NewModel(o.maxVertices, o.maxFaces)
	pos := binHeaderSize

	if len(data) < pos+nv*binVertexSize {
		return nil, fmt.Errorf("%w: truncated vertex section", ErrMalformedModel)
	}
	for i := 0; i < nv; i++ {
		x := math.Float32frombits(binary.LittleEndian.Uint32(data[pos:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(data[pos+4:]))
		z := math.Float32frombits(binary.LittleEndian.Uint32(data[pos+8:]))
		pos += binVertexSize
		if err := m.AddVertex(Pt3(FromFloat(float64(x)), FromFloat(float64(y)), FromFloat(float64(z)))); err != nil {
			return nil, err
		}
	}

	var verts [MaxFaceVertices]uint16
	for i := 0; i < nf; i++ {
		if len(data) < pos+1 {
			return nil, fmt.Errorf("%w: truncated face section", ErrMalformedModel)
		}
		count := int(data[pos])
		pos++
		if count > MaxFaceVertices {
			return nil, fmt.Errorf("%w: face %d with %d vertices (max %d)", ErrCapacity, i, count, MaxFaceVertices)
		}
		if len(data) < pos+2*count {
			return nil, fmt.Errorf("%w: truncated face section", ErrMalformedModel)
		}
		for j := 0; j < count; j++ {
			verts[j] = binary.LittleEndian.Uint16(data[pos:])
			pos += 2
		}
		if err := m.AddFace(verts[:count]); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
	}

	if len(data) < pos+nn*binNodeSize {
		return nil, fmt.Errorf("%w: truncated node section", ErrMalformedModel)
	}
	tree := &Tree{Nodes: make([]Node, nn)}
	for i := 0; i < nn; i++ {
		n := Node{
			PlaneFace:    int(binary.LittleEndian.Uint16(data[pos:])),
			OnPlaneCount: int(binary.LittleEndian.Uint16(data[pos+2:])),
			OnPlaneStart: int(binary.LittleEndian.Uint16(data[pos+4:])),
			Front:        int(int16(binary.LittleEndian.Uint16(data[pos+6:]))),
			Back:         int(int16(binary.LittleEndian.Uint16(data[pos+8:]))),
		}
		pos += binNodeSize
		if n.PlaneFace == 0xFFFF {
			// The exporter writes 0xFFFF when a plane face could not
			// be resolved; classification treats it as degenerate.
			n.PlaneFace = noChild
		}
		if n.Front < noChild || n.Front >= nn {
			return nil, fmt.Errorf("%w: node %d front child %d of %d nodes", ErrMalformedModel, i, n.Front, nn)
		}
		if n.Back < noChild || n.Back >= nn {
			return nil, fmt.Errorf("%w: node %d back child %d of %d nodes", ErrMalformedModel, i, n.Back, nn)
		}
		tree.Nodes[i] = n
	}

	// Whatever remains is the shared on-plane face-id block.
	rest := data[pos:]
	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("%w: odd trailing block size %d", ErrMalformedModel, len(rest))
	}
	tree.OnPlane = make([]uint16, len(rest)/2)
	for i := range tree.OnPlane {
		id := binary.LittleEndian.Uint16(rest[2*i:])
		if int(id) >= nf {
			return nil, fmt.Errorf("%w: on-plane block references face %d of %d", ErrVertexIndex, id, nf)
		}
		tree.OnPlane[i] = id
	}
	for i, n := range tree.Nodes {
		if n.OnPlaneStart+n.OnPlaneCount > len(tree.OnPlane) {
			return nil, fmt.Errorf("%w: node %d on-plane range [%d,%d) of %d",
				ErrMalformedModel, i, n.OnPlaneStart, n.OnPlaneStart+n.OnPlaneCount, len(tree.OnPlane))
		}
	}

	if nn > 0 {
		m.tree = tree
	}

	s := m.Stats()
	Logger().Info("model loaded",
		"format", "binary",
		"vertices", s.Vertices,
		"faces", s.Faces,
		"nodes", s.TreeNodes)
	return m, nil
}

// LoadBinaryFile reads and decodes a binary-format model file.
func LoadBinaryFile(path string, opts ...LoadOption) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeModel(data, opts...)
}

// EncodeModel serialises a model (and its BSP tree, if present) into
// the binary layout. The encoding is the format's bit-exact contract:
// decoding the result reproduces vertex coordinates within fixed-point
// resolution and an identical face and node topology.
func EncodeModel(m *Model) ([]byte, error) {
	if m.VertexCount() > 0xFFFF || m.FaceCount() > 0xFFFF {
		return nil, fmt.Errorf("%w: counts exceed 16-bit header fields", ErrCapacity)
	}
	var nodes []Node
	var onPlane []uint16
	if m.tree != nil {
		nodes = m.tree.Nodes
		onPlane = m.tree.OnPlane
	}
	if len(nodes) > 0xFFFF {
		return nil, fmt.Errorf("%w: node count exceeds 16-bit header field", ErrCapacity)
	}

	size := binHeaderSize + m.VertexCount()*binVertexSize + len(nodes)*binNodeSize + 2*len(onPlane)
	for f := 0; f < m.FaceCount(); f++ {
		size += 1 + 2*len(m.FaceVertices(f))
	}
	buf := make([]byte, 0, size)

	var u16 [2]byte
	put16 := func(v uint16) {
		binary.LittleEndian.PutUint16(u16[:], v)
		buf = append(buf, u16[0], u16[1])
	}

	put16(uint16(m.VertexCount()))
	put16(uint16(m.FaceCount()))
	put16(uint16(len(nodes)))

	var u32 [4]byte
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for _, c := range [3]Fixed{p.X, p.Y, p.Z} {
			binary.LittleEndian.PutUint32(u32[:], math.Float32bits(float32(c.Float())))
			buf = append(buf, u32[0], u32[1], u32[2], u32[3])
		}
	}

	for f := 0; f < m.FaceCount(); f++ {
		verts := m.FaceVertices(f)
		buf = append(buf, byte(len(verts)))
		for _, v := range verts {
			put16(v)
		}
	}

	for _, n := range nodes {
		plane := n.PlaneFace
		if plane == noChild {
			plane = 0xFFFF
		}
		put16(uint16(plane))
		put16(uint16(n.OnPlaneCount))
		put16(uint16(n.OnPlaneStart))
		put16(uint16(int16(n.Front)))
		put16(uint16(int16(n.Back)))
	}

	for _, id := range onPlane {
		put16(id)
	}
	return buf, nil
}
