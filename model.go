package fixpoly

import "fmt"

// Capacity defaults. A Model's buffers are sized once at creation and
// never grow; sources exceeding the caps fail to load with
// ErrCapacity.
const (
	DefaultMaxVertices = 6000
	DefaultMaxFaces    = 6000

	// MaxFaceVertices bounds the vertex count of a single face.
	MaxFaceVertices = 10
)

// invisible is the screen-coordinate sentinel for a vertex behind the
// observer plane.
const invisible = -1

// Model holds a polygonal model through every stage of the pipeline.
//
// Vertices are stored as parallel arrays (structure-of-arrays): the
// original model-space position, the observer-space position
// overwritten every frame by a Transformer, and the projected screen
// position. Faces live in a single packed index arena addressed by
// per-face (offset, count) pairs; this layout is what the binary
// format serialises, so it is preserved rather than replaced with
// per-face slices.
//
// All buffers are allocated once in NewModel and reused across frames.
// A Model is not safe for concurrent use.
type Model struct {
	// Model-space coordinates, populated at load time.
	x, y, z []Fixed
	// Observer-space coordinates, overwritten each frame.
	xo, yo, zo []Fixed
	// Projected screen coordinates; invisible (-1, -1) when the vertex
	// is behind the observer.
	x2d, y2d []int

	vertexCount int

	// Packed face arena: indices holds every face's vertex indices
	// back to back, faceStart/faceLen address each face's slice.
	indices   []uint16
	faceStart []int32
	faceLen   []int32
	indexTop  int // next free slot in indices

	// Per-face depth key and visibility, recomputed each frame.
	depth       []Fixed
	displayable []bool

	faceCount int

	tree *Tree
}

// NewModel creates an empty model with the given fixed capacities.
// Non-positive capacities fall back to the defaults.
func NewModel(maxVertices, maxFaces int) *Model {
	if maxVertices <= 0 {
		maxVertices = DefaultMaxVertices
	}
	if maxFaces <= 0 {
		maxFaces = DefaultMaxFaces
	}
	return &Model{
		x:   make([]Fixed, maxVertices),
		y:   make([]Fixed, maxVertices),
		z:   make([]Fixed, maxVertices),
		xo:  make([]Fixed, maxVertices),
		yo:  make([]Fixed, maxVertices),
		zo:  make([]Fixed, maxVertices),
		x2d: make([]int, maxVertices),
		y2d: make([]int, maxVertices),

		indices:   make([]uint16, maxFaces*MaxFaceVertices),
		faceStart: make([]int32, maxFaces),
		faceLen:   make([]int32, maxFaces),

		depth:       make([]Fixed, maxFaces),
		displayable: make([]bool, maxFaces),
	}
}

// MaxVertices returns the vertex capacity fixed at creation.
func (m *Model) MaxVertices() int { return len(m.x) }

// MaxFaces returns the face capacity fixed at creation.
func (m *Model) MaxFaces() int { return len(m.faceStart) }

// VertexCount returns the number of loaded vertices.
func (m *Model) VertexCount() int { return m.vertexCount }

// FaceCount returns the number of loaded faces.
func (m *Model) FaceCount() int { return m.faceCount }

// Tree returns the model's BSP tree, or nil when the model was loaded
// from the text format.
func (m *Model) Tree() *Tree { return m.tree }

// Position returns the model-space position of vertex i.
func (m *Model) Position(i int) Point3 {
	return Point3{X: m.x[i], Y: m.y[i], Z: m.z[i]}
}

// ObserverPosition returns the observer-space position of vertex i as
// of the last Transform pass.
func (m *Model) ObserverPosition(i int) Point3 {
	return Point3{X: m.xo[i], Y: m.yo[i], Z: m.zo[i]}
}

// Screen returns the projected screen position of vertex i and whether
// the vertex is visible (in front of the observer plane). Invisible
// vertices carry the (-1, -1) sentinel.
func (m *Model) Screen(i int) (x, y int, visible bool) {
	return m.x2d[i], m.y2d[i], m.zo[i] > 0
}

// FaceVertices returns the vertex indices of face f as a view into the
// shared arena. The returned slice must not be modified or retained.
func (m *Model) FaceVertices(f int) []uint16 {
	start := m.faceStart[f]
	return m.indices[start : start+m.faceLen[f]]
}

// FaceDepth returns the depth key of face f as of the last ordering
// pass.
func (m *Model) FaceDepth(f int) Fixed { return m.depth[f] }

// Displayable reports whether face f survived visibility culling in
// the last ordering pass.
func (m *Model) Displayable(f int) bool { return m.displayable[f] }

// AddVertex appends a model-space vertex. It fails with ErrCapacity
// once the fixed vertex buffer is full.
func (m *Model) AddVertex(p Point3) error {
	if m.vertexCount >= len(m.x) {
		return fmt.Errorf("%w: more than %d vertices", ErrCapacity, len(m.x))
	}
	i := m.vertexCount
	m.x[i], m.y[i], m.z[i] = p.X, p.Y, p.Z
	m.vertexCount++
	return nil
}

// AddFace appends a face referencing previously added vertices by
// 0-based index. Every index must resolve within the current vertex
// count; any out-of-range reference fails the whole call with
// ErrVertexIndex. Faces with fewer than three vertices are accepted
// (the binary format can contain them) but are skipped at render and
// classification time.
func (m *Model) AddFace(verts []uint16) error {
	if m.faceCount >= len(m.faceStart) {
		return fmt.Errorf("%w: more than %d faces", ErrCapacity, len(m.faceStart))
	}
	if len(verts) > MaxFaceVertices {
		return fmt.Errorf("%w: face with %d vertices (max %d)", ErrCapacity, len(verts), MaxFaceVertices)
	}
	for _, v := range verts {
		if int(v) >= m.vertexCount {
			return fmt.Errorf("%w: face references vertex %d of %d", ErrVertexIndex, v, m.vertexCount)
		}
	}
	f := m.faceCount
	m.faceStart[f] = int32(m.indexTop)
	m.faceLen[f] = int32(len(verts))
	copy(m.indices[m.indexTop:], verts)
	m.indexTop += len(verts)
	m.faceCount++
	return nil
}

// updateVisibility recomputes each face's depth key and displayable
// flag from the observer-space coordinates of the last transform pass.
// The depth key is the farthest contributing vertex (maximum zo); a
// face is non-displayable when any contributing vertex lies on or
// behind the observer plane (zo <= 0).
func (m *Model) updateVisibility() {
	for f := 0; f < m.faceCount; f++ {
		far := Fixed(-1 << 30)
		display := m.faceLen[f] > 0
		start := m.faceStart[f]
		for _, v := range m.indices[start : start+m.faceLen[f]] {
			zo := m.zo[v]
			if zo <= 0 {
				display = false
			}
			if zo > far {
				far = zo
			}
		}
		m.depth[f] = far
		m.displayable[f] = display
	}
}

// Stats summarises a loaded model for a surrounding reporting layer.
type Stats struct {
	Vertices  int
	Faces     int
	Triangles int
	Quads     int
	Other     int
	TreeNodes int
}

// Stats returns load-time diagnostic counts.
func (m *Model) Stats() Stats {
	s := Stats{Vertices: m.vertexCount, Faces: m.faceCount}
	for f := 0; f < m.faceCount; f++ {
		switch m.faceLen[f] {
		case 3:
			s.Triangles++
		case 4:
			s.Quads++
		default:
			s.Other++
		}
	}
	if m.tree != nil {
		s.TreeNodes = len(m.tree.Nodes)
	}
	return s
}
