package fixpoly

// BSPOrderer orders faces by traversing the model's precomputed binary
// space partition tree. The traversal is exact: for a correctly built
// tree it yields back-to-front order for any viewpoint without a
// numeric sort, handling occlusion implicitly.
type BSPOrderer struct {
	order []int
}

// NewBSPOrderer creates a BSP-traversal orderer.
func NewBSPOrderer() *BSPOrderer { return &BSPOrderer{} }

// Order traverses the tree from the root, classifying the observer's
// world-space position against each node's splitting plane. When the
// observer is in front of a plane, the back subtree is emitted first,
// then the node's on-plane faces, then the front subtree; otherwise
// the order reverses. It fails with ErrNoTree on text-format models.
func (b *BSPOrderer) Order(m *Model, obs Observer) ([]int, error) {
	if m.tree == nil {
		return nil, ErrNoTree
	}
	m.updateVisibility()

	if cap(b.order) < m.faceCount {
		b.order = make([]int, 0, m.faceCount)
	}
	b.order = b.order[:0]

	eye := obs.Position()
	if len(m.tree.Nodes) > 0 {
		b.walk(m, eye, 0)
	}

	Logger().Debug("bsp traversal", "faces", len(b.order), "nodes", len(m.tree.Nodes))
	return b.order, nil
}

func (b *BSPOrderer) walk(m *Model, eye Point3, nodeID int) {
	if nodeID < 0 || nodeID >= len(m.tree.Nodes) {
		return
	}
	node := &m.tree.Nodes[nodeID]
	side := m.classifyAgainstFace(node.PlaneFace, eye)

	first, second := node.Back, node.Front
	if side <= 0 {
		first, second = node.Front, node.Back
	}

	if first != noChild {
		b.walk(m, eye, first)
	}
	for _, id := range m.tree.OnPlane[node.OnPlaneStart : node.OnPlaneStart+node.OnPlaneCount] {
		b.order = append(b.order, int(id))
	}
	if second != noChild {
		b.walk(m, eye, second)
	}
}

// classifyAgainstFace returns the signed volume of p relative to the
// plane spanned by face f's first three vertices: positive in front
// (normal side), negative behind, zero on the plane. A degenerate
// splitting face (missing, fewer than three vertices, or referencing
// out-of-range vertices) classifies as "on the plane" so traversal
// degrades to a fixed child order instead of failing.
func (m *Model) classifyAgainstFace(f int, p Point3) Fixed {
	if f < 0 || f >= m.faceCount {
		return 0
	}
	verts := m.FaceVertices(f)
	if len(verts) < 3 {
		Logger().Warn("degenerate splitting plane", "face", f, "vertices", len(verts))
		return 0
	}
	v0, v1, v2 := int(verts[0]), int(verts[1]), int(verts[2])
	if v0 >= m.vertexCount || v1 >= m.vertexCount || v2 >= m.vertexCount {
		return 0
	}

	a := m.Position(v0)
	normal := m.Position(v1).Sub(a).Cross(m.Position(v2).Sub(a))
	return normal.Dot(p.Sub(a))
}
