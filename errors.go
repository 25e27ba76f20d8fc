package fixpoly

import "errors"

// Load and resource errors. A failed load is fatal to that attempt:
// the Model is left unusable and the caller must start over with a new
// file. Geometry degeneracies (a splitting plane with fewer than three
// vertices, for example) are not errors; the ordering code degrades
// gracefully and never surfaces them.
var (
	// ErrMalformedModel reports a syntactically broken model source:
	// an unreadable header, a truncated section, or a record that does
	// not parse.
	ErrMalformedModel = errors.New("fixpoly: malformed model data")

	// ErrVertexIndex reports a face or BSP node referencing a vertex
	// or face outside the declared range. Loads fail closed on the
	// first such reference; nothing is repaired.
	ErrVertexIndex = errors.New("fixpoly: vertex index out of range")

	// ErrCapacity reports a model source exceeding the fixed maxima a
	// Model was created with. Capacities are enforced, never silently
	// truncated.
	ErrCapacity = errors.New("fixpoly: model capacity exceeded")

	// ErrNoTree reports a request for BSP-ordered rendering on a model
	// that has no precomputed tree (text-format models must use depth
	// sort).
	ErrNoTree = errors.New("fixpoly: model has no BSP tree")
)
