package fixpoly

// Orderer decides the order faces are handed to the rasterizer. Both
// strategies return a permutation of face ids (the underlying face
// storage is never relocated) arranged so that iterating the result
// draws farthest faces first and nearest faces last.
//
// Order must run after the frame's Transform pass, which it depends on
// for observer-space depth. The returned slice is owned by the Orderer
// and valid until the next call.
type Orderer interface {
	Order(m *Model, obs Observer) ([]int, error)
}
