package fixpoly

import (
	"math/rand"
	"testing"
)

// slabModel builds one triangle per entry of xs, each at the given
// model-space x. With a zero-angle observer the triangle's depth is
// distance minus (roughly) x, so smaller x means farther away.
func slabModel(t testing.TB, xs []int) *Model {
	t.Helper()
	m := NewModel(0, 0)
	for _, x := range xs {
		base := uint16(m.VertexCount())
		for _, p := range []Point3{
			Pt3(FromInt(x), 0, 0),
			Pt3(FromInt(x), One, 0),
			Pt3(FromInt(x), 0, One),
		} {
			if err := m.AddVertex(p); err != nil {
				t.Fatal(err)
			}
		}
		if err := m.AddFace([]uint16{base, base + 1, base + 2}); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func TestDepthSorter_FarthestFirst(t *testing.T) {
	m := slabModel(t, []int{30, 10, 50, 20, 40})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)

	order, err := NewDepthSorter().Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	// Face order by descending depth: x=10 is farthest, x=50 nearest.
	want := []int{1, 3, 0, 4, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestDepthSorter_DescendingKeys(t *testing.T) {
	// Enough faces to leave the insertion-sort range, in random
	// positions.
	rng := rand.New(rand.NewSource(42))
	xs := make([]int, 100)
	for i := range xs {
		xs[i] = rng.Intn(500)
	}
	m := slabModel(t, xs)
	obs := Observer{Distance: FromInt(1000)}
	NewTransformer().Transform(m, obs)

	sorter := NewDepthSorter()
	order, err := sorter.Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if len(order) != len(xs) {
		t.Fatalf("order has %d entries, want %d", len(order), len(xs))
	}

	seen := make([]bool, len(xs))
	for i, f := range order {
		if seen[f] {
			t.Fatalf("face %d ordered twice", f)
		}
		seen[f] = true
		if i > 0 && m.FaceDepth(order[i-1]) < m.FaceDepth(f) {
			t.Fatalf("depth increases at position %d: %d then %d",
				i, m.FaceDepth(order[i-1]), m.FaceDepth(f))
		}
	}
}

func TestDepthSorter_ShuffleInvariant(t *testing.T) {
	// The same faces loaded in a different order must come out in the
	// same depth sequence (keys here are all distinct).
	xs := []int{5, 95, 35, 65, 25, 85, 15, 75, 45, 55}
	shuffled := []int{55, 15, 95, 45, 5, 75, 35, 85, 25, 65}

	depthSeq := func(xs []int) []Fixed {
		m := slabModel(t, xs)
		obs := Observer{Distance: FromInt(200)}
		NewTransformer().Transform(m, obs)
		order, err := NewDepthSorter().Order(m, obs)
		if err != nil {
			t.Fatalf("Order: %v", err)
		}
		seq := make([]Fixed, len(order))
		for i, f := range order {
			seq[i] = m.FaceDepth(f)
		}
		return seq
	}

	a, b := depthSeq(xs), depthSeq(shuffled)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("depth sequences differ at %d: %v vs %v", i, a, b)
		}
	}
}

func TestDepthSorter_CullsBehindObserver(t *testing.T) {
	// One face straddles the observer plane; it keeps its slot in the
	// order but is flagged non-displayable.
	m := slabModel(t, []int{10, 300})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)

	order, err := NewDepthSorter().Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("order = %v", order)
	}
	if !m.Displayable(0) {
		t.Error("front face culled")
	}
	if m.Displayable(1) {
		t.Error("face behind observer still displayable")
	}
}

func TestUpdateVisibility_PartialFace(t *testing.T) {
	// A face is non-displayable as soon as one vertex is at or behind
	// the observer plane, even if the rest project fine.
	m := buildModel(t, []Point3{
		Pt3(FromInt(10), 0, 0),
		Pt3(FromInt(20), One, 0),
		Pt3(FromInt(150), 0, One),
	}, [][]uint16{{0, 1, 2}})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)
	m.updateVisibility()

	if m.Displayable(0) {
		t.Error("face with a vertex behind the observer still displayable")
	}
	// Depth key still reflects the farthest vertex in front.
	if m.FaceDepth(0) < FromInt(80) {
		t.Errorf("depth key = %g, want about 90", m.FaceDepth(0).Float())
	}
}

func BenchmarkDepthSort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	xs := make([]int, 2000)
	for i := range xs {
		xs[i] = rng.Intn(900)
	}
	m := slabModel(b, xs)
	obs := Observer{Distance: FromInt(1000)}
	NewTransformer().Transform(m, obs)
	sorter := NewDepthSorter()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sorter.Order(m, obs); err != nil {
			b.Fatal(err)
		}
	}
}
