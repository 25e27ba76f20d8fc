package fixpoly

import (
	"errors"
	"strings"
	"testing"
)

const triangleOBJ = `# comment
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`

func TestParseOBJ_Triangle(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.VertexCount() != 3 || m.FaceCount() != 1 {
		t.Fatalf("got %d vertices, %d faces, want 3, 1", m.VertexCount(), m.FaceCount())
	}
	verts := m.FaceVertices(0)
	want := []uint16{0, 1, 2}
	for i, v := range verts {
		if v != want[i] {
			t.Errorf("face indices = %v, want %v", verts, want)
			break
		}
	}
	if m.Position(1) != Pt3(One, 0, 0) {
		t.Errorf("vertex 1 = %v, want unit x", m.Position(1))
	}
	if m.Tree() != nil {
		t.Error("text model carries a tree")
	}
}

func TestParseOBJ_SlashSuffixes(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1/1/1 2/2/2 3/3/3
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.FaceCount() != 1 || len(m.FaceVertices(0)) != 3 {
		t.Fatalf("face not parsed: %d faces", m.FaceCount())
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts []LoadOption
		want error
	}{
		{
			name: "undeclared vertex",
			src:  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 5\n",
			want: ErrVertexIndex,
		},
		{
			name: "forward reference",
			src:  "v 0 0 0\nf 1 2 3\nv 1 0 0\nv 0 1 0\n",
			want: ErrVertexIndex,
		},
		{
			name: "short vertex line",
			src:  "v 1.0 2.0\n",
			want: ErrMalformedModel,
		},
		{
			name: "bad coordinate",
			src:  "v 1.0 x 3.0\n",
			want: ErrMalformedModel,
		},
		{
			name: "vertex capacity",
			src:  "v 0 0 0\nv 1 0 0\nv 0 1 0\n",
			opts: []LoadOption{WithMaxVertices(2)},
			want: ErrCapacity,
		},
		{
			name: "face capacity",
			src:  "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nf 3 2 1\n",
			opts: []LoadOption{WithMaxFaces(1)},
			want: ErrCapacity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src), tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseOBJ error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseOBJ_IgnoresOtherLines(t *testing.T) {
	src := `mtllib scene.mtl
o cube
vn 0 0 1
vt 0.5 0.5
v 0 0 0
v 1 0 0
v 0 1 0
s off
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.VertexCount() != 3 || m.FaceCount() != 1 {
		t.Errorf("got %d vertices, %d faces, want 3, 1", m.VertexCount(), m.FaceCount())
	}
}

func TestModel_Stats(t *testing.T) {
	m := buildModel(t, []Point3{
		Pt3(0, 0, 0), Pt3(One, 0, 0), Pt3(0, One, 0), Pt3(One, One, 0),
	}, [][]uint16{
		{0, 1, 2},
		{0, 1, 2, 3},
	})
	s := m.Stats()
	if s.Vertices != 4 || s.Faces != 2 || s.Triangles != 1 || s.Quads != 1 || s.Other != 0 {
		t.Errorf("Stats() = %+v", s)
	}
}
