package fixpoly

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOption configures a model load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	maxVertices int
	maxFaces    int
}

func defaultLoadOptions() loadOptions {
	return loadOptions{
		maxVertices: DefaultMaxVertices,
		maxFaces:    DefaultMaxFaces,
	}
}

// WithMaxVertices overrides the vertex capacity of the loaded model.
func WithMaxVertices(n int) LoadOption {
	return func(o *loadOptions) { o.maxVertices = n }
}

// WithMaxFaces overrides the face capacity of the loaded model.
func WithMaxFaces(n int) LoadOption {
	return func(o *loadOptions) { o.maxFaces = n }
}

// ParseOBJ reads the text model format: one declaration per line,
// "v x y z" with three floating-point coordinates, or "f i j k ..."
// with 1-based vertex indices. Index tokens may carry auxiliary
// "/texture/normal" suffixes, which are ignored, as are all other
// line types.
//
// The loader fails closed: a face referencing a vertex that has not
// been declared aborts the whole load with ErrVertexIndex, and
// exceeding the model's fixed capacities aborts it with ErrCapacity.
// Text-format models carry no BSP tree and must be ordered by depth
// sort.
func ParseOBJ(r io.Reader, opts ...LoadOption) (*Model, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := NewModel(o.maxVertices, o.maxFaces)

	var verts [MaxFaceVertices]uint16
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			fields := strings.Fields(line[2:])
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: line %d: vertex needs three coordinates", ErrMalformedModel, lineNo)
			}
			var p Point3
			for i, dst := range []*Fixed{&p.X, &p.Y, &p.Z} {
				f, err := strconv.ParseFloat(fields[i], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedModel, lineNo, err)
				}
				*dst = FromFloat(f)
			}
			if err := m.AddVertex(p); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

		case strings.HasPrefix(line, "f "):
			n := 0
			for _, field := range strings.Fields(line[2:]) {
				// Auxiliary texture/normal references after the first
				// slash are not part of this format's data model.
				if cut := strings.IndexByte(field, '/'); cut >= 0 {
					field = field[:cut]
				}
				idx, err := strconv.Atoi(field)
				if err != nil || idx < 1 {
					continue // ignorable auxiliary token
				}
				if idx > m.VertexCount() {
					return nil, fmt.Errorf("%w: line %d: face references vertex %d of %d",
						ErrVertexIndex, lineNo, idx, m.VertexCount())
				}
				if n >= MaxFaceVertices {
					return nil, fmt.Errorf("%w: line %d: face with more than %d vertices",
						ErrCapacity, lineNo, MaxFaceVertices)
				}
				verts[n] = uint16(idx - 1) // store 0-based
				n++
			}
			if n == 0 {
				continue // nothing usable on the line
			}
			if err := m.AddFace(verts[:n]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}

	s := m.Stats()
	Logger().Info("model loaded",
		"format", "text",
		"vertices", s.Vertices,
		"faces", s.Faces)
	return m, nil
}

// LoadOBJFile opens and parses a text-format model file.
func LoadOBJFile(path string, opts ...LoadOption) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return ParseOBJ(f, opts...)
}
