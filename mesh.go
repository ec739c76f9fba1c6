package softrender

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

//go:embed assets/cube.obj
var defaultMeshSource []byte

var (
	ErrMalformedNumber = errors.New("malformed number")
	ErrIndexOutOfRange = errors.New("vertex index out of range")
	ErrTooFewFields    = errors.New("too few fields")
)

// ParseError reports where a mesh source stopped making sense.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mesh line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var meshColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Mesh is an ordered list of independent triangles. It is never changed
// after loading.
type Mesh struct {
	tris []Triangle
}

func NewMesh(tris []Triangle) *Mesh {
	cp := make([]Triangle, len(tris))
	copy(cp, tris)
	return &Mesh{tris: cp}
}

func (m *Mesh) Len() int {
	return len(m.tris)
}

func (m *Mesh) At(i int) Triangle {
	return m.tris[i]
}

// Each calls fn for every triangle in load order.
func (m *Mesh) Each(fn func(i int, t Triangle)) {
	for i, t := range m.tris {
		fn(i, t)
	}
}

// Bounds returns the smallest and largest corner of the box around every
// vertex. An empty mesh gives two zero vectors.
func (m *Mesh) Bounds() (Vec3, Vec3) {
	if len(m.tris) == 0 {
		return Vec3{}, Vec3{}
	}
	lo, hi := m.tris[0].P[0], m.tris[0].P[0]
	for _, t := range m.tris {
		for _, p := range t.P {
			lo = Vec3{min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z)}
			hi = Vec3{max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z)}
		}
	}
	return lo, hi
}

func LoadMeshFromFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file %s: %w", fileName, err)
	}
	defer file.Close()

	mesh, err := ParseMesh(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing mesh file %s: %w", fileName, err)
	}
	return mesh, nil
}

// DefaultMesh returns the built-in unit cube.
func DefaultMesh() *Mesh {
	mesh, err := ParseMesh(bytes.NewReader(defaultMeshSource))
	if err != nil {
		panic("softrender: embedded cube.obj is invalid: " + err.Error())
	}
	return mesh
}

// ParseMesh reads the "v x y z" / "f i j k" subset of OBJ. Faces index the
// vertices defined above them, counting from 1, and only the first three
// indices of a face are used. Index tokens may carry /vt/vn suffixes, which
// are ignored. Every other kind of line is skipped.
func ParseMesh(r io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(r)

	var vertices []Vec3
	var tris []Triangle
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		parts := strings.Fields(text)
		if len(parts) == 0 {
			continue
		}
		fail := func(err error) (*Mesh, error) {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return fail(ErrTooFewFields)
			}
			var xyz [3]float32
			for i := range xyz {
				f, err := strconv.ParseFloat(parts[i+1], 32)
				if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
					return fail(fmt.Errorf("%w: %q", ErrMalformedNumber, parts[i+1]))
				}
				xyz[i] = float32(f)
			}
			vertices = append(vertices, Vec3{xyz[0], xyz[1], xyz[2]})
		case "f":
			if len(parts) < 4 {
				return fail(ErrTooFewFields)
			}
			var pts [3]Vec3
			for i := range pts {
				token, _, _ := strings.Cut(parts[i+1], "/")
				idx, err := strconv.Atoi(token)
				if err != nil {
					return fail(fmt.Errorf("%w: %q", ErrMalformedNumber, parts[i+1]))
				}
				if idx < 1 || idx > len(vertices) {
					return fail(fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, idx, len(vertices)))
				}
				pts[i] = vertices[idx-1]
			}
			tris = append(tris, Triangle{P: pts, Col: meshColor})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading mesh source: %w", err)
	}
	return &Mesh{tris: tris}, nil
}
