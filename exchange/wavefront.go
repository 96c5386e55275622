// Package exchange implements file-format adapters on top of the mesh
// kernel. These are boundary interfaces: the kernel itself has no notion of
// disk formats.
package exchange

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ajcurley/trimesh/mesh"
)

const (
	prefixVertex = "v"
	prefixFace   = "f"
	prefixGroup  = "g"
)

var (
	ErrInvalidVertex = errors.New("exchange: invalid vertex")
	ErrInvalidFace   = errors.New("exchange: invalid face")
)

// OBJReader parses an OBJ (Wavefront) file into a flat vertex/face buffer
// suitable for mesh.Builder. Supports both plain-ASCII and gzip-compressed
// ASCII files.
type OBJReader struct {
	reader io.Reader

	positions [][3]float64
	faces     [][]int
	groups    []string
	faceGroup []int
}

// NewOBJReader constructs a reader around an arbitrary io.Reader.
func NewOBJReader(reader io.Reader) *OBJReader {
	return &OBJReader{reader: reader}
}

// ReadOBJFromPath opens path (transparently gunzipping a ".gz" suffix),
// parses it, and returns the populated reader.
func ReadOBJFromPath(path string) (*OBJReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.ToLower(filepath.Ext(path)) == ".gz" {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		reader = gzipReader
	}

	r := NewOBJReader(reader)
	if err := r.Read(); err != nil {
		return nil, err
	}

	return r, nil
}

// Read parses the underlying reader line by line.
func (r *OBJReader) Read() error {
	line := 1
	buf := bufio.NewReader(r.reader)

	for {
		data, err := buf.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		data = bytes.TrimSpace(data)
		prefix := parsePrefix(data)

		switch string(prefix) {
		case prefixVertex:
			err = r.parseVertex(data)
		case prefixFace:
			err = r.parseFace(data)
		case prefixGroup:
			r.parseGroup(data)
		}

		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		line++
	}

	return nil
}

func parsePrefix(data []byte) []byte {
	for i := 0; i < len(data); i++ {
		r, _ := utf8.DecodeRune(data[i : i+1])
		if unicode.IsSpace(r) {
			return data[:i]
		}
	}
	return data
}

func (r *OBJReader) parseVertex(data []byte) error {
	fields := bytes.Fields(data[len(prefixVertex):])
	if len(fields) != 3 {
		return ErrInvalidVertex
	}

	var p [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(string(fields[i]), 64)
		if err != nil {
			return ErrInvalidVertex
		}
		p[i] = v
	}

	r.positions = append(r.positions, p)
	return nil
}

func (r *OBJReader) parseFace(data []byte) error {
	fields := bytes.Fields(data[len(prefixFace):])
	if len(fields) < 3 {
		return ErrInvalidFace
	}

	face := make([]int, len(fields))
	for i, field := range fields {
		if idx := bytes.IndexByte(field, '/'); idx != -1 {
			field = field[:idx]
		}

		v, err := strconv.Atoi(string(field))
		if err != nil || v <= 0 {
			return ErrInvalidFace
		}

		face[i] = v - 1
	}

	r.faces = append(r.faces, face)
	r.faceGroup = append(r.faceGroup, len(r.groups)-1)

	return nil
}

func (r *OBJReader) parseGroup(data []byte) {
	r.groups = append(r.groups, string(bytes.TrimSpace(data[len(prefixGroup):])))
}

// NumVertices returns the number of parsed vertex positions.
func (r *OBJReader) NumVertices() int { return len(r.positions) }

// NumFaces returns the number of parsed faces.
func (r *OBJReader) NumFaces() int { return len(r.faces) }

// Vertex returns the i-th parsed vertex position.
func (r *OBJReader) Vertex(i int) [3]float64 { return r.positions[i] }

// Face returns the i-th parsed face as zero-based vertex indices. Faces
// with more than three vertices are returned as parsed; callers that need
// triangles should fan-triangulate or re-export via a mesh.Builder, which
// only accepts triangle indices.
func (r *OBJReader) Face(i int) []int { return r.faces[i] }

// FaceGroup returns the index into Group of the i-th face's last-seen "g"
// line, or -1 if no group line preceded it.
func (r *OBJReader) FaceGroup(i int) int { return r.faceGroup[i] }

// Group returns the name on the i-th "g" line encountered. Repeated names
// are not merged: each "g" line gets its own entry.
func (r *OBJReader) Group(i int) string { return r.groups[i] }

// NumGroups returns the number of "g" lines encountered.
func (r *OBJReader) NumGroups() int { return len(r.groups) }

// Build constructs a mesh.TriMeshSource from the parsed vertices and faces,
// fan-triangulating any face with more than three vertices about its first
// vertex. Ready to pass to mesh.NewBuilder().Build.
func (r *OBJReader) Build() (mesh.TriMeshSource, error) {
	source := mesh.TriMeshSource{Positions: r.positions}

	var indices []uint32
	for _, face := range r.faces {
		if len(face) < 3 {
			return mesh.TriMeshSource{}, ErrInvalidFace
		}
		for i := 1; i+1 < len(face); i++ {
			indices = append(indices,
				uint32(face[0]), uint32(face[i]), uint32(face[i+1]))
		}
	}

	source.Indices = indices
	return source, nil
}

// WriteOBJ writes m to w in plain ASCII OBJ format using m's indexed export.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	buf := bufio.NewWriter(w)
	export := m.ExportIndexed()

	for _, p := range export.Positions {
		if _, err := fmt.Fprintf(buf, "v %g %g %g\n", p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	for i := 0; i+2 < len(export.Indices); i += 3 {
		a, b, c := export.Indices[i]+1, export.Indices[i+1]+1, export.Indices[i+2]+1
		if _, err := fmt.Fprintf(buf, "f %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}

	return buf.Flush()
}

// WriteOBJToPath writes m to a new file at path in plain ASCII OBJ format.
func WriteOBJToPath(path string, m *mesh.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteOBJ(file, m)
}
