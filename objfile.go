package kitty

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJFile reads a Wavefront-style mesh description from path into m.
// See LoadOBJ for the accepted subset.
func LoadOBJFile(path string, m *Mesh) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return errCode(CodeFileNotFound, err, "load mesh %q", path)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadOBJ(f, m)
}

// LoadOBJ reads a line-oriented mesh description into m. Three record kinds
// are recognized by their leading token:
//
//	v <x> <y> <z>            vertex
//	vt <u> <v>               texture coordinate, stored with v' = 1 - v
//	f a/ua/na b/ub/nb c/uc/nc   triangular face; indices are 1-based in the
//	                         file, normal indices are parsed and discarded
//
// Lines with any other leading token are skipped. Each face is assigned a
// uniformly random flat color.
//
// Unlike the reference engine, which left unscannable fields unspecified,
// malformed v/vt/f records fail with a *ParseError naming the line.
func LoadOBJ(r io.Reader, m *Mesh) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVertexRecord(fields)
			if err != nil {
				return &ParseError{Line: line, Text: text, Err: err}
			}
			m.AddVertex(v)
		case "vt":
			uv, err := parseUVRecord(fields)
			if err != nil {
				return &ParseError{Line: line, Text: text, Err: err}
			}
			m.AddUV(uv)
		case "f":
			f, err := parseFaceRecord(fields)
			if err != nil {
				return &ParseError{Line: line, Text: text, Err: err}
			}
			if err := m.AddFace(f, RandomColor()); err != nil {
				return &ParseError{Line: line, Text: text, Err: err}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return errCode(CodeFileNotFound, err, "read mesh data")
	}
	return nil
}

func parseVertexRecord(fields []string) (Vertex3D, error) {
	if len(fields) != 4 {
		return Vertex3D{}, fmt.Errorf("want 3 coordinates, have %d", len(fields)-1)
	}
	var c [3]float64
	for i, s := range fields[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Vertex3D{}, err
		}
		c[i] = v
	}
	return Vertex3D{X: c[0], Y: c[1], Z: c[2]}, nil
}

func parseUVRecord(fields []string) (UV, error) {
	if len(fields) != 3 {
		return UV{}, fmt.Errorf("want 2 coordinates, have %d", len(fields)-1)
	}
	u, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return UV{}, err
	}
	v, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return UV{}, err
	}
	// Flip V so (0,0) is the top-left of the image.
	return UV{U: u, V: 1 - v}, nil
}

func parseFaceRecord(fields []string) (Face, error) {
	if len(fields) != 4 {
		return Face{}, fmt.Errorf("want 3 vertex references, have %d", len(fields)-1)
	}
	var vi, uvi [3]int
	for i, ref := range fields[1:] {
		parts := strings.Split(ref, "/")
		if len(parts) != 3 {
			return Face{}, fmt.Errorf("vertex reference %q is not of the form v/vt/vn", ref)
		}
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return Face{}, err
		}
		uv, err := strconv.Atoi(parts[1])
		if err != nil {
			return Face{}, err
		}
		// The normal index is validated but unused.
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return Face{}, err
		}
		// File indices are 1-based.
		vi[i] = v - 1
		uvi[i] = uv - 1
	}
	return Face{
		A: vi[0], B: vi[1], C: vi[2],
		UVA: uvi[0], UVB: uvi[1], UVC: uvi[2],
	}, nil
}
