package hemesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// dxfFace collects the corners of one 3DFACE entity. Group codes 10-13 are
// the x coordinates of corners 0-3, 20-23 the y and 30-33 the z.
type dxfFace struct {
	corners [4][3]float64
	seen    uint8
}

func (f *dxfFace) set(code int, value float64) {
	corner, axis := code%10, code/10-1
	if corner > 3 {
		return
	}
	f.corners[corner][axis] = value
	f.seen |= 1 << corner
}

// ReadDXF reads the 3DFACE entities of a DXF drawing as triangles. A face
// whose fourth corner repeats the third is a triangle, any other is split
// into two. Corners with identical coordinates are welded into one vertex.
// reverse flips the winding of every face.
func ReadDXF[T Float](reader io.Reader, reverse bool) (*Geometry[T], error) {
	g := NewGeometry[T]()
	scanner := bufio.NewScanner(reader)
	line := 0

	// readPair reads a group code line and its value line.
	readPair := func() (int, string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, "", err
			}
			return 0, "", io.EOF // Clean end of file
		}
		line++
		code, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return 0, "", fmt.Errorf("line %d: could not parse group code '%s': %w", line, scanner.Text(), err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, "", err
			}
			return 0, "", fmt.Errorf("line %d: unexpected end of file after group code %d", line, code)
		}
		line++
		return code, strings.TrimSpace(scanner.Text()), nil
	}

	var face *dxfFace
	faces := 0
	finishFace := func() {
		if face == nil {
			return
		}
		if face.seen&(1<<3) == 0 {
			face.corners[3] = face.corners[2]
		}
		var corners [4]uint32
		for i, c := range face.corners {
			corners[i] = g.AddPoint(NewVector3(T(c[0]), T(c[1]), T(c[2])))
		}
		if reverse {
			corners[0], corners[1], corners[2], corners[3] = corners[3], corners[2], corners[1], corners[0]
		}
		g.AddFace(corners[:]...)
		faces++
		face = nil
	}

	for {
		code, value, err := readPair()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading from DXF source: %w", err)
		}

		if code == 0 {
			finishFace()
			if value == "3DFACE" {
				face = &dxfFace{}
			}
			continue
		}
		if face == nil || code < 10 || code > 33 {
			continue
		}

		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: could not parse float value '%s': %w", line, value, err)
		}
		face.set(code, v)
	}
	finishFace()

	slog.Debug("read DXF", "faces", faces, "vertices", g.NumVertices(), "triangles", g.NumTriangles())
	return g, nil
}
