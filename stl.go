package hemesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	stlHeaderSize = 80 + 4
	stlFacetSize  = 4*3*4 + 2
)

// ReadSTL reads a binary or ASCII STL file. STL stores every facet with its
// own three corners, so corners with identical coordinates are welded into
// shared vertices. The stored facet normals are ignored.
func ReadSTL[T Float](reader io.Reader) (*Geometry[T], error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading from STL source: %w", err)
	}

	var g *Geometry[T]
	if isBinarySTL(data) {
		g, err = readBinarySTL[T](data)
	} else {
		g, err = readASCIISTL[T](data)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("read STL", "vertices", g.NumVertices(), "triangles", g.NumTriangles())
	return g, nil
}

// isBinarySTL checks the facet count against the size. ASCII files start
// with "solid", but so do the headers of some binary exporters, so those
// must match exactly; other files may carry trailing bytes.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize {
		return false
	}
	n := binary.LittleEndian.Uint32(data[80:84])
	size := uint64(stlHeaderSize) + uint64(n)*stlFacetSize
	if uint64(len(data)) == size {
		return true
	}
	return uint64(len(data)) > size && !bytes.HasPrefix(data, []byte("solid"))
}

func readBinarySTL[T Float](data []byte) (*Geometry[T], error) {
	g := NewGeometry[T]()
	n := int(binary.LittleEndian.Uint32(data[80:84]))

	for i := range n {
		facet := data[stlHeaderSize+i*stlFacetSize:]
		var corners [3]uint32
		for v := range corners {
			const start = 3 * 4 // Skip normal
			var c [3]T
			for axis := range c {
				c[axis] = T(math.Float32frombits(binary.LittleEndian.Uint32(facet[start+12*v+4*axis:])))
			}
			corners[v] = g.AddPoint(NewVector3(c[0], c[1], c[2]))
		}
		g.AddFace(corners[:]...)
	}
	return g, nil
}

func readASCIISTL[T Float](data []byte) (*Geometry[T], error) {
	g := NewGeometry[T]()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() || !strings.HasPrefix(strings.TrimSpace(scanner.Text()), "solid") {
		return nil, fmt.Errorf("not an STL file: missing 'solid' header")
	}

	corners := make([]uint32, 0, 3)
	for line := 2; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", line, len(fields)-1)
			}
			var c [3]T
			for axis, field := range fields[1:] {
				f, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: could not parse float value '%s': %w", line, field, err)
				}
				c[axis] = T(f)
			}
			corners = append(corners, g.AddPoint(NewVector3(c[0], c[1], c[2])))
		case "endloop":
			if len(corners) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d corners, want 3", line, len(corners))
			}
			g.AddFace(corners...)
			corners = corners[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from STL source: %w", err)
	}
	return g, nil
}
