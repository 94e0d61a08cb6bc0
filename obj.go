package hemesh

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ReadOBJ reads the vertex positions and faces of a Wavefront OBJ file.
// Faces with more than three corners are split into a fan of triangles.
// Texture coordinates, normals, groups and materials are skipped.
func ReadOBJ[T Float](reader io.Reader) (*Geometry[T], error) {
	g := NewGeometry[T]()
	scanner := bufio.NewScanner(reader)
	skipped := make(map[string]int)

	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", line, len(fields)-1)
			}
			for _, field := range fields[1:4] {
				c, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: could not parse float value '%s': %w", line, field, err)
				}
				g.Positions = append(g.Positions, T(c))
			}

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", line, len(fields)-1)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, field := range fields[1:] {
				c, err := objCorner(field, g.NumVertices())
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners = append(corners, c)
			}
			g.AddFace(corners...)

		default:
			skipped[fields[0]]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from OBJ source: %w", err)
	}

	for keyword, n := range skipped {
		slog.Debug("skipped OBJ records", "keyword", keyword, "count", n)
	}
	return g, nil
}

// objCorner resolves the position part of a face corner such as "7",
// "7/2", "7//3" or "-1/2/3". OBJ numbers vertices from 1, and negative
// numbers count back from the latest vertex.
func objCorner(field string, numVertices int) (uint32, error) {
	position, _, _ := strings.Cut(field, "/")
	n, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("could not parse face corner '%s': %w", field, err)
	}

	var index int
	switch {
	case n > 0:
		index = n - 1
	case n < 0:
		index = numVertices + n
	default:
		return 0, fmt.Errorf("face corner '%s': vertex numbers start at 1", field)
	}
	if index < 0 || index >= numVertices {
		return 0, fmt.Errorf("face corner '%s': no vertex %d, only %d defined", field, n, numVertices)
	}
	return uint32(index), nil
}
