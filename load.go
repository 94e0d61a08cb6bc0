package hemesh

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported model format")

// LoadFile reads a .dxf, .obj or .stl model into flat geometry, choosing
// the reader from the file extension.
func LoadFile[T Float](fileName string) (*Geometry[T], error) {
	var read func(*os.File) (*Geometry[T], error)
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".dxf":
		read = func(f *os.File) (*Geometry[T], error) { return ReadDXF[T](f, false) }
	case ".obj":
		read = func(f *os.File) (*Geometry[T], error) { return ReadOBJ[T](f) }
	case ".stl":
		read = func(f *os.File) (*Geometry[T], error) { return ReadSTL[T](f) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open model file %s: %w", fileName, err)
	}
	defer file.Close()

	g, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing model file %s: %w", fileName, err)
	}
	return g, nil
}
