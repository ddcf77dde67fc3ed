package scene

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ecopia-map/dimexport/internal/data"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// Reads ASCII and binary STL files, each file holds a single mesh object. STL coordinates are Z up.
type StlLoader struct{}

func NewStlLoader() *StlLoader {
	return &StlLoader{}
}

func (l *StlLoader) Load(filePath string) ([]*data.SceneObject, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	obj, err := l.LoadFromBytes(content, getFilenameWithoutExtension(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return []*data.SceneObject{obj}, nil
}

// Parses STL content, the object is named after the solid or defaultName when the solid has no name
func (l *StlLoader) LoadFromBytes(content []byte, defaultName string) (*data.SceneObject, error) {
	var (
		name string
		box  *data.BoundingBox
		err  error
	)

	if isBinaryStl(content) {
		name, box, err = parseBinaryStl(content)
	} else if bytes.HasPrefix(bytes.TrimLeft(content, " \t\r\n"), []byte("solid")) {
		name, box, err = parseASCIIStl(content)
	} else {
		err = errors.New("not an STL file")
	}
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = defaultName
	}
	if box.IsEmpty() {
		return data.NewSceneObject(name, data.Empty, 0, 0, 0), nil
	}

	dims := box.Dimensions()
	return data.NewSceneObject(name, data.Mesh, dims.X, dims.Y, dims.Z), nil
}

// Binary files may also start with "solid", the size announced in the header is what tells them apart
func isBinaryStl(content []byte) bool {
	if len(content) < stlHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(content[stlHeaderSize : stlHeaderSize+4])
	return uint64(len(content)) == uint64(stlHeaderSize+4)+uint64(count)*stlTriangleSize
}

func parseBinaryStl(content []byte) (string, *data.BoundingBox, error) {
	name := strings.TrimSpace(strings.TrimPrefix(string(bytes.TrimRight(content[:stlHeaderSize], "\x00 ")), "solid"))
	count := binary.LittleEndian.Uint32(content[stlHeaderSize : stlHeaderSize+4])

	box := data.NewBoundingBox()
	offset := stlHeaderSize + 4
	for i := uint32(0); i < count; i++ {
		// skip the facet normal, then read the three vertices
		vertexOffset := offset + 12
		for v := 0; v < 3; v++ {
			x := readFloat32(content, vertexOffset)
			y := readFloat32(content, vertexOffset+4)
			z := readFloat32(content, vertexOffset+8)
			box.Extend(x, y, z)
			vertexOffset += 12
		}
		offset += stlTriangleSize
	}

	return name, box, nil
}

func readFloat32(content []byte, offset int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(content[offset : offset+4])))
}

func parseASCIIStl(content []byte) (string, *data.BoundingBox, error) {
	var name string
	box := data.NewBoundingBox()

	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if name == "" {
				name = strings.TrimSpace(strings.TrimPrefix(line, "solid"))
			}
		case "vertex":
			if len(fields) != 4 {
				return "", nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNumber)
			}
			coords := [3]float64{}
			for i := 0; i < 3; i++ {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return "", nil, fmt.Errorf("line %d: invalid vertex coordinate %q", lineNumber, fields[i+1])
				}
				coords[i] = value
			}
			box.Extend(coords[0], coords[1], coords[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return "", nil, err
	}

	return name, box, nil
}
