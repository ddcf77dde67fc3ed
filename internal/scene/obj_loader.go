package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ecopia-map/dimexport/internal/data"
)

// Reads Wavefront OBJ files. Every "o" statement starts a new object and the vertices that follow
// it make up its bounding box; an object without vertices is reported as an empty.
type ObjLoader struct {
	upAxis UpAxis
}

func NewObjLoader(upAxis UpAxis) *ObjLoader {
	if upAxis == "" {
		upAxis = YUp
	}
	return &ObjLoader{
		upAxis: upAxis,
	}
}

func (l *ObjLoader) Load(filePath string) ([]*data.SceneObject, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	objects, err := l.LoadFromReader(file, getFilenameWithoutExtension(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return objects, nil
}

// Parses OBJ content. Vertices written before any "o" statement belong to an object named
// defaultName.
func (l *ObjLoader) LoadFromReader(r io.Reader, defaultName string) ([]*data.SceneObject, error) {
	var objects []*data.SceneObject

	name := defaultName
	named := false
	box := data.NewBoundingBox()

	flush := func() {
		if !named && box.IsEmpty() {
			return
		}
		objects = append(objects, l.newObject(name, box))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "o":
			flush()
			name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "o"))
			if name == "" {
				name = defaultName
			}
			named = true
			box = data.NewBoundingBox()
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNumber)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("line %d: invalid vertex %q", lineNumber, line)
			}
			box.Extend(x, y, z)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return objects, nil
}

func (l *ObjLoader) newObject(name string, box *data.BoundingBox) *data.SceneObject {
	if box.IsEmpty() {
		return data.NewSceneObject(name, data.Empty, 0, 0, 0)
	}

	dims := box.Dimensions()
	if l.upAxis == YUp {
		// OBJ files are usually written Y up, the scene is Z up
		return data.NewSceneObject(name, data.Mesh, dims.X, dims.Z, dims.Y)
	}
	return data.NewSceneObject(name, data.Mesh, dims.X, dims.Y, dims.Z)
}
