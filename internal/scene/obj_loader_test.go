package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoObjectsObj = `# exported scene
mtllib scene.mtl
o Cube
v -1.0 -0.5 -0.75
v 1.0 0.5 0.75
vn 0 1 0
f 1//1 2//1 1//1
o Camera Rig
o Plane.001
v 0 0 0
v 4 0 2
`

func TestObjLoader_ObjectsInFileOrder(t *testing.T) {
	objects, err := NewObjLoader(ZUp).LoadFromReader(strings.NewReader(twoObjectsObj), "scene")
	require.NoError(t, err)
	require.Len(t, objects, 3)

	assert.Equal(t, data.NewSceneObject("Cube", data.Mesh, 2, 1, 1.5), objects[0])
	assert.Equal(t, data.NewSceneObject("Camera Rig", data.Empty, 0, 0, 0), objects[1])
	assert.Equal(t, data.NewSceneObject("Plane.001", data.Mesh, 4, 0, 2), objects[2])
}

func TestObjLoader_YUpSwapsHeightAndDepth(t *testing.T) {
	objects, err := NewObjLoader(YUp).LoadFromReader(strings.NewReader(twoObjectsObj), "scene")
	require.NoError(t, err)
	require.Len(t, objects, 3)

	assert.Equal(t, data.Vector{X: 2, Y: 1.5, Z: 1}, objects[0].Dimensions)
	assert.Equal(t, data.Vector{X: 4, Y: 2, Z: 0}, objects[2].Dimensions)
}

func TestObjLoader_DefaultUpAxisIsY(t *testing.T) {
	assert.Equal(t, YUp, NewObjLoader("").upAxis)
}

func TestObjLoader_UnnamedGeometry(t *testing.T) {
	content := "v 0 0 0\nv 1 2 3\nf 1 2 1\n"

	objects, err := NewObjLoader(ZUp).LoadFromReader(strings.NewReader(content), "suzanne")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, data.NewSceneObject("suzanne", data.Mesh, 1, 2, 3), objects[0])
}

func TestObjLoader_EmptyContent(t *testing.T) {
	objects, err := NewObjLoader(ZUp).LoadFromReader(strings.NewReader("# nothing\n"), "empty")
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestObjLoader_InvalidVertex(t *testing.T) {
	_, err := NewObjLoader(ZUp).LoadFromReader(strings.NewReader("o Cube\nv 1 x 3\n"), "scene")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = NewObjLoader(ZUp).LoadFromReader(strings.NewReader("o Cube\nv 1 2\n"), "scene")
	require.Error(t, err)
}

func TestObjLoader_Load(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "cube.obj")
	require.NoError(t, os.WriteFile(filePath, []byte("v 0 0 0\nv 2 3 1\n"), 0644))

	objects, err := NewObjLoader(YUp).Load(filePath)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, data.NewSceneObject("cube", data.Mesh, 2, 1, 3), objects[0])

	_, err = NewObjLoader(YUp).Load(filepath.Join(dir, "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
