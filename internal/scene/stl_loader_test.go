package scene

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiStl = `solid bracket
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 2 0 0
      vertex 2 1.5 0.5
    endloop
  endfacet
endsolid bracket
`

func binaryStl(t *testing.T, name string, triangles [][9]float32) []byte {
	t.Helper()

	var buf bytes.Buffer
	header := make([]byte, stlHeaderSize)
	copy(header, name)
	buf.Write(header)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(triangles))))
	for _, tri := range triangles {
		normal := [3]float32{0, 0, 1}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, normal))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, tri))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	}
	return buf.Bytes()
}

func TestStlLoader_ASCII(t *testing.T) {
	obj, err := NewStlLoader().LoadFromBytes([]byte(asciiStl), "file")
	require.NoError(t, err)
	assert.Equal(t, data.NewSceneObject("bracket", data.Mesh, 2, 1.5, 0.5), obj)
}

func TestStlLoader_ASCIIWithoutName(t *testing.T) {
	content := "solid\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 1 1\nvertex 0 1 0\nendloop\nendfacet\nendsolid\n"

	obj, err := NewStlLoader().LoadFromBytes([]byte(content), "part")
	require.NoError(t, err)
	assert.Equal(t, "part", obj.Name)
	assert.Equal(t, data.Vector{X: 1, Y: 1, Z: 1}, obj.Dimensions)
}

func TestStlLoader_Binary(t *testing.T) {
	content := binaryStl(t, "solid gear", [][9]float32{
		{0, 0, 0, 4, 0, 0, 0, 2, 0},
		{0, 0, 0, 0, 2, 1, 4, 2, 1},
	})

	obj, err := NewStlLoader().LoadFromBytes(content, "file")
	require.NoError(t, err)
	assert.Equal(t, "gear", obj.Name)
	assert.Equal(t, data.Mesh, obj.Type)
	assert.InDelta(t, 4, obj.Dimensions.X, 1e-6)
	assert.InDelta(t, 2, obj.Dimensions.Y, 1e-6)
	assert.InDelta(t, 1, obj.Dimensions.Z, 1e-6)
}

func TestStlLoader_BinaryWithoutTriangles(t *testing.T) {
	obj, err := NewStlLoader().LoadFromBytes(binaryStl(t, "", nil), "hollow")
	require.NoError(t, err)
	assert.Equal(t, data.NewSceneObject("hollow", data.Empty, 0, 0, 0), obj)
}

func TestStlLoader_Invalid(t *testing.T) {
	_, err := NewStlLoader().LoadFromBytes([]byte("not a mesh"), "file")
	assert.Error(t, err)

	_, err = NewStlLoader().LoadFromBytes([]byte("solid x\nvertex 1 2\n"), "file")
	assert.Error(t, err)
}

func TestStlLoader_Load(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "bracket.stl")
	require.NoError(t, os.WriteFile(filePath, []byte(asciiStl), 0644))

	objects, err := NewStlLoader().Load(filePath)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "bracket", objects[0].Name)
	assert.False(t, math.IsInf(objects[0].Dimensions.X, 0))
}
