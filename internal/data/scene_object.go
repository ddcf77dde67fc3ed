package data

import "strings"

type ObjectType string

const (
	Mesh   ObjectType = "MESH"
	Empty  ObjectType = "EMPTY"
	Camera ObjectType = "CAMERA"
	Light  ObjectType = "LIGHT"
	Curve  ObjectType = "CURVE"
	Other  ObjectType = "OTHER"
)

// Parses an object type tag, case-insensitive. Empty input means mesh, unknown tags map to Other.
func ParseObjectType(value string) ObjectType {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	switch ObjectType(normalizedValue) {
	case "":
		return Mesh
	case Mesh, Empty, Camera, Light, Curve:
		return ObjectType(normalizedValue)
	}
	return Other
}

// Axis-aligned extent of an object in scene units, X and Y horizontal, Z up
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Contains the data of a scene object as seen by the exporter: its name, its type tag and
// its bounding-box dimensions
type SceneObject struct {
	Name       string
	Type       ObjectType
	Dimensions Vector
}

// Builds a new SceneObject from the given name, type and dimensions
func NewSceneObject(name string, objectType ObjectType, x, y, z float64) *SceneObject {
	return &SceneObject{
		Name:       name,
		Type:       objectType,
		Dimensions: Vector{X: x, Y: y, Z: z},
	}
}

func (o *SceneObject) IsMesh() bool {
	return o != nil && o.Type == Mesh
}
