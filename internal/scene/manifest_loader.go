package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecopia-map/dimexport/internal/data"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Objects []manifestObject `yaml:"objects"`
}

type manifestObject struct {
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"`
	Dimensions []float64 `yaml:"dimensions"`
	Scale      []float64 `yaml:"scale"`
	Mesh       string    `yaml:"mesh"`
	MeshObject string    `yaml:"mesh_object"`
	Selected   *bool     `yaml:"selected"`
}

// Reads YAML or JSON scene manifests listing objects with their type and either explicit
// dimensions or a mesh file to measure. Objects marked selected: false are left out.
type ManifestLoader struct {
	meshLoaders map[string]Loader
}

// Builds a manifest loader resolving referenced mesh files through the given loaders, keyed by
// lower case file extension
func NewManifestLoader(meshLoaders map[string]Loader) *ManifestLoader {
	return &ManifestLoader{
		meshLoaders: meshLoaders,
	}
}

func (l *ManifestLoader) Load(filePath string) ([]*data.SceneObject, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	objects, err := l.LoadFromBytes(content, filepath.Dir(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return objects, nil
}

// Parses manifest content, mesh paths are relative to baseDir
func (l *ManifestLoader) LoadFromBytes(content []byte, baseDir string) ([]*data.SceneObject, error) {
	var manifest manifestFile
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	objects := make([]*data.SceneObject, 0, len(manifest.Objects))
	for i, entry := range manifest.Objects {
		if entry.Selected != nil && !*entry.Selected {
			continue
		}

		obj, err := l.buildObject(entry, baseDir)
		if err != nil {
			return nil, fmt.Errorf("object #%d: %w", i+1, err)
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func (l *ManifestLoader) buildObject(entry manifestObject, baseDir string) (*data.SceneObject, error) {
	if entry.Name == "" {
		return nil, errors.New("name is required")
	}
	if entry.Mesh != "" && len(entry.Dimensions) > 0 {
		return nil, fmt.Errorf("%s: dimensions and mesh are mutually exclusive", entry.Name)
	}

	obj := data.NewSceneObject(entry.Name, data.ParseObjectType(entry.Type), 0, 0, 0)

	switch {
	case len(entry.Dimensions) > 0:
		dims, err := toVector(entry.Dimensions, "dimensions")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		obj.Dimensions = dims
	case entry.Mesh != "":
		dims, err := l.measureMesh(entry, baseDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		obj.Dimensions = dims
	}

	if len(entry.Scale) > 0 {
		scale, err := toVector(entry.Scale, "scale")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		obj.Dimensions.X *= scale.X
		obj.Dimensions.Y *= scale.Y
		obj.Dimensions.Z *= scale.Z
	}

	return obj, nil
}

func (l *ManifestLoader) measureMesh(entry manifestObject, baseDir string) (data.Vector, error) {
	meshPath := entry.Mesh
	if !filepath.IsAbs(meshPath) {
		meshPath = filepath.Join(baseDir, meshPath)
	}

	loader, ok := l.meshLoaders[lowerExt(meshPath)]
	if !ok {
		return data.Vector{}, fmt.Errorf("unsupported mesh file %q", entry.Mesh)
	}

	meshObjects, err := loader.Load(meshPath)
	if err != nil {
		return data.Vector{}, err
	}

	var found *data.SceneObject
	for _, candidate := range meshObjects {
		if !candidate.IsMesh() {
			continue
		}
		if entry.MeshObject != "" && candidate.Name != entry.MeshObject {
			continue
		}
		if found != nil {
			return data.Vector{}, fmt.Errorf("mesh file %q holds several meshes, set mesh_object", entry.Mesh)
		}
		found = candidate
	}
	if found == nil {
		if entry.MeshObject != "" {
			return data.Vector{}, fmt.Errorf("mesh %q not found in %q", entry.MeshObject, entry.Mesh)
		}
		return data.Vector{}, fmt.Errorf("no mesh found in %q", entry.Mesh)
	}

	return found.Dimensions, nil
}

func toVector(values []float64, field string) (data.Vector, error) {
	if len(values) != 3 {
		return data.Vector{}, fmt.Errorf("%s needs 3 values, got %d", field, len(values))
	}
	return data.Vector{X: values[0], Y: values[1], Z: values[2]}, nil
}
