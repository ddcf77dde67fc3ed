package std_loader_manager

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ecopia-map/dimexport/internal/scene"
	"github.com/ecopia-map/dimexport/pkg/loader_manager"
)

type StandardLoaderManager struct {
	loaders map[string]scene.Loader
}

func NewLoaderManager(opts *scene.LoadOptions) loader_manager.LoaderManager {
	objLoader := scene.NewObjLoader(opts.ObjUpAxis)
	stlLoader := scene.NewStlLoader()
	manifestLoader := scene.NewManifestLoader(map[string]scene.Loader{
		".obj": objLoader,
		".stl": stlLoader,
	})

	return &StandardLoaderManager{
		loaders: map[string]scene.Loader{
			".obj":  objLoader,
			".stl":  stlLoader,
			".yaml": manifestLoader,
			".yml":  manifestLoader,
			".json": manifestLoader,
		},
	}
}

func (m *StandardLoaderManager) GetLoader(filePath string) (scene.Loader, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if loader, ok := m.loaders[ext]; ok {
		return loader, nil
	}
	return nil, fmt.Errorf("unsupported scene file %q", filePath)
}
