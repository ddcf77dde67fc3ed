package loader_manager

import (
	"github.com/ecopia-map/dimexport/internal/scene"
)

type LoaderManager interface {
	// Returns the loader able to read the given scene file, based on its extension
	GetLoader(filePath string) (scene.Loader, error)
}
