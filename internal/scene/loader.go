package scene

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ecopia-map/dimexport/internal/data"
)

// Reads the objects stored in a scene file, in file order
type Loader interface {
	Load(filePath string) ([]*data.SceneObject, error)
}

// Keeps, in their original order, the objects whose name matches at least one of the glob
// patterns. No pattern selects every object.
func Select(objects []*data.SceneObject, patterns []string) ([]*data.SceneObject, error) {
	if len(patterns) == 0 {
		return objects, nil
	}

	for _, pattern := range patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid selection pattern %q: %w", pattern, err)
		}
	}

	selected := make([]*data.SceneObject, 0, len(objects))
	for _, obj := range objects {
		for _, pattern := range patterns {
			if ok, _ := path.Match(pattern, obj.Name); ok {
				selected = append(selected, obj)
				break
			}
		}
	}
	return selected, nil
}

func getFilenameWithoutExtension(filePath string) string {
	nameWext := filepath.Base(filePath)
	extension := filepath.Ext(nameWext)
	return nameWext[0 : len(nameWext)-len(extension)]
}

func lowerExt(filePath string) string {
	return strings.ToLower(filepath.Ext(filePath))
}
