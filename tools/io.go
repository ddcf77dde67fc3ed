package tools

import (
	"os"
	"path/filepath"
)

// Returns the folder scene relative export paths are resolved against: the folder of the given
// scene file, or the working directory when there is none
func GetSceneFolder(sceneFile string) string {
	if sceneFile != "" {
		if abs, err := filepath.Abs(sceneFile); err == nil {
			return filepath.Dir(abs)
		}
		return filepath.Dir(sceneFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
