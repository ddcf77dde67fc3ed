package tools

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecopia-map/dimexport/internal/scene"
)

// Lower case extensions of the files that can be read as scenes
var SceneFileExtensions = []string{".obj", ".stl", ".yaml", ".yml", ".json"}

type FileFinder interface {
	GetSceneFilesToProcess(opts *scene.LoadOptions) ([]string, error)
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetSceneFilesToProcess(opts *scene.LoadOptions) ([]string, error) {
	// If folder processing is not enabled then the scene file is given by -input flag, otherwise look for scene
	// files in -input folder eventually excluding nested folders if Recursive flag is disabled
	if !opts.FolderProcessing {
		if _, err := os.Stat(opts.Input); err != nil {
			return nil, err
		}
		return []string{opts.Input}, nil
	}

	return f.getSceneFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getSceneFilesFromInputFolder(opts *scene.LoadOptions) ([]string, error) {
	var sceneFiles = make([]string, 0)

	err := filepath.WalkDir(
		opts.Input,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if !opts.Recursive && path != opts.Input {
					return filepath.SkipDir
				}
				return nil
			}
			if IsSceneFile(path) {
				sceneFiles = append(sceneFiles, path)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return sceneFiles, nil
}

func IsSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range SceneFileExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
