package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
objects:
  - name: Cube
    dimensions: [2.0, 1.5, 1.0]
  - name: Camera
    type: camera
`

const cubeReport = "Dimensions of Selected Objects:\n" +
	"\n" +
	"Cube:\n" +
	"  Width (X): 200.00\n" +
	"  Height (Z): 100.00\n" +
	"  Depth (Y): 150.00\n" +
	"\n"

func TestMainCommandExport(t *testing.T) {
	tests := []struct {
		name       string
		args       func(scene string) []string
		wantCode   int
		wantStdout string
		wantFile   string
		wantFiles  int
	}{
		{
			name:       "dry run prints the report",
			args:       func(scene string) []string { return []string{"-i", scene, "-u", "cm", "--dry-run"} },
			wantCode:   0,
			wantStdout: cubeReport,
			wantFiles:  1,
		},
		{
			name: "dry run without meshes",
			args: func(scene string) []string {
				return []string{"-i", scene, "-s", "Camera", "--dry-run"}
			},
			wantCode:  1,
			wantFiles: 1,
		},
		{
			name: "empty file name",
			args: func(scene string) []string {
				return []string{"-i", scene, "-n", "", "--dry-run"}
			},
			wantCode:  1,
			wantFiles: 1,
		},
		{
			name:      "export writes next to the scene",
			args:      func(scene string) []string { return []string{"-i", scene, "-u", "cm", "-n", "dims.txt"} },
			wantCode:  0,
			wantFile:  "dims.txt",
			wantFiles: 2,
		},
		{
			name:      "export without meshes",
			args:      func(scene string) []string { return []string{"-i", scene, "-s", "Camera"} },
			wantCode:  1,
			wantFiles: 1,
		},
		{
			name:      "missing input",
			args:      func(string) []string { return []string{"-u", "cm"} },
			wantCode:  1,
			wantFiles: 1,
		},
		{
			name:      "invalid unit scale",
			args:      func(scene string) []string { return []string{"-i", scene, "-u", "7"} },
			wantCode:  1,
			wantFiles: 1,
		},
		{
			name:      "unknown flag",
			args:      func(scene string) []string { return []string{"-i", scene, "--bogus"} },
			wantCode:  1,
			wantFiles: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no dimexport.yaml may be picked up from the working directory
			chdir(t, t.TempDir())
			dir := t.TempDir()
			scene := filepath.Join(dir, "scene.yaml")
			require.NoError(t, os.WriteFile(scene, []byte(testScene), 0644))

			var stdout bytes.Buffer
			code := mainCommandExport(tt.args(scene), &stdout)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantFiles)

			if tt.wantFile != "" {
				content, err := os.ReadFile(filepath.Join(dir, tt.wantFile))
				require.NoError(t, err)
				assert.Equal(t, cubeReport, string(content))
			}
		})
	}
}

// chdir changes the working directory for the duration of the test (stand-in for testing.T.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
