package scene

import (
	"fmt"
	"strings"
)

type UpAxis string

const (
	YUp UpAxis = "Y"
	ZUp UpAxis = "Z"
)

func ParseUpAxis(value string) (UpAxis, error) {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	switch UpAxis(normalizedValue) {
	case YUp:
		return YUp, nil
	case ZUp:
		return ZUp, nil
	}
	return "", fmt.Errorf("invalid up axis %q, must be Y or Z", value)
}

// Contains the options needed to build the selection out of scene files
type LoadOptions struct {
	Input            string   // Input scene file/folder
	FolderProcessing bool     // Enables the processing of all scene files in folder
	Recursive        bool     // Recursive lookup of scene files in subfolders
	Select           []string // Glob patterns on object names, empty selects every object
	ObjUpAxis        UpAxis   // Up axis of the coordinates stored in OBJ files
}
