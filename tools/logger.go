package tools

import (
	"fmt"

	"github.com/golang/glog"
)

var isEnabled = true

func DisableLogger() {
	isEnabled = false
}

// Logs progress messages through glog unless the logger was silenced
func LogOutput(val ...interface{}) {
	if isEnabled {
		glog.InfoDepth(1, fmt.Sprintln(val...))
	}
}
