package tools

import (
	"log"
	"os"

	"github.com/golang/glog"
)

var isEnabled = true

var progressLogger = log.New(os.Stdout, "", log.Ldate|log.Lmicroseconds)

func DisableLogger() {
	isEnabled = false
}

func EnableLoggerTimestamp() {
	progressLogger.SetFlags(log.Ldate | log.Lmicroseconds)
}

func DisableLoggerTimestamp() {
	progressLogger.SetFlags(0)
}

// Prints a progress line on stdout unless the logger is disabled. Lines always reach the glog
// info log.
func LogOutput(val ...interface{}) {
	glog.InfoDepth(1, val...)
	if isEnabled {
		progressLogger.Println(val...)
	}
}
