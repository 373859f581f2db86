// Package log wires logrus for the CLI: JSON entries go to a rotating file,
// and with debug enabled a colored, human-readable copy is printed to the
// terminal through a hook.
package log

import (
	"io"
	"path"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger. logfile "" discards the JSON
// stream (the terminal hook still fires in debug mode).
func Init(debug bool, logfile string) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&logrus.JSONFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			function = path.Base(f.Function)
			file = path.Base(f.File) + ":" + strconv.Itoa(f.Line)
			return
		},
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})

	if logfile != "" {
		logrus.SetOutput(NewLogWriter(logfile))
	} else {
		logrus.SetOutput(io.Discard)
	}

	if debug {
		logrus.AddHook(NewTerminalHook())
	}
}
