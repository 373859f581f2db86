package log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogWriter returns a size-rotated log file writer.
func NewLogWriter(filepath string) io.Writer {
	return &lumberjack.Logger{
		Filename:  filepath,
		MaxSize:   20, // MB per file
		Compress:  true,
		LocalTime: true,
	}
}
