package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type terminalHook struct {
	out io.Writer
}

// NewTerminalHook creates a colored stderr hook:
//
//	logrus.AddHook(log.NewTerminalHook())
func NewTerminalHook() logrus.Hook {
	return &terminalHook{out: os.Stderr}
}

func (h *terminalHook) Fire(entry *logrus.Entry) error {
	_, err := fmt.Fprintln(h.out, formatEntry(entry))
	return err
}

func (h *terminalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func formatEntry(entry *logrus.Entry) string {
	level := strings.ToUpper(entry.Level.String())
	switch entry.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		level = color.RedString(level)
	case logrus.WarnLevel:
		level = color.YellowString(level)
	case logrus.DebugLevel, logrus.TraceLevel:
		level = color.MagentaString(level)
	default:
		level = color.CyanString(level)
	}

	parts := []string{
		entry.Time.Format("15:04:05"),
		level,
		entry.Message,
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", color.HiBlackString(k), entry.Data[k]))
	}

	return strings.Join(parts, " ")
}
