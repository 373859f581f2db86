package log

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntry(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	entry := &logrus.Entry{
		Time:    time.Date(2026, 1, 15, 10, 30, 5, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "tool finished",
		Data: logrus.Fields{
			"tool":   "geocode",
			"status": "success",
		},
	}

	got := formatEntry(entry)
	assert.Equal(t, "10:30:05 INFO tool finished status=success tool=geocode", got)
}

func TestFormatEntryNoFields(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	entry := &logrus.Entry{
		Time:    time.Date(2026, 1, 15, 10, 30, 5, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "boom",
	}

	assert.Equal(t, "10:30:05 ERROR boom", formatEntry(entry))
}
