// FILE: srunauth/src/internal/format/raw.go
package format

import (
	"github.com/lixenwraith/log"
)

// Outputs the report message as-is with a newline
type RawFormatter struct {
	logger *log.Logger
}

// Creates a new raw formatter
func NewRawFormatter(logger *log.Logger) *RawFormatter {
	return &RawFormatter{
		logger: logger,
	}
}

// Returns the message with a newline appended, or the online flag when there is none
func (f *RawFormatter) Format(report Report) ([]byte, error) {
	msg := report.Message
	if msg == "" {
		if report.Online {
			msg = "online"
		} else {
			msg = "offline"
		}
	}
	return append([]byte(msg), '\n'), nil
}

// Returns the formatter name
func (f *RawFormatter) Name() string {
	return "raw"
}
