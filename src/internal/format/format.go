// FILE: srunauth/src/internal/format/format.go
package format

import (
	"fmt"
	"time"

	"github.com/lixenwraith/log"
)

// Report is the outcome of one command as printed to the console
type Report struct {
	Time     time.Time
	Command  string
	Online   bool
	State    string
	Username string
	IP       string
	Message  string

	// Populated by status only
	Bytes   float64
	Seconds float64
	Balance float64
}

// Formatter defines the interface for rendering a Report into a byte slice.
type Formatter interface {
	// Format takes a Report and returns the rendered output as a byte slice.
	Format(report Report) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a new Formatter by name
func New(name string, logger *log.Logger) (Formatter, error) {
	// Default to text if no format specified
	if name == "" {
		name = "text"
	}

	switch name {
	case "json":
		return NewJSONFormatter(false, logger), nil
	case "text":
		return NewTextFormatter(time.RFC3339, logger), nil
	case "raw":
		return NewRawFormatter(logger), nil
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
