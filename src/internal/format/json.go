// FILE: srunauth/src/internal/format/json.go
package format

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lixenwraith/log"
)

// JSONFormatter produces one JSON object per Report.
type JSONFormatter struct {
	pretty bool
	logger *log.Logger
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(pretty bool, logger *log.Logger) *JSONFormatter {
	return &JSONFormatter{
		pretty: pretty,
		logger: logger,
	}
}

type jsonReport struct {
	Time     string   `json:"time"`
	Command  string   `json:"command"`
	Online   bool     `json:"online"`
	State    string   `json:"state,omitempty"`
	Username string   `json:"username,omitempty"`
	IP       string   `json:"ip,omitempty"`
	Message  string   `json:"message,omitempty"`
	Bytes    *float64 `json:"sum_bytes,omitempty"`
	Seconds  *float64 `json:"sum_seconds,omitempty"`
	Balance  *float64 `json:"user_balance,omitempty"`
}

// Format transforms a single Report into a JSON byte slice.
func (f *JSONFormatter) Format(report Report) ([]byte, error) {
	out := jsonReport{
		Time:     report.Time.Format(time.RFC3339),
		Command:  report.Command,
		Online:   report.Online,
		State:    report.State,
		Username: report.Username,
		IP:       report.IP,
		Message:  report.Message,
	}

	// Counters are only meaningful for an online status report
	if report.Command == "status" && report.Online {
		out.Bytes = &report.Bytes
		out.Seconds = &report.Seconds
		out.Balance = &report.Balance
	}

	var result []byte
	var err error
	if f.pretty {
		result, err = json.MarshalIndent(out, "", "  ")
	} else {
		result, err = json.Marshal(out)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(result, '\n'), nil
}

// Name returns the formatter's type name.
func (f *JSONFormatter) Name() string {
	return "json"
}
