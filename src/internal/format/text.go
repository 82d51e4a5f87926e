// FILE: srunauth/src/internal/format/text.go
package format

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/lixenwraith/log"
)

const statusTemplate = `{{if .Online}}Online{{else}}Offline{{end}}
{{- if .Message}} ({{.Message}}){{end}}
{{- if .Online}}
  Account:  {{.Username}}
  IP:       {{.IP}}
  Traffic:  {{MB .Bytes}} MB
  Duration: {{Duration .Seconds}}
  Balance:  {{printf "%.2f" .Balance}}{{end}}
`

const resultTemplate = `[{{FmtTime .Time}}] {{ToUpper .Command}} {{.State}}
{{- if .Username}} user={{.Username}}{{end}}
{{- if .IP}} ip={{.IP}}{{end}}
{{- if .Message}} - {{.Message}}{{end}}
`

// Produces human-readable text using templates
type TextFormatter struct {
	timestampFormat string
	status          *template.Template
	result          *template.Template
	logger          *log.Logger
}

// Creates a new text formatter
func NewTextFormatter(timestampFormat string, logger *log.Logger) *TextFormatter {
	if timestampFormat == "" {
		timestampFormat = time.RFC3339
	}
	f := &TextFormatter{
		timestampFormat: timestampFormat,
		logger:          logger,
	}

	funcMap := template.FuncMap{
		"FmtTime": func(t time.Time) string {
			return t.Format(f.timestampFormat)
		},
		"ToUpper": strings.ToUpper,
		"MB": func(b float64) string {
			return fmt.Sprintf("%.2f", b/(1024*1024))
		},
		"Duration": func(s float64) string {
			return (time.Duration(s) * time.Second).String()
		},
	}

	// Both templates are constants; a parse failure is a programming error
	f.status = template.Must(template.New("status").Funcs(funcMap).Parse(statusTemplate))
	f.result = template.Must(template.New("result").Funcs(funcMap).Parse(resultTemplate))
	return f
}

// Formats the report using the template matching its command
func (f *TextFormatter) Format(report Report) ([]byte, error) {
	tmpl := f.result
	if report.Command == "status" {
		tmpl = f.status
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		f.logger.Debug("msg", "Template execution failed, using fallback",
			"component", "text_formatter",
			"error", err)

		fallback := fmt.Sprintf("[%s] %s %s - %s\n",
			report.Time.Format(f.timestampFormat),
			strings.ToUpper(report.Command),
			report.State,
			report.Message)
		return []byte(fallback), nil
	}

	result := buf.Bytes()
	if len(result) == 0 || result[len(result)-1] != '\n' {
		result = append(result, '\n')
	}

	return result, nil
}

// Returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}
