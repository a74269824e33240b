package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// FormatWriter writes alerts in different output formats.
type FormatWriter struct {
	writer io.Writer
	format output.Format
	config WriterConfig
}

// WriterConfig configures alert output behavior.
type WriterConfig struct {
	ShowTimestamp bool
	ShowDetails   bool
	UseColor      bool
	Quiet         bool
}

// NewFormatWriter creates a new FormatWriter for the specified format.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{
		writer: w,
		format: format,
		config: WriterConfig{
			ShowDetails: true,
			UseColor:    isTerminal(w),
		},
	}
}

// WithConfig sets the writer configuration.
func (fw *FormatWriter) WithConfig(config WriterConfig) *FormatWriter {
	fw.config = config
	return fw
}

// WriteAlert writes an alert in the configured format. Quiet mode drops
// everything below warning.
func (fw *FormatWriter) WriteAlert(alert *Alert) error {
	if fw.config.Quiet && alert.Level > LevelWarning {
		return nil
	}
	switch fw.format {
	case output.FormatJSON:
		return fw.writeJSON(alert)
	case output.FormatYAML:
		return fw.writeYAML(alert)
	default:
		return fw.writeText(alert)
	}
}

type alertData struct {
	Level     string   `json:"level" yaml:"level"`
	Message   string   `json:"message" yaml:"message"`
	BookID    string   `json:"book_id,omitempty" yaml:"book_id,omitempty"`
	Details   []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
	Timestamp string   `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

func (fw *FormatWriter) toAlertData(alert *Alert) alertData {
	data := alertData{
		Level:   alert.Level.String(),
		Message: alert.Message,
		BookID:  alert.BookID,
		Details: alert.Details,
	}
	if alert.Err != nil {
		data.Error = alert.Err.Error()
	}
	if fw.config.ShowTimestamp {
		data.Timestamp = alert.Timestamp.Format(time.RFC3339)
	}
	return data
}

func (fw *FormatWriter) writeJSON(alert *Alert) error {
	encoder := json.NewEncoder(fw.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fw.toAlertData(alert))
}

func (fw *FormatWriter) writeYAML(alert *Alert) error {
	out, err := yaml.Marshal(fw.toAlertData(alert))
	if err != nil {
		return err
	}
	_, err = fw.writer.Write(out)
	return err
}

func (fw *FormatWriter) writeText(alert *Alert) error {
	message := alert.String()
	if fw.config.UseColor {
		message = alert.Level.Color() + message + resetColor
	}
	if _, err := fmt.Fprintln(fw.writer, message); err != nil {
		return err
	}

	if fw.config.ShowDetails {
		for _, detail := range alert.Details {
			if _, err := fmt.Fprintf(fw.writer, "   %s\n", detail); err != nil {
				return err
			}
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ForFlags returns a writer honoring the global format, quiet and
// no-color flags.
func ForFlags(w io.Writer, flags *globals.Flags) *FormatWriter {
	fw := NewFormatWriter(w, output.Format(flags.Format))
	fw.config.Quiet = flags.Quiet
	if flags.NoColor {
		fw.config.UseColor = false
	}
	return fw
}
