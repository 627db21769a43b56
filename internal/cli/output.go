package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output (kept off stdout so JSON stays parseable)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status   string `json:"status"` // "ok" or "error"
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	RunToken string `json:"run_token,omitempty"`
}

// Success outputs a successful result. In text mode, text is printed as
// given; in JSON mode, data is wrapped in the standard envelope.
func (f *OutputFormatter) Success(text string, data any, runToken string) error {
	if f.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: data}
		if f.Verbose {
			resp.RunToken = runToken
		}
		return f.writeJSON(resp)
	}
	if f.Verbose && runToken != "" {
		fmt.Fprintf(f.ErrWriter, "run %s\n", runToken)
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Failure outputs a failed result without terminating the command: the
// command decides the exit code.
func (f *OutputFormatter) Failure(message string, runToken string) error {
	if f.Format == "json" {
		resp := CLIResponse{Status: "error", Error: message}
		if f.Verbose {
			resp.RunToken = runToken
		}
		return f.writeJSON(resp)
	}
	if f.Verbose && runToken != "" {
		fmt.Fprintf(f.ErrWriter, "run %s\n", runToken)
	}
	_, err := fmt.Fprintln(f.Writer, message)
	return err
}

func (f *OutputFormatter) writeJSON(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
