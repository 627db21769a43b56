package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/overcall/overcall/internal/checker"
	"github.com/overcall/overcall/internal/diag"
	"github.com/overcall/overcall/internal/sig"
)

// CheckVerdict is one value/type verdict produced by the check command.
type CheckVerdict struct {
	Value      string `json:"value"`
	Type       string `json:"type"`
	Compatible bool   `json:"compatible"`
	Reason     string `json:"reason,omitempty"`
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Backend  string         `json:"backend"`
	Verdicts []CheckVerdict `json:"verdicts"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var casePath string

	cmd := &cobra.Command{
		Use:           "check",
		Short:         "Check case-file values against declared types",
		Long:          "Runs each 'checks' entry of a case file through the selected compatibility backend and prints one verdict per value.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, casePath, cmd)
		},
	}

	cmd.Flags().StringVarP(&casePath, "file", "f", "", "case file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCheck(opts *RootOptions, casePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	token := tokenSource.Generate()

	loaded, err := LoadCase(casePath)
	if err != nil {
		return err
	}
	if len(loaded.Checks) == 0 {
		return fmt.Errorf("case file has no 'checks' entries")
	}

	result := CheckResult{Backend: loaded.Backend.String()}
	var lines []string
	for i, c := range loaded.Checks {
		t, err := sig.ParseType(c.Type)
		if err != nil {
			return fmt.Errorf("check %d: %w", i+1, err)
		}
		verdict := CheckVerdict{
			Value: diag.FormatValue(c.Value),
			Type:  t.String(),
		}
		mismatch := checker.Check(c.Value, t, fmt.Sprintf("value_%d", i+1), loaded.Backend)
		if mismatch == nil {
			verdict.Compatible = true
			lines = append(lines, fmt.Sprintf("%s is compatible with %s", verdict.Value, verdict.Type))
		} else {
			verdict.Reason = mismatch.Describe()
			lines = append(lines, fmt.Sprintf("%s is NOT compatible with %s", verdict.Value, verdict.Type))
		}
		result.Verdicts = append(result.Verdicts, verdict)
	}

	return formatter.Success(strings.Join(lines, "\n"), result, token)
}
