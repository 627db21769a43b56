package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/overcall/overcall/internal/resolver"
)

// ExplainResult is the JSON payload of the explain command.
type ExplainResult struct {
	Function  string `json:"function"`
	Matched   int    `json:"matched"` // 1-based overload index, 0 when exhausted
	Signature string `json:"signature,omitempty"`
	Report    string `json:"report,omitempty"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	var casePath string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Resolve a call against its overloads without invoking anything",
		Long: `Explain loads a YAML case file describing a dispatch point (stub,
overload signatures, backend) and one concrete call, runs the resolution
decision procedure in dry-run mode, and reports which overload wins - or
why every candidate rejected the call.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(rootOpts, casePath, cmd)
		},
	}

	cmd.Flags().StringVarP(&casePath, "file", "f", "", "case file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runExplain(opts *RootOptions, casePath string, cmd *cobra.Command) error {
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

	dp := resolver.New(loaded.Function, loaded.Stub, loaded.Backend, loaded.Registry)
	explanation, err := dp.Explain(loaded.Call.Args, loaded.Call.Kwargs)
	if err != nil {
		// No candidates declared at all: surface the discovery hint.
		return err
	}

	if explanation.Matched >= 0 {
		result := ExplainResult{
			Function:  loaded.Function,
			Matched:   explanation.Matched + 1,
			Signature: explanation.Sig.String(),
		}
		text := fmt.Sprintf("function '%s' resolves to overload %d: '%s'",
			result.Function, result.Matched, result.Signature)
		return formatter.Success(text, result, token)
	}

	report := explanation.Report.Render()
	if opts.Format == "json" {
		result := ExplainResult{Function: loaded.Function, Report: report}
		if err := formatter.Success("", result, token); err != nil {
			return err
		}
	} else {
		if err := formatter.Failure(report, token); err != nil {
			return err
		}
	}
	// Exhaustion is a finding, not a command error; keep exit code zero so
	// scripted callers distinguish it from bad case files.
	return nil
}
