package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Function  string   `json:"function"`
	Stub      string   `json:"stub"`
	Overloads []string `json:"overloads"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var casePath string

	cmd := &cobra.Command{
		Use:           "render",
		Short:         "Print the display form of each declared signature",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, casePath, cmd)
		},
	}

	cmd.Flags().StringVarP(&casePath, "file", "f", "", "case file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runRender(opts *RootOptions, casePath string, cmd *cobra.Command) error {
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

	result := RenderResult{
		Function: loaded.Function,
		Stub:     loaded.Stub.String(),
	}
	var lines []string
	lines = append(lines, fmt.Sprintf("%s%s", loaded.Function, result.Stub))
	for i, s := range loaded.Overloads {
		repr := s.String()
		result.Overloads = append(result.Overloads, repr)
		lines = append(lines, fmt.Sprintf("  overload %d: %s", i+1, repr))
	}

	return formatter.Success(strings.Join(lines, "\n"), result, token)
}
