package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanocorp/wiring/internal/circuit"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool `json:"valid"`
	Wires int  `json:"wires"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <circuit-file>",
		Short: "Validate a circuit description without resolving it",
		Long: `Validate a circuit description without resolving signals.

Checks definition syntax, wire identifiers, shift ranges, self-references,
and duplicate wire ids. Dependency cycles are a resolution-time property
and are reported by run, not validate.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	wires, err := LoadCircuitFile(path)
	if err != nil {
		return reportLoadError(formatter, err)
	}

	formatter.VerboseLog("Parsed %d wire definition(s) from %s", len(wires), path)

	// Duplicate detection reuses the store's insert check.
	c := circuit.New()
	for _, w := range wires {
		if err := c.Insert(w); err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return NewExitError(ExitFailure, err.Error())
		}
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Wires: len(wires)})
	}
	fmt.Fprintf(formatter.Writer, "circuit valid: %d wire(s)\n", len(wires))
	return nil
}
