package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nanocorp/wiring/internal/catalog"
)

// SaveOptions holds flags for the save command.
type SaveOptions struct {
	*RootOptions
	Database string
	Name     string
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SaveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "save <circuit-file>",
		Short: "Save a circuit description to the catalog",
		Long: `Save a circuit description to the catalog under a name.

Revisions are content-addressed: saving an unchanged circuit returns the
existing revision instead of writing a new one. Only the description is
stored; signals are recomputed on load.

Example:
  wiring save --db catalog.db --name adder circuit.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "circuit name (required)")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// saveResult is the save command's JSON payload.
type saveResult struct {
	Name     string `json:"name"`
	Revision string `json:"revision"`
	Inserted bool   `json:"inserted"`
	Wires    int    `json:"wires"`
}

func runSave(opts *SaveOptions, path string, cmd *cobra.Command) error {
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

	cat, err := catalog.Open(opts.Database)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open catalog", err)
	}
	defer func() {
		if closeErr := cat.Close(); closeErr != nil {
			slog.Error("error closing catalog", "error", closeErr)
		}
	}()

	id, inserted, err := cat.SaveCircuit(cmd.Context(), opts.Name, wires)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to save circuit", err)
	}

	if opts.Format == "json" {
		return formatter.Success(saveResult{
			Name:     opts.Name,
			Revision: id,
			Inserted: inserted,
			Wires:    len(wires),
		})
	}
	if inserted {
		fmt.Fprintf(formatter.Writer, "saved %q revision %s (%d wires)\n", opts.Name, id, len(wires))
	} else {
		fmt.Fprintf(formatter.Writer, "%q unchanged, revision %s\n", opts.Name, id)
	}
	return nil
}
