package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nanocorp/wiring/internal/catalog"
	"github.com/nanocorp/wiring/internal/circuit"
	"github.com/nanocorp/wiring/internal/dsl"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
	Resolve  bool
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a circuit from the catalog",
		Long: `Load the latest revision of a named circuit from the catalog and
print its definition lines. With --resolve, resolve the circuit and
print wire signals instead.

Signals are never stored; a loaded circuit always resolves from scratch.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (required)")
	cmd.Flags().BoolVar(&opts.Resolve, "resolve", false, "resolve the circuit and print signals")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
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

	wires, err := cat.LoadCircuit(cmd.Context(), name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			msg := fmt.Sprintf("no circuit named %q in catalog", name)
			formatter.Error(ErrCodeNotFound, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load circuit", err)
	}

	if !opts.Resolve {
		lines := dsl.FormatAll(wires)
		if opts.Format == "json" {
			return formatter.Success(lines)
		}
		for _, line := range lines {
			fmt.Fprintln(formatter.Writer, line)
		}
		return nil
	}

	c := circuit.New()
	for _, w := range wires {
		if err := c.Insert(w); err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return NewExitError(ExitFailure, err.Error())
		}
	}
	if err := c.Resolve(); err != nil {
		formatter.Error(ErrCodeLoopError, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	rows := make([]wireSignal, 0, c.Len())
	for _, id := range c.IDs() {
		sig, err := c.Signal(id)
		if err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return NewExitError(ExitFailure, err.Error())
		}
		rows = append(rows, newWireSignal(id, sig))
	}

	if opts.Format == "json" {
		return formatter.Success(rows)
	}
	for _, row := range rows {
		fmt.Fprintf(formatter.Writer, "%s = %s\n", row.ID, row.Signal)
	}
	return nil
}
