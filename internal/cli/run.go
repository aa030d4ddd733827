package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanocorp/wiring/internal/circuit"
	"github.com/nanocorp/wiring/internal/wire"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Wires []string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <circuit-file>",
		Short: "Resolve a circuit and print wire signals",
		Long: `Load a circuit description, resolve every wire, and print the
resulting signals.

The circuit file is either definition lines (.txt) or a structured CUE
value (.cue). Wires whose dependencies are missing report unresolvable;
a dependency cycle aborts resolution.

Example:
  wiring run circuit.txt
  wiring run --wire d --wire e circuit.cue
  wiring run --format json circuit.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Wires, "wire", nil, "resolve and print only these wires (repeatable)")

	return cmd
}

// wireSignal is one row of run output.
type wireSignal struct {
	ID     string  `json:"id"`
	State  string  `json:"state"` // "value", "unresolved", "unresolvable"
	Value  *uint16 `json:"value,omitempty"`
	Signal string  `json:"-"`
}

func runResolve(opts *RunOptions, path string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	slog.Debug("loading circuit", "path", path)
	wires, err := LoadCircuitFile(path)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	slog.Debug("circuit loaded", "wires", len(wires))

	c := circuit.New()
	for _, w := range wires {
		if err := c.Insert(w); err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return NewExitError(ExitFailure, err.Error())
		}
	}

	targets := make([]wire.ID, 0, len(opts.Wires))
	for _, raw := range opts.Wires {
		id, err := wire.NewID(raw)
		if err != nil {
			formatter.Error(ErrCodeStoreError, err.Error(), nil)
			return NewExitError(ExitFailure, err.Error())
		}
		targets = append(targets, id)
	}

	if err := c.Resolve(targets...); err != nil {
		formatter.Error(ErrCodeLoopError, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}
	slog.Debug("circuit resolved", "pending", len(c.Pending()), "poisoned", len(c.Poisoned()))

	ids := targets
	if len(ids) == 0 {
		ids = c.IDs()
	}

	rows := make([]wireSignal, 0, len(ids))
	for _, id := range ids {
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

func newWireSignal(id wire.ID, sig wire.Signal) wireSignal {
	row := wireSignal{ID: string(id), Signal: sig.String()}
	switch sig.Kind {
	case wire.SignalValue:
		v := sig.Value
		row.State = "value"
		row.Value = &v
	case wire.SignalUnresolvable:
		row.State = "unresolvable"
	default:
		row.State = "unresolved"
	}
	return row
}

// reportLoadError prints a load error and converts it to an ExitError.
// Load failures are command errors; definition problems are failures.
func reportLoadError(formatter *OutputFormatter, err error) error {
	if le, ok := err.(*LoadError); ok {
		formatter.Error(le.Code, le.Message, nil)
		switch le.Code {
		case ErrCodeParseError, ErrCodeCompileError:
			return NewExitError(ExitFailure, le.Message)
		default:
			return NewExitError(ExitCommandError, le.Message)
		}
	}
	formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return NewExitError(ExitCommandError, err.Error())
}
