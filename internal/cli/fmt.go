package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nanocorp/wiring/internal/dsl"
)

// FmtOptions holds flags for the fmt command.
type FmtOptions struct {
	*RootOptions
	Write bool
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fmt <circuit-file>",
		Short: "Print a circuit in canonical definition-line form",
		Long: `Print a circuit in canonical definition-line form.

Comments and blank lines are dropped, embedded constants move to the
right side of AND/OR gates, and a CUE circuit is rewritten as plain
definition lines. With --write the source file is replaced in place
(text files only).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "rewrite the file instead of printing")

	return cmd
}

func runFmt(opts *FmtOptions, path string, cmd *cobra.Command) error {
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

	lines := dsl.FormatAll(wires)

	if opts.Write {
		if !strings.HasSuffix(path, ".txt") {
			msg := "--write only rewrites .txt circuit files"
			formatter.Error(ErrCodeUnsupported, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		content := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to rewrite circuit file", err)
		}
		formatter.VerboseLog("Rewrote %s (%d wires)", path, len(wires))
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(lines)
	}
	for _, line := range lines {
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}
