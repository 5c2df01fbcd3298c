// Package main provides the CLI entrypoint for reset-bridger.
//
// reset-bridger projects class interfaces between two calling conventions:
//   - import turns resettable properties into non-null properties with a
//     synthesized reset method
//   - export folds reset methods back into resettable setters
//   - roundtrip checks that export(import(x)) reproduces x
//   - check reports diagnostics only
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reset-bridger/internal/model"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitMalformed   = 2
	exitDiagnostics = 3
)

// errDiagnostics marks a run that completed but failed the diagnostics policy.
var errDiagnostics = errors.New("diagnostics policy failed")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(root.ErrOrStderr(), "error:", err)

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDiagnostics):
		return exitDiagnostics
	case errors.Is(err, model.ErrMalformedInput):
		return exitMalformed
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "reset-bridger",
		Short:         "Project class interfaces between resettable and reset-method conventions",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.bind(root)

	root.AddCommand(
		newImportCmd(opts),
		newExportCmd(opts),
		newRoundtripCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)

	return root
}
