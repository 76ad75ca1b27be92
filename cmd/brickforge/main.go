// Command brickforge generates printable Lego and Duplo compatible bricks
// as STL or 3MF meshes. Bricks come from command line parameters, an HCL
// manifest, or a Lisp script.
package main

import (
	"errors"
	"os"

	"github.com/dvriend/brickforge/pkg/brick"
	"github.com/dvriend/brickforge/pkg/export"
)

// CLI exit codes for standardized error reporting.
const (
	// ExitSuccess indicates the operation completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidArgs indicates invalid command line arguments.
	ExitInvalidArgs = 2

	// ExitExportDir indicates the export directory does not exist.
	ExitExportDir = 3

	// ExitBadSpec indicates invalid brick parameters.
	ExitBadSpec = 4

	// ExitScriptError indicates a script or manifest failed to evaluate.
	ExitScriptError = 5
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCodeFromError(err))
	}
}

// exitCodeFromError maps error types to exit codes.
func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, export.ErrExportDir):
		return ExitExportDir
	case errors.Is(err, export.ErrUnknownFormat):
		return ExitInvalidArgs
	case errors.Is(err, brick.ErrDimensions),
		errors.Is(err, brick.ErrStudOrder),
		errors.Is(err, brick.ErrPocketTooSmall),
		errors.Is(err, brick.ErrSlopeTop),
		errors.Is(err, brick.ErrUnknownSpec):
		return ExitBadSpec
	case errors.Is(err, errScript):
		return ExitScriptError
	default:
		return ExitGeneralError
	}
}
