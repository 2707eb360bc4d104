// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Every failure path prints to stderr and returns exit code 1.
package command

import "errors"

// exitWithError prints an error message to the error writer and returns
// exit code 1 for CLI error handling.
func exitWithError(deps Dependencies, err error) int {
	out := newUI(deps, false)
	out.Error(err.Error())
	if errors.Is(err, ErrUsage) {
		out.Info("Run with --help for usage.")
	}
	return 1
}
