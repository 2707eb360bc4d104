// Where: cli/cmd/fhevm-example/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/poruru/fhevm-examples/cli/internal/command"
	"github.com/poruru/fhevm-examples/cli/internal/infra/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the CLI.
// The returned stop function releases the interrupt handler.
func buildDependencies() (command.Dependencies, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	projectDir, err := getwd()
	if err != nil {
		projectDir = "."
	}

	return command.Dependencies{
		Context:    ctx,
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		Stdin:      os.Stdin,
		FS:         afero.NewOsFs(),
		ProjectDir: projectDir,
		Prompter:   interaction.HuhPrompter{},
	}, stop
}
