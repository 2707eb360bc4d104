// Where: cli/cmd/fhevm-example/main.go
// What: CLI entrypoint.
// Why: Execute generator commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/fhevm-examples/cli/internal/command"
)

func main() {
	deps, stop := buildDependencies()
	code := command.Run(os.Args[1:], deps)
	stop()
	os.Exit(code)
}
