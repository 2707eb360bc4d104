// Where: cli/internal/command/list.go
// What: List command entry.
// Why: Show which example identifiers --name accepts.
package command

import (
	"fmt"

	"github.com/poruru/fhevm-examples/cli/internal/infra/config"
	"github.com/poruru/fhevm-examples/cli/internal/infra/ui"
)

func runList(cli CLI, deps Dependencies) int {
	settings, err := config.Resolve(deps.FS, deps.ProjectDir, overridesFromCLI(cli))
	if err != nil {
		return exitWithError(deps, err)
	}
	registry, err := loadRegistry(deps, settings)
	if err != nil {
		return exitWithError(deps, err)
	}

	defs := registry.Definitions()
	rows := make([]ui.KeyValue, 0, len(defs))
	for _, def := range defs {
		value := def.ContractName
		if def.Description != "" {
			value = fmt.Sprintf("%s - %s", def.ContractName, def.Description)
		}
		rows = append(rows, ui.KeyValue{Key: def.Name, Value: value})
	}
	newUI(deps, cli.NoEmoji).Block("📚", "Available examples", rows)
	return 0
}
