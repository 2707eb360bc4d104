// Where: cli/internal/command/generate.go
// What: Generate command entry.
// Why: Resolve the example, then hand materialization to the usecase.
package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru/fhevm-examples/cli/internal/domain/example"
	"github.com/poruru/fhevm-examples/cli/internal/infra/config"
	"github.com/poruru/fhevm-examples/cli/internal/infra/interaction"
	"github.com/poruru/fhevm-examples/cli/internal/infra/logging"
	"github.com/poruru/fhevm-examples/cli/internal/infra/ui"
	"github.com/poruru/fhevm-examples/cli/internal/usecase/generate"
)

// runGenerate executes the default 'generate' command.
func runGenerate(cli CLI, deps Dependencies) int {
	if strings.TrimSpace(cli.Name) == "" && !cli.Interactive {
		return exitWithError(deps, fmt.Errorf("%w: --name <example> is required", ErrUsage))
	}
	out := newUI(deps, cli.NoEmoji)
	logger := logging.New(deps.ErrOut, cli.Verbose)

	settings, err := config.Resolve(deps.FS, deps.ProjectDir, overridesFromCLI(cli))
	if err != nil {
		return exitWithError(deps, err)
	}
	registry, err := loadRegistry(deps, settings)
	if err != nil {
		return exitWithError(deps, err)
	}

	name, err := resolveExampleName(cli, deps, registry)
	if err != nil {
		return exitWithError(deps, err)
	}
	def, err := registry.Resolve(name)
	if err != nil {
		return exitWithError(deps, err)
	}

	out.Step("🚀", fmt.Sprintf("Generating %s example in '%s' folder...",
		def.Name, displayPath(deps.ProjectDir, settings.OutputDir)))

	req := generate.Request{
		Example:     def,
		TemplateDir: settings.TemplateDir,
		OutputDir:   settings.OutputDir,
		ReadmeMode:  settings.Readme,
		Atomic:      settings.Atomic,
	}
	result, err := generate.New(deps.FS, logger).Run(deps.Context, req)
	if err != nil {
		return exitWithError(deps, fmt.Errorf("failed to create project: %w", err))
	}

	out.Success(fmt.Sprintf("Success! Project created at: %s", result.TargetDir))
	rows := make([]ui.KeyValue, 0, len(result.Files)+1)
	rows = append(rows, ui.KeyValue{Key: "Contract", Value: def.ContractName})
	for _, file := range result.Files {
		rows = append(rows, ui.KeyValue{Key: "Wrote", Value: file})
	}
	out.Block("📦", "Generated files", rows)
	return 0
}

func overridesFromCLI(cli CLI) config.Overrides {
	return config.Overrides{
		TemplateDir: cli.TemplateDir,
		OutputDir:   cli.OutputDir,
		Readme:      cli.Readme,
		Registry:    cli.Registry,
		Atomic:      cli.Atomic,
	}
}

func loadRegistry(deps Dependencies, settings config.Settings) (*example.Registry, error) {
	if settings.Registry == "" {
		return example.Builtin()
	}
	return example.LoadFile(deps.FS, settings.Registry)
}

// resolveExampleName returns the --name value, or asks the user when it is
// empty. Callers only reach the prompt with --interactive set.
func resolveExampleName(cli CLI, deps Dependencies, registry *example.Registry) (string, error) {
	if strings.TrimSpace(cli.Name) != "" {
		return cli.Name, nil
	}
	if !interaction.IsTerminal(deps.Stdin) {
		return "", fmt.Errorf("%w: --interactive requires a terminal; pass --name instead", ErrUsage)
	}

	defs := registry.Definitions()
	options := make([]interaction.SelectOption, 0, len(defs))
	for _, def := range defs {
		options = append(options, interaction.SelectOption{
			Label: fmt.Sprintf("%s (%s)", def.Name, def.ContractName),
			Value: def.Name,
		})
	}
	selected, err := deps.Prompter.SelectValue("Select an example", options)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(selected) == "" {
		return "", fmt.Errorf("%w: no example selected", ErrUsage)
	}
	return selected, nil
}

func displayPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
