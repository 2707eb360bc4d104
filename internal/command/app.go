// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/poruru/fhevm-examples/cli/internal/infra/interaction"
	"github.com/poruru/fhevm-examples/cli/internal/infra/ui"
	"github.com/poruru/fhevm-examples/cli/internal/meta"
	"github.com/poruru/fhevm-examples/cli/internal/version"
)

// ErrUsage marks invalid or missing command-line input.
var ErrUsage = errors.New("usage error")

// Dependencies holds all injected dependencies required for CLI command execution.
// Zero values fall back to the process defaults.
type Dependencies struct {
	Context    context.Context
	Out        io.Writer
	ErrOut     io.Writer
	Stdin      *os.File
	FS         afero.Fs
	ProjectDir string
	Prompter   interaction.Prompter
}

// CLI defines the command-line interface structure parsed by Kong.
// Global flags may appear before or after the command name.
type CLI struct {
	Name        string `help:"Example identifier to generate (e.g. counter)." placeholder:"EXAMPLE"`
	TemplateDir string `name:"template-dir" help:"Base template directory (default: templates/base-template)."`
	OutputDir   string `name:"output-dir" help:"Output root directory (default: result)."`
	Readme      string `help:"README policy: static or extract (default: extract)."`
	Registry    string `help:"External registry YAML file."`
	Atomic      bool   `help:"Stage the project in a temporary directory and move it into place."`
	Interactive bool   `short:"i" help:"Pick the example interactively when --name is omitted."`
	EnvFile     string `name:"env-file" help:"Path to .env file."`
	Verbose     bool   `short:"v" help:"Verbose output."`
	NoEmoji     bool   `name:"no-emoji" help:"Disable emoji output."`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate an example project (default command)."`
	List     ListCmd     `cmd:"" help:"List available examples."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

type (
	GenerateCmd struct{}
	ListCmd     struct{}
	VersionCmd  struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Generate FHEVM example projects from the built-in registry."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}
	if name, found := scanFlagValue(args, "--name"); found {
		cli.Name = name
	}

	if err := loadEnvFile(cli.EnvFile, deps.ProjectDir); err != nil {
		return exitWithError(deps, err)
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps); handled {
		return exitCode
	}

	return exitWithError(deps, fmt.Errorf("%w: unknown command %q", ErrUsage, command))
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"generate": runGenerate,
		"list":     runList,
		"version":  runVersion,
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if strings.TrimSpace(deps.ProjectDir) == "" {
		if wd, err := os.Getwd(); err == nil {
			deps.ProjectDir = wd
		}
	}
	return deps
}

// loadEnvFile loads the given env file, or <projectDir>/.env when present.
// Variables already set in the environment win.
func loadEnvFile(envFile, projectDir string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}
	defaultEnv := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(defaultEnv); err == nil {
		if err := godotenv.Load(defaultEnv); err != nil {
			return fmt.Errorf("load %s: %w", defaultEnv, err)
		}
	}
	return nil
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	fmt.Fprintf(deps.Out, "%s %s\n", meta.AppName, version.GetVersion())
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
// Every parse failure is a usage error.
func handleParseError(err error, deps Dependencies) int {
	msg := err.Error()
	out := newUI(deps, false)
	cmd := cliName()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		switch {
		case strings.Contains(msg, "--name"):
			out.Error("`--name` expects an example identifier.")
			out.Info(fmt.Sprintf("Example: %s --name counter", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			out.Error("`--env-file` expects a value. Provide a file path.")
			out.Info(fmt.Sprintf("Example: %s --name counter --env-file .env.local", cmd))
			return 1
		}
	}
	return exitWithError(deps, fmt.Errorf("%w: %v", ErrUsage, err))
}

func newUI(deps Dependencies, noEmoji bool) ui.UserInterface {
	return ui.NewConsoleUI(deps.Out, deps.ErrOut,
		emojiEnabled(deps.Out, noEmoji), emojiEnabled(deps.ErrOut, noEmoji))
}
