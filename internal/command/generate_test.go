// Where: cli/internal/command/generate_test.go
// What: Tests for interactive example selection.
// Why: Keep --interactive opt-in and terminal-bound.
package command

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/poruru/fhevm-examples/cli/internal/infra/interaction"
)

func stubTerminal(t *testing.T, isTerminal bool) {
	t.Helper()
	orig := interaction.IsTerminal
	interaction.IsTerminal = func(*os.File) bool { return isTerminal }
	t.Cleanup(func() { interaction.IsTerminal = orig })
}

func TestRunInteractiveSelectsExample(t *testing.T) {
	stubTerminal(t, true)
	env := newTestEnv(t)
	prompter := &fakePrompter{selected: "access-control"}
	deps := env.deps()
	deps.Prompter = prompter

	if code := Run([]string{"--interactive"}, deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d; stderr: %s", code, env.errOut.String())
	}
	readTestFile(t, env.path("result", "access-control", "contracts", "AccessControlDemo.sol"))

	if len(prompter.options) != 1 || len(prompter.options[0]) != 3 {
		t.Fatalf("expected one prompt with three options, got %#v", prompter.options)
	}
	if got := prompter.options[0][0]; got.Value != "access-control" || got.Label != "access-control (AccessControlDemo)" {
		t.Fatalf("unexpected first option: %#v", got)
	}
}

func TestRunInteractiveRequiresTerminal(t *testing.T) {
	stubTerminal(t, false)
	env := newTestEnv(t)
	prompter := &fakePrompter{selected: "counter"}
	deps := env.deps()
	deps.Prompter = prompter

	if code := Run([]string{"-i"}, deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if len(prompter.titles) != 0 {
		t.Fatal("prompter must not run without a terminal")
	}
	if !strings.Contains(env.errOut.String(), "requires a terminal") {
		t.Fatalf("unexpected stderr: %q", env.errOut.String())
	}
	assertNotExist(t, env.path("result"))
}

func TestRunInteractivePromptFailure(t *testing.T) {
	stubTerminal(t, true)
	env := newTestEnv(t)
	deps := env.deps()
	deps.Prompter = &fakePrompter{err: errors.New("user aborted")}

	if code := Run([]string{"--interactive"}, deps); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(env.errOut.String(), "user aborted") {
		t.Fatalf("unexpected stderr: %q", env.errOut.String())
	}
	assertNotExist(t, env.path("result"))
}

func TestRunNameSkipsPrompt(t *testing.T) {
	stubTerminal(t, true)
	env := newTestEnv(t)
	prompter := &fakePrompter{selected: "access-control"}
	deps := env.deps()
	deps.Prompter = prompter

	if code := Run([]string{"--interactive", "--name", "counter"}, deps); code != 0 {
		t.Fatalf("expected exit code 0, got %d; stderr: %s", code, env.errOut.String())
	}
	if len(prompter.titles) != 0 {
		t.Fatal("prompter must not run when --name is given")
	}
	readTestFile(t, env.path("result", "counter", "contracts", "Counter.sol"))
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("/work", "/work/result"); got != "result" {
		t.Fatalf("unexpected relative path %q", got)
	}
	if got := displayPath("/work", "/elsewhere/out"); got != "/elsewhere/out" {
		t.Fatalf("unexpected outside path %q", got)
	}
}
