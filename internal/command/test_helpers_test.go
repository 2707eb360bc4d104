package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/fhevm-examples/cli/internal/infra/interaction"
)

type fakePrompter struct {
	selected string
	err      error
	titles   []string
	options  [][]interaction.SelectOption
}

func (f *fakePrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	f.titles = append(f.titles, title)
	f.options = append(f.options, append([]interaction.SelectOption(nil), options...))
	return f.selected, f.err
}

type testEnv struct {
	projectDir string
	out        bytes.Buffer
	errOut     bytes.Buffer
}

func (e *testEnv) deps() Dependencies {
	return Dependencies{
		Out:        &e.out,
		ErrOut:     &e.errOut,
		ProjectDir: e.projectDir,
	}
}

func (e *testEnv) path(parts ...string) string {
	return filepath.Join(append([]string{e.projectDir}, parts...)...)
}

// newTestEnv creates a project dir with templates/base-template and a clean
// generator environment.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, key := range []string{
		"FHEVM_EXAMPLE_TEMPLATE_DIR",
		"FHEVM_EXAMPLE_OUTPUT_DIR",
		"FHEVM_EXAMPLE_README",
		"FHEVM_EXAMPLE_REGISTRY",
		"FHEVM_EXAMPLE_ATOMIC",
		"FHEVM_EXAMPLE_CONFIG_PATH",
		"NO_EMOJI",
		"CLI_CMD",
	} {
		t.Setenv(key, "")
	}
	env := &testEnv{projectDir: t.TempDir()}
	writeTestFile(t, env.path("templates", "base-template", "package.json"), `{"name":"fhevm-hardhat-template"}`)
	writeTestFile(t, env.path("templates", "base-template", "hardhat.config.ts"), "export default {};")
	writeTestFile(t, env.path("templates", "base-template", "contracts", ".gitkeep"), "")
	return env
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent, stat err = %v", path, err)
	}
}

// unsetForTest removes key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
