// Where: cli/internal/infra/config/project.go
// What: Project config file loading.
// Why: Read <project>/.fhevm-example/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/poruru/fhevm-examples/cli/internal/constants"
	"github.com/poruru/fhevm-examples/cli/internal/infra/envutil"
	"github.com/poruru/fhevm-examples/cli/internal/meta"
)

// ProjectConfig represents the optional per-project generator defaults.
type ProjectConfig struct {
	TemplateDir string `yaml:"template_dir,omitempty"`
	OutputDir   string `yaml:"output_dir,omitempty"`
	Readme      string `yaml:"readme,omitempty"`
	Registry    string `yaml:"registry,omitempty"`
	Atomic      bool   `yaml:"atomic,omitempty"`
}

// ProjectConfigPath returns the path to the project config file.
// FHEVM_EXAMPLE_CONFIG_PATH overrides the default location.
func ProjectConfigPath(projectRoot string) (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixConfigPath); override != "" {
		return override, nil
	}
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return "", fmt.Errorf("project root is required")
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Join(root, meta.HomeDir, meta.ConfigFile), nil
}

// LoadProjectConfig reads and parses the project config file.
// A missing file yields an empty config.
func LoadProjectConfig(fsys afero.Fs, path string) (ProjectConfig, error) {
	payload, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectConfig{}, nil
		}
		return ProjectConfig{}, fmt.Errorf("read project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("decode project config: %w", err)
	}
	return cfg, nil
}
