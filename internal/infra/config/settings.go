// Where: cli/internal/infra/config/settings.go
// What: Effective generator settings.
// Why: Merge flags, environment, config file, and defaults in one place.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/poruru/fhevm-examples/cli/internal/constants"
	"github.com/poruru/fhevm-examples/cli/internal/domain/readme"
	"github.com/poruru/fhevm-examples/cli/internal/infra/envutil"
	"github.com/poruru/fhevm-examples/cli/internal/meta"
)

// Overrides carries values supplied on the command line.
// Empty strings and false mean "not set".
type Overrides struct {
	TemplateDir string
	OutputDir   string
	Readme      string
	Registry    string
	Atomic      bool
}

// Settings are the resolved inputs for a generation run.
// Paths are absolute.
type Settings struct {
	TemplateDir string
	OutputDir   string
	Readme      readme.Mode
	Registry    string
	Atomic      bool
}

// Resolve computes settings with precedence flag > env > config file > default.
// Relative paths are resolved against projectDir.
func Resolve(fsys afero.Fs, projectDir string, flags Overrides) (Settings, error) {
	cfgPath, err := ProjectConfigPath(projectDir)
	if err != nil {
		return Settings{}, err
	}
	file, err := LoadProjectConfig(fsys, cfgPath)
	if err != nil {
		return Settings{}, err
	}

	mode, err := readme.ParseMode(firstNonEmpty(
		flags.Readme,
		envutil.GetHostEnv(constants.HostSuffixReadme),
		file.Readme,
	))
	if err != nil {
		return Settings{}, err
	}

	atomic := file.Atomic
	if value, set, err := envutil.GetHostEnvBool(constants.HostSuffixAtomic); err != nil {
		return Settings{}, err
	} else if set {
		atomic = value
	}
	if flags.Atomic {
		atomic = true
	}

	registry := firstNonEmpty(
		flags.Registry,
		envutil.GetHostEnv(constants.HostSuffixRegistry),
		file.Registry,
	)
	if registry != "" {
		registry = absPath(projectDir, registry)
	}

	return Settings{
		TemplateDir: absPath(projectDir, firstNonEmpty(
			flags.TemplateDir,
			envutil.GetHostEnv(constants.HostSuffixTemplateDir),
			file.TemplateDir,
			meta.DefaultTemplateDir,
		)),
		OutputDir: absPath(projectDir, firstNonEmpty(
			flags.OutputDir,
			envutil.GetHostEnv(constants.HostSuffixOutputDir),
			file.OutputDir,
			meta.DefaultOutputDir,
		)),
		Readme:   mode,
		Registry: registry,
		Atomic:   atomic,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func absPath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
