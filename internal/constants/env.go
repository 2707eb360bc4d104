// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable suffixes to avoid typos.
package constants

// Suffixes combined with meta.EnvPrefix by envutil.HostEnvKey.
const (
	HostSuffixTemplateDir = "TEMPLATE_DIR"
	HostSuffixOutputDir   = "OUTPUT_DIR"
	HostSuffixReadme      = "README"
	HostSuffixRegistry    = "REGISTRY"
	HostSuffixAtomic      = "ATOMIC"
	HostSuffixConfigPath  = "CONFIG_PATH"
)
