// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool name, env prefix, and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "fhevm-example"
	Slug      = "fhevm-example"
	EnvPrefix = "FHEVM_EXAMPLE"

	// Directory Layout
	HomeDir            = ".fhevm-example"
	ConfigFile         = "config.yaml"
	DefaultTemplateDir = "templates/base-template"
	DefaultOutputDir   = "result"

	// Generated project layout
	ContractsDir    = "contracts"
	TestDir         = "test"
	ReadmeFile      = "README.md"
	ContractFileExt = ".sol"
	TestFileExt     = ".ts"
)
