// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/poruru/fhevm-examples/cli/internal/meta"
)

// HostEnvKey constructs a tool-level environment variable name.
// Example: HostEnvKey("OUTPUT_DIR") returns "FHEVM_EXAMPLE_OUTPUT_DIR".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a tool-level environment variable with surrounding
// whitespace removed.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// GetHostEnvBool parses a tool-level boolean variable.
// The second return value is false when the variable is unset.
func GetHostEnvBool(suffix string) (bool, bool, error) {
	raw := GetHostEnv(suffix)
	if raw == "" {
		return false, false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("parse %s: %w", HostEnvKey(suffix), err)
	}
	return value, true, nil
}
