// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Decide emoji support and the displayed command name once for every command.
package command

import (
	"io"
	"os"
	"strings"

	"github.com/poruru/fhevm-examples/cli/internal/infra/interaction"
	"github.com/poruru/fhevm-examples/cli/internal/meta"
)

// cliName is the command name used in help and hints. CLI_CMD overrides it
// when the binary runs behind a wrapper script.
func cliName() string {
	if name := strings.TrimSpace(os.Getenv("CLI_CMD")); name != "" {
		return name
	}
	return meta.Slug
}

// emojiEnabled reports whether progress output should carry emoji.
// NO_EMOJI, TERM=dumb, and non-terminal writers disable it.
func emojiEnabled(out io.Writer, noEmoji bool) bool {
	if noEmoji {
		return false
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false
	}
	if strings.ToLower(strings.TrimSpace(os.Getenv("TERM"))) == "dumb" {
		return false
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file)
	}
	return false
}
