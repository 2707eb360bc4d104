// Where: cli/internal/command/args.go
// What: Raw argument scanning.
// Why: The first occurrence of a flag wins, while kong keeps the last one.
package command

import "strings"

// scanFlagValue returns the value of the first occurrence of flag in args,
// accepting both "--flag value" and "--flag=value". found is false when the
// flag is absent. Scanning stops at "--".
func scanFlagValue(args []string, flag string) (value string, found bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return "", false
		}
		if arg == flag {
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", true
		}
		if strings.HasPrefix(arg, flag+"=") {
			return strings.TrimPrefix(arg, flag+"="), true
		}
	}
	return "", false
}
