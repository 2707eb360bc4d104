// Where: cli/internal/infra/ui/legacy.go
// What: UserInterface adapter for commands and usecases.
// Why: Route progress to stdout and failures to stderr through one surface.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands/usecases.
type UserInterface interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
	Step(emoji, msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface writing progress to out and errors to
// errOut. Emoji is decided per stream since either may be redirected.
func NewConsoleUI(out, errOut io.Writer, outEmoji, errEmoji bool) UserInterface {
	if errOut == nil {
		errOut = out
		errEmoji = outEmoji
	}
	return consoleUI{
		out: NewWithEmoji(out, outEmoji),
		err: NewWithEmoji(errOut, errEmoji),
	}
}

type consoleUI struct {
	out *Console
	err *Console
}

func (c consoleUI) Info(msg string) {
	c.out.Info(msg)
}

func (c consoleUI) Success(msg string) {
	c.out.Success(msg)
}

func (c consoleUI) Error(msg string) {
	c.err.Error(msg)
}

func (c consoleUI) Step(emoji, msg string) {
	c.out.Header(emoji, msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.out.BlockStart(emoji, title)
	for _, kv := range rows {
		c.out.Item(kv.Key, kv.Value)
	}
	c.out.BlockEnd()
}
