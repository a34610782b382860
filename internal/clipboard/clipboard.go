// Package clipboard copies text to the system clipboard through the
// platform's clipboard command.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoCommand is returned when no clipboard command is installed.
var ErrNoCommand = errors.New("no clipboard command available")

// command is a clipboard program and its arguments.
type command struct {
	name string
	args []string
}

// candidates lists clipboard commands for goos in order of preference.
func candidates(goos string) []command {
	switch goos {
	case "darwin":
		return []command{{name: "pbcopy"}}
	case "windows":
		return []command{{name: "cmd", args: []string{"/c", "clip"}}}
	default:
		return []command{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}
}

// find returns the first candidate for goos that lookPath can resolve.
func find(goos string, lookPath func(string) (string, error)) (command, bool) {
	for _, c := range candidates(goos) {
		if _, err := lookPath(c.name); err == nil {
			return c, true
		}
	}
	return command{}, false
}

// Write copies text to the system clipboard.
func Write(text string) error {
	c, ok := find(runtime.GOOS, exec.LookPath)
	if !ok {
		return ErrNoCommand
	}

	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	_, ok := find(runtime.GOOS, exec.LookPath)
	return ok
}
