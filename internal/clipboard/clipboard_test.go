package clipboard

import (
	"errors"
	"testing"
)

func lookPathFor(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range installed {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		goos      string
		installed []string
		want      string
		wantOK    bool
	}{
		{"darwin", []string{"pbcopy"}, "pbcopy", true},
		{"linux", []string{"xclip", "xsel"}, "xclip", true},
		{"linux", []string{"xsel"}, "xsel", true},
		{"linux", []string{"wl-copy", "xclip"}, "wl-copy", true},
		{"linux", nil, "", false},
		{"windows", []string{"cmd"}, "cmd", true},
		{"freebsd", []string{"xclip"}, "xclip", true},
	}

	for _, tt := range tests {
		c, ok := find(tt.goos, lookPathFor(tt.installed...))
		if ok != tt.wantOK || c.name != tt.want {
			t.Errorf("find(%s, %v) = %q, %v; want %q, %v", tt.goos, tt.installed, c.name, ok, tt.want, tt.wantOK)
		}
	}
}

func TestXclipArgs(t *testing.T) {
	c, _ := find("linux", lookPathFor("xclip"))
	if len(c.args) != 2 || c.args[0] != "-selection" || c.args[1] != "clipboard" {
		t.Errorf("xclip args = %v", c.args)
	}
}
