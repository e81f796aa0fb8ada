package paths

import (
	"path/filepath"
	"testing"
)

func TestPortableHome(t *testing.T) {
	t.Setenv("JOBSLOTS_HOME", "/tmp/js")

	if got, want := ConfigDir(), filepath.Join("/tmp/js", "config", "jobslots"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
	if got, want := LogDir(), filepath.Join("/tmp/js", "state", "jobslots", "logs"); got != want {
		t.Errorf("LogDir() = %q, want %q", got, want)
	}
}

func TestXDGHome(t *testing.T) {
	t.Setenv("JOBSLOTS_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	if got, want := ConfigDir(), filepath.Join("/xdg/config", "jobslots"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
	if got, want := StateDir(), filepath.Join("/xdg/state", "jobslots"); got != want {
		t.Errorf("StateDir() = %q, want %q", got, want)
	}
}
