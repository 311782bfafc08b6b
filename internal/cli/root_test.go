package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/observability"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"render", "ticks", "explore", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.Version != buildinfo.Get().Version {
		t.Errorf("Version = %q", root.Version)
	}
}

func TestRootCommandVerboseRegistersHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(&bytes.Buffer{}, log.DebugLevel)
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if _, ok := observability.Render().(*loggingHooks); !ok {
		t.Error("verbose mode should register logging render hooks")
	}
	if !strings.Contains(out.String(), appName) {
		t.Errorf("cache path output = %q", out.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out.String(), appName) {
		t.Error("bash completion should mention the program name")
	}
}
