package commands

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"scripts", "tasks", "tmux"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("Find(%q): %v", name, err)
		}
		if cmd.Name() != name {
			t.Fatalf("Find(%q) resolved to %q", name, cmd.Name())
		}
		if cmd.Run == nil {
			t.Fatalf("%q has no run function", name)
		}
	}
}
