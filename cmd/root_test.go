package cmd

import "testing"

func TestRootRegistersSubcommands(t *testing.T) {
	want := map[string]bool{
		"resolve": false,
		"graph":   false,
		"watch":   false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Fatalf("subcommand %q is not registered", name)
		}
	}
}
