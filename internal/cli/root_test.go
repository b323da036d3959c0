package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRootCommandWiresSubcommands(t *testing.T) {
	cmd := newRootCmd("test")

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"serve", "tui", "contacts", "stats"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestContactsRejectsInvalidSort(t *testing.T) {
	err := runCommand(t, "contacts", "--sort", "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid sort")
}

func TestServeRequiresSourceConfig(t *testing.T) {
	err := runCommand(t, "serve")
	require.Error(t, err)
	require.Contains(t, err.Error(), "spreadsheet_id")
}

func TestStatsRequiresSourceConfig(t *testing.T) {
	err := runCommand(t, "stats")
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
}
