package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rynaret/Orang/internal/orangerr"
)

func TestRootCommandUse(t *testing.T) {
	assert.Equal(t, "orang", rootCmd.Use)
}

func TestRootCommandSilenceFlags(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommandHasProfileFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("profile")
	require.NotNil(t, flag, "root command must have --profile persistent flag")
}

func TestRootCommandHasVerboseAndQuietFlags(t *testing.T) {
	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	quiet := rootCmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, quiet)
	assert.Equal(t, "q", quiet.Shorthand)
}

func TestRootCommandHasAllVerbs(t *testing.T) {
	want := []string{"find", "match", "replace", "rename", "copy", "move", "delete", "sync", "escape", "split", "list-patterns", "version", "completion"}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}
}

func TestExecuteWithHelp(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	defer rootCmd.SetOut(nil)

	code := Execute()
	assert.Equal(t, int(orangerr.ExitSuccess), code)
	assert.Contains(t, buf.String(), "Orang walks a directory tree")
}

func TestRootCmdReturnsCommand(t *testing.T) {
	cmd := RootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "orang", cmd.Use)
}

func TestResolveProfile_DefaultsToBuiltIn(t *testing.T) {
	profile, err := resolveProfile("")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, *profile.Recursive)
}
