package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args, reading the config from configPath when it is set.
func executeCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&out)
	err := cmd.Execute()
	return out.String(), err
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unclosed"), 0644))
	return path
}
