package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{name: "debug mode enabled", debugMode: true, wantDebug: true},
		{name: "debug mode disabled", debugMode: false, wantDebug: false},
	}

	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			assert.Equal(t, tt.wantDebug, slog.Default().Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "wordquiz", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "quiz", "word", "progress", "export", "token"}, names)
}

func TestNewWordCommand(t *testing.T) {
	cmd := newWordCommand()
	assert.True(t, cmd.HasSubCommands())

	add, _, err := cmd.Find([]string{"add"})
	require.NoError(t, err)
	assert.NotNil(t, add.Flags().Lookup("level"))
	assert.NotNil(t, add.Flags().Lookup("learner"))

	imp, _, err := cmd.Find([]string{"import"})
	require.NoError(t, err)
	assert.Equal(t, "import <file.yml>", imp.Use)
}

func TestLearnerFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid UUID", input: "7f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8"},
		{name: "not a UUID", input: "alice", wantErr: true},
		{name: "nil UUID", input: uuid.Nil.String(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag learnerFlag
			err := flag.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, flag.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, flag.String())
			assert.Equal(t, "uuid", flag.Type())
		})
	}
}

func TestCommands_RequireLearner(t *testing.T) {
	for _, args := range [][]string{
		{"quiz"},
		{"progress"},
		{"export"},
		{"token"},
		{"word", "add", "abandon"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, err := executeCommand(t, setupBrokenConfigFile(t), args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `required flag(s) "learner" not set`)
		})
	}
}

func TestCommands_InvalidLearner(t *testing.T) {
	_, err := executeCommand(t, setupBrokenConfigFile(t), "progress", "--learner", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid learner ID "alice"`)
}
