package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd(&App{UserID: "local"})

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"checkin", "task", "constraint", "schedule", "summary", "profile"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_NormalizesUnderscoredFlags(t *testing.T) {
	root := NewRootCmd(&App{UserID: "local"})

	cmd, _, err := root.Find([]string{"task", "update"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--clear_due"}))
	assert.True(t, cmd.Flags().Changed("clear-due"))
}

func TestReadEventsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	payload := `[{"id":"ev-1","summary":"Standup","start":"2025-06-16T09:00:00Z","end":"2025-06-16T09:30:00Z"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	events, err := readEventsFile(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Standup", events[0].Summary)
	assert.Equal(t, 9, events[0].Start.UTC().Hour())

	_, err = readEventsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateOptionalDate(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-06-30"))
	assert.Error(t, validateOptionalDate("June 30"))
}

func TestValidateOptionalPositiveInt(t *testing.T) {
	assert.NoError(t, validateOptionalPositiveInt(""))
	assert.NoError(t, validateOptionalPositiveInt("45"))
	assert.Error(t, validateOptionalPositiveInt("-3"))
	assert.Error(t, validateOptionalPositiveInt("soon"))
}
