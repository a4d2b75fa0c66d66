package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseLevel(test.input))
		})
	}
}

func TestNewWritesConsoleAndFile(t *testing.T) {
	var console, file bytes.Buffer
	log := New(&console, &file, "info")

	log.Debug().Msg("hidden")
	log.Info().Str("game", "abc123").Msg("game over")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "game over")

	var line map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &line))
	assert.Equal(t, "abc123", line["game"])
	assert.Equal(t, "info", line["level"])
}

func TestOpenLogFile(t *testing.T) {
	f, err := OpenLogFile("")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = OpenLogFile(filepath.Join(t.TempDir(), "battleship.log"))
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.NoError(t, f.Close())
}
