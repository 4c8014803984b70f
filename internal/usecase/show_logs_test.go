package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/recur/internal/domain"
)

func TestShowLogs_Execute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recur.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o600))

	tests := []struct {
		name  string
		want  string
		lines int
	}{
		{name: "all lines", lines: 0, want: "one\ntwo\nthree"},
		{name: "last two", lines: 2, want: "two\nthree"},
		{name: "more than available", lines: 10, want: "one\ntwo\nthree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewShowLogs(path).Execute(context.Background(), ShowLogsInput{Lines: tt.lines})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Content)
			assert.Equal(t, path, out.LogPath)
		})
	}
}

func TestShowLogs_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recur.log")

	_, err := NewShowLogs(path).Execute(context.Background(), ShowLogsInput{})
	assert.ErrorIs(t, err, domain.ErrNoLogFile)
}

func TestShowLogs_Disabled(t *testing.T) {
	_, err := NewShowLogs("").Execute(context.Background(), ShowLogsInput{})
	assert.ErrorIs(t, err, domain.ErrNoLogFile)
}
