package draftfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/recur/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.October, 18, 14, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParser_ParseDrafts(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		content string
		want    []domain.TaskDraft
	}{
		{
			name: "full entries",
			content: `
- title: Water plants
  description: balcony too
  repeat: weekly
  due: 2026-10-20
- title: Pay rent
  repeat: custom
  days: [15, 1, 15]
`,
			want: []domain.TaskDraft{
				{
					Title:           "Water plants",
					Description:     "balcony too",
					RepeatFrequency: domain.RepeatWeekly,
					DueDate:         date(2026, time.October, 20),
				},
				{
					Title:           "Pay rent",
					RepeatFrequency: domain.RepeatCustom,
					CustomDays:      []int{1, 15},
					DueDate:         date(2026, time.October, 18),
				},
			},
		},
		{
			name: "unknown repeat falls back to once and days are dropped",
			content: `
- title: Renew passport
  repeat: yearly
  days: [3]
  completed: true
`,
			want: []domain.TaskDraft{
				{
					Title:           "Renew passport",
					RepeatFrequency: domain.RepeatOnce,
					DueDate:         date(2026, time.October, 18),
					Completed:       true,
				},
			},
		},
		{
			name:    "empty content",
			content: "  \n",
			wantErr: domain.ErrEmptyFile,
		},
		{
			name:    "comment only",
			content: "# nothing yet\n",
			wantErr: domain.ErrEmptyFile,
		},
		{
			name:    "empty list",
			content: "[]\n",
			wantErr: domain.ErrNoTasksInFile,
		},
		{
			name:    "missing title",
			content: "- title: ok\n- repeat: daily\n",
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "bad due date",
			content: "- title: x\n  due: 20/10/2026\n",
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "custom without days",
			content: "- title: x\n  repeat: custom\n  days: [0, 40]\n",
			wantErr: domain.ErrNoCustomDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parser{}.ParseDrafts([]byte(tt.content), today)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_ErrorNamesEntry(t *testing.T) {
	_, err := Parser{}.ParseDrafts([]byte("- title: ok\n- title: \"  \"\n"), today)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task 2")
}

func TestParser_RejectsUnknownKeys(t *testing.T) {
	_, err := Parser{}.ParseDrafts([]byte("- title: x\n  labels: [home]\n"), today)
	assert.Error(t, err)
}

func TestParser_RejectsNonList(t *testing.T) {
	_, err := Parser{}.ParseDrafts([]byte("title: x\n"), today)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: Stretch\n  repeat: daily\n"), 0o644))

	drafts, err := ReadFile(path, today)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.RepeatDaily, drafts[0].RepeatFrequency)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"), today)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
