// Package draftfile reads task drafts from YAML files used to seed a session.
//
// The file is a YAML sequence of entries, each with a title and optional
// description, repeat, due (YYYY-MM-DD), days and completed keys:
//
//	[{title: Water plants, repeat: weekly, due: 2026-10-20},
//	 {title: Pay rent, repeat: custom, days: [1, 15]}]
//
// Nothing is ever written back; the file is input only.
package draftfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/recur/internal/domain"
)

// Ensure Parser implements domain.DraftParser.
var _ domain.DraftParser = Parser{}

// entry is the YAML shape of one draft.
// Fields are ordered to minimize memory padding.
type entry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Repeat      string `yaml:"repeat"`
	Due         string `yaml:"due"`
	Days        []int  `yaml:"days"`
	Completed   bool   `yaml:"completed"`
}

// Parser parses YAML draft files.
type Parser struct{}

// ParseDrafts parses content into drafts. Entries without a due date are due today.
// Unknown repeat values fall back to once. Unknown keys are rejected.
func (Parser) ParseDrafts(content []byte, today time.Time) ([]domain.TaskDraft, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var entries []entry
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyFile
		}
		return nil, fmt.Errorf("decode drafts: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoTasksInFile
	}

	drafts := make([]domain.TaskDraft, 0, len(entries))
	for i, e := range entries {
		d, err := e.toDraft(today)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// ReadFile reads and parses a draft file from disk.
func ReadFile(path string, today time.Time) ([]domain.TaskDraft, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft file: %w", err)
	}
	return Parser{}.ParseDrafts(content, today)
}

func (e entry) toDraft(today time.Time) (domain.TaskDraft, error) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return domain.TaskDraft{}, domain.ErrEmptyTitle
	}

	due := domain.StartOfDay(today)
	if s := strings.TrimSpace(e.Due); s != "" {
		parsed, err := domain.ParseDate(s, today.Location())
		if err != nil {
			return domain.TaskDraft{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, e.Due)
		}
		due = parsed
	}

	freq := domain.ParseRepeatFrequency(e.Repeat)
	days := domain.NormalizeCustomDays(e.Days)
	if freq == domain.RepeatCustom && len(days) == 0 {
		return domain.TaskDraft{}, domain.ErrNoCustomDays
	}
	if freq != domain.RepeatCustom {
		days = nil
	}

	return domain.TaskDraft{
		Title:           title,
		Description:     strings.TrimSpace(e.Description),
		RepeatFrequency: freq,
		CustomDays:      days,
		DueDate:         due,
		Completed:       e.Completed,
	}, nil
}
