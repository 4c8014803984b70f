package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/recur/internal/domain"
	"github.com/runoshun/recur/internal/usecase/shared"
)

// ImportDraftsInput contains the parameters for importing drafts.
type ImportDraftsInput struct {
	Content []byte // Draft file content (YAML list)
	DryRun  bool   // If true, parse and validate without adding tasks
}

// ImportDraftsOutput contains the result of importing drafts.
type ImportDraftsOutput struct {
	Tasks  []domain.Task      // Added tasks (empty in dry-run mode)
	Drafts []domain.TaskDraft // Validated drafts in file order
}

// ImportDrafts seeds the store from a draft file.
// Either every draft is added or none is.
type ImportDrafts struct {
	store  domain.TaskStore
	parser domain.DraftParser
	clock  domain.Clock
	logger domain.Logger
}

// NewImportDrafts creates a new ImportDrafts use case.
func NewImportDrafts(
	store domain.TaskStore,
	parser domain.DraftParser,
	clock domain.Clock,
	logger domain.Logger,
) *ImportDrafts {
	return &ImportDrafts{
		store:  store,
		parser: parser,
		clock:  clock,
		logger: logger,
	}
}

// Execute parses and adds the drafts.
func (uc *ImportDrafts) Execute(_ context.Context, in ImportDraftsInput) (*ImportDraftsOutput, error) {
	parsed, err := uc.parser.ParseDrafts(in.Content, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("parse drafts: %w", err)
	}

	// Validate everything before touching the store.
	drafts := make([]domain.TaskDraft, 0, len(parsed))
	for i, d := range parsed {
		normalized, err := shared.NormalizeDraft(d)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, normalized)
	}

	out := &ImportDraftsOutput{Drafts: drafts}
	if in.DryRun {
		return out, nil
	}

	out.Tasks = make([]domain.Task, 0, len(drafts))
	for _, d := range drafts {
		out.Tasks = append(out.Tasks, uc.store.Add(d))
	}

	if uc.logger != nil {
		uc.logger.Info("", "import", fmt.Sprintf("imported %d tasks", len(out.Tasks)))
	}

	return out, nil
}
