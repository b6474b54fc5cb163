package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resumeforge-backend/internal/render"
)

// Service coordinates validation and persistence for drafts. Payloads are
// validated against the structured document shape before they touch the
// store; nothing partially parsed is ever persisted.
type Service struct {
	Repo Repo

	// now is swappable for tests.
	now func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Save validates and persists a new draft, returning its id.
func (s *Service) Save(ctx context.Context, title string, payload json.RawMessage, templateID string) (int64, error) {
	title, payload, templateID, err := s.normalize(title, payload, templateID)
	if err != nil {
		return 0, err
	}

	now := s.timestamp()
	return s.Repo.Create(ctx, Draft{
		Title:     title,
		Payload:   payload,
		Template:  templateID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Load fetches a draft by id.
func (s *Service) Load(ctx context.Context, id int64) (Draft, error) {
	return s.Repo.Get(ctx, id)
}

// List returns all draft summaries ordered by recency.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.Repo.ListSummaries(ctx)
}

// Update validates and overwrites an existing draft.
func (s *Service) Update(ctx context.Context, id int64, title string, payload json.RawMessage, templateID string) error {
	title, payload, templateID, err := s.normalize(title, payload, templateID)
	if err != nil {
		return err
	}

	return s.Repo.Update(ctx, Draft{
		ID:        id,
		Title:     title,
		Payload:   payload,
		Template:  templateID,
		UpdatedAt: s.timestamp(),
	})
}

// Delete removes a draft. Deleting a missing id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *Service) normalize(title string, payload json.RawMessage, templateID string) (string, json.RawMessage, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled CV"
	}

	if len(payload) == 0 {
		return "", nil, "", fmt.Errorf("%w: data is required", ErrInvalidInput)
	}
	var doc render.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return "", nil, "", fmt.Errorf("%w: data is not a valid CV document", ErrInvalidInput)
	}

	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		templateID = render.DefaultTemplate
	}

	return title, payload, templateID, nil
}

func (s *Service) timestamp() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}
