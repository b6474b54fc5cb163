package drafts

import "context"

// Repo defines persistence operations for drafts.
type Repo interface {
	Create(ctx context.Context, draft Draft) (int64, error)
	Get(ctx context.Context, id int64) (Draft, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
	Update(ctx context.Context, draft Draft) error
	Delete(ctx context.Context, id int64) error
}
