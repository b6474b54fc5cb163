package drafts

import (
	"encoding/json"
	"time"
)

// DraftResponse is the outward-facing representation of a stored draft.
type DraftResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	Template  string          `json:"template"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SummaryResponse is one row of the /list-cvs response.
type SummaryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(draft Draft) DraftResponse {
	return DraftResponse{
		ID:        draft.ID,
		Title:     draft.Title,
		Data:      draft.Payload,
		Template:  draft.Template,
		CreatedAt: draft.CreatedAt,
		UpdatedAt: draft.UpdatedAt,
	}
}

func toSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		ID:        s.ID,
		Title:     s.Title,
		Template:  s.Template,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
