package drafts

import (
	"encoding/json"
	"time"
)

// Draft is a persisted résumé-in-progress. Payload holds the structured
// document as JSON; it is written and read verbatim, validated at the write
// boundary only.
type Draft struct {
	ID        int64
	Title     string
	Payload   json.RawMessage
	Template  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the list view of a draft. Payload is deliberately excluded so
// listing stays cheap.
type Summary struct {
	ID        int64
	Title     string
	Template  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
