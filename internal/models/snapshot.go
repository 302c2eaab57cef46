package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is a saved parse result: the original source text plus the
// normalized model it produced at save time.
type Snapshot struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Filename  string       `json:"filename,omitempty"`
	Dialect   string       `json:"dialect"`
	Content   string       `json:"content,omitempty"`
	Model     *SchemaModel `json:"model,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func (s *Snapshot) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}
