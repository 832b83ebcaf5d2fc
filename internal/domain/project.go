package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the top-level container owned by exactly one user.
type Project struct {
	ID        uuid.UUID `json:"id"        db:"id"`
	UserID    string    `json:"userId"    db:"user_id"`
	Name      string    `json:"name"      db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OwnedBy reports whether the project belongs to userID.
func (p *Project) OwnedBy(userID string) bool {
	return p != nil && userID != "" && p.UserID == userID
}
