package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SourceTokenPrefix marks public ingestion tokens.
const SourceTokenPrefix = "src_"

// sourceTokenBytes is the amount of randomness in a token (128 bits).
const sourceTokenBytes = 16

// Source is an integration endpoint inside a project. Token is the public
// identifier used by untrusted clients to submit feedback; it grants no read
// or management access.
type Source struct {
	ID        uuid.UUID `json:"id"        db:"id"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id"`
	Name      string    `json:"name"      db:"name"`
	Token     string    `json:"sourceId"  db:"source_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewSourceToken returns "src_" followed by 32 lowercase hex characters.
func NewSourceToken() (string, error) {
	buf := make([]byte, sourceTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate source token: %w", err)
	}
	return SourceTokenPrefix + hex.EncodeToString(buf), nil
}

// IsSourceToken reports whether s has the shape of a source token.
func IsSourceToken(s string) bool {
	if !strings.HasPrefix(s, SourceTokenPrefix) {
		return false
	}
	rest := s[len(SourceTokenPrefix):]
	if len(rest) != sourceTokenBytes*2 {
		return false
	}
	for _, c := range rest {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
