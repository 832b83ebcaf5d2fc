package domain

import "github.com/google/uuid"

// EntityKind identifies a level of the ownership chain.
type EntityKind string

const (
	EntityProject  EntityKind = "project"
	EntitySource   EntityKind = "source"
	EntityFeedback EntityKind = "feedback"
)

// OwnerChain is the resolved ancestry of an entity up to its owning user.
// Fields below the resolved level are zero (a project chain has no SourceID).
type OwnerChain struct {
	UserID     string    `json:"userId"               db:"user_id"`
	ProjectID  uuid.UUID `json:"projectId"            db:"project_id"`
	SourceID   uuid.UUID `json:"sourceId,omitempty"   db:"source_id"`
	FeedbackID uuid.UUID `json:"feedbackId,omitempty" db:"feedback_id"`
}

// OwnedBy reports whether the chain terminates at userID.
func (c OwnerChain) OwnedBy(userID string) bool {
	return userID != "" && c.UserID == userID
}
