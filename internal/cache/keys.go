package cache

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// Key scheme. Every key encodes all inputs that shape its value, including
// the acting user for values gated by ownership. There is no prefix or
// wildcard invalidation: each mutation enumerates the exact keys it can make
// stale (see FeedbackChangeKeys).
//
//	user:{userId}:projects
//	user:{userId}:project:{projectId}
//	source:{sourceId}:owner
//	source:{sourceId}:feedbacks:initial
//	analytics:stats:u:{userId}:p:{projectId|all}:s:{sourceId|all}

const scopeAll = "all"

// segmentEscaper keeps externally supplied ids from forging key structure.
var segmentEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

func segment(s string) string {
	return segmentEscaper.Replace(s)
}

// ProjectsKey caches a user's project list.
func ProjectsKey(userID string) string {
	return "user:" + segment(userID) + ":projects"
}

// ProjectKey caches a single project as seen by its owner.
func ProjectKey(userID string, projectID uuid.UUID) string {
	return "user:" + segment(userID) + ":project:" + projectID.String()
}

// SourceOwnerKey caches a source's ownership chain. The value is the chain
// itself, not an authorization decision; every caller compares it against
// its own principal.
func SourceOwnerKey(sourceID uuid.UUID) string {
	return "source:" + sourceID.String() + ":owner"
}

// FeedbackHotKey caches the first page of a source's feedback listing.
func FeedbackHotKey(sourceID uuid.UUID) string {
	return "source:" + sourceID.String() + ":feedbacks:initial"
}

// AnalyticsKey caches aggregate statistics for a user within an optional
// project and source scope.
func AnalyticsKey(userID string, projectID, sourceID *uuid.UUID) string {
	return "analytics:stats:u:" + segment(userID) +
		":p:" + scopeID(projectID) +
		":s:" + scopeID(sourceID)
}

func scopeID(id *uuid.UUID) string {
	if id == nil {
		return scopeAll
	}
	return id.String()
}

// FeedbackChangeKeys lists every key whose value can change when a feedback
// item is added to or removed from the source at the end of chain: the
// source's hot listing and the three analytics scopes containing it.
// Analytics keys for other projects or sources are deliberately excluded.
//
// Adding a new aggregate dimension requires extending this list.
func FeedbackChangeKeys(chain domain.OwnerChain) []string {
	projectID := chain.ProjectID
	sourceID := chain.SourceID
	return []string{
		FeedbackHotKey(sourceID),
		AnalyticsKey(chain.UserID, &projectID, &sourceID),
		AnalyticsKey(chain.UserID, &projectID, nil),
		AnalyticsKey(chain.UserID, nil, nil),
	}
}
