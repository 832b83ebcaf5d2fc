package feedback

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// ListFeedbackInput holds the parameters for listing a source's feedback.
// Limit 0 means DefaultLimit. Query is either a case-insensitive message
// search or "#<n>" to address the item with serial number n.
type ListFeedbackInput struct {
	SourceID uuid.UUID
	Page     int
	Limit    int
	Query    string
}

// Validate checks all fields and collects all errors.
func (i ListFeedbackInput) Validate() error {
	var errs []domain.FieldError

	if i.SourceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "source_id", Message: "required"})
	}
	if i.Page < 0 || i.Page > MaxPage {
		errs = append(errs, domain.FieldError{Field: "page", Message: fmt.Sprintf("must be between 0 and %d", MaxPage)})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxLimit)})
	}
	if utf8.RuneCountInString(i.Query) > MaxQueryLength {
		errs = append(errs, domain.FieldError{Field: "query", Message: fmt.Sprintf("max %d characters", MaxQueryLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListFeedbackInput) normalized() ListFeedbackInput {
	if i.Limit == 0 {
		i.Limit = DefaultLimit
	}
	i.Query = strings.TrimSpace(i.Query)
	return i
}

// SubmitInput is a feedback submission from an untrusted client.
type SubmitInput struct {
	Rating   int
	Message  string
	Metadata json.RawMessage
}

func (i SubmitInput) validate(l Limits) error {
	var errs []domain.FieldError

	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating)})
	}
	if utf8.RuneCountInString(i.Message) > l.MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("max %d characters", l.MaxMessageLength)})
	}
	if len(i.Metadata) > 0 {
		if len(i.Metadata) > l.MaxMetadataBytes {
			errs = append(errs, domain.FieldError{Field: "metadata", Message: fmt.Sprintf("max %d bytes", l.MaxMetadataBytes)})
		} else if !json.Valid(i.Metadata) {
			errs = append(errs, domain.FieldError{Field: "metadata", Message: "must be valid JSON"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
