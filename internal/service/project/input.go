package project

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/loopback-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	name := domain.NormalizeName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
