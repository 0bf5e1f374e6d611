// Package types provides request and response type definitions shared across
// the HTTP surface.
package types

import (
	"github.com/go-playground/validator/v10"
)

// PreferenceRequest is the submission body for POST /preferences and
// PUT /preferences/{id}. All preference fields are optional free text; only
// length caps are enforced, never vocabulary.
type PreferenceRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Education string `json:"education,omitempty" validate:"omitempty,max=100"`
	Skills    string `json:"skills,omitempty" validate:"omitempty,max=500"`
	Sector    string `json:"sector,omitempty" validate:"omitempty,max=100"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=100"`
}

// PreferenceFields is the echo of submitted fields returned in responses.
type PreferenceFields struct {
	Education *string `json:"education"`
	Skills    *string `json:"skills"`
	Sector    *string `json:"sector"`
	Location  *string `json:"location"`
}

// FieldError is one enumerated validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate validates the PreferenceRequest using the validator.
func (r *PreferenceRequest) Validate() []FieldError {
	validate := validator.New()
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	return extractFieldErrors(err)
}

// extractFieldErrors converts validator errors into the enumerated field
// error list carried in 400 responses.
func extractFieldErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "request", Message: "invalid request"}}
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fields = append(fields, FieldError{
			Field:   ve.Field(),
			Message: "failed on rule: " + ve.Tag(),
		})
	}
	return fields
}
