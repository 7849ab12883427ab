package normalizer

import (
	"errors"
	"fmt"
	"regexp"

	"lifelist/internal/models"
)

// Validation errors.
var (
	ErrNilExport           = errors.New("export envelope is nil")
	ErrMissingLastSync     = errors.New("envelope missing profile.lastSync")
	ErrMissingExportedAt   = errors.New("envelope missing exportedAt")
	ErrInvalidDate         = errors.New("observation has invalid date")
	ErrOutOfOrder          = errors.New("observations not in ascending date order")
	ErrMissingRegion       = errors.New("observation missing region")
	ErrTooManyObservations = errors.New("observation count exceeds maximum")
)

// Validator checks the structural invariants of a produced envelope.
// The zero rules (MaxObservations 0, RequireRegion false) only enforce
// the invariants the pipeline itself guarantees.
type Validator struct {
	datePattern *regexp.Regexp

	// MaxObservations caps the envelope size when > 0.
	MaxObservations int
	// RequireRegion rejects observations without a region code.
	RequireRegion bool
}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{
		datePattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	}
}

// Validate checks if an envelope meets requirements.
func (v *Validator) Validate(export *models.Export) error {
	if export == nil {
		return ErrNilExport
	}

	if export.Profile.LastSync == "" {
		return ErrMissingLastSync
	}

	if export.ExportedAt == "" {
		return ErrMissingExportedAt
	}

	if v.MaxObservations > 0 && len(export.Observations) > v.MaxObservations {
		return fmt.Errorf("%w: %d > %d", ErrTooManyObservations, len(export.Observations), v.MaxObservations)
	}

	for i, obs := range export.Observations {
		if !v.datePattern.MatchString(obs.Date) {
			return fmt.Errorf("%w at index %d: %q", ErrInvalidDate, i, obs.Date)
		}

		if i > 0 && obs.Date < export.Observations[i-1].Date {
			return fmt.Errorf("%w at index %d", ErrOutOfOrder, i)
		}

		if v.RequireRegion && obs.Region == "" {
			return fmt.Errorf("%w at index %d", ErrMissingRegion, i)
		}
	}

	return nil
}
