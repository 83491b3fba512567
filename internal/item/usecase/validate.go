package usecase

import (
	"math"
	"strings"
	"unicode/utf8"

	"desapega-api/internal/item"
	"desapega-api/internal/model"
	pkgErrors "desapega-api/pkg/errors"
)

// Field rule bounds, counted in characters, not bytes.
const (
	minTitleLen       = 3
	minDescriptionLen = 10
)

// validateID guards identifier preconditions shared by every operation.
func validateID(id int64) error {
	if id <= 0 {
		return item.ErrInvalidID
	}
	return nil
}

// validateCreateInput checks every creation rule at once and trims string
// fields in place. All violations are reported together.
func validateCreateInput(input *item.CreateItemInput) error {
	verr := pkgErrors.NewValidationError()

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)

	if utf8.RuneCountInString(input.Title) < minTitleLen {
		verr.Add("title", "must be at least 3 characters")
	}
	if utf8.RuneCountInString(input.Description) < minDescriptionLen {
		verr.Add("description", "must be at least 10 characters")
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		verr.Add("price", "must be a finite number")
	} else if input.Price < 0 {
		verr.Add("price", "must not be negative")
	}
	if input.Status != "" && !model.ValidStatus(input.Status) {
		verr.Add("status", "must be one of DISPONIVEL, RESERVADO, DOADO_VENDIDO")
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// validateUpdateInput applies the creation rules to whichever fields are
// present, trimming string fields in place. Transition legality is checked
// separately against the loaded record.
func validateUpdateInput(input *item.UpdateItemInput) error {
	verr := pkgErrors.NewValidationError()

	if input.Title != nil {
		*input.Title = strings.TrimSpace(*input.Title)
		if utf8.RuneCountInString(*input.Title) < minTitleLen {
			verr.Add("title", "must be at least 3 characters")
		}
	}
	if input.Description != nil {
		*input.Description = strings.TrimSpace(*input.Description)
		if utf8.RuneCountInString(*input.Description) < minDescriptionLen {
			verr.Add("description", "must be at least 10 characters")
		}
	}
	if input.Price != nil {
		if math.IsNaN(*input.Price) || math.IsInf(*input.Price, 0) {
			verr.Add("price", "must be a finite number")
		} else if *input.Price < 0 {
			verr.Add("price", "must not be negative")
		}
	}
	if input.ImageURL != nil {
		*input.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Status != nil && !model.ValidStatus(*input.Status) {
		verr.Add("status", "must be one of DISPONIVEL, RESERVADO, DOADO_VENDIDO")
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}
