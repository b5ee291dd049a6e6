package usecase

import (
	"net/mail"
	"strings"

	"github.com/aetherlabs-ai/aether-crm/internal/entity"
)

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !validEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}
	if input.Email != nil && !validEmail(*input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if input.Status != nil && !entity.IsValidLeadStatus(*input.Status) {
		errs = append(errs, ValidationError{"status", "must be one of: " + strings.Join(entity.LeadStatuses, ", ")})
	}

	return errs
}

func ValidateCreateCustomerInput(input CreateCustomerInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !validEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	return errs
}

func ValidateUpdateCustomerInput(input UpdateCustomerInput) ValidationErrors {
	var errs ValidationErrors

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{"name", "must not be empty"})
	}
	if input.Email != nil && !validEmail(*input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if input.Status != nil && *input.Status != entity.CustomerStatusActive && *input.Status != entity.CustomerStatusInactive {
		errs = append(errs, ValidationError{"status", "must be active or inactive"})
	}

	return errs
}

func ValidateCreateDealInput(input CreateDealInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	}
	if input.Value < 0 {
		errs = append(errs, ValidationError{"value", "must not be negative"})
	}

	return errs
}
