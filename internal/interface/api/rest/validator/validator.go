package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"user-records-api/internal/domain/record"
	dto "user-records-api/internal/interface/api/rest/dto/record"
)

// ParseID accepts the numeric path ids the API uses.
func ParseID(s string) (record.ID, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}

	return record.ID(id), nil
}

// ValidateCreate enforces the required fields of the create operation.
// Values are expected pre-trimmed (FormFromContext does that).
func ValidateCreate(f dto.Form) map[string]string {
	errs := make(map[string]string)

	if f.FirstName == "" {
		errs["firstName"] = "firstName is required"
	}
	if f.LastName == "" {
		errs["lastName"] = "lastName is required"
	}
	if f.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "invalid email format"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateUpdate checks only what the partial update supplies.
func ValidateUpdate(f dto.Form) map[string]string {
	errs := make(map[string]string)

	if f.Email != "" {
		if _, err := mail.ParseAddress(f.Email); err != nil {
			errs["email"] = "invalid email format"
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
