package record

import (
	"time"
)

type (
	ID uint64

	// UserRecord is the sole entity: contact fields plus two optional
	// stored-file references. Image/GovtID hold relative paths into the
	// upload store (e.g. "uploads/images/1716.....-83622.png"), nil when
	// no file was ever attached.
	UserRecord struct {
		ID        ID
		FirstName string
		LastName  string
		Email     string
		Phone     string
		Address   string
		Image     *string
		GovtID    *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	UserRecords []*UserRecord

	// Patch is a partial update: nil fields are left untouched by the
	// store. A non-nil pointer to an empty string would clear a column,
	// but the HTTP layer never produces one (absent and empty form
	// values both map to nil, matching the API contract).
	Patch struct {
		FirstName *string
		LastName  *string
		Email     *string
		Phone     *string
		Address   *string
		Image     *string
		GovtID    *string
	}
)
