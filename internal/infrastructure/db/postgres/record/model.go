package record

import (
	"time"
)

type (
	Record struct {
		ID        uint64
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
	Records []*Record
)
