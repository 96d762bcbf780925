package record

import (
	"time"
)

type (
	// Record mirrors the stored row plus the two derived URLs. Image and
	// GovtID are the stored references; ImageURL and GovtIDURL are
	// computed per response from the configured public base URL and are
	// never persisted.
	Record struct {
		ID        uint64    `json:"id"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone"`
		Address   string    `json:"address"`
		Image     *string   `json:"image"`
		GovtID    *string   `json:"govtId"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
		ImageURL  *string   `json:"imageUrl"`
		GovtIDURL *string   `json:"govtIdUrl"`
	}
	Records []Record
)
