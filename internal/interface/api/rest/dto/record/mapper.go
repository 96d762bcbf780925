package record

import (
	domain "user-records-api/internal/domain/record"
)

func ToResponseRecord(uDomain domain.UserRecord, baseURL string) Record {
	var u = Record{
		ID:        uint64(uDomain.ID),
		FirstName: uDomain.FirstName,
		LastName:  uDomain.LastName,
		Email:     uDomain.Email,
		Phone:     uDomain.Phone,
		Address:   uDomain.Address,
		Image:     uDomain.Image,
		GovtID:    uDomain.GovtID,
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
		ImageURL:  fileURL(baseURL, uDomain.Image),
		GovtIDURL: fileURL(baseURL, uDomain.GovtID),
	}

	return u
}

func ToResponseRecords(usDomain domain.UserRecords, baseURL string) Records {
	us := make(Records, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseRecord(*u, baseURL)
	}

	return us
}

// ToDomainRecord builds the entity persisted by create. File references
// come from the upload middleware, nil when the request carried no file.
func ToDomainRecord(f Form, imageRef, govtIDRef *string) domain.UserRecord {
	var u = domain.UserRecord{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		Image:     imageRef,
		GovtID:    govtIDRef,
	}

	return u
}

// ToPatch maps the original API's "empty means untouched" multipart
// semantics onto explicit present-or-absent fields.
func ToPatch(f Form, imageRef, govtIDRef *string) domain.Patch {
	var p domain.Patch

	p.FirstName = optional(f.FirstName)
	p.LastName = optional(f.LastName)
	p.Email = optional(f.Email)
	p.Phone = optional(f.Phone)
	p.Address = optional(f.Address)
	p.Image = imageRef
	p.GovtID = govtIDRef

	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fileURL(baseURL string, ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	u := baseURL + "/" + *ref
	return &u
}
