package record

import (
	domain "user-records-api/internal/domain/record"
)

func fromDBModel(model *Record) *domain.UserRecord {
	var u = &domain.UserRecord{
		ID:        domain.ID(model.ID),
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Phone:     model.Phone,
		Address:   model.Address,
		Image:     model.Image,
		GovtID:    model.GovtID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Records) domain.UserRecords {
	us := make(domain.UserRecords, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
