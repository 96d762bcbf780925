package ports

import (
	"context"

	"user-records-api/internal/domain/record"
)

type RecordService interface {
	FindRecords(ctx context.Context) (record.UserRecords, error)
	FindRecordByID(ctx context.Context, id record.ID) (*record.UserRecord, error)
	CreateRecord(ctx context.Context, u record.UserRecord) (*record.UserRecord, error)
	UpdateRecord(ctx context.Context, id record.ID, patch record.Patch) (*record.UserRecord, error)
	DeleteRecord(ctx context.Context, id record.ID) (*record.UserRecord, error)
}
