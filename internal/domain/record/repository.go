package record

import (
	"context"
)

// Repository methods return (nil, nil) when no row matches.
type Repository interface {
	FetchRecords(ctx context.Context) (UserRecords, error)
	FetchRecordByID(ctx context.Context, id ID) (*UserRecord, error)
	CreateRecord(ctx context.Context, req UserRecord) (*UserRecord, error)
	UpdateRecord(ctx context.Context, id ID, patch Patch) (*UserRecord, error)
	DeleteRecord(ctx context.Context, id ID) (*UserRecord, error)
}
