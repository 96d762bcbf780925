package services

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-records-api/internal/application/ports"
	domain "user-records-api/internal/domain/record"
	"user-records-api/internal/infrastructure/mq"
	"user-records-api/internal/interface/api/rest/dto/record"
)

// RecordService orchestrates the two stores. File persistence and the row
// mutation are not transactional: files are written first (by the upload
// middleware), the row second. The compensations here are best-effort.
type RecordService struct {
	recordRepository domain.Repository
	uploadStore      ports.UploadStore
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
	logger           *zap.Logger
	baseURL          string
}

func NewRecordService(
	recordRepository domain.Repository,
	uploadStore ports.UploadStore,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	baseURL string,
) ports.RecordService {
	return &RecordService{
		recordRepository: recordRepository,
		uploadStore:      uploadStore,
		mq:               mq,
		mCounter:         mCounter,
		logger:           logger,
		baseURL:          baseURL,
	}
}

func (rs *RecordService) FindRecords(ctx context.Context) (domain.UserRecords, error) {
	us, err := rs.recordRepository.FetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	return us, nil
}

func (rs *RecordService) FindRecordByID(ctx context.Context, id domain.ID) (*domain.UserRecord, error) {
	u, err := rs.recordRepository.FetchRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// CreateRecord inserts the record. If the insert fails the files already
// written for this request are rolled back, so a rejected create leaves
// no orphans behind.
func (rs *RecordService) CreateRecord(ctx context.Context, u domain.UserRecord) (*domain.UserRecord, error) {
	uRet, err := rs.recordRepository.CreateRecord(ctx, u)
	if err != nil {
		rs.removeFile(u.Image)
		rs.removeFile(u.GovtID)
		return nil, err
	}

	if uRet != nil {
		rs.publish(http.MethodPost, uRet)
	}

	rs.mCounter.WithLabelValues("record_created_total").Inc()

	return uRet, nil
}

// UpdateRecord applies a partial update. A file reference in the patch
// supersedes the stored one; the superseded file is removed from disk
// after the row update lands (best-effort). Returns nil for unknown ids.
func (rs *RecordService) UpdateRecord(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.UserRecord, error) {
	prev, err := rs.recordRepository.FetchRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		rs.removeFile(patch.Image)
		rs.removeFile(patch.GovtID)
		return nil, nil
	}

	uRet, err := rs.recordRepository.UpdateRecord(ctx, id, patch)
	if err != nil {
		rs.removeFile(patch.Image)
		rs.removeFile(patch.GovtID)
		return nil, err
	}
	if uRet == nil {
		// row vanished between fetch and update
		rs.removeFile(patch.Image)
		rs.removeFile(patch.GovtID)
		return nil, nil
	}

	if patch.Image != nil {
		rs.removeSuperseded(prev.Image, patch.Image)
	}
	if patch.GovtID != nil {
		rs.removeSuperseded(prev.GovtID, patch.GovtID)
	}

	rs.publish(http.MethodPut, uRet)
	rs.mCounter.WithLabelValues("record_updated_total").Inc()

	return uRet, nil
}

// DeleteRecord removes the row and both associated files. File removal is
// best-effort: a missing or undeletable file is logged and the deletion
// still succeeds. Only store failures are fatal. Returns nil for unknown
// ids.
func (rs *RecordService) DeleteRecord(ctx context.Context, id domain.ID) (*domain.UserRecord, error) {
	uRet, err := rs.recordRepository.DeleteRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, nil
	}

	rs.removeFile(uRet.Image)
	rs.removeFile(uRet.GovtID)

	rs.publish(http.MethodDelete, uRet)
	rs.mCounter.WithLabelValues("record_deleted_total").Inc()

	return uRet, nil
}

func (rs *RecordService) publish(method string, u *domain.UserRecord) {
	rs.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   method,
		RecordID: strconv.FormatUint(uint64(u.ID), 10),
		Payload:  record.ToResponseRecord(*u, rs.baseURL),
	}
}

func (rs *RecordService) removeFile(ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := rs.uploadStore.Remove(*ref); err != nil {
		rs.logger.Warn("file removal failed", zap.String("ref", *ref), zap.Error(err))
		return
	}
	rs.mCounter.WithLabelValues("record_files_removed_total").Inc()
}

func (rs *RecordService) removeSuperseded(old, replacement *string) {
	if old == nil || *old == "" {
		return
	}
	if replacement != nil && *replacement == *old {
		return
	}
	rs.removeFile(old)
}
