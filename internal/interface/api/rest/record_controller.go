package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-records-api/internal/application/ports"
	recordDB "user-records-api/internal/infrastructure/db/postgres/record"
	"user-records-api/internal/interface/api/rest/dto/record"
	"user-records-api/internal/interface/api/rest/middleware"
	"user-records-api/internal/interface/api/rest/validator"
)

type RecordController struct {
	recordService ports.RecordService
	logger        *zap.Logger
	baseURL       string
}

func NewRecordController(
	r *gin.Engine,
	recordService ports.RecordService,
	logger *zap.Logger,
	uploadStore ports.UploadStore,
	baseURL string,
) *RecordController {
	rc := &RecordController{
		recordService: recordService,
		logger:        logger,
		baseURL:       baseURL,
	}

	upload := middleware.Upload(uploadStore, logger)

	r.GET(RouteUsers, rc.GetUsersHandler)
	r.GET(RouteUser, rc.GetUserHandler)
	r.POST(RouteUsers, upload, rc.CreateUserHandler)
	r.PUT(RouteUser, upload, rc.UpdateUserHandler)
	r.DELETE(RouteUser, rc.DeleteUserHandler)

	return rc
}

func (rc *RecordController) GetUsersHandler(c *gin.Context) {
	users, err := rc.recordService.FindRecords(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		rc.logger.Error("FindRecords() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecords(users, rc.baseURL))
}

func (rc *RecordController) GetUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	u, err := rc.recordService.FindRecordByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		rc.logger.Error("FindRecordByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecord(*u, rc.baseURL))
}

func (rc *RecordController) CreateUserHandler(c *gin.Context) {
	form := formFromContext(c)
	if errs := validator.ValidateCreate(form); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "firstName, lastName & email are required",
			"details": errs,
		})
		return
	}

	uDomain := record.ToDomainRecord(form, fileRef(c, middleware.CtxImageRef), fileRef(c, middleware.CtxGovtIDRef))

	u, err := rc.recordService.CreateRecord(c.Request.Context(), uDomain)
	if err != nil {
		if errors.Is(err, recordDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		rc.logger.Error("CreateRecord() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, record.ToResponseRecord(*u, rc.baseURL))
}

func (rc *RecordController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	form := formFromContext(c)
	if errs := validator.ValidateUpdate(form); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	patch := record.ToPatch(form, fileRef(c, middleware.CtxImageRef), fileRef(c, middleware.CtxGovtIDRef))

	u, err := rc.recordService.UpdateRecord(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, recordDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		rc.logger.Error("UpdateRecord() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecord(*u, rc.baseURL))
}

func (rc *RecordController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	u, err := rc.recordService.DeleteRecord(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user"},
		)
		rc.logger.Error("DeleteRecord() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func formFromContext(c *gin.Context) record.Form {
	return record.Form{
		FirstName: strings.TrimSpace(c.PostForm("firstName")),
		LastName:  strings.TrimSpace(c.PostForm("lastName")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Phone:     strings.TrimSpace(c.PostForm("phone")),
		Address:   strings.TrimSpace(c.PostForm("address")),
	}
}

func fileRef(c *gin.Context, key string) *string {
	v, ok := c.Get(key)
	if !ok {
		return nil
	}
	ref, ok := v.(string)
	if !ok || ref == "" {
		return nil
	}

	return &ref
}
