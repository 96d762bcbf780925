package middleware

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-records-api/internal/application/ports"
	"user-records-api/internal/infrastructure/uploads"
)

// Context keys under which saved file references are handed to the
// controller.
const (
	CtxImageRef  = "upload.image"
	CtxGovtIDRef = "upload.govtId"
)

// 5MB per file, at most one image and one govtId
const (
	maxFileSize  = int64(5 << 20)
	maxFileCount = 2
)

var allowedTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"application/pdf": {},
}

// Upload intercepts multipart bodies before the controller: it validates
// every attached file (count, per-field cardinality, size, declared
// type), persists accepted ones and exposes their references via the
// context. On rejection nothing written in this request survives and the
// controller never runs.
func Upload(store ports.UploadStore, logger *zap.Logger) gin.HandlerFunc {
	ctxKeys := map[string]string{
		uploads.FieldImage:  CtxImageRef,
		uploads.FieldGovtID: CtxGovtIDRef,
	}

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			c.Next()
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}

		total := 0
		for _, fhs := range form.File {
			total += len(fhs)
		}
		if total > maxFileCount {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "too many files"})
			return
		}

		var saved []string
		reject := func(status int, msg string) {
			for _, ref := range saved {
				if rmErr := store.Remove(ref); rmErr != nil {
					logger.Warn("upload rollback failed", zap.String("ref", ref), zap.Error(rmErr))
				}
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
		}

		for field, fhs := range form.File {
			key, known := ctxKeys[field]
			if !known {
				reject(http.StatusBadRequest, "unexpected file field: "+field)
				return
			}
			if len(fhs) > 1 {
				reject(http.StatusBadRequest, "at most one file per field: "+field)
				return
			}

			fh := fhs[0]
			if msg := checkFile(fh); msg != "" {
				reject(http.StatusBadRequest, msg)
				return
			}

			ref, err := store.Save(field, fh)
			if err != nil {
				logger.Error("upload save failed", zap.String("field", field), zap.Error(err))
				reject(http.StatusInternalServerError, "failed to store uploaded file")
				return
			}
			saved = append(saved, ref)
			c.Set(key, ref)
		}

		c.Next()
	}
}

func checkFile(fh *multipart.FileHeader) string {
	if fh.Size <= 0 || fh.Size > maxFileSize {
		return "file too large or empty"
	}
	if _, ok := allowedTypes[fh.Header.Get("Content-Type")]; !ok {
		return "invalid file type. Only JPEG, PNG, GIF, and PDF are allowed."
	}

	return ""
}
