package ports

import (
	"mime/multipart"
)

// UploadStore persists uploaded files and resolves the references kept on
// a record. Save returns the reference ("uploads/<role>/<generated name>").
type UploadStore interface {
	Save(field string, fh *multipart.FileHeader) (string, error)
	Remove(ref string) error
}
