package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-records-api/internal/infrastructure/uploads"
)

type uploadResult struct {
	image  string
	govtID string
	ran    bool
}

func setupUpload(t *testing.T) (*gin.Engine, string, *uploadResult) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	store, err := uploads.New(zap.NewNop(), root)
	require.NoError(t, err)

	res := &uploadResult{}
	r := gin.New()
	r.POST("/upload", Upload(store, zap.NewNop()), func(c *gin.Context) {
		res.ran = true
		res.image = c.GetString(CtxImageRef)
		res.govtID = c.GetString(CtxGovtIDRef)
		c.Status(http.StatusOK)
	})

	return r, root, res
}

func buildMultipart(t *testing.T, files map[string][]byte, mimeType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="f.png"`)
		h.Set("Content-Type", mimeType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func countStoredFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	for _, dir := range []string{"images", "ids"} {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		require.NoError(t, err)
		n += len(entries)
	}
	return n
}

func TestUpload_NonMultipartPassesThrough(t *testing.T) {
	r, _, res := setupUpload(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("firstName=Ada"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, res.ran)
	assert.Empty(t, res.image)
	assert.Empty(t, res.govtID)
}

func TestUpload_SavesAndExposesRefs(t *testing.T) {
	r, root, res := setupUpload(t)

	body, ct := buildMultipart(t, map[string][]byte{
		"image":  []byte("img"),
		"govtId": []byte("doc"),
	}, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, res.ran)

	nameRe := regexp.MustCompile(`^uploads/images/\d+-\d+\.png$`)
	assert.Regexp(t, nameRe, res.image)
	assert.Regexp(t, `^uploads/ids/\d+-\d+\.png$`, res.govtID)
	assert.Equal(t, 2, countStoredFiles(t, root))
}

func TestUpload_RejectsDisallowedType(t *testing.T) {
	r, root, res := setupUpload(t)

	body, ct := buildMultipart(t, map[string][]byte{"image": []byte("#!/bin/sh")}, "application/x-sh")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, res.ran)
	// rejected before anything was written
	assert.Equal(t, 0, countStoredFiles(t, root))
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	r, root, res := setupUpload(t)

	body, ct := buildMultipart(t, map[string][]byte{
		"image": bytes.Repeat([]byte("a"), int(maxFileSize)+1),
	}, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, res.ran)
	assert.Equal(t, 0, countStoredFiles(t, root))
}

func TestUpload_RejectsUnexpectedField(t *testing.T) {
	r, root, res := setupUpload(t)

	body, ct := buildMultipart(t, map[string][]byte{"avatar": []byte("img")}, "image/png")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, res.ran)
	assert.Equal(t, 0, countStoredFiles(t, root))
}
