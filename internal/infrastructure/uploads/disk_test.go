package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*DiskStore, string) {
	t.Helper()
	root := t.TempDir()
	s, err := New(zap.NewNop(), root)
	require.NoError(t, err)
	return s, root
}

func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", "application/octet-stream")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	fhs := req.MultipartForm.File[field]
	require.Len(t, fhs, 1)
	return fhs[0]
}

func TestNew_CreatesRoleDirectories(t *testing.T) {
	_, root := newTestStore(t)

	for _, dir := range []string{"images", "ids"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// idempotent on an existing layout
	_, err := New(zap.NewNop(), root)
	assert.NoError(t, err)
}

func TestSave_GeneratedNameAndDestination(t *testing.T) {
	s, root := newTestStore(t)

	tests := []struct {
		name     string
		field    string
		filename string
		wantDir  string
		wantExt  string
	}{
		{"image field goes to images", FieldImage, "portrait.png", "images", ".png"},
		{"govtId field goes to ids", FieldGovtID, "passport.pdf", "ids", ".pdf"},
		{"unknown field goes to ids", "attachment", "scan.jpeg", "ids", ".jpeg"},
		{"extension lowercased", FieldImage, "SHOUTY.JPG", "images", ".jpg"},
		{"no extension", FieldImage, "raw", "images", ""},
		{"traversal filename neutralized", FieldImage, "../../etc/passwd.png", "images", ".png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fh := fileHeader(t, tt.field, tt.filename, []byte("content"))
			ref, err := s.Save(tt.field, fh)
			require.NoError(t, err)

			assert.Regexp(t, `^uploads/`+tt.wantDir+`/\d+-\d+`+regexpQuote(tt.wantExt)+`$`, ref)
			assert.False(t, strings.Contains(ref, ".."))

			rel := strings.TrimPrefix(ref, "uploads/")
			b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			require.NoError(t, err)
			assert.Equal(t, []byte("content"), b)
		})
	}
}

func TestRemove(t *testing.T) {
	s, root := newTestStore(t)

	fh := fileHeader(t, FieldImage, "x.png", []byte("content"))
	ref, err := s.Save(FieldImage, fh)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ref))
	rel := strings.TrimPrefix(ref, "uploads/")
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	// second removal reports the missing file
	assert.Error(t, s.Remove(ref))
}

func TestRemove_RejectsEscapingReferences(t *testing.T) {
	s, _ := newTestStore(t)

	for _, ref := range []string{
		"uploads/../secret",
		"uploads/images/../../secret",
		"/etc/passwd",
		"images/x.png",
		"uploads/",
	} {
		assert.Error(t, s.Remove(ref), ref)
	}
}

func regexpQuote(s string) string {
	return strings.ReplaceAll(s, ".", `\.`)
}
