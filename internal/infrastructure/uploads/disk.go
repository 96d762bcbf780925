package uploads

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Logical field names of the two file slots a record can carry.
const (
	FieldImage  = "image"
	FieldGovtID = "govtId"
)

// URLPrefix is the path under which stored files are served; every
// reference returned by Save starts with it (without the leading slash).
const URLPrefix = "uploads"

const (
	imagesDir  = "images"
	idsDir     = "ids"
	maxExtLen  = 10
	randBucket = 1_000_000_000
)

var extSafeRe = regexp.MustCompile(`[^a-z0-9]+`)

// DiskStore persists uploaded files under a local root with two fixed
// subdirectories keyed by logical role, so an image and a govtId never
// collide even with identical original names.
type DiskStore struct {
	logger *zap.Logger
	root   string
}

func New(logger *zap.Logger, root string) (*DiskStore, error) {
	for _, dir := range []string{imagesDir, idsDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}

	return &DiskStore{
		logger: logger,
		root:   root,
	}, nil
}

// Save writes the uploaded file under a generated name and returns its
// reference, e.g. "uploads/images/1716999999999-83622.png". The client
// filename is never reused verbatim: only its sanitized extension survives.
func (s *DiskStore) Save(field string, fh *multipart.FileHeader) (string, error) {
	dir := idsDir
	if field == FieldImage {
		dir = imagesDir
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(randBucket), safeExt(fh.Filename))
	dst := filepath.Join(s.root, dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open multipart file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err = io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close %s: %w", dst, err)
	}

	ref := path.Join(URLPrefix, dir, name)
	s.logger.Debug("file stored", zap.String("field", field), zap.String("ref", ref))

	return ref, nil
}

// Remove deletes a previously stored file by its reference. References
// that escape the upload namespace are rejected.
func (s *DiskStore) Remove(ref string) error {
	rel, ok := strings.CutPrefix(path.Clean(ref), URLPrefix+"/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file reference %q", ref)
	}

	return os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
}

// safeExt extracts a lowercase ASCII-only extension from the original
// filename; diacritics are stripped first, anything unsafe is dropped.
func safeExt(original string) string {
	s := strings.ReplaceAll(strings.TrimSpace(original), "\\", "/")
	s = path.Base(s)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	ext = extSafeRe.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if ext == "" {
		return ""
	}
	if len(ext) > maxExtLen {
		ext = ext[:maxExtLen]
	}

	return "." + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
