// Package upload stores admin-submitted files under unique collision-safe
// names and manages their lifecycle when records are edited or removed.
package upload

import (
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/mozillazg/go-unidecode"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var (
	// ErrExtensionNotAllowed is returned when a file's extension is outside
	// the configured whitelist.
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
	// ErrFileTooLarge is returned when a file exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	// ErrInvalidReference is returned for references that are empty or try
	// to leave the storage directory.
	ErrInvalidReference = errors.New("invalid asset reference")
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// StoredFile describes a persisted upload. Width/Height are zero for
// non-raster files.
type StoredFile struct {
	Ref    string
	Size   int64
	Width  int
	Height int
}

// Manager validates and persists uploads in a single directory.
// Concurrent distinct uploads are safe because every stored name embeds a
// fresh random token.
type Manager struct {
	dir     string
	urlPath string
	allowed map[string]struct{}
	maxSize int64
}

// NewManager builds a Manager. Extensions are matched case-insensitively
// and without the leading dot.
func NewManager(dir, urlPath string, allowedExts []string, maxSize int64) *Manager {
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}

	return &Manager{
		dir:     dir,
		urlPath: strings.TrimRight(urlPath, "/"),
		allowed: allowed,
		maxSize: maxSize,
	}
}

// Validate checks extension and size without touching the disk.
func (m *Manager) Validate(fh *multipart.FileHeader) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if ext == "" {
		return ErrExtensionNotAllowed
	}
	if _, ok := m.allowed[ext]; !ok {
		return fmt.Errorf("%w: .%s", ErrExtensionNotAllowed, ext)
	}
	if m.maxSize > 0 && fh.Size > m.maxSize {
		return fmt.Errorf("%w: %d bytes", ErrFileTooLarge, fh.Size)
	}
	return nil
}

// Store validates the file and writes it under a unique generated name.
// Nothing is written when validation fails.
func (m *Manager) Store(fh *multipart.FileHeader) (StoredFile, error) {
	if err := m.Validate(fh); err != nil {
		return StoredFile{}, err
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("create upload dir: %w", err)
	}

	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	ref := fmt.Sprintf("%s_%s", token, sanitizeFilename(fh.Filename))
	dst := filepath.Join(m.dir, ref)

	src, err := fh.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create upload file: %w", err)
	}

	size, err := io.Copy(out, src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return StoredFile{}, fmt.Errorf("write upload file: %w", err)
	}

	stored := StoredFile{Ref: ref, Size: size}
	stored.Width, stored.Height = probeDimensions(dst)

	return stored, nil
}

// StoreAll persists a batch of files all-or-nothing: every file is
// validated before any write, and files already written in this batch are
// removed when a later write fails.
func (m *Manager) StoreAll(fhs []*multipart.FileHeader) ([]StoredFile, error) {
	for _, fh := range fhs {
		if err := m.Validate(fh); err != nil {
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
	}

	stored := make([]StoredFile, 0, len(fhs))
	for _, fh := range fhs {
		file, err := m.Store(fh)
		if err != nil {
			for _, s := range stored {
				m.Delete(s.Ref)
			}
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
		stored = append(stored, file)
	}

	return stored, nil
}

// Replace stores the new file first and only then removes the superseded
// one. Cleanup failures are swallowed: a content update must not fail
// because an old file was already gone.
func (m *Manager) Replace(old string, fh *multipart.FileHeader) (StoredFile, error) {
	stored, err := m.Store(fh)
	if err != nil {
		return StoredFile{}, err
	}

	if old != "" {
		m.Delete(old)
	}

	return stored, nil
}

// Delete removes a stored file. Deleting a missing or empty reference is
// a no-op. References carrying path separators are rejected so a crafted
// value can never reach outside the storage directory.
func (m *Manager) Delete(ref string) error {
	if ref == "" {
		return nil
	}
	if strings.ContainsAny(ref, `/\`) || ref == "." || ref == ".." {
		return ErrInvalidReference
	}

	if err := os.Remove(filepath.Join(m.dir, ref)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// URL returns the public URL for a stored reference, or "" when empty.
func (m *Manager) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return path.Join(m.urlPath, ref)
}

// sanitizeFilename flattens the original name to a safe ASCII form: path
// components are stripped, non-Latin characters transliterated and
// anything unsafe collapsed to a hyphen.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unidecode.Unidecode(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	return name
}

func probeDimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
