package upload

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(t.TempDir(), "/static/uploads", []string{"jpg", "png", "txt"}, 1024)
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestStoreRejectsExtensionBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"png"}, 1024)

	fh := makeFileHeader(t, "payload.exe", []byte("nope"))
	if _, err := m.Store(fh); !errors.Is(err, ErrExtensionNotAllowed) {
		t.Fatalf("expected ErrExtensionNotAllowed, got %v", err)
	}

	if got := dirEntries(t, dir); len(got) != 0 {
		t.Fatalf("expected no files written, got %v", got)
	}
}

func TestStoreRejectsOversizeBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"txt"}, 4)

	fh := makeFileHeader(t, "big.txt", []byte("12345"))
	if _, err := m.Store(fh); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	if got := dirEntries(t, dir); len(got) != 0 {
		t.Fatalf("expected no files written, got %v", got)
	}
}

func TestStoreGeneratesUniqueSafeNames(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"txt"}, 1024)

	first, err := m.Store(makeFileHeader(t, "report.txt", []byte("one")))
	if err != nil {
		t.Fatalf("failed to store first file: %v", err)
	}
	second, err := m.Store(makeFileHeader(t, "report.txt", []byte("two")))
	if err != nil {
		t.Fatalf("failed to store second file: %v", err)
	}

	if first.Ref == second.Ref {
		t.Fatalf("expected distinct refs for identical original names, got %q", first.Ref)
	}

	for _, ref := range []string{first.Ref, second.Ref} {
		if strings.ContainsAny(ref, `/\`) {
			t.Fatalf("ref %q contains path separators", ref)
		}
		if !strings.HasSuffix(ref, "_report.txt") {
			t.Fatalf("ref %q does not keep the sanitized original name", ref)
		}
		if _, err := os.Stat(filepath.Join(dir, ref)); err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
	}
}

func TestStoreSanitizesHostilePaths(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"txt"}, 1024)

	stored, err := m.Store(makeFileHeader(t, `../../опасное имя.txt`, []byte("x")))
	if err != nil {
		t.Fatalf("failed to store file: %v", err)
	}

	if strings.ContainsAny(stored.Ref, `/\`) || strings.Contains(stored.Ref, "..") {
		t.Fatalf("ref %q is not path-safe", stored.Ref)
	}
	if _, err := os.Stat(filepath.Join(dir, stored.Ref)); err != nil {
		t.Fatalf("stored file missing inside the upload dir: %v", err)
	}
}

func TestStoreProbesImageDimensions(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"png"}, 1<<20)

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	stored, err := m.Store(makeFileHeader(t, "pixel.png", buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to store png: %v", err)
	}
	if stored.Width != 3 || stored.Height != 2 {
		t.Fatalf("expected 3x2 dimensions, got %dx%d", stored.Width, stored.Height)
	}
}

func TestReplaceDeletesOldFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"txt"}, 1024)

	old, err := m.Store(makeFileHeader(t, "old.txt", []byte("old")))
	if err != nil {
		t.Fatalf("failed to store old file: %v", err)
	}

	stored, err := m.Replace(old.Ref, makeFileHeader(t, "new.txt", []byte("new")))
	if err != nil {
		t.Fatalf("failed to replace file: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, old.Ref)); !os.IsNotExist(err) {
		t.Fatalf("expected old file to be removed, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, stored.Ref)); err != nil {
		t.Fatalf("expected new file to exist: %v", err)
	}
}

func TestReplaceKeepsOldOnValidationFailure(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"txt"}, 1024)

	old, err := m.Store(makeFileHeader(t, "old.txt", []byte("old")))
	if err != nil {
		t.Fatalf("failed to store old file: %v", err)
	}

	if _, err := m.Replace(old.Ref, makeFileHeader(t, "bad.exe", []byte("x"))); !errors.Is(err, ErrExtensionNotAllowed) {
		t.Fatalf("expected ErrExtensionNotAllowed, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, old.Ref)); err != nil {
		t.Fatalf("old file must survive a failed replace: %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	stored, err := m.Store(makeFileHeader(t, "gone.txt", []byte("x")))
	if err != nil {
		t.Fatalf("failed to store file: %v", err)
	}

	if err := m.Delete(stored.Ref); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := m.Delete(stored.Ref); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if err := m.Delete(""); err != nil {
		t.Fatalf("deleting empty ref must be a no-op, got %v", err)
	}
}

func TestDeleteRejectsPathEscapes(t *testing.T) {
	m := newTestManager(t)

	for _, ref := range []string{"../secret", `..\secret`, "a/b"} {
		if err := m.Delete(ref); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference for %q, got %v", ref, err)
		}
	}
}

func TestStoreAllIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/uploads", []string{"txt"}, 1024)

	files := []*multipart.FileHeader{
		makeFileHeader(t, "one.txt", []byte("1")),
		makeFileHeader(t, "two.exe", []byte("2")),
		makeFileHeader(t, "three.txt", []byte("3")),
	}

	if _, err := m.StoreAll(files); !errors.Is(err, ErrExtensionNotAllowed) {
		t.Fatalf("expected ErrExtensionNotAllowed, got %v", err)
	}
	if got := dirEntries(t, dir); len(got) != 0 {
		t.Fatalf("expected no files written, got %v", got)
	}

	stored, err := m.StoreAll([]*multipart.FileHeader{
		makeFileHeader(t, "one.txt", []byte("1")),
		makeFileHeader(t, "two.txt", []byte("2")),
	})
	if err != nil {
		t.Fatalf("failed to store batch: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored files, got %d", len(stored))
	}
	if got := dirEntries(t, dir); len(got) != 2 {
		t.Fatalf("expected 2 files on disk, got %v", got)
	}
}

func TestURL(t *testing.T) {
	m := newTestManager(t)

	if got := m.URL(""); got != "" {
		t.Fatalf("expected empty URL for empty ref, got %q", got)
	}
	if got := m.URL("abc_file.png"); got != "/static/uploads/abc_file.png" {
		t.Fatalf("unexpected URL %q", got)
	}
}
