// internal/media/media_test.go
package media

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wedding-back/internal/models"
)

func TestSafeJoinStripsTraversal(t *testing.T) {
	base := "/srv/media"
	cases := map[string]string{
		"folder/a.jpg":          filepath.Join(base, "folder", "a.jpg"),
		"/folder/a.jpg":         filepath.Join(base, "folder", "a.jpg"),
		"../../etc/passwd":      filepath.Join(base, "etc", "passwd"),
		"folder/../../../x.jpg": filepath.Join(base, "x.jpg"),
	}
	for in, want := range cases {
		if got := SafeJoin(base, in); got != want {
			t.Errorf("SafeJoin(%q) = %q, want %q", in, got, want)
		}
	}
	for in := range cases {
		if !strings.HasPrefix(SafeJoin(base, in), base) {
			t.Errorf("SafeJoin(%q) escaped the base dir", in)
		}
	}
}

func TestThumbnailPath(t *testing.T) {
	got := ThumbnailPath("/srv/media", "1700000000/photo.png")
	want := filepath.Join("/srv/media", "1700000000", "thumbnails", "photo_THUMBEL.jpg")
	if got != want {
		t.Errorf("ThumbnailPath = %q, want %q", got, want)
	}
}

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{Filename: name, Size: size, Header: textproto.MIMEHeader{}}
	h.Header.Set("Content-Type", contentType)
	return h
}

func TestGuardChecks(t *testing.T) {
	g := Guard{MaxImageBytes: 100, MaxVideoBytes: 1000}

	if err := g.Check(header("a.jpg", "image/jpeg", 50), KindImage); err != nil {
		t.Errorf("valid image rejected: %v", err)
	}

	err := g.Check(header("a.pdf", "application/pdf", 50), KindImage)
	var ge *GuardError
	if !errors.As(err, &ge) || ge.Constraint != "type" {
		t.Errorf("expected type constraint failure, got %v", err)
	}

	err = g.Check(header("a.jpg", "image/jpeg", 500), KindImage)
	if !errors.As(err, &ge) || ge.Constraint != "size" {
		t.Errorf("expected size constraint failure, got %v", err)
	}

	// The video ceiling is the larger one.
	if err := g.Check(header("a.mp4", "video/mp4", 500), KindVideo); err != nil {
		t.Errorf("valid video rejected: %v", err)
	}

	err = g.Check(header("a.jpg", "image/jpeg", 50), "document")
	if !errors.As(err, &ge) || ge.Constraint != "kind" {
		t.Errorf("expected kind constraint failure, got %v", err)
	}
}

func TestGenerateFilename(t *testing.T) {
	a := GenerateFilename("Photo de Mariage.JPG")
	b := GenerateFilename("Photo de Mariage.JPG")
	if a == b {
		t.Error("generated filenames must not collide")
	}
	if !strings.HasSuffix(a, ".jpg") {
		t.Errorf("original extension should be kept lowercased: %s", a)
	}
}

func TestRemoveStoredSkipsLinks(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "f", "thumbnails"), 0755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(base, "f", "a.jpg")
	thumb := filepath.Join(base, "f", "thumbnails", "a_THUMBEL.jpg")
	for _, p := range []string{file, thumb} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	RemoveStored(base, models.MediaItem{FileUrl: "f/a.jpg", FileType: models.FileTypeLink})
	if _, err := os.Stat(file); err != nil {
		t.Error("link item must not delete files")
	}

	RemoveStored(base, models.MediaItem{FileUrl: "f/a.jpg", FileType: models.FileTypeStorage})
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("stored file should be deleted")
	}
	if _, err := os.Stat(thumb); !os.IsNotExist(err) {
		t.Error("thumbnail should be deleted")
	}

	// Deleting an already-gone item is silent.
	RemoveStored(base, models.MediaItem{FileUrl: "f/a.jpg", FileType: models.FileTypeStorage})
}
