// internal/media/guard.go
package media

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload kinds accepted by the guard.
const (
	KindImage = "image"
	KindVideo = "video"
)

// GuardError identifies which upload constraint was violated.
type GuardError struct {
	Constraint string // "kind", "type" or "size"
	Message    string
}

func (e *GuardError) Error() string {
	return e.Message
}

// Guard validates uploads before any byte is written to disk.
type Guard struct {
	MaxImageBytes int64
	MaxVideoBytes int64
}

// Check validates the declared kind, the MIME type prefix and the size
// ceiling for that kind. Nothing is written when a constraint fails.
func (g Guard) Check(header *multipart.FileHeader, kind string) error {
	var limit int64
	switch kind {
	case KindImage:
		limit = g.MaxImageBytes
	case KindVideo:
		limit = g.MaxVideoBytes
	default:
		return &GuardError{Constraint: "kind", Message: fmt.Sprintf("unknown upload kind %q", kind)}
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, kind+"/") {
		return &GuardError{
			Constraint: "type",
			Message:    fmt.Sprintf("file type %s does not match declared kind %s", contentType, kind),
		}
	}
	if header.Size > limit {
		return &GuardError{
			Constraint: "size",
			Message:    fmt.Sprintf("file exceeds the %d byte limit for %s uploads", limit, kind),
		}
	}
	return nil
}

// GenerateFilename builds a collision-free name from the current time, a
// short random suffix and the original extension, so no directory listing
// is needed before saving.
func GenerateFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), suffix, ext)
}
