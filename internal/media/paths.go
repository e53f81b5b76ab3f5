// internal/media/paths.go
package media

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"wedding-back/internal/models"
)

// ThumbnailSuffix is appended to the original basename of every derived
// thumbnail, which always lives in a thumbnails/ subfolder next to the
// original.
const ThumbnailSuffix = "_THUMBEL.jpg"

// SafeJoin joins a client-supplied file path to the media base directory,
// stripping leading slashes and any ".." segments first so the result can
// never escape the base.
func SafeJoin(baseDir, fileUrl string) string {
	clean := strings.TrimLeft(fileUrl, "/")
	parts := strings.Split(path.Clean(clean), "/")
	kept := parts[:0]
	for _, p := range parts {
		if p == ".." || p == "." || p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return filepath.Join(baseDir, filepath.Join(kept...))
}

// ThumbnailPath computes the derived thumbnail location for a stored file:
// <folder>/thumbnails/<basename>_THUMBEL.jpg.
func ThumbnailPath(baseDir, fileUrl string) string {
	full := SafeJoin(baseDir, fileUrl)
	dir := filepath.Dir(full)
	base := filepath.Base(full)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "thumbnails", base+ThumbnailSuffix)
}

// RemoveStored deletes the backing file and derived thumbnail of a
// storage-backed item. Link items are left alone. Failures are logged and
// swallowed; record-level deletion never depends on filesystem cleanup.
func RemoveStored(baseDir string, item models.MediaItem) {
	if !item.IsStored() {
		return
	}
	if err := os.Remove(SafeJoin(baseDir, item.FileUrl)); err != nil && !os.IsNotExist(err) {
		log.Printf("media: failed to remove %s: %v", item.FileUrl, err)
	}
	if err := os.Remove(ThumbnailPath(baseDir, item.FileUrl)); err != nil && !os.IsNotExist(err) {
		log.Printf("media: failed to remove thumbnail of %s: %v", item.FileUrl, err)
	}
}

// RemoveFolder deletes a wedding's entire media directory. Best-effort: the
// caller's record deletion has already been persisted.
func RemoveFolder(baseDir, folderID string) {
	if folderID == "" {
		return
	}
	if err := os.RemoveAll(SafeJoin(baseDir, folderID)); err != nil {
		log.Printf("media: failed to remove folder %s: %v", folderID, err)
	}
}
