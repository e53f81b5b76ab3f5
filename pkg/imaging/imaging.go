// pkg/imaging/imaging.go
package imaging

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	dimg "github.com/disintegration/imaging"
)

// GenerateThumbnail resizes the source image to the given width (height
// keeps the aspect ratio) and saves it as JPEG at dstPath, creating the
// destination directory when needed.
func GenerateThumbnail(srcPath, dstPath string, width int) error {
	src, err := dimg.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	thumb := dimg.Resize(src, width, 0, dimg.Lanczos)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create thumbnail dir: %w", err)
	}
	if err := dimg.Save(thumb, dstPath, dimg.JPEGQuality(82)); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}
	return nil
}

// ValidateImageFile checks that the file content actually is an image by
// sniffing the first bytes, independent of the declared content type.
func ValidateImageFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil {
		return err
	}

	contentType := http.DetectContentType(buffer[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("invalid file type: %s, only images allowed", contentType)
	}
	return nil
}
