// internal/media/thumbnails_test.go
package media

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wedding-back/internal/models"
	"wedding-back/internal/progress"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatal(err)
	}
}

func waitTerminal(t *testing.T, tr *progress.Tracker, id string) models.JobProgress {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := tr.Get(id)
		if !ok {
			t.Fatal("job disappeared")
		}
		if job.Status == models.JobCompleted || job.Status == models.JobFailed {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job never reached a terminal status")
	return models.JobProgress{}
}

func TestGeneratorProcessesStoredImages(t *testing.T) {
	base := t.TempDir()
	writeTestPNG(t, filepath.Join(base, "f", "a.png"))

	tr := progress.NewTracker(0)
	g := NewGenerator(tr, base, 8)

	w := models.Wedding{
		FolderID: "f",
		Images: []models.MediaItem{
			{ID: "a", FileUrl: "f/a.png", FileType: models.FileTypeStorage},
			{ID: "ext", FileUrl: "https://example.com/b.jpg", FileType: models.FileTypeLink},
			{ID: "gone", FileUrl: "f/missing.png", FileType: models.FileTypeStorage},
		},
	}

	id := g.Generate(w)
	job := waitTerminal(t, tr, id)

	if job.TotalImages != 2 {
		t.Errorf("link items must not count, got total %d", job.TotalImages)
	}
	if job.Percent() != 100 {
		t.Errorf("expected 100%%, got %d", job.Percent())
	}
	if !job.CompressionStats["a"].Success {
		t.Errorf("expected success for a: %+v", job.CompressionStats["a"])
	}
	if job.CompressionStats["gone"].Error == "" {
		t.Error("missing source should record a per-item error")
	}

	thumb := filepath.Join(base, "f", "thumbnails", "a_THUMBEL.jpg")
	if _, err := os.Stat(thumb); err != nil {
		t.Errorf("thumbnail not written: %v", err)
	}
}

func TestGeneratorEmptyBatchCompletes(t *testing.T) {
	tr := progress.NewTracker(0)
	g := NewGenerator(tr, t.TempDir(), 8)

	id := g.Generate(models.Wedding{FolderID: "f"})
	job := waitTerminal(t, tr, id)
	if job.Percent() != 0 {
		t.Errorf("zero total must report 0%%, got %d", job.Percent())
	}
}
