// internal/media/thumbnails.go
package media

import (
	"log"
	"os"

	"wedding-back/internal/models"
	"wedding-back/internal/progress"
	"wedding-back/pkg/imaging"
)

// Generator resizes every storage-backed image of a gallery into its
// thumbnails/ subfolder, reporting per-item progress through the tracker.
type Generator struct {
	tracker *progress.Tracker
	baseDir string
	width   int
}

func NewGenerator(tracker *progress.Tracker, baseDir string, width int) *Generator {
	return &Generator{tracker: tracker, baseDir: baseDir, width: width}
}

// Generate registers a new process for the wedding's stored images and runs
// the batch in a goroutine. The returned process id is what the client
// polls. The batch runs to completion; there is no mid-run cancellation.
func (g *Generator) Generate(w models.Wedding) string {
	var stored []models.MediaItem
	for _, img := range w.Images {
		if img.IsStored() {
			stored = append(stored, img)
		}
	}
	if w.CoverImage != nil && w.CoverImage.IsStored() {
		stored = append(stored, *w.CoverImage)
	}

	processID := g.tracker.Start("", len(stored))
	go g.run(processID, stored)
	return processID
}

func (g *Generator) run(processID string, items []models.MediaItem) {
	for _, item := range items {
		outcome := g.generateOne(item)
		if err := g.tracker.Update(processID, item.ID, outcome); err != nil {
			log.Printf("thumbnails: %v", err)
			return
		}
	}
	// No-op when Update already completed the job; covers the empty batch.
	g.tracker.Complete(processID)
}

func (g *Generator) generateOne(item models.MediaItem) models.ImageOutcome {
	src := SafeJoin(g.baseDir, item.FileUrl)
	dst := ThumbnailPath(g.baseDir, item.FileUrl)

	srcInfo, err := os.Stat(src)
	if err != nil {
		return models.ImageOutcome{Error: err.Error()}
	}
	if err := imaging.GenerateThumbnail(src, dst, g.width); err != nil {
		log.Printf("thumbnails: %s: %v", item.FileUrl, err)
		return models.ImageOutcome{Error: err.Error()}
	}

	outcome := models.ImageOutcome{Success: true, OriginalSize: srcInfo.Size()}
	if dstInfo, err := os.Stat(dst); err == nil {
		outcome.ThumbSize = dstInfo.Size()
	}
	return outcome
}
