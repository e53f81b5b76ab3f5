// internal/handlers/media.go
package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wedding-back/internal/config"
	"wedding-back/internal/media"
	"wedding-back/internal/models"
	"wedding-back/internal/progress"
	"wedding-back/internal/storage"
	"wedding-back/internal/store"
	"wedding-back/pkg/imaging"
)

// UploadMedia accepts a multipart file for a wedding, validates it against
// the upload guard and records it as a gallery image or as the cover.
func UploadMedia(repo *store.WeddingRepo, guard media.Guard, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.PostForm("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wedding id"})
			return
		}
		kind := c.DefaultPostForm("kind", media.KindImage)
		isCover := c.PostForm("isCover") == "true"

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}
		if err := guard.Check(file, kind); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		w, err := repo.FindByID(id)
		if err != nil {
			writeRepoError(c, err)
			return
		}

		filename := media.GenerateFilename(file.Filename)
		fileUrl := w.FolderID + "/" + filename
		dest := media.SafeJoin(cfg.MediaDir, fileUrl)
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare media folder"})
			return
		}
		if err := c.SaveUploadedFile(file, dest); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}
		if kind == media.KindImage {
			if err := imaging.ValidateImageFile(dest); err != nil {
				os.Remove(dest)
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		item := models.MediaItem{FileUrl: fileUrl, FileType: models.FileTypeStorage}
		if isCover {
			item.FileType = models.FileTypeCoverStorage
			w, err = repo.SetCoverImage(id, item)
		} else {
			w, err = repo.AddImage(id, item)
		}
		if err != nil {
			os.Remove(dest)
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

// ServeImage streams a file from the public media directory. The requested
// path is sanitized before joining so it can never escape the base dir.
func ServeImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileUrl := c.Query("fileUrl")
		if fileUrl == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fileUrl is required"})
			return
		}
		path := media.SafeJoin(cfg.MediaDir, fileUrl)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		if c.Query("isCachingTriggle") == "true" {
			c.Header("Cache-Control", "public, max-age=31536000, immutable")
		}
		c.File(path)
	}
}

// GenerateThumbnails starts a thumbnail batch for every storage-backed image
// of the wedding and returns the process id the client should poll.
func GenerateThumbnails(repo *store.WeddingRepo, gen *media.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			WeddingID int `json:"weddingId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := repo.FindByID(req.WeddingID)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		processID := gen.Generate(w)
		c.JSON(http.StatusOK, gin.H{"processId": processID, "status": models.JobRunning})
	}
}

// ThumbnailProgress reports the polled state of a thumbnail batch.
func ThumbnailProgress(tracker *progress.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		processID := c.Query("processId")
		job, ok := tracker.Get(processID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown process id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"progress":         job.Percent(),
			"processedImages":  job.ProcessedImages,
			"totalImages":      job.TotalImages,
			"currentImage":     job.CurrentImage,
			"status":           job.Status,
			"compressionStats": job.CompressionStats,
		})
	}
}

// Backup pushes the JSON data files and the media tree to the configured
// S3-compatible bucket.
func Backup(minioClient *storage.MinIOClient, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if minioClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backup storage is not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Minute)
		defer cancel()

		prefix := time.Now().Format("2006-01-02T15-04-05")
		dataCount, err := minioClient.BackupTree(ctx, cfg.DataDir, prefix+"/data")
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		mediaCount, err := minioClient.BackupTree(ctx, cfg.MediaDir, prefix+"/media")
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"prefix":     prefix,
			"dataFiles":  dataCount,
			"mediaFiles": mediaCount,
		})
	}
}
