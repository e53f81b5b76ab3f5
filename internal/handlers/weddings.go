// internal/handlers/weddings.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wedding-back/internal/models"
	"wedding-back/internal/store"
)

// writeRepoError maps the store error taxonomy onto HTTP statuses: missing
// records are 404, rejected input 400, primary I/O failures 500.
func writeRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrImageNotFound),
		errors.Is(err, store.ErrPageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func ListWeddings(repo *store.WeddingRepo, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		weddings, err := repo.List()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !isAdmin(c, jwtSecret) {
			visible := []models.Wedding{}
			for _, w := range weddings {
				if w.Visible {
					visible = append(visible, w)
				}
			}
			weddings = visible
		}
		c.JSON(http.StatusOK, gin.H{"weddings": weddings})
	}
}

func GetWedding(repo *store.WeddingRepo, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wedding id"})
			return
		}
		w, err := repo.FindByID(id)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !w.Visible && !isAdmin(c, jwtSecret) {
			c.JSON(http.StatusNotFound, gin.H{"error": store.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func UpdateWedding(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wedding id"})
			return
		}
		var upd models.WeddingUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := repo.UpdateFields(id, upd)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func NewEvent(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := repo.Create()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusCreated, w)
	}
}

func DeleteEvent(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int `json:"id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.Delete(req.ID); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func UpdateVisibility(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID int `json:"id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := repo.ToggleVisible(req.ID)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func UpdateImagesOrder(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			WeddingID int                `json:"weddingId" binding:"required"`
			Images    []models.MediaItem `json:"images"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := repo.SetImagesOrder(req.WeddingID, req.Images)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func UpdateWeddingsOrder(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Changes []store.IDChange `json:"changes" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.Reorder(req.Changes); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// UpdateInputs updates either one image's description or the wedding's own
// fields; the two cases are mutually exclusive by presence of imageId and
// description.
func UpdateInputs(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID          int     `json:"id" binding:"required"`
			ImageID     string  `json:"imageId"`
			Description *string `json:"description"`
			models.WeddingUpdate
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.ImageID != "" && req.Description != nil {
			w, err := repo.SetImageDescription(req.ID, req.ImageID, *req.Description)
			if err != nil {
				writeRepoError(c, err)
				return
			}
			c.JSON(http.StatusOK, w)
			return
		}

		upd := req.WeddingUpdate
		upd.Description = req.Description
		w, err := repo.UpdateFields(req.ID, upd)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

// AddUrl appends a link-type image, or replaces the cover when the declared
// file type is a cover variant.
func AddUrl(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID       int    `json:"id" binding:"required"`
			FileUrl  string `json:"fileUrl" binding:"required"`
			FileType string `json:"fileType" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.MediaItem{FileUrl: req.FileUrl, FileType: req.FileType}
		var (
			w   models.Wedding
			err error
		)
		switch req.FileType {
		case models.FileTypeCoverLink, models.FileTypeCoverStorage:
			w, err = repo.SetCoverImage(req.ID, item)
		case models.FileTypeLink, models.FileTypeStorage:
			w, err = repo.AddImage(req.ID, item)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown file type"})
			return
		}
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

// RemoveImage removes an image record; storage-backed files and their
// thumbnails are cleaned up by the repository.
func RemoveImage(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID      int    `json:"id" binding:"required"`
			ImageID string `json:"imageId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := repo.RemoveImage(req.ID, req.ImageID)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func UpdateCover(repo *store.WeddingRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ID       int    `json:"id" binding:"required"`
			FileUrl  string `json:"fileUrl" binding:"required"`
			FileType string `json:"fileType" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := repo.SetCoverImage(req.ID, models.MediaItem{
			FileUrl:  req.FileUrl,
			FileType: req.FileType,
		})
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}
