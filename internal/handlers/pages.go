// internal/handlers/pages.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-back/internal/models"
	"wedding-back/internal/store"
)

func ListPages(repo *store.SiteRepo, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		pages, err := repo.ListPages()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !isAdmin(c, jwtSecret) {
			visible := []models.CustomPage{}
			for _, p := range pages {
				if p.Visible {
					visible = append(visible, p)
				}
			}
			pages = visible
		}
		c.JSON(http.StatusOK, gin.H{"pages": pages})
	}
}

func GetPage(repo *store.SiteRepo, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetPageBySlug(c.Param("slug"))
		if err != nil {
			writeRepoError(c, err)
			return
		}
		if !p.Visible && !isAdmin(c, jwtSecret) {
			c.JSON(http.StatusNotFound, gin.H{"error": store.ErrPageNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func CreatePage(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page models.CustomPage
		if err := c.ShouldBindJSON(&page); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if page.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		created, err := repo.CreatePage(page)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func UpdatePage(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page models.CustomPage
		if err := c.ShouldBindJSON(&page); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := repo.UpdatePage(c.Param("id"), page)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeletePage(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeletePage(c.Param("id")); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
