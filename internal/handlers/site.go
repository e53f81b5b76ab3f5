// internal/handlers/site.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-back/internal/config"
	"wedding-back/internal/mail"
	"wedding-back/internal/models"
	"wedding-back/internal/seo"
	"wedding-back/internal/store"
)

func GetProfile(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetProfile()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func UpdateProfile(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd models.Profile
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := repo.UpdateProfile(upd)
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func GetAvailability(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := repo.GetAvailability()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func UpdateAvailability(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var a models.Availability
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.SaveAvailability(a); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func GetSettings(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.GetSettings()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func UpdateSettings(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s models.SiteSettings
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.SaveSettings(s); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func GetSocial(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		social, err := repo.GetSocial()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, social)
	}
}

func UpdateSocial(repo *store.SiteRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		social := map[string]string{}
		if err := c.ShouldBindJSON(&social); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.SaveSocial(social); err != nil {
			writeRepoError(c, err)
			return
		}
		c.JSON(http.StatusOK, social)
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Date    string `json:"date"`
	Message string `json:"message" binding:"required"`
}

// Contact forwards a visitor's message to the photographer. A mail delivery
// failure is an upstream error, not a client one.
func Contact(sender *mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if sender == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact form is not configured"})
			return
		}
		err := sender.SendContact(mail.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Date:    req.Date,
			Message: req.Message,
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func Sitemap(weddings *store.WeddingRepo, site *store.SiteRepo, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := weddings.List()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		pages, err := site.ListPages()
		if err != nil {
			writeRepoError(c, err)
			return
		}
		out, err := seo.Sitemap(cfg.BaseURL, ws, pages)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/xml", out)
	}
}

func Robots(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain", seo.Robots(cfg.BaseURL))
	}
}
