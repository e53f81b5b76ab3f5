// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-back/internal/auth"
	"wedding-back/internal/config"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Email != cfg.AdminEmail || !auth.CheckPassword(cfg.AdminPasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := auth.GenerateToken(cfg.JWTSecret, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.SetCookie(auth.CookieName, token, 86400, "/", cfg.CookieDomain, false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(auth.CookieName, "", -1, "/", cfg.CookieDomain, false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// isAdmin reports whether the request carries a valid admin cookie. Public
// routes use it to decide between the public and the admin view of a
// resource.
func isAdmin(c *gin.Context, secret string) bool {
	token, err := c.Cookie(auth.CookieName)
	if err != nil {
		return false
	}
	_, err = auth.ParseToken(secret, token)
	return err == nil
}
