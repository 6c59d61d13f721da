package api

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev-api/internal/content"
)

// adminGuard protects the write routes when admin auth is enabled.
type adminGuard struct {
	enabled bool
	token   string
}

// Initialize the admin guard, generating a token when none is configured
func newAdminGuard(enabled bool, token string) *adminGuard {
	if !enabled {
		return &adminGuard{}
	}
	if token == "" {
		token = generateAdminToken()
		if gin.Mode() == gin.DebugMode {
			log.Printf("Admin token (dev only): %s", token)
		} else {
			log.Println("WARNING: ADMIN_TOKEN not set; generated a random token for this run")
		}
	}
	log.Println("Admin auth enabled for content writes")
	return &adminGuard{enabled: true, token: token}
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// Middleware to check the bearer token or admin_token cookie
func (g *adminGuard) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.enabled {
			c.Next()
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			token, _ = c.Cookie("admin_token")
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(g.token)) != 1 {
			log.Printf("Rejected admin request %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Yetkisiz erişim"})
			return
		}
		c.Next()
	}
}

// Setup admin routes
func setupAdminRoutes(g *gin.RouterGroup, svc *content.Service, guard *adminGuard) {
	g.Use(guard.middleware())

	// Content statistics for the admin dashboard
	g.GET("/stats", func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export (for backups or analysis)
	g.GET("/export/stats", func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=content-stats.json")
		c.JSON(http.StatusOK, stats)
	})
}
