// Package api exposes the content service over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Zachkp/zach-dev-api/internal/contact"
	"github.com/Zachkp/zach-dev-api/internal/content"
)

// Options configures the router.
type Options struct {
	CORSOrigins  []string
	AdminEnabled bool
	AdminToken   string
}

// NewRouter wires every route onto a new gin engine.
func NewRouter(svc *content.Service, validator *content.Validator, mailer contact.Mailer, opts Options) *gin.Engine {
	if validator != nil {
		binding.Validator = validator
	}

	r := gin.Default()

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:3001"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	guard := newAdminGuard(opts.AdminEnabled, opts.AdminToken)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	setupBlogRoutes(api.Group("/blogs"), svc, guard.middleware())
	setupProjectRoutes(api.Group("/projects"), svc, guard.middleware())
	setupContactRoutes(api, mailer)
	setupAdminRoutes(api.Group("/admin"), svc, guard)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sayfa bulunamadı"})
	})

	return r
}
