package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/model"
)

// Setup the /api/blogs routes; writes go through the admin guard
func setupBlogRoutes(g *gin.RouterGroup, svc *content.Service, guard gin.HandlerFunc) {
	// All posts, newest first. Filtering happens on the client.
	g.GET("", func(c *gin.Context) {
		posts, err := svc.ListBlogs(c.Request.Context())
		if err != nil {
			respondError(c, err, msgBlogNotFound)
			return
		}
		c.JSON(http.StatusOK, posts)
	})

	g.GET("/:slug", func(c *gin.Context) {
		post, err := svc.GetBlog(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, msgBlogNotFound)
			return
		}
		c.JSON(http.StatusOK, post)
	})

	g.POST("", guard, func(c *gin.Context) {
		var post model.BlogPost
		if err := c.ShouldBindJSON(&post); err != nil {
			badRequest(c, err)
			return
		}
		created, err := svc.CreateBlog(c.Request.Context(), &post)
		if err != nil {
			respondError(c, err, msgBlogNotFound)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	g.PUT("/:slug", guard, func(c *gin.Context) {
		var patch model.BlogPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		updated, err := svc.UpdateBlog(c.Request.Context(), c.Param("slug"), patch)
		if err != nil {
			respondError(c, err, msgBlogNotFound)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	g.DELETE("/:slug", guard, func(c *gin.Context) {
		if err := svc.DeleteBlog(c.Request.Context(), c.Param("slug")); err != nil {
			respondError(c, err, msgBlogNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msgBlogDeleted})
	})
}
