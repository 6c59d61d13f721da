package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/model"
)

func setupProjectRoutes(g *gin.RouterGroup, svc *content.Service, guard gin.HandlerFunc) {
	g.GET("", func(c *gin.Context) {
		projects, err := svc.ListProjects(c.Request.Context())
		if err != nil {
			respondError(c, err, msgProjectNotFound)
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	// Exact category match; an unknown category is an empty list, not a 404
	g.GET("/category/:category", func(c *gin.Context) {
		projects, err := svc.ListProjectsByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			respondError(c, err, msgProjectNotFound)
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	g.GET("/:id", func(c *gin.Context) {
		project, err := svc.GetProject(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, msgProjectNotFound)
			return
		}
		c.JSON(http.StatusOK, project)
	})

	g.POST("", guard, func(c *gin.Context) {
		var project model.Project
		if err := c.ShouldBindJSON(&project); err != nil {
			badRequest(c, err)
			return
		}
		created, err := svc.CreateProject(c.Request.Context(), &project)
		if err != nil {
			respondError(c, err, msgProjectNotFound)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	g.PUT("/:id", guard, func(c *gin.Context) {
		var patch model.ProjectPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		updated, err := svc.UpdateProject(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, err, msgProjectNotFound)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	g.DELETE("/:id", guard, func(c *gin.Context) {
		if err := svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, msgProjectNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": msgProjectDeleted})
	})
}
