package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/store"
)

// Messages shown to the site's (Turkish-speaking) visitors.
const (
	msgBlogNotFound    = "Blog bulunamadı"
	msgBlogDeleted     = "Blog başarıyla silindi"
	msgProjectNotFound = "Proje bulunamadı"
	msgProjectDeleted  = "Proje silindi"
	msgAlreadyExists   = "Bu anahtarla bir kayıt zaten var"
)

// respondError maps service errors onto status codes and a {message} body.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *content.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": msgAlreadyExists})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// badRequest answers a body that could not be decoded or validated.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
