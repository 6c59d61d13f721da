package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev-api/internal/contact"
)

// Handle contact form submission
func setupContactRoutes(g *gin.RouterGroup, mailer contact.Mailer) {
	g.POST("/contact", func(c *gin.Context) {
		var msg contact.Message
		if err := c.ShouldBindJSON(&msg); err != nil {
			badRequest(c, err)
			return
		}

		if err := mailer.Send(c.Request.Context(), msg); err != nil {
			log.Printf("Contact form delivery failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Mesajınız gönderilemedi. Lütfen daha sonra tekrar deneyin.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Mesajınız başarıyla gönderildi."})
	})
}
