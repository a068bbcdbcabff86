package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sms-relay/internal/config"
	"sms-relay/internal/sms"
)

func NewRouter(cfg config.Config, logger *logrus.Logger, sender sms.Sender) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	h := NewHandler(cfg, logger, sender)
	r.POST("/send", h.SendSMS)
	r.OPTIONS("/send", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
