package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sms-relay/internal/config"
	"sms-relay/internal/phone"
	"sms-relay/internal/sms"
)

// failureKind tags a delivery failure for the log line. The wire format is
// the same for every kind.
type failureKind string

const (
	failureParse    failureKind = "parse"
	failureProvider failureKind = "provider"
)

type Handler struct {
	cfg    config.Config
	logger *logrus.Logger
	sender sms.Sender
}

func NewHandler(cfg config.Config, logger *logrus.Logger, sender sms.Sender) *Handler {
	return &Handler{cfg: cfg, logger: logger, sender: sender}
}

// SendSMS is a single linear pass: parse, authenticate, validate, normalize,
// deliver, map the outcome.
func (h *Handler) SendSMS(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.deliveryFailure(c, failureParse, err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Auth.Password)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	if req.To == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Missing "to" or "message" field`})
		return
	}

	to := phone.Normalize(req.To, h.cfg.SMS.DefaultCountryCode)

	receipt, err := h.sender.Send(c.Request.Context(), h.cfg.SMS.FromNumber, to, req.Message)
	if err != nil {
		h.deliveryFailure(c, failureProvider, err)
		return
	}

	h.logger.Infof("Sent SMS %s to %s, status: %s", receipt.SID, to, receipt.Status)
	c.JSON(http.StatusOK, SendResponse{
		Success: true,
		SID:     receipt.SID,
		To:      to,
		Status:  receipt.Status,
	})
}

func (h *Handler) deliveryFailure(c *gin.Context, kind failureKind, err error) {
	h.logger.Errorf("Send SMS failed (%s): %v", kind, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send SMS", "details": err.Error()})
}
