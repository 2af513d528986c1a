package handlers

import (
	"net/http"

	"akplaw/config"
	"akplaw/models"
	"akplaw/services/mailer"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MailHandler exposes the standalone send endpoint used by static site
// forms that post email directly.
type MailHandler struct {
	Mailer mailer.Mailer
}

// SendMailHandler handles POST /api/send. When a send token is configured,
// callers must present it in the X-Send-Token header.
func (h *MailHandler) SendMailHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if token := config.AppConfig.MailSendToken; token != "" {
		if c.GetHeader("X-Send-Token") != token {
			utils.JSONError(c, http.StatusUnauthorized, "invalid send token", "X-Send-Token header missing or wrong")
			return
		}
	}

	var msg models.EmailMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(msg.To) == 0 || msg.Subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient and subject are required"})
		return
	}

	id, err := h.Mailer.Send(c.Request.Context(), msg)
	if err != nil {
		logger.Error("Direct mail send failed", zap.Strings("to", msg.To), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": "email sent"})
}
