package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/line"
)

// LineWebhook receives the inbound event batch from the chat platform,
// checks the body signature and lets the responder answer each text
// message. A signature mismatch rejects the whole request, nothing is
// partially processed.
func (h *Handler) LineWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Failed to read body")
		return
	}

	signature := c.GetHeader(line.SignatureHeader)
	if h.LineSecret != "" && signature != "" {
		if !line.VerifySignature(h.LineSecret, body, signature) {
			writeError(c, http.StatusUnauthorized, "Invalid signature")
			return
		}
	}

	var batch line.WebhookBody
	if err := json.Unmarshal(body, &batch); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid webhook body")
		return
	}

	if err := h.Responder.HandleEvents(c.Request.Context(), batch.Events); err != nil {
		writeError(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) LineWebhookInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Line webhook endpoint is active"})
}
