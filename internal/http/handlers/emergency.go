package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
	"github.com/asdfghjkl1994/Frost-Tesh/internal/store"
)

type CreateEmergencyRequest struct {
	UserID      string `json:"userId"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Area        string `json:"area"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
}

type UpdateEmergencyRequest struct {
	ID                 string `json:"id" validate:"required"`
	Status             string `json:"status" validate:"required"`
	AssignedTechnician string `json:"assignedTechnician"`
}

func (h *Handler) EmergencyList(c *gin.Context) {
	f := store.Filter{
		Search: c.Query("search"),
		UserID: c.Query("userId"),
	}
	if s := c.Query("status"); s != "" {
		f.Status = models.NormalizeEmergencyStatus(s)
	}
	items, err := h.Emergencies.List(c.Request.Context(), f)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list emergency requests")
		writeError(c, http.StatusInternalServerError, "Failed to list emergency requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   len(items),
	})
}

func (h *Handler) EmergencyCreate(c *gin.Context) {
	var req CreateEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	e, err := h.Emergencies.Create(c.Request.Context(), models.EmergencyRequest{
		UserID:      req.UserID,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Area:        req.Area,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to create emergency request")
		writeError(c, http.StatusInternalServerError, "Failed to create emergency request")
		return
	}

	if h.Metrics != nil {
		h.Metrics.EmergenciesCreated.Inc()
	}
	h.Dispatcher.DispatchEmergency(e)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    e,
		"message": "Emergency request created successfully",
	})
}

func (h *Handler) EmergencyUpdateStatus(c *gin.Context) {
	var req UpdateEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	status := models.NormalizeEmergencyStatus(req.Status)
	if !models.ValidEmergencyStatus(status) {
		writeError(c, http.StatusBadRequest, "Unknown emergency status: "+req.Status)
		return
	}

	e, err := h.Emergencies.UpdateStatus(c.Request.Context(), req.ID, status, req.AssignedTechnician)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Emergency request not found")
			return
		}
		h.Logger.Error().Err(err).Msg("failed to update emergency request")
		writeError(c, http.StatusInternalServerError, "Failed to update emergency request")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    e,
		"message": "Emergency status updated",
	})
}

func (h *Handler) EmergencyDelete(c *gin.Context) {
	e, err := h.Emergencies.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Emergency request not found")
			return
		}
		h.Logger.Error().Err(err).Msg("failed to delete emergency request")
		writeError(c, http.StatusInternalServerError, "Failed to delete emergency request")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    e,
		"message": "Emergency request deleted successfully",
	})
}
