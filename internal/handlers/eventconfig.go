package handlers

import (
	"net/http"

	"github.com/joanvup/MUN-Snack-Manager/internal/services"

	"github.com/gin-gonic/gin"
)

type EventConfigHandler struct {
	configService *services.EventConfigService
}

func NewEventConfigHandler(configService *services.EventConfigService) *EventConfigHandler {
	return &EventConfigHandler{configService: configService}
}

type UpdateConfigRequest struct {
	EventName       string `json:"event_name" binding:"required" example:"MUN Event 2026"`
	EventDates      string `json:"event_dates" example:"December 1-4, 2026"`
	LogoURL         string `json:"logo_url" example:"/uploads/logos/event.png"`
	InitialBalance  int    `json:"initial_balance" binding:"min=0" example:"6"`
	CooldownMinutes int    `json:"cooldown_minutes" binding:"min=0" example:"60"`
}

// GetConfig godoc
// @Summary      Get event configuration
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} EventConfig
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/config [get]
func (h *EventConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configService.Get()
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig godoc
// @Summary      Update event configuration
// @Description  Updates event details, initial balance and cooldown; scans in flight keep the old cooldown
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateConfigRequest true "Config data"
// @Success      200 {object} EventConfig
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/config [put]
func (h *EventConfigHandler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cfg, err := h.configService.Update(services.EventConfigUpdate{
		EventName:       req.EventName,
		EventDates:      req.EventDates,
		LogoURL:         req.LogoURL,
		InitialBalance:  req.InitialBalance,
		CooldownMinutes: req.CooldownMinutes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
