package handlers

import (
	"net/http"
	"strconv"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RedemptionHandler struct {
	db *gorm.DB
}

func NewRedemptionHandler(db *gorm.DB) *RedemptionHandler {
	return &RedemptionHandler{db: db}
}

// ListRedemptions godoc
// @Summary      List redemption ledger entries
// @Description  Newest first, optionally scoped to one participant
// @Tags         redemptions
// @Produce      json
// @Security     BearerAuth
// @Param        participant_id query int false "Participant ID"
// @Success      200 {array} Redemption
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/redemptions [get]
func (h *RedemptionHandler) ListRedemptions(c *gin.Context) {
	query := h.db.Preload("Participant").Preload("Operator").
		Order("redeemed_at DESC")

	if raw := c.Query("participant_id"); raw != "" {
		participantID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participant_id"})
			return
		}
		query = query.Where("participant_id = ?", participantID)
	}

	var redemptions []models.Redemption
	if err := query.Find(&redemptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, redemptions)
}

type StatsResponse struct {
	TotalParticipants int64 `json:"total_participants"`
	MealsServed       int64 `json:"meals_served"`
}

// GetStats godoc
// @Summary      Event dashboard counters
// @Tags         redemptions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} StatsResponse
// @Router       /api/v1/stats [get]
func (h *RedemptionHandler) GetStats(c *gin.Context) {
	var stats StatsResponse
	h.db.Model(&models.Participant{}).Count(&stats.TotalParticipants)
	h.db.Model(&models.Redemption{}).Count(&stats.MealsServed)

	c.JSON(http.StatusOK, stats)
}
