package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/joanvup/MUN-Snack-Manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	redemptionService *services.RedemptionService
}

func NewScanHandler(redemptionService *services.RedemptionService) *ScanHandler {
	return &ScanHandler{redemptionService: redemptionService}
}

// Wire keys match the deployed scanner clients, which post the QR
// payload as id_participante and read saldo_restante back.
type ScanRequest struct {
	ParticipantID interface{} `json:"id_participante"`
}

type ScanResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	RemainingBalance *int   `json:"saldo_restante,omitempty"`
}

// parseParticipantID accepts a positive integer sent either as a JSON
// number or a numeric string, the two shapes scanners produce.
func parseParticipantID(raw interface{}) (uint, bool) {
	switch v := raw.(type) {
	case float64:
		if v <= 0 || v != math.Trunc(v) || v > math.MaxUint32 {
			return 0, false
		}
		return uint(v), true
	case string:
		id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}

// Scan godoc
// @Summary      Redeem a meal for a scanned participant
// @Description  Validates the scanned QR id and runs it through the redemption engine
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ScanRequest true "Scanned participant id"
// @Success      200 {object} ScanResponse
// @Failure      400 {object} ScanResponse
// @Failure      404 {object} ScanResponse
// @Router       /api/v1/scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	operatorID := c.GetUint("user_id")

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ParticipantID == nil {
		c.JSON(http.StatusBadRequest, ScanResponse{Message: "participant id not provided"})
		return
	}

	participantID, ok := parseParticipantID(req.ParticipantID)
	if !ok {
		c.JSON(http.StatusBadRequest, ScanResponse{Message: "invalid id"})
		return
	}

	result, err := h.redemptionService.Redeem(participantID, operatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ScanResponse{Message: "redemption failed, please retry"})
		return
	}

	switch result.Outcome {
	case services.OutcomeParticipantNotFound:
		c.JSON(http.StatusNotFound, ScanResponse{Message: "participant not found"})
	case services.OutcomeCooldownBlocked:
		c.JSON(http.StatusOK, ScanResponse{
			Message: fmt.Sprintf("%s was served recently, wait %d more minutes", result.ParticipantName, result.WaitMinutes),
		})
	case services.OutcomeInsufficientBalance:
		zero := 0
		c.JSON(http.StatusOK, ScanResponse{
			Message:          fmt.Sprintf("%s has no meals left", result.ParticipantName),
			RemainingBalance: &zero,
		})
	default:
		balance := result.RemainingBalance
		c.JSON(http.StatusOK, ScanResponse{
			Success:          true,
			Message:          fmt.Sprintf("meal recorded for %s", result.ParticipantName),
			RemainingBalance: &balance,
		})
	}
}
