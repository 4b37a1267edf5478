package handlers

import (
	"net/http"
	"strconv"

	"github.com/joanvup/MUN-Snack-Manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participantService *services.ParticipantService
}

func NewParticipantHandler(participantService *services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

type CreateParticipantRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=150" example:"Ada Lovelace"`
	PhotoURL      string `json:"photo_url" example:"/uploads/photos/42.jpg"`
	CommitteeID   uint   `json:"committee_id" binding:"required" example:"1"`
	CountryID     uint   `json:"country_id" binding:"required" example:"1"`
	InstitutionID uint   `json:"institution_id" binding:"required" example:"1"`
}

// CreateParticipant godoc
// @Summary      Register a participant
// @Description  Creates a participant with the configured initial meal balance
// @Tags         participants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateParticipantRequest true "Participant data"
// @Success      201 {object} Participant
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/participants [post]
func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	var req CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.participantService.Create(services.CreateParticipantInput{
		Name:          req.Name,
		PhotoURL:      req.PhotoURL,
		CommitteeID:   req.CommitteeID,
		CountryID:     req.CountryID,
		InstitutionID: req.InstitutionID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// ListParticipants godoc
// @Summary      List participants
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Participant
// @Router       /api/v1/participants [get]
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	participants, err := h.participantService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, participants)
}

// GetParticipant godoc
// @Summary      Get a participant
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Participant ID"
// @Success      200 {object} Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participants/{id} [get]
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participant id"})
		return
	}

	participant, err := h.participantService.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, participant)
}

// ResetBalance godoc
// @Summary      Reset a participant's meal balance
// @Description  Restores the balance to the configured initial value
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Participant ID"
// @Success      200 {object} Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participants/{id}/reset [post]
func (h *ParticipantHandler) ResetBalance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participant id"})
		return
	}

	participant, err := h.participantService.ResetBalance(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, participant)
}
