package handlers

import "github.com/joanvup/MUN-Snack-Manager/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type Participant = models.Participant
type Redemption = models.Redemption
type EventConfig = models.EventConfig
