package services

import (
	"errors"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"

	"gorm.io/gorm"
)

type ParticipantService struct {
	db     *gorm.DB
	config *EventConfigService
}

func NewParticipantService(db *gorm.DB, config *EventConfigService) *ParticipantService {
	return &ParticipantService{db: db, config: config}
}

type CreateParticipantInput struct {
	Name          string
	PhotoURL      string
	CommitteeID   uint
	CountryID     uint
	InstitutionID uint
}

// Create registers a participant with the initial meal balance from the
// event configuration.
func (s *ParticipantService) Create(input CreateParticipantInput) (*models.Participant, error) {
	cfg, err := s.config.Get()
	if err != nil {
		return nil, err
	}

	participant := models.Participant{
		Name:          input.Name,
		PhotoURL:      input.PhotoURL,
		CommitteeID:   input.CommitteeID,
		CountryID:     input.CountryID,
		InstitutionID: input.InstitutionID,
		MealBalance:   cfg.InitialBalance,
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *ParticipantService) Get(id uint) (*models.Participant, error) {
	var participant models.Participant
	err := s.db.Preload("Committee").Preload("Country").Preload("Institution").
		First(&participant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("participant not found")
	}
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (s *ParticipantService) List() ([]models.Participant, error) {
	var participants []models.Participant
	err := s.db.Preload("Committee").Preload("Country").Preload("Institution").
		Order("name ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

// ResetBalance restores a participant's balance to the configured
// initial value. This is the only mutation path besides the redemption
// engine's decrement.
func (s *ParticipantService) ResetBalance(id uint) (*models.Participant, error) {
	cfg, err := s.config.Get()
	if err != nil {
		return nil, err
	}

	res := s.db.Model(&models.Participant{}).
		Where("id = ?", id).
		UpdateColumn("meal_balance", cfg.InitialBalance)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errors.New("participant not found")
	}

	return s.Get(id)
}
