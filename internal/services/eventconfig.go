package services

import (
	"errors"
	"time"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"

	"gorm.io/gorm"
)

type EventConfigService struct {
	db *gorm.DB
}

func NewEventConfigService(db *gorm.DB) *EventConfigService {
	return &EventConfigService{db: db}
}

func (s *EventConfigService) Get() (*models.EventConfig, error) {
	var cfg models.EventConfig
	if err := s.db.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event config not initialized")
		}
		return nil, err
	}
	return &cfg, nil
}

// CooldownDuration reads the configured cooldown from the store. It is
// re-read on every scan, so an admin change takes effect on the next
// scan without restarting anything.
func (s *EventConfigService) CooldownDuration() (time.Duration, error) {
	cfg, err := s.Get()
	if err != nil {
		return 0, err
	}
	return time.Duration(cfg.CooldownMinutes) * time.Minute, nil
}

type EventConfigUpdate struct {
	EventName       string
	EventDates      string
	LogoURL         string
	InitialBalance  int
	CooldownMinutes int
}

func (s *EventConfigService) Update(update EventConfigUpdate) (*models.EventConfig, error) {
	if update.InitialBalance < 0 {
		return nil, errors.New("initial balance must not be negative")
	}
	if update.CooldownMinutes < 0 {
		return nil, errors.New("cooldown must not be negative")
	}

	cfg, err := s.Get()
	if err != nil {
		return nil, err
	}

	cfg.EventName = update.EventName
	cfg.EventDates = update.EventDates
	cfg.LogoURL = update.LogoURL
	cfg.InitialBalance = update.InitialBalance
	cfg.CooldownMinutes = update.CooldownMinutes

	if err := s.db.Save(cfg).Error; err != nil {
		return nil, err
	}
	return cfg, nil
}
