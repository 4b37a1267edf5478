package models

import "time"

// EventConfig is the single configuration row for the running event.
// CooldownMinutes and InitialBalance feed the redemption engine; the
// rest is display data.
type EventConfig struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EventName       string    `gorm:"size:150;not null" json:"event_name"`
	EventDates      string    `gorm:"size:150" json:"event_dates"`
	LogoURL         string    `gorm:"size:255" json:"logo_url,omitempty"`
	InitialBalance  int       `gorm:"not null;default:6" json:"initial_balance"`
	CooldownMinutes int       `gorm:"not null;default:60" json:"cooldown_minutes"`
	UpdatedAt       time.Time `json:"updated_at"`
}
