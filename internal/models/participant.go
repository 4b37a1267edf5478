package models

import "time"

// Participant is a conference attendee entitled to a bounded number of
// meal redemptions. ID doubles as the QR payload key printed on badges.
type Participant struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:150;not null" json:"name"`
	MealBalance   int         `gorm:"not null;default:0" json:"meal_balance"`
	PhotoURL      string      `gorm:"size:255" json:"photo_url,omitempty"`
	CommitteeID   uint        `gorm:"not null;index" json:"committee_id"`
	Committee     Committee   `gorm:"foreignKey:CommitteeID" json:"committee,omitempty"`
	CountryID     uint        `gorm:"not null;index" json:"country_id"`
	Country       Country     `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	InstitutionID uint        `gorm:"not null;index" json:"institution_id"`
	Institution   Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
