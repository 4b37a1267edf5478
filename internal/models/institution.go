package models

type Institution struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:150;uniqueIndex;not null" json:"name"`
	LogoURL string `gorm:"size:255" json:"logo_url,omitempty"`
}
