package models

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	// ISO 3166-1 alpha-2, lowercase (e.g. "co", "us").
	Code string `gorm:"size:10" json:"code,omitempty"`
}
