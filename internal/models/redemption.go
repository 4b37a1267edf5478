package models

import "time"

// Redemption is one row of the meal ledger. Rows are append-only: the
// engine inserts them and nothing in the system ever updates or deletes
// one.
type Redemption struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ParticipantID uint        `gorm:"not null;index" json:"participant_id"`
	Participant   Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	OperatorID    uint        `gorm:"not null;index" json:"operator_id"`
	Operator      User        `gorm:"foreignKey:OperatorID" json:"operator,omitempty"`
	RedeemedAt    time.Time   `gorm:"not null;index" json:"redeemed_at"`
}
