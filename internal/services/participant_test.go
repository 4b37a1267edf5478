package services

import (
	"testing"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"
)

func TestParticipantService(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&models.EventConfig{
		EventName:       "Test Event",
		InitialBalance:  6,
		CooldownMinutes: 60,
	}).Error; err != nil {
		t.Fatalf("failed to seed config: %v", err)
	}

	service := NewParticipantService(db, NewEventConfigService(db))

	t.Run("create grants the configured initial balance", func(t *testing.T) {
		participant, err := service.Create(CreateParticipantInput{
			Name:          "Grace Hopper",
			CommitteeID:   1,
			CountryID:     1,
			InstitutionID: 1,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if participant.MealBalance != 6 {
			t.Errorf("expected initial balance 6, got %d", participant.MealBalance)
		}
	})

	t.Run("reset restores a spent balance", func(t *testing.T) {
		participant, err := service.Create(CreateParticipantInput{
			Name:          "Alan Turing",
			CommitteeID:   1,
			CountryID:     1,
			InstitutionID: 1,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		db.Model(&models.Participant{}).Where("id = ?", participant.ID).
			UpdateColumn("meal_balance", 0)

		restored, err := service.ResetBalance(participant.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if restored.MealBalance != 6 {
			t.Errorf("expected balance restored to 6, got %d", restored.MealBalance)
		}
	})

	t.Run("reset unknown participant fails", func(t *testing.T) {
		if _, err := service.ResetBalance(999); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
