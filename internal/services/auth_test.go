package services

import (
	"testing"

	"github.com/joanvup/MUN-Snack-Manager/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	db := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{Username: "operator1", PasswordHash: string(hash), Role: models.RoleOperator}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	service := NewAuthService(db, "test-secret")

	t.Run("login with valid credentials returns a usable token", func(t *testing.T) {
		token, err := service.Login("operator1", "secret123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		userID, role, err := service.ValidateToken(token)
		if err != nil {
			t.Fatalf("expected valid token, got %v", err)
		}
		if userID != user.ID {
			t.Errorf("expected user id %d, got %d", user.ID, userID)
		}
		if role != models.RoleOperator {
			t.Errorf("expected operator role, got %q", role)
		}
	})

	t.Run("login with wrong password fails", func(t *testing.T) {
		if _, err := service.Login("operator1", "wrong"); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("login with unknown user fails", func(t *testing.T) {
		if _, err := service.Login("nobody", "secret123"); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, _, err := service.ValidateToken("not-a-token"); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
