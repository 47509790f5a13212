package auth

import (
	"errors"
	"testing"

	"github.com/berkayk/pollhub/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("Hash equals plaintext")
	}
	if !CheckPassword("s3cret-pass", hash) {
		t.Error("Correct password rejected")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("Wrong password accepted")
	}
	if CheckPassword("s3cret-pass", "not-a-bcrypt-hash") {
		t.Error("Garbage hash accepted")
	}
}

func TestAuthorize(t *testing.T) {
	user := &models.Identity{ID: "u1", Roles: []string{models.RoleUser}}
	admin := &models.Identity{ID: "u2", Roles: []string{models.RoleUser, models.RoleAdmin}}

	tests := []struct {
		name     string
		identity *models.Identity
		role     string
		wantErr  error
	}{
		{"anonymous", nil, models.RoleUser, ErrUnauthenticated},
		{"user has user role", user, models.RoleUser, nil},
		{"user lacks admin role", user, models.RoleAdmin, ErrForbidden},
		{"admin has admin role", admin, models.RoleAdmin, nil},
		{"admin has user role", admin, models.RoleUser, nil},
		{"identity with no roles", &models.Identity{ID: "u3"}, models.RoleUser, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authorize() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
