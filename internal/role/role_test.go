package role

import (
	"testing"

	"github.com/matt-dz/foodgram/internal/database"
)

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		have     Role
		required Role
		want     bool
	}{
		{name: "admin acts as user", have: RoleAdmin, required: RoleUser, want: true},
		{name: "user is not admin", have: RoleUser, required: RoleAdmin, want: false},
		{name: "unknown never satisfies", have: RoleUnknown, required: RoleUnknown, want: false},
		{name: "user satisfies user", have: RoleUser, required: RoleUser, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.have.Satisfies(tt.required); got != tt.want {
				t.Errorf("Satisfies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	if DBToRole(database.RoleAdmin) != RoleAdmin || ToRole("admin") != RoleAdmin {
		t.Error("expected admin to round trip")
	}
	if DBToRole(database.Role("owner")) != RoleUnknown || ToRole("owner") != RoleUnknown {
		t.Error("expected unknown role")
	}
	if RoleUser.String() != "user" {
		t.Errorf("expected user, got %q", RoleUser.String())
	}
}
