package access

import (
	"testing"

	"memorylane/api/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func TestRolePrecedence(t *testing.T) {
	if !(RoleNone < RoleUnconfirmed && RoleUnconfirmed < RoleFriend && RoleFriend < RoleAdmin && RoleAdmin < RoleOwner) {
		t.Fatalf("role ordering broken")
	}
}

func TestRoleForPicksHighestApplicable(t *testing.T) {
	userID := "user-1"
	cases := []struct {
		name   string
		friend *store.Friend
		want   Role
	}{
		{"no membership", nil, RoleNone},
		{"placeholder", &store.Friend{}, RoleUnconfirmed},
		{"confirmed", &store.Friend{UserID: &userID, IsConfirmed: true}, RoleFriend},
		{"admin", &store.Friend{UserID: &userID, IsConfirmed: true, IsAdmin: true}, RoleAdmin},
		{"owner", &store.Friend{UserID: &userID, IsConfirmed: true, IsOwner: true}, RoleOwner},
		// Owner wins even if the admin flag is also set.
		{"owner and admin flags", &store.Friend{UserID: &userID, IsConfirmed: true, IsOwner: true, IsAdmin: true}, RoleOwner},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleFor(tc.friend); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAuthorizePublicGroupAdmitsAnyone(t *testing.T) {
	info := store.GroupInfo{IsPublic: true}
	if !Authorize(info, RoleNone, "") {
		t.Fatalf("anonymous viewer should see a public group")
	}
	if !Authorize(info, RoleUnconfirmed, "") {
		t.Fatalf("unconfirmed viewer should see a public group")
	}
}

func TestAuthorizePrivateGroup(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash passcode: %v", err)
	}
	info := store.GroupInfo{IsPublic: false, PasscodeHash: string(hash)}

	if Authorize(info, RoleNone, "") {
		t.Fatalf("anonymous viewer must be denied")
	}
	if Authorize(info, RoleNone, "wrong") {
		t.Fatalf("wrong passcode must be denied")
	}
	if !Authorize(info, RoleNone, "open-sesame") {
		t.Fatalf("correct passcode must be admitted")
	}
	if Authorize(info, RoleUnconfirmed, "") {
		t.Fatalf("a placeholder membership grants nothing")
	}
	if !Authorize(info, RoleFriend, "") {
		t.Fatalf("confirmed friend must be admitted without passcode")
	}
	if !Authorize(info, RoleOwner, "wrong") {
		t.Fatalf("a sufficient role never gets demoted by a bad passcode")
	}
}

func TestAuthorizeFriendOnlyGroupIgnoresPasscode(t *testing.T) {
	// Private group with no passcode configured: supplying one is a no-op.
	info := store.GroupInfo{IsPublic: false}
	if Authorize(info, RoleNone, "anything") {
		t.Fatalf("passcode must not admit when none is configured")
	}
	if !Authorize(info, RoleAdmin, "") {
		t.Fatalf("admin must be admitted")
	}
}

func TestHashPasscodeRoundTrip(t *testing.T) {
	hash, err := HashPasscode("summer-trip")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "summer-trip" {
		t.Fatalf("passcode stored in the clear")
	}
	if !Authorize(store.GroupInfo{PasscodeHash: hash}, RoleNone, "summer-trip") {
		t.Fatalf("hashed passcode must verify")
	}
}
