// Package access computes a viewer's role within a group and decides
// whether a request may see it. Both checks are pure reads: authorization
// never mutates state.
package access

import (
	"golang.org/x/crypto/bcrypt"

	"memorylane/api/internal/store"
)

// Role is a viewer's single effective role within a group. Roles form a
// strict precedence order; a viewer's permissions are determined by the
// highest applicable role, never a union of lower ones.
type Role int

const (
	RoleNone Role = iota
	RoleUnconfirmed
	RoleFriend
	RoleAdmin
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	case RoleFriend:
		return "friend"
	case RoleUnconfirmed:
		return "unconfirmed"
	default:
		return "none"
	}
}

// AtLeast reports whether r carries at least the permissions of min.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// RoleFor maps a friend row to the viewer's effective role. A nil row means
// the viewer has no membership in the group. is_admin is only meaningful on
// a confirmed row, which the roster manager guarantees upstream.
func RoleFor(friend *store.Friend) Role {
	switch {
	case friend == nil:
		return RoleNone
	case friend.IsOwner:
		return RoleOwner
	case friend.IsAdmin:
		return RoleAdmin
	case friend.IsConfirmed:
		return RoleFriend
	default:
		return RoleUnconfirmed
	}
}

// Authorize decides read access to a group. First match wins: public groups
// are open to everyone; a correct passcode admits anyone; otherwise the
// viewer needs a confirmed membership. An unconfirmed placeholder grants
// nothing. Write access to settings is checked separately by the mutating
// handlers against RoleAdmin/RoleOwner.
func Authorize(info store.GroupInfo, role Role, suppliedPasscode string) bool {
	if info.IsPublic {
		return true
	}
	if suppliedPasscode != "" && info.PasscodeHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(info.PasscodeHash), []byte(suppliedPasscode)) == nil {
			return true
		}
	}
	return role.AtLeast(RoleFriend)
}

// HashPasscode produces the stored form of a privacy passcode.
func HashPasscode(passcode string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
