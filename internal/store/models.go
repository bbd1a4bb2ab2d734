package store

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	ProfileName  string
	ProfileURL   string
	CreatedAt    time.Time
}

// GroupLookup is the identity record for a group. UUID is public and
// immutable; Alias is optional, unique across all groups, and mutable.
// GroupID is the internal surrogate key and is never serialized.
type GroupLookup struct {
	GroupID string
	UUID    string
	Alias   *string
}

// GroupInfo holds the mutable settings for a group, one-to-one with
// GroupLookup. PasscodeHash is non-empty only while IsPublic is false.
type GroupInfo struct {
	GroupID      string
	OwnerID      string
	GroupName    string
	IsPublic     bool
	PasscodeHash string
	ThumbnailURL string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Friend is a membership record scoping a person to a group. UserID is nil
// for a placeholder invited by name/email before they have an account.
type Friend struct {
	ID          string
	GroupID     string
	UserID      *string
	ProfileName string
	Email       *string
	ProfileURL  string
	IsOwner     bool
	IsAdmin     bool
	IsConfirmed bool
	CreatedAt   time.Time
}

// FriendEntry is one requested invitation in an AddFriends batch.
type FriendEntry struct {
	Name  string
	Email string
}

type Photo struct {
	ID         string
	GroupID    string
	ObjectKey  string
	Caption    string
	UploadedBy string
	CreatedAt  time.Time
}
