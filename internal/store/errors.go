package store

import "errors"

var (
	// ErrNotFound covers unknown identifiers and missing rows; callers must
	// not distinguish "never existed" from "deleted".
	ErrNotFound = errors.New("not found")
	// ErrAliasConflict means the requested alias collides with an existing
	// alias or uuid. The unique constraint on group_lookup.alias is the
	// authoritative signal; the pre-check only produces a friendlier path.
	ErrAliasConflict = errors.New("alias already taken")
	ErrAliasReserved = errors.New("alias is a reserved word")
	// ErrEmailConflict means the (group, email) pair is already taken by
	// another friend row in the same group.
	ErrEmailConflict = errors.New("a friend with this email already exists in the group")
)
