package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"memorylane/api/internal/alias"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// Ping verifies the database connection is alive
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ---- identifier resolution ----

// ResolveGroup maps a caller-supplied identifier to the group's lookup row.
// The identifier may be the public uuid or the alias; the two spaces are
// disjoint so at most one row matches.
func (s *PostgresStore) ResolveGroup(ctx context.Context, identifier string) (GroupLookup, error) {
	var lookup GroupLookup
	err := s.db.QueryRowContext(ctx, `
		SELECT group_id, uuid, alias
		FROM group_lookup
		WHERE uuid = $1 OR alias = $1
	`, identifier).Scan(&lookup.GroupID, &lookup.UUID, &lookup.Alias)
	if errors.Is(err, sql.ErrNoRows) {
		return GroupLookup{}, ErrNotFound
	}
	if err != nil {
		return GroupLookup{}, fmt.Errorf("resolve group: %w", err)
	}
	return lookup, nil
}

// SetAlias updates or clears a group's alias. Checks run in contract order:
// nil always clears, then collision, then the reserved-word set. Format
// validation is the caller's job.
func (s *PostgresStore) SetAlias(ctx context.Context, groupID string, newAlias *string) (GroupLookup, error) {
	if newAlias != nil {
		var taken bool
		err := s.db.QueryRowContext(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM group_lookup
				WHERE (uuid = $1 OR alias = $1) AND group_id <> $2
			)
		`, *newAlias, groupID).Scan(&taken)
		if err != nil {
			return GroupLookup{}, fmt.Errorf("check alias conflict: %w", err)
		}
		if taken {
			return GroupLookup{}, ErrAliasConflict
		}
		if alias.Reserved(*newAlias) {
			return GroupLookup{}, ErrAliasReserved
		}
	}

	var lookup GroupLookup
	err := s.db.QueryRowContext(ctx, `
		UPDATE group_lookup SET alias=$2
		WHERE group_id=$1
		RETURNING group_id, uuid, alias
	`, groupID, newAlias).Scan(&lookup.GroupID, &lookup.UUID, &lookup.Alias)
	if errors.Is(err, sql.ErrNoRows) {
		return GroupLookup{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		// Lost the race against a concurrent claim; the constraint is the
		// authority, the pre-check above is best effort.
		return GroupLookup{}, ErrAliasConflict
	}
	if err != nil {
		return GroupLookup{}, fmt.Errorf("set alias: %w", err)
	}
	return lookup, nil
}

// ---- group info ----

func (s *PostgresStore) GetGroupInfo(ctx context.Context, groupID string) (GroupInfo, error) {
	var info GroupInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT group_id, owner_id, group_name, is_public, COALESCE(passcode_hash, ''), COALESCE(thumbnail_url, ''), created_at, updated_at
		FROM group_info
		WHERE group_id=$1
	`, groupID).Scan(&info.GroupID, &info.OwnerID, &info.GroupName, &info.IsPublic, &info.PasscodeHash, &info.ThumbnailURL, &info.CreatedAt, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GroupInfo{}, ErrNotFound
	}
	if err != nil {
		return GroupInfo{}, fmt.Errorf("get group info: %w", err)
	}
	return info, nil
}

func (s *PostgresStore) UpdateGroupSettings(ctx context.Context, groupID, groupName, thumbnailURL string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE group_info
		SET group_name=$2, thumbnail_url=NULLIF($3, ''), updated_at=NOW()
		WHERE group_id=$1
	`, groupID, groupName, thumbnailURL)
	if err != nil {
		return fmt.Errorf("update group settings: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateGroupPrivacy sets the privacy mode. Switching to public always
// clears the passcode hash; the two may never coexist.
func (s *PostgresStore) UpdateGroupPrivacy(ctx context.Context, groupID string, isPublic bool, passcodeHash string) error {
	if isPublic {
		passcodeHash = ""
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE group_info
		SET is_public=$2, passcode_hash=NULLIF($3, ''), updated_at=NOW()
		WHERE group_id=$1
	`, groupID, isPublic, passcodeHash)
	if err != nil {
		return fmt.Errorf("update group privacy: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- group lifecycle ----

// CreateGroup inserts the lookup row, the info row, and the owner's friend
// row in one transaction. A failure at any step leaves no trace.
func (s *PostgresStore) CreateGroup(ctx context.Context, owner User, groupName string) (GroupLookup, GroupInfo, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GroupLookup{}, GroupInfo{}, fmt.Errorf("begin create group: %w", err)
	}
	defer tx.Rollback()

	lookup := GroupLookup{
		GroupID: uuid.NewString(),
		UUID:    uuid.NewString(),
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO group_lookup (group_id, uuid)
		VALUES ($1, $2)
	`, lookup.GroupID, lookup.UUID); err != nil {
		return GroupLookup{}, GroupInfo{}, fmt.Errorf("insert group lookup: %w", err)
	}

	var info GroupInfo
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO group_info (group_id, owner_id, group_name, is_public)
		VALUES ($1, $2, $3, FALSE)
		RETURNING group_id, owner_id, group_name, is_public, '', COALESCE(thumbnail_url, ''), created_at, updated_at
	`, lookup.GroupID, owner.ID, groupName).Scan(
		&info.GroupID, &info.OwnerID, &info.GroupName, &info.IsPublic, &info.PasscodeHash, &info.ThumbnailURL, &info.CreatedAt, &info.UpdatedAt,
	); err != nil {
		return GroupLookup{}, GroupInfo{}, fmt.Errorf("insert group info: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO friends (id, group_id, user_id, profile_name, is_owner, is_admin, is_confirmed)
		VALUES ($1, $2, $3, $4, TRUE, FALSE, TRUE)
	`, uuid.NewString(), lookup.GroupID, owner.ID, owner.ProfileName); err != nil {
		return GroupLookup{}, GroupInfo{}, fmt.Errorf("insert owner friend: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return GroupLookup{}, GroupInfo{}, fmt.Errorf("commit create group: %w", err)
	}
	return lookup, info, nil
}

// DeleteGroup removes the group's photos, friends, info row, and lookup row
// in one transaction. The info and lookup deletes must each affect exactly
// one row; anything else indicates a corrupted prior state and rolls the
// whole operation back.
func (s *PostgresStore) DeleteGroup(ctx context.Context, groupID string) (GroupInfo, error) {
	info, err := s.GetGroupInfo(ctx, groupID)
	if err != nil {
		return GroupInfo{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GroupInfo{}, fmt.Errorf("begin delete group: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE group_id=$1`, groupID); err != nil {
		return GroupInfo{}, fmt.Errorf("delete group photos: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM friends WHERE group_id=$1`, groupID); err != nil {
		return GroupInfo{}, fmt.Errorf("delete group friends: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM group_info WHERE group_id=$1`, groupID)
	if err != nil {
		return GroupInfo{}, fmt.Errorf("delete group info: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected != 1 {
		return GroupInfo{}, fmt.Errorf("delete group info: expected 1 row, affected %d", affected)
	}

	result, err = tx.ExecContext(ctx, `DELETE FROM group_lookup WHERE group_id=$1`, groupID)
	if err != nil {
		return GroupInfo{}, fmt.Errorf("delete group lookup: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected != 1 {
		return GroupInfo{}, fmt.Errorf("delete group lookup: expected 1 row, affected %d", affected)
	}

	if err := tx.Commit(); err != nil {
		return GroupInfo{}, fmt.Errorf("commit delete group: %w", err)
	}
	return info, nil
}

// ---- friend roster ----

const friendColumns = `
	f.id, f.group_id, f.user_id,
	COALESCE(u.profile_name, f.profile_name),
	COALESCE(u.email, f.email),
	COALESCE(u.profile_url, ''),
	f.is_owner, f.is_admin, f.is_confirmed, f.created_at
`

func scanFriend(row interface{ Scan(...any) error }) (Friend, error) {
	var friend Friend
	err := row.Scan(
		&friend.ID,
		&friend.GroupID,
		&friend.UserID,
		&friend.ProfileName,
		&friend.Email,
		&friend.ProfileURL,
		&friend.IsOwner,
		&friend.IsAdmin,
		&friend.IsConfirmed,
		&friend.CreatedAt,
	)
	return friend, err
}

// FriendForUser returns the friend row linking a user to a group, or
// ErrNotFound when the user has no membership there.
func (s *PostgresStore) FriendForUser(ctx context.Context, groupID, userID string) (Friend, error) {
	friend, err := scanFriend(s.db.QueryRowContext(ctx, `
		SELECT `+friendColumns+`
		FROM friends f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.group_id=$1 AND f.user_id=$2
	`, groupID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Friend{}, ErrNotFound
	}
	if err != nil {
		return Friend{}, fmt.Errorf("friend for user: %w", err)
	}
	return friend, nil
}

func (s *PostgresStore) GetFriend(ctx context.Context, groupID, friendID string) (Friend, error) {
	friend, err := scanFriend(s.db.QueryRowContext(ctx, `
		SELECT `+friendColumns+`
		FROM friends f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.group_id=$1 AND f.id=$2
	`, groupID, friendID))
	if errors.Is(err, sql.ErrNoRows) {
		return Friend{}, ErrNotFound
	}
	if err != nil {
		return Friend{}, fmt.Errorf("get friend: %w", err)
	}
	return friend, nil
}

// ListFriends reads the roster. Profile fields of linked rows come from the
// account, not the invitation, so edits to a user's profile show up in
// every lane they belong to.
func (s *PostgresStore) ListFriends(ctx context.Context, groupID string) ([]Friend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+friendColumns+`
		FROM friends f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.group_id=$1
		ORDER BY f.is_owner DESC, f.created_at ASC
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	defer rows.Close()

	items := make([]Friend, 0)
	for rows.Next() {
		friend, err := scanFriend(rows)
		if err != nil {
			return nil, fmt.Errorf("scan friend: %w", err)
		}
		items = append(items, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate friends: %w", err)
	}
	return items, nil
}

// AddFriends inserts one friend row per entry inside a single transaction.
// An entry whose email already belongs to a registered user is linked and
// confirmed immediately; otherwise a placeholder is created. Any failure
// rolls back the whole batch.
func (s *PostgresStore) AddFriends(ctx context.Context, groupID string, entries []FriendEntry) ([]Friend, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin add friends: %w", err)
	}
	defer tx.Rollback()

	created := make([]Friend, 0, len(entries))
	for _, entry := range entries {
		email := strings.ToLower(strings.TrimSpace(entry.Email))

		var userID *string
		confirmed := false
		if email != "" {
			var id string
			err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email=$1`, email).Scan(&id)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("lookup invite email: %w", err)
			}
			if err == nil {
				userID = &id
				confirmed = true
			}
		}

		friend := Friend{
			ID:          uuid.NewString(),
			GroupID:     groupID,
			UserID:      userID,
			ProfileName: entry.Name,
			IsConfirmed: confirmed,
		}
		if email != "" {
			friend.Email = &email
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO friends (id, group_id, user_id, profile_name, email, is_owner, is_admin, is_confirmed)
			VALUES ($1, $2, $3, $4, $5, FALSE, FALSE, $6)
		`, friend.ID, friend.GroupID, friend.UserID, friend.ProfileName, friend.Email, friend.IsConfirmed); err != nil {
			if isUniqueViolation(err) {
				return nil, ErrEmailConflict
			}
			return nil, fmt.Errorf("insert friend: %w", err)
		}
		created = append(created, friend)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add friends: %w", err)
	}
	return created, nil
}

// RemoveFriend deletes a friend row scoped to the group.
func (s *PostgresStore) RemoveFriend(ctx context.Context, groupID, friendID string) (Friend, error) {
	friend, err := s.GetFriend(ctx, groupID, friendID)
	if err != nil {
		return Friend{}, err
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM friends WHERE group_id=$1 AND id=$2`, groupID, friendID)
	if err != nil {
		return Friend{}, fmt.Errorf("remove friend: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return Friend{}, ErrNotFound
	}
	return friend, nil
}

// UpdateFriendInfo renames a friend and re-resolves linkage from the new
// email: a match against a registered user links and confirms the row, no
// match demotes it back to a placeholder. Admin standing belongs to the
// linked account, not the row, so it survives only when the edit keeps the
// same user attached.
func (s *PostgresStore) UpdateFriendInfo(ctx context.Context, groupID, friendID, name, email string) (Friend, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Friend{}, fmt.Errorf("begin update friend: %w", err)
	}
	defer tx.Rollback()

	var userID *string
	confirmed := false
	if email != "" {
		var id string
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE email=$1`, email).Scan(&id)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return Friend{}, fmt.Errorf("lookup friend email: %w", err)
		}
		if err == nil {
			userID = &id
			confirmed = true
		}
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE friends
		SET profile_name=$3, email=NULLIF($4, ''),
			is_admin=(is_admin AND user_id IS NOT DISTINCT FROM $5),
			user_id=$5, is_confirmed=$6
		WHERE group_id=$1 AND id=$2
	`, groupID, friendID, name, email, userID, confirmed)
	if err != nil {
		if isUniqueViolation(err) {
			return Friend{}, ErrEmailConflict
		}
		return Friend{}, fmt.Errorf("update friend: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return Friend{}, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return Friend{}, fmt.Errorf("commit update friend: %w", err)
	}
	return s.GetFriend(ctx, groupID, friendID)
}

func (s *PostgresStore) SetFriendAdmin(ctx context.Context, groupID, friendID string, isAdmin bool) (Friend, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE friends SET is_admin=$3
		WHERE group_id=$1 AND id=$2
	`, groupID, friendID, isAdmin)
	if err != nil {
		return Friend{}, fmt.Errorf("set friend admin: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return Friend{}, ErrNotFound
	}
	return s.GetFriend(ctx, groupID, friendID)
}

// ---- users and identity linking ----

// CreateUser inserts the account and links every placeholder friend row
// whose invitation email matches, in one transaction. The returned count is
// how many pending invitations were resolved.
func (s *PostgresStore) CreateUser(ctx context.Context, user User) (User, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return User{}, 0, fmt.Errorf("begin create user: %w", err)
	}
	defer tx.Rollback()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, profile_name, profile_url)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING created_at
	`, user.ID, user.Username, email, user.PasswordHash, user.ProfileName, user.ProfileURL).Scan(&user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return User{}, 0, ErrEmailConflict
		}
		return User{}, 0, fmt.Errorf("insert user: %w", err)
	}
	user.Email = email

	// The user_id IS NULL guard makes the pass idempotent: rows linked in an
	// earlier run no longer match.
	result, err := tx.ExecContext(ctx, `
		UPDATE friends
		SET user_id=$1, is_confirmed=TRUE
		WHERE email=$2 AND user_id IS NULL
	`, user.ID, email)
	if err != nil {
		return User{}, 0, fmt.Errorf("link pending invites: %w", err)
	}
	linked, err := result.RowsAffected()
	if err != nil {
		return User{}, 0, fmt.Errorf("link pending invites rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return User{}, 0, fmt.Errorf("commit create user: %w", err)
	}
	return user, int(linked), nil
}

func (s *PostgresStore) GetUserByID(ctx context.Context, userID string) (User, error) {
	return s.getUser(ctx, `WHERE id=$1`, userID)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return s.getUser(ctx, `WHERE username=$1`, username)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return s.getUser(ctx, `WHERE email=$1`, strings.ToLower(strings.TrimSpace(email)))
}

func (s *PostgresStore) getUser(ctx context.Context, where string, arg any) (User, error) {
	var user User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, COALESCE(email, ''), COALESCE(password_hash, ''), profile_name, COALESCE(profile_url, ''), created_at
		FROM users `+where, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.ProfileName, &user.ProfileURL, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

// ---- photos ----

func (s *PostgresStore) ListPhotos(ctx context.Context, groupID string) ([]Photo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, group_id, object_key, COALESCE(caption, ''), COALESCE(uploaded_by, ''), created_at
		FROM photos
		WHERE group_id=$1
		ORDER BY created_at DESC
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	items := make([]Photo, 0)
	for rows.Next() {
		var item Photo
		if err := rows.Scan(&item.ID, &item.GroupID, &item.ObjectKey, &item.Caption, &item.UploadedBy, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) InsertPhoto(ctx context.Context, photo Photo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO photos (id, group_id, object_key, caption, uploaded_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
	`, photo.ID, photo.GroupID, photo.ObjectKey, photo.Caption, photo.UploadedBy)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// ---- refresh sessions (Postgres fallback when Redis is not configured) ----

func (s *PostgresStore) SaveRefreshSession(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO refresh_sessions (token_hash, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token_hash) DO UPDATE SET user_id=EXCLUDED.user_id, expires_at=EXCLUDED.expires_at, revoked_at=NULL
	`, tokenHash, userID, expiresAt)
	if err != nil {
		return fmt.Errorf("save refresh session: %w", err)
	}
	return nil
}

func (s *PostgresStore) LookupRefreshSession(ctx context.Context, tokenHash string) (User, error) {
	const query = `
		SELECT u.id, u.username, COALESCE(u.email, ''), COALESCE(u.password_hash, ''), u.profile_name, COALESCE(u.profile_url, ''), u.created_at
		FROM refresh_sessions rs
		JOIN users u ON u.id = rs.user_id
		WHERE rs.token_hash = $1
			AND rs.revoked_at IS NULL
			AND rs.expires_at > NOW()
	`
	var user User
	err := s.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.ProfileName, &user.ProfileURL, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup refresh session: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) RevokeRefreshSession(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE refresh_sessions SET revoked_at=NOW() WHERE token_hash=$1`, tokenHash)
	if err != nil {
		return fmt.Errorf("revoke refresh session: %w", err)
	}
	return nil
}

func (s *PostgresStore) RevokeAccessToken(ctx context.Context, jti string, exp time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO revoked_access_tokens (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`, jti, exp)
	if err != nil {
		return fmt.Errorf("revoke access token: %w", err)
	}
	return nil
}

func (s *PostgresStore) IsAccessTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM revoked_access_tokens WHERE jti=$1)`, jti).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return revoked, nil
}
