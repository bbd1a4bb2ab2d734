package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// These tests need a disposable Postgres database; they drop and recreate
// the public schema on every run. Point MEMORYLANE_TEST_DATABASE_URL at one
// to enable them.
func openTestStore(t *testing.T) (*PostgresStore, context.Context) {
	t.Helper()
	dsn := strings.TrimSpace(os.Getenv("MEMORYLANE_TEST_DATABASE_URL"))
	if dsn == "" {
		t.Skip("MEMORYLANE_TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := ApplyMigrations(ctx, db, filepath.Join("..", "..", "db", "migrations")); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return NewPostgresStore(db), ctx
}

func seedUser(t *testing.T, ctx context.Context, s *PostgresStore, email, name string) User {
	t.Helper()
	user, _, err := s.CreateUser(ctx, User{Username: email, Email: email, PasswordHash: "irrelevant", ProfileName: name})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedGroup(t *testing.T, ctx context.Context, s *PostgresStore, owner User, name string) GroupLookup {
	t.Helper()
	lookup, _, err := s.CreateGroup(ctx, owner, name)
	if err != nil {
		t.Fatalf("seed group %s: %v", name, err)
	}
	return lookup
}

func TestAddFriendsRollsBackBatchOnDuplicateEmail(t *testing.T) {
	s, ctx := openTestStore(t)
	owner := seedUser(t, ctx, s, "alice@example.com", "Alice")
	lookup := seedGroup(t, ctx, s, owner, "Summer Trip")

	// A duplicate inside the batch aborts the whole batch.
	_, err := s.AddFriends(ctx, lookup.GroupID, []FriendEntry{
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Robert", Email: "bob@example.com"},
	})
	if !errors.Is(err, ErrEmailConflict) {
		t.Fatalf("expected ErrEmailConflict, got %v", err)
	}
	roster, err := s.ListFriends(ctx, lookup.GroupID)
	if err != nil {
		t.Fatalf("list friends: %v", err)
	}
	if len(roster) != 1 || !roster[0].IsOwner {
		t.Fatalf("expected only the owner row after rollback, got %d rows", len(roster))
	}

	// A duplicate against an already-committed row aborts too, taking the
	// batch's earlier inserts with it.
	if _, err := s.AddFriends(ctx, lookup.GroupID, []FriendEntry{{Name: "Cara", Email: "cara@example.com"}}); err != nil {
		t.Fatalf("add cara: %v", err)
	}
	_, err = s.AddFriends(ctx, lookup.GroupID, []FriendEntry{
		{Name: "Dan", Email: "dan@example.com"},
		{Name: "Cara", Email: "cara@example.com"},
	})
	if !errors.Is(err, ErrEmailConflict) {
		t.Fatalf("expected ErrEmailConflict, got %v", err)
	}
	roster, err = s.ListFriends(ctx, lookup.GroupID)
	if err != nil {
		t.Fatalf("list friends: %v", err)
	}
	for _, friend := range roster {
		if friend.Email != nil && *friend.Email == "dan@example.com" {
			t.Fatalf("dan should have been rolled back with the failed batch")
		}
	}
	if len(roster) != 2 {
		t.Fatalf("expected owner plus cara, got %d rows", len(roster))
	}
}

func TestSetAliasConflictIsBackedByUniqueConstraint(t *testing.T) {
	s, ctx := openTestStore(t)
	owner := seedUser(t, ctx, s, "alice@example.com", "Alice")
	first := seedGroup(t, ctx, s, owner, "Summer Trip")
	second := seedGroup(t, ctx, s, owner, "Winter Trip")

	taken := "summer-trip"
	if _, err := s.SetAlias(ctx, first.GroupID, &taken); err != nil {
		t.Fatalf("set alias: %v", err)
	}
	if _, err := s.SetAlias(ctx, second.GroupID, &taken); !errors.Is(err, ErrAliasConflict) {
		t.Fatalf("expected ErrAliasConflict, got %v", err)
	}

	// The pre-check only makes the error friendlier; the unique constraint
	// is what actually holds the line, so a write that slips past it must
	// fail with 23505 and classify as a conflict.
	_, err := s.DB().ExecContext(ctx, `UPDATE group_lookup SET alias=$1 WHERE group_id=$2`, taken, second.GroupID)
	if err == nil {
		t.Fatal("expected the alias unique constraint to reject the update")
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		t.Fatalf("expected SQLSTATE 23505, got %v", err)
	}
	if !isUniqueViolation(err) {
		t.Fatalf("expected the violation to classify as a unique conflict: %v", err)
	}
}

func TestCreateUserLinksPendingInvitesOnce(t *testing.T) {
	s, ctx := openTestStore(t)
	owner := seedUser(t, ctx, s, "alice@example.com", "Alice")
	lookup := seedGroup(t, ctx, s, owner, "Summer Trip")

	added, err := s.AddFriends(ctx, lookup.GroupID, []FriendEntry{
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Cara", Email: "cara@example.com"},
	})
	if err != nil {
		t.Fatalf("add friends: %v", err)
	}

	bob, linked, err := s.CreateUser(ctx, User{Username: "bob@example.com", Email: "bob@example.com", PasswordHash: "irrelevant", ProfileName: "Bob"})
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}
	if linked != 1 {
		t.Fatalf("expected bob's signup to claim 1 invite, got %d", linked)
	}
	row, err := s.GetFriend(ctx, lookup.GroupID, added[0].ID)
	if err != nil {
		t.Fatalf("get friend: %v", err)
	}
	if row.UserID == nil || *row.UserID != bob.ID || !row.IsConfirmed {
		t.Fatalf("expected bob's row linked and confirmed, got %+v", row)
	}

	// Already-linked rows are out of reach for later signups.
	if _, linked, err = s.CreateUser(ctx, User{Username: "dana@example.com", Email: "dana@example.com", PasswordHash: "irrelevant", ProfileName: "Dana"}); err != nil {
		t.Fatalf("create dana: %v", err)
	}
	if linked != 0 {
		t.Fatalf("expected dana's signup to claim nothing, got %d", linked)
	}

	// Cara's placeholder is still waiting.
	row, err = s.GetFriend(ctx, lookup.GroupID, added[1].ID)
	if err != nil {
		t.Fatalf("get friend: %v", err)
	}
	if row.UserID != nil || row.IsConfirmed {
		t.Fatalf("expected cara's row to stay a placeholder, got %+v", row)
	}
}

func TestUpdateFriendInfoRevokesAdminWhenLinkageChanges(t *testing.T) {
	s, ctx := openTestStore(t)
	owner := seedUser(t, ctx, s, "alice@example.com", "Alice")
	seedUser(t, ctx, s, "bob@example.com", "Bob")
	lookup := seedGroup(t, ctx, s, owner, "Summer Trip")

	added, err := s.AddFriends(ctx, lookup.GroupID, []FriendEntry{{Name: "Bob", Email: "bob@example.com"}})
	if err != nil {
		t.Fatalf("add friends: %v", err)
	}
	if _, err := s.SetFriendAdmin(ctx, lookup.GroupID, added[0].ID, true); err != nil {
		t.Fatalf("grant admin: %v", err)
	}

	// Same email, same linked user, so the grant stays.
	row, err := s.UpdateFriendInfo(ctx, lookup.GroupID, added[0].ID, "Bobby", "bob@example.com")
	if err != nil {
		t.Fatalf("rename friend: %v", err)
	}
	if !row.IsAdmin || !row.IsConfirmed {
		t.Fatalf("rename should keep admin on unchanged linkage, got %+v", row)
	}

	// Re-pointing the email demotes the row and the grant must not wait
	// there for whoever signs up with the new address.
	row, err = s.UpdateFriendInfo(ctx, lookup.GroupID, added[0].ID, "Evan", "evan@example.com")
	if err != nil {
		t.Fatalf("repoint friend: %v", err)
	}
	if row.UserID != nil || row.IsConfirmed {
		t.Fatalf("expected a demoted placeholder, got %+v", row)
	}
	if row.IsAdmin {
		t.Fatalf("demoted placeholder must not keep admin, got %+v", row)
	}

	evan, linked, err := s.CreateUser(ctx, User{Username: "evan@example.com", Email: "evan@example.com", PasswordHash: "irrelevant", ProfileName: "Evan"})
	if err != nil {
		t.Fatalf("create evan: %v", err)
	}
	if linked != 1 {
		t.Fatalf("expected evan's signup to claim the placeholder, got %d", linked)
	}
	row, err = s.GetFriend(ctx, lookup.GroupID, added[0].ID)
	if err != nil {
		t.Fatalf("get friend: %v", err)
	}
	if row.UserID == nil || *row.UserID != evan.ID || !row.IsConfirmed {
		t.Fatalf("expected evan linked and confirmed, got %+v", row)
	}
	if row.IsAdmin {
		t.Fatalf("evan must not inherit a grant that was never his, got %+v", row)
	}
}

func TestDeleteGroupRemovesEverythingOrNothing(t *testing.T) {
	s, ctx := openTestStore(t)
	owner := seedUser(t, ctx, s, "alice@example.com", "Alice")
	lookup := seedGroup(t, ctx, s, owner, "Summer Trip")

	if _, err := s.AddFriends(ctx, lookup.GroupID, []FriendEntry{{Name: "Bob", Email: "bob@example.com"}}); err != nil {
		t.Fatalf("add friends: %v", err)
	}
	if err := s.InsertPhoto(ctx, Photo{ID: uuid.NewString(), GroupID: lookup.GroupID, ObjectKey: lookup.GroupID + "/dock.jpg", Caption: "dock"}); err != nil {
		t.Fatalf("insert photo: %v", err)
	}

	if _, err := s.DeleteGroup(ctx, lookup.GroupID); err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if _, err := s.ResolveGroup(ctx, lookup.UUID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected the identifier to be gone, got %v", err)
	}
	var count int
	if err := s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM friends WHERE group_id=$1`, lookup.GroupID).Scan(&count); err != nil || count != 0 {
		t.Fatalf("expected no surviving friend rows, got %d (%v)", count, err)
	}
	if err := s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM photos WHERE group_id=$1`, lookup.GroupID).Scan(&count); err != nil || count != 0 {
		t.Fatalf("expected no surviving photo rows, got %d (%v)", count, err)
	}
	if _, err := s.DeleteGroup(ctx, lookup.GroupID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a second delete to report not found, got %v", err)
	}

	// When the group's state is already inconsistent the delete must fail
	// without committing any partial cleanup.
	broken := seedGroup(t, ctx, s, owner, "Winter Trip")
	if _, err := s.AddFriends(ctx, broken.GroupID, []FriendEntry{{Name: "Cara", Email: "cara@example.com"}}); err != nil {
		t.Fatalf("add friends: %v", err)
	}
	if _, err := s.DB().ExecContext(ctx, `DELETE FROM group_info WHERE group_id=$1`, broken.GroupID); err != nil {
		t.Fatalf("stage inconsistency: %v", err)
	}
	if _, err := s.DeleteGroup(ctx, broken.GroupID); err == nil {
		t.Fatal("expected delete of an inconsistent group to fail")
	}
	if _, err := s.ResolveGroup(ctx, broken.UUID); err != nil {
		t.Fatalf("lookup row must survive the failed delete: %v", err)
	}
	roster, err := s.ListFriends(ctx, broken.GroupID)
	if err != nil || len(roster) != 2 {
		t.Fatalf("friend rows must survive the failed delete, got %d (%v)", len(roster), err)
	}
}
