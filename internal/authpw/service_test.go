package authpw

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"memorylane/api/internal/store"
)

// mockUserStore is an in-memory UserStore. Inviting an email ahead of time
// simulates pending placeholder rows the real store would link on signup.
type mockUserStore struct {
	users         map[string]store.User // keyed by email
	pendingEmails map[string]int        // email -> placeholder rows waiting
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		users:         make(map[string]store.User),
		pendingEmails: make(map[string]int),
	}
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	if user, ok := m.users[strings.ToLower(email)]; ok {
		return user, nil
	}
	return store.User{}, store.ErrNotFound
}

func (m *mockUserStore) CreateUser(ctx context.Context, user store.User) (store.User, int, error) {
	if _, exists := m.users[user.Email]; exists {
		return store.User{}, 0, store.ErrEmailConflict
	}
	user.ID = uuid.NewString()
	m.users[user.Email] = user
	linked := m.pendingEmails[user.Email]
	delete(m.pendingEmails, user.Email)
	return user, linked, nil
}

func TestSignUpCreatesUserAndLinksInvites(t *testing.T) {
	mock := newMockUserStore()
	mock.pendingEmails["bob@example.com"] = 2
	svc := NewService(mock)

	resp, err := svc.SignUp(context.Background(), SignUpRequest{
		Email:       "  Bob@Example.com ",
		Password:    "hunter22!",
		ProfileName: "Bob",
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if resp.User.Email != "bob@example.com" {
		t.Fatalf("expected normalized email, got %q", resp.User.Email)
	}
	if resp.User.Username != "bob@example.com" {
		t.Fatalf("username must be the email, got %q", resp.User.Username)
	}
	if resp.LinkedInvites != 2 {
		t.Fatalf("expected 2 linked invites, got %d", resp.LinkedInvites)
	}
	if resp.User.PasswordHash == "hunter22!" || resp.User.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := NewService(newMockUserStore())

	if _, err := svc.SignUp(context.Background(), SignUpRequest{Email: "a@b.com", Password: "short", ProfileName: "A"}); err != ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := svc.SignUp(context.Background(), SignUpRequest{Email: "", Password: "longenough", ProfileName: "A"}); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newMockUserStore())
	req := SignUpRequest{Email: "bob@example.com", Password: "hunter22!", ProfileName: "Bob"}
	if _, err := svc.SignUp(context.Background(), req); err != nil {
		t.Fatalf("first SignUp() error = %v", err)
	}
	if _, err := svc.SignUp(context.Background(), req); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestSignInVerifiesPassword(t *testing.T) {
	mock := newMockUserStore()
	svc := NewService(mock)
	if _, err := svc.SignUp(context.Background(), SignUpRequest{Email: "bob@example.com", Password: "hunter22!", ProfileName: "Bob"}); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	user, err := svc.SignIn(context.Background(), SignInRequest{Email: "bob@example.com", Password: "hunter22!"})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if user.Email != "bob@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.SignIn(context.Background(), SignInRequest{Email: "bob@example.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.SignIn(context.Background(), SignInRequest{Email: "nobody@example.com", Password: "hunter22!"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
