package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"memorylane/api/internal/access"
	"memorylane/api/internal/alias"
	"memorylane/api/internal/auth"
	"memorylane/api/internal/authpw"
	"memorylane/api/internal/config"
	"memorylane/api/internal/media"
	"memorylane/api/internal/store"
	"memorylane/api/internal/util"
)

type Session struct {
	Token        string
	RefreshToken string
	UserID       string
	Username     string
	ProfileName  string
	JTI          string
	ExpiresAt    time.Time
}

type FriendEntryInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type dataStore interface {
	ResolveGroup(context.Context, string) (store.GroupLookup, error)
	SetAlias(context.Context, string, *string) (store.GroupLookup, error)
	GetGroupInfo(context.Context, string) (store.GroupInfo, error)
	UpdateGroupSettings(context.Context, string, string, string) error
	UpdateGroupPrivacy(context.Context, string, bool, string) error
	CreateGroup(context.Context, store.User, string) (store.GroupLookup, store.GroupInfo, error)
	DeleteGroup(context.Context, string) (store.GroupInfo, error)
	FriendForUser(context.Context, string, string) (store.Friend, error)
	GetFriend(context.Context, string, string) (store.Friend, error)
	ListFriends(context.Context, string) ([]store.Friend, error)
	AddFriends(context.Context, string, []store.FriendEntry) ([]store.Friend, error)
	RemoveFriend(context.Context, string, string) (store.Friend, error)
	UpdateFriendInfo(context.Context, string, string, string, string) (store.Friend, error)
	SetFriendAdmin(context.Context, string, string, bool) (store.Friend, error)
	CreateUser(context.Context, store.User) (store.User, int, error)
	GetUserByID(context.Context, string) (store.User, error)
	GetUserByUsername(context.Context, string) (store.User, error)
	GetUserByEmail(context.Context, string) (store.User, error)
	ListPhotos(context.Context, string) ([]store.Photo, error)
	InsertPhoto(context.Context, store.Photo) error
	SaveRefreshSession(context.Context, string, string, time.Time) error
	RevokeRefreshSession(context.Context, string) error
	LookupRefreshSession(context.Context, string) (store.User, error)
	RevokeAccessToken(context.Context, string, time.Time) error
	IsAccessTokenRevoked(context.Context, string) (bool, error)
	Ping(ctx context.Context) error
}

// sessionStore is the refresh-token backend: Redis when configured,
// Postgres otherwise.
type sessionStore interface {
	SaveRefreshSession(ctx context.Context, tokenHash string, user store.User, expiresAt time.Time) error
	LookupRefreshSession(ctx context.Context, tokenHash string) (store.User, error)
	RevokeRefreshSession(ctx context.Context, tokenHash string) error
}

// pgSessions adapts the relational store to the sessionStore interface.
type pgSessions struct {
	store dataStore
}

func (p pgSessions) SaveRefreshSession(ctx context.Context, tokenHash string, user store.User, expiresAt time.Time) error {
	return p.store.SaveRefreshSession(ctx, tokenHash, user.ID, expiresAt)
}

func (p pgSessions) LookupRefreshSession(ctx context.Context, tokenHash string) (store.User, error) {
	return p.store.LookupRefreshSession(ctx, tokenHash)
}

func (p pgSessions) RevokeRefreshSession(ctx context.Context, tokenHash string) error {
	return p.store.RevokeRefreshSession(ctx, tokenHash)
}

// MediaService is the presigned-URL surface the service needs from object
// storage. A nil value disables photo features.
type MediaService interface {
	UploadURL(ctx context.Context, objectKey string) (string, error)
	ViewURL(ctx context.Context, objectKey string) (string, error)
	RemovePrefix(ctx context.Context, groupID string) error
}

type Service struct {
	cfg      config.Config
	store    dataStore
	sessions sessionStore
	media    MediaService
	authpw   *authpw.Service
}

func New(cfg config.Config, dataStore dataStore, media MediaService) *Service {
	return &Service{
		cfg:      cfg,
		store:    dataStore,
		sessions: pgSessions{store: dataStore},
		media:    media,
		authpw:   authpw.NewService(dataStore),
	}
}

func NewWithSessionStore(cfg config.Config, dataStore dataStore, sessions sessionStore, media MediaService) *Service {
	service := New(cfg, dataStore, media)
	service.sessions = sessions
	return service
}

func (s *Service) AuthPasswordService() *authpw.Service {
	return s.authpw
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// ---- sessions ----

func (s *Service) CreateSession(ctx context.Context, user store.User) (Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	jti := util.NewOpaque("jti")

	token, err := auth.IssueToken([]byte(s.cfg.JWTSecret), user.ID, user.Username, user.ProfileName, jti, expiresAt)
	if err != nil {
		return Session{}, err
	}

	refresh := util.NewOpaque("rft")
	refreshExpires := now.Add(s.cfg.RefreshTTL)
	if err := s.sessions.SaveRefreshSession(ctx, auth.HashToken(refresh), user, refreshExpires); err != nil {
		return Session{}, err
	}

	return Session{
		Token:        token,
		RefreshToken: refresh,
		UserID:       user.ID,
		Username:     user.Username,
		ProfileName:  user.ProfileName,
		JTI:          jti,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	tokenHash := auth.HashToken(refreshToken)
	user, err := s.sessions.LookupRefreshSession(ctx, tokenHash)
	if err != nil {
		return Session{}, err
	}
	// Rotation: the presented token is dead as soon as it is used.
	if err := s.sessions.RevokeRefreshSession(ctx, tokenHash); err != nil {
		return Session{}, err
	}
	return s.CreateSession(ctx, user)
}

func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.JWTSecret), token)
	if err != nil {
		return Session{}, err
	}
	revoked, err := s.store.IsAccessTokenRevoked(ctx, claims.ID)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, auth.ErrInvalidToken
	}

	return Session{
		Token:       token,
		UserID:      claims.Subject,
		Username:    claims.Username,
		ProfileName: claims.ProfileName,
		JTI:         claims.ID,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (s *Service) Logout(ctx context.Context, session Session, refreshToken string) error {
	if session.JTI != "" {
		_ = s.store.RevokeAccessToken(ctx, session.JTI, session.ExpiresAt)
	}
	if refreshToken != "" {
		_ = s.sessions.RevokeRefreshSession(ctx, auth.HashToken(refreshToken))
	}
	return nil
}

// ResolveViewer maps a verified token identity to a registered user. A
// token whose username has no user row yet counts as anonymous for
// authorization purposes.
func (s *Service) ResolveViewer(ctx context.Context, username string) (*store.User, error) {
	if username == "" {
		return nil, nil
	}
	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ---- identifier resolution and authorization ----

func (s *Service) resolveGroup(ctx context.Context, identifier string) (store.GroupLookup, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return store.GroupLookup{}, errGroupNotFound()
	}
	lookup, err := s.store.ResolveGroup(ctx, identifier)
	if errors.Is(err, store.ErrNotFound) {
		return store.GroupLookup{}, errGroupNotFound()
	}
	if err != nil {
		return store.GroupLookup{}, err
	}
	return lookup, nil
}

func errGroupNotFound() *DomainError {
	// Unknown identifier is deliberately a different status from a denied
	// one, and never distinguishes "never existed" from "deleted".
	return domainError(http.StatusBadRequest, "GROUP_NOT_FOUND", "Group does not exist", nil)
}

func errForbidden() *DomainError {
	return domainError(http.StatusForbidden, "FORBIDDEN", "Access denied", nil)
}

func (s *Service) viewerRole(ctx context.Context, groupID string, viewer *store.User) (access.Role, error) {
	if viewer == nil {
		return access.RoleNone, nil
	}
	friend, err := s.store.FriendForUser(ctx, groupID, viewer.ID)
	if errors.Is(err, store.ErrNotFound) {
		return access.RoleNone, nil
	}
	if err != nil {
		return access.RoleNone, err
	}
	return access.RoleFor(&friend), nil
}

// requireRole resolves the group and checks the viewer holds at least min.
// Used by the mutating handlers; read access goes through the gate instead.
func (s *Service) requireRole(ctx context.Context, identifier string, viewer *store.User, min access.Role) (store.GroupLookup, access.Role, error) {
	lookup, err := s.resolveGroup(ctx, identifier)
	if err != nil {
		return store.GroupLookup{}, access.RoleNone, err
	}
	role, err := s.viewerRole(ctx, lookup.GroupID, viewer)
	if err != nil {
		return store.GroupLookup{}, access.RoleNone, err
	}
	if !role.AtLeast(min) {
		return store.GroupLookup{}, access.RoleNone, errForbidden()
	}
	return lookup, role, nil
}

// requireRead resolves the group and evaluates the access policy gate for a
// read. All downstream queries are the caller's responsibility; a denial
// here must short-circuit them.
func (s *Service) requireRead(ctx context.Context, identifier string, viewer *store.User, passcode string) (store.GroupLookup, store.GroupInfo, access.Role, error) {
	lookup, err := s.resolveGroup(ctx, identifier)
	if err != nil {
		return store.GroupLookup{}, store.GroupInfo{}, access.RoleNone, err
	}
	info, err := s.store.GetGroupInfo(ctx, lookup.GroupID)
	if err != nil {
		return store.GroupLookup{}, store.GroupInfo{}, access.RoleNone, err
	}
	role, err := s.viewerRole(ctx, lookup.GroupID, viewer)
	if err != nil {
		return store.GroupLookup{}, store.GroupInfo{}, access.RoleNone, err
	}
	if !access.Authorize(info, role, passcode) {
		return store.GroupLookup{}, store.GroupInfo{}, access.RoleNone, errForbidden()
	}
	return lookup, info, role, nil
}

// ---- main aggregate read ----

// GetMainApp is the group landing payload: lookup, info, roster, photos,
// and the viewer's role. The four reads fan out concurrently; the gate is
// evaluated once they all return, and a denial discards everything fetched.
func (s *Service) GetMainApp(ctx context.Context, identifier string, viewer *store.User, passcode string) (map[string]any, error) {
	lookup, err := s.resolveGroup(ctx, identifier)
	if err != nil {
		return nil, err
	}

	var (
		wg        sync.WaitGroup
		info      store.GroupInfo
		photos    []store.Photo
		friends   []store.Friend
		friendRow *store.Friend

		infoErr, photosErr, friendsErr, roleErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		info, infoErr = s.store.GetGroupInfo(ctx, lookup.GroupID)
	}()
	go func() {
		defer wg.Done()
		photos, photosErr = s.store.ListPhotos(ctx, lookup.GroupID)
	}()
	go func() {
		defer wg.Done()
		friends, friendsErr = s.store.ListFriends(ctx, lookup.GroupID)
	}()
	go func() {
		defer wg.Done()
		if viewer == nil {
			return
		}
		friend, err := s.store.FriendForUser(ctx, lookup.GroupID, viewer.ID)
		if errors.Is(err, store.ErrNotFound) {
			return
		}
		if err != nil {
			roleErr = err
			return
		}
		friendRow = &friend
	}()
	wg.Wait()

	for _, err := range []error{infoErr, photosErr, friendsErr, roleErr} {
		if err != nil {
			return nil, err
		}
	}

	role := access.RoleFor(friendRow)
	if !access.Authorize(info, role, passcode) {
		return nil, errForbidden()
	}

	photoViews := make([]map[string]any, 0, len(photos))
	for _, photo := range photos {
		photoViews = append(photoViews, s.photoView(ctx, photo))
	}
	friendViews := make([]map[string]any, 0, len(friends))
	for _, friend := range friends {
		friendViews = append(friendViews, friendView(friend))
	}

	return map[string]any{
		"group":   s.lookupView(lookup),
		"info":    infoView(info),
		"friends": friendViews,
		"photos":  photoViews,
		"viewer":  map[string]any{"role": role.String()},
	}, nil
}

// ---- group lifecycle ----

func (s *Service) CreateGroup(ctx context.Context, viewer *store.User, groupName string) (map[string]any, error) {
	if viewer == nil {
		return nil, domainError(http.StatusUnauthorized, "UNAUTHORIZED", "Sign in to create a memory lane", nil)
	}
	groupName = strings.TrimSpace(groupName)
	if groupName == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "groupName is required", nil)
	}

	lookup, info, err := s.store.CreateGroup(ctx, *viewer, groupName)
	if err != nil {
		return nil, err
	}
	slog.Info("group created", "group_uuid", lookup.UUID, "owner_id", viewer.ID)

	return map[string]any{
		"group": s.lookupView(lookup),
		"info":  infoView(info),
	}, nil
}

func (s *Service) DeleteGroup(ctx context.Context, identifier string, viewer *store.User) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleOwner)
	if err != nil {
		return nil, err
	}
	info, err := s.store.DeleteGroup(ctx, lookup.GroupID)
	if err != nil {
		return nil, err
	}
	slog.Info("group deleted", "group_uuid", lookup.UUID)

	// Object storage is outside the transaction; an orphaned prefix is
	// acceptable, a half-deleted group is not.
	if s.media != nil {
		if err := s.media.RemovePrefix(ctx, lookup.GroupID); err != nil {
			slog.Warn("photo cleanup failed", "group_uuid", lookup.UUID, "error", err)
		}
	}
	return infoView(info), nil
}

func (s *Service) UpdateGroupSettings(ctx context.Context, identifier string, viewer *store.User, groupName, thumbnailURL string) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleAdmin)
	if err != nil {
		return nil, err
	}
	groupName = strings.TrimSpace(groupName)
	if groupName == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "groupName is required", nil)
	}
	if err := s.store.UpdateGroupSettings(ctx, lookup.GroupID, groupName, thumbnailURL); err != nil {
		return nil, err
	}
	info, err := s.store.GetGroupInfo(ctx, lookup.GroupID)
	if err != nil {
		return nil, err
	}
	return infoView(info), nil
}

func (s *Service) UpdateGroupPrivacy(ctx context.Context, identifier string, viewer *store.User, isPublic bool, passcode string) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleAdmin)
	if err != nil {
		return nil, err
	}

	passcodeHash := ""
	if !isPublic && passcode != "" {
		hash, err := access.HashPasscode(passcode)
		if err != nil {
			return nil, fmt.Errorf("hash passcode: %w", err)
		}
		passcodeHash = hash
	}
	if err := s.store.UpdateGroupPrivacy(ctx, lookup.GroupID, isPublic, passcodeHash); err != nil {
		return nil, err
	}
	info, err := s.store.GetGroupInfo(ctx, lookup.GroupID)
	if err != nil {
		return nil, err
	}
	return infoView(info), nil
}

// SetAlias changes or clears the group's custom identifier. Format is
// checked here, before the store is touched; collision and the reserved
// set are the store's contract.
func (s *Service) SetAlias(ctx context.Context, identifier string, viewer *store.User, newAlias *string) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if newAlias != nil {
		trimmed := strings.TrimSpace(*newAlias)
		if trimmed == "" {
			newAlias = nil
		} else {
			if !alias.ValidFormat(trimmed) {
				return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "alias must be lowercase letters and hyphens", nil)
			}
			newAlias = &trimmed
		}
	}

	updated, err := s.store.SetAlias(ctx, lookup.GroupID, newAlias)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAliasConflict):
			return nil, domainError(http.StatusConflict, "ALIAS_CONFLICT", err.Error(), nil)
		case errors.Is(err, store.ErrAliasReserved):
			return nil, domainError(http.StatusUnprocessableEntity, "ALIAS_RESERVED", err.Error(), nil)
		}
		return nil, err
	}
	return map[string]any{"group": s.lookupView(updated)}, nil
}

// ---- friend roster ----

func (s *Service) ListFriends(ctx context.Context, identifier string, viewer *store.User, passcode string) (map[string]any, error) {
	lookup, _, _, err := s.requireRead(ctx, identifier, viewer, passcode)
	if err != nil {
		return nil, err
	}
	friends, err := s.store.ListFriends(ctx, lookup.GroupID)
	if err != nil {
		return nil, err
	}
	views := make([]map[string]any, 0, len(friends))
	for _, friend := range friends {
		views = append(views, friendView(friend))
	}
	return map[string]any{"friends": views}, nil
}

func (s *Service) AddFriends(ctx context.Context, identifier string, viewer *store.User, entries []FriendEntryInput) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "friends must not be empty", nil)
	}

	batch := make([]store.FriendEntry, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "every friend needs a name", nil)
		}
		batch = append(batch, store.FriendEntry{Name: name, Email: entry.Email})
	}

	created, err := s.store.AddFriends(ctx, lookup.GroupID, batch)
	if err != nil {
		if errors.Is(err, store.ErrEmailConflict) {
			return nil, domainError(http.StatusConflict, "EMAIL_CONFLICT", err.Error(), nil)
		}
		return nil, err
	}

	views := make([]map[string]any, 0, len(created))
	for _, friend := range created {
		views = append(views, friendView(friend))
	}
	return map[string]any{"friends": views}, nil
}

func (s *Service) RemoveFriend(ctx context.Context, identifier, friendID string, viewer *store.User) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleAdmin)
	if err != nil {
		return nil, err
	}
	friend, err := s.store.GetFriend(ctx, lookup.GroupID, friendID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Friend not found", nil)
		}
		return nil, err
	}
	if friend.IsOwner {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "the owner cannot be removed from their own group", nil)
	}
	removed, err := s.store.RemoveFriend(ctx, lookup.GroupID, friendID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Friend not found", nil)
		}
		return nil, err
	}
	return map[string]any{"friend": friendView(removed)}, nil
}

func (s *Service) UpdateFriendInfo(ctx context.Context, identifier, friendID string, viewer *store.User, name, email string) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleAdmin)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "name is required", nil)
	}
	friend, err := s.store.UpdateFriendInfo(ctx, lookup.GroupID, friendID, name, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailConflict):
			return nil, domainError(http.StatusConflict, "EMAIL_CONFLICT", err.Error(), nil)
		case errors.Is(err, store.ErrNotFound):
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Friend not found", nil)
		}
		return nil, err
	}
	return map[string]any{"friend": friendView(friend)}, nil
}

func (s *Service) SetFriendAdmin(ctx context.Context, identifier, friendID string, viewer *store.User, isAdmin bool) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleOwner)
	if err != nil {
		return nil, err
	}
	friend, err := s.store.GetFriend(ctx, lookup.GroupID, friendID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Friend not found", nil)
		}
		return nil, err
	}
	if friend.IsOwner {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "the owner's role cannot be changed", nil)
	}
	// Admin is meaningless on a row nobody has claimed yet.
	if isAdmin && !friend.IsConfirmed {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "only a confirmed friend can be made admin", nil)
	}
	updated, err := s.store.SetFriendAdmin(ctx, lookup.GroupID, friendID, isAdmin)
	if err != nil {
		return nil, err
	}
	return map[string]any{"friend": friendView(updated)}, nil
}

// ---- photos ----

func (s *Service) ListPhotos(ctx context.Context, identifier string, viewer *store.User, passcode string) (map[string]any, error) {
	lookup, _, _, err := s.requireRead(ctx, identifier, viewer, passcode)
	if err != nil {
		return nil, err
	}
	photos, err := s.store.ListPhotos(ctx, lookup.GroupID)
	if err != nil {
		return nil, err
	}
	views := make([]map[string]any, 0, len(photos))
	for _, photo := range photos {
		views = append(views, s.photoView(ctx, photo))
	}
	return map[string]any{"photos": views}, nil
}

func (s *Service) AddPhoto(ctx context.Context, identifier string, viewer *store.User, fileName, caption string) (map[string]any, error) {
	lookup, _, err := s.requireRole(ctx, identifier, viewer, access.RoleFriend)
	if err != nil {
		return nil, err
	}
	if s.media == nil {
		return nil, domainError(http.StatusServiceUnavailable, "MEDIA_UNAVAILABLE", "Photo storage not configured", nil)
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "fileName is required", nil)
	}

	photo := store.Photo{
		ID:         uuid.NewString(),
		GroupID:    lookup.GroupID,
		Caption:    caption,
		UploadedBy: viewer.ProfileName,
	}
	photo.ObjectKey = media.ObjectKey(lookup.GroupID, photo.ID, fileName)

	uploadURL, err := s.media.UploadURL(ctx, photo.ObjectKey)
	if err != nil {
		return nil, err
	}
	if err := s.store.InsertPhoto(ctx, photo); err != nil {
		return nil, err
	}

	view := s.photoView(ctx, photo)
	view["uploadUrl"] = uploadURL
	return map[string]any{"photo": view}, nil
}

// ---- views ----

func (s *Service) lookupView(lookup store.GroupLookup) map[string]any {
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	view := map[string]any{
		"uuid":     lookup.UUID,
		"alias":    nil,
		"aliasUrl": nil,
		"groupUrl": base + "/" + lookup.UUID,
	}
	if lookup.Alias != nil {
		view["alias"] = *lookup.Alias
		view["aliasUrl"] = base + "/" + *lookup.Alias
	}
	return view
}

// infoView is the public-safe shape of group settings; the passcode hash
// never leaves the service.
func infoView(info store.GroupInfo) map[string]any {
	return map[string]any{
		"ownerId":      info.OwnerID,
		"groupName":    info.GroupName,
		"isPublic":     info.IsPublic,
		"thumbnailUrl": info.ThumbnailURL,
	}
}

func friendView(friend store.Friend) map[string]any {
	view := map[string]any{
		"friendId":    friend.ID,
		"userId":      nil,
		"profileName": friend.ProfileName,
		"email":       nil,
		"isOwner":     friend.IsOwner,
		"isAdmin":     friend.IsAdmin,
		"isConfirmed": friend.IsConfirmed,
		"profileUrl":  friend.ProfileURL,
	}
	if friend.UserID != nil {
		view["userId"] = *friend.UserID
	}
	if friend.Email != nil {
		view["email"] = *friend.Email
	}
	return view
}

func (s *Service) photoView(ctx context.Context, photo store.Photo) map[string]any {
	view := map[string]any{
		"photoId":    photo.ID,
		"caption":    photo.Caption,
		"uploadedBy": photo.UploadedBy,
		"createdAt":  photo.CreatedAt.UTC().Format(time.RFC3339),
	}
	if s.media != nil {
		url, err := s.media.ViewURL(ctx, photo.ObjectKey)
		if err != nil {
			slog.Debug("presign view url failed", "photo_id", photo.ID, "error", err)
		} else {
			view["url"] = url
		}
	}
	return view
}
