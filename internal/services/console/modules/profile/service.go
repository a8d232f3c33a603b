package profile

import (
	"context"
	"strings"
	"sync"

	"github.com/actext/console/internal/marketapi"
	apperrors "github.com/actext/console/internal/services/console/platform/errors"
	"github.com/actext/console/internal/services/console/platform/identity"
)

// View is the profile screen's view model.
//
// Degraded is set when the server record could not be loaded and the
// fields fall back to the cached identity record.
type View struct {
	Name     string
	Email    string
	IsAdmin  bool
	Degraded bool
}

// Initial returns the avatar letter for the profile holder.
func (v View) Initial() string {
	name := strings.TrimSpace(v.Name)
	if name == "" {
		return "U"
	}
	return strings.ToUpper(name[:1])
}

type service struct {
	gateway Gateway

	mu     sync.Mutex
	saving map[string]struct{}
}

func newService(gateway Gateway) *service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return &service{gateway: gateway, saving: make(map[string]struct{})}
}

// loadProfile joins the session identity to its server record by email.
// The stored user id is never trusted; the email is the join key.
func (s *service) loadProfile(ctx context.Context, viewer identity.Identity) (View, error) {
	email := strings.TrimSpace(viewer.Email)
	if email == "" {
		return View{}, apperrors.E(apperrors.KindNoSession, "no signed-in session")
	}
	record, err := s.locateByEmail(ctx, email)
	if err != nil {
		return View{}, err
	}
	return View{Name: record.Name, Email: record.Email, IsAdmin: record.IsAdmin}, nil
}

// saveProfile persists a display-name change and returns the refreshed
// identity record for the session cookie rewrite.
//
// Only the name is writable. The record is re-fetched and re-located by
// email right before the write, so the update lands on the server's
// current row even when the cached record went stale. A second save for
// the same email while one is in flight is rejected with a conflict.
func (s *service) saveProfile(ctx context.Context, viewer identity.Identity, newName string) (identity.Identity, error) {
	email := strings.TrimSpace(viewer.Email)
	if email == "" {
		return identity.Identity{}, apperrors.E(apperrors.KindNoSession, "no signed-in session")
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return identity.Identity{}, apperrors.E(apperrors.KindInvalidInput, "name is required")
	}

	if !s.beginSave(email) {
		return identity.Identity{}, apperrors.E(apperrors.KindConflict, "a save is already in progress")
	}
	defer s.endSave(email)

	record, err := s.locateByEmail(ctx, email)
	if err != nil {
		return identity.Identity{}, err
	}
	record.Name = newName
	saved, err := s.gateway.ReplaceUser(ctx, record.ID, record)
	if err != nil {
		return identity.Identity{}, apperrors.FromRemote(err)
	}
	return identity.Identity{Name: saved.Name, Email: record.Email, IsAdmin: record.IsAdmin}, nil
}

func (s *service) locateByEmail(ctx context.Context, email string) (marketapi.User, error) {
	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		return marketapi.User{}, apperrors.FromRemote(err)
	}
	for _, user := range users {
		if strings.TrimSpace(user.Email) == email {
			return user, nil
		}
	}
	return marketapi.User{}, apperrors.E(apperrors.KindNotFound, "no user record matches the session email")
}

func (s *service) beginSave(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, inFlight := s.saving[email]; inFlight {
		return false
	}
	s.saving[email] = struct{}{}
	return true
}

func (s *service) endSave(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, email)
}
