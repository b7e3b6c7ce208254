package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/formkeeper/internal/logging"
	"github.com/dmitrijs2005/formkeeper/internal/recordstore"
)

// RecordKey is the record store key holding the serialized user list.
const RecordKey = "users"

// Service reads and writes the user list through a record store. It keeps
// no cached copy: every call reads the store.
type Service struct {
	store  recordstore.Store
	logger logging.Logger
}

func NewService(store recordstore.Store, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Load returns the stored list, empty when nothing has been stored yet.
func (s *Service) Load(ctx context.Context) (Users, error) {
	raw, err := s.store.Get(ctx, RecordKey)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

func (s *Service) Find(ctx context.Context, username string) (User, bool, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return User{}, false, err
	}
	u, ok := FindByUsername(list, username)
	return u, ok, nil
}

// Register appends candidate to the stored list unless the username is
// taken. The candidate is normalized as NewUser does before the check, and
// the stored value is returned. Stores implementing recordstore.Updater
// run the check and the write atomically.
func (s *Service) Register(ctx context.Context, candidate User) (User, error) {
	candidate = NewUser(candidate.Username, candidate.Email, candidate.Password)

	var total int
	err := recordstore.Update(ctx, s.store, RecordKey, func(current []byte) ([]byte, error) {
		list, err := Decode(current)
		if err != nil {
			return nil, err
		}
		next, err := Register(list, candidate)
		if err != nil {
			return nil, err
		}
		total = len(next)
		return Encode(next)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			s.logger.Info(ctx, "registration rejected", "username", candidate.Username, "reason", err)
			return User{}, err
		}
		s.logger.Error(ctx, "registration failed", "username", candidate.Username, "error", err)
		return User{}, fmt.Errorf("failed to register %q: %w", candidate.Username, err)
	}

	s.logger.Info(ctx, "user registered", "username", candidate.Username, "users", total)
	return candidate, nil
}

// Login returns the user whose credentials match.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	list, err := s.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "login failed", "username", username, "error", err)
		return User{}, err
	}

	u, err := Authenticate(list, username, password)
	if err != nil {
		s.logger.Info(ctx, "login rejected", "username", username, "reason", err)
		return User{}, err
	}

	s.logger.Info(ctx, "user logged in", "username", u.Username)
	return u, nil
}

// Replace overwrites the stored list.
func (s *Service) Replace(ctx context.Context, list Users) error {
	b, err := Encode(list)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, RecordKey, b)
}

// Reset removes the stored list.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, RecordKey); err != nil {
		return err
	}
	s.logger.Warn(ctx, "user list cleared")
	return nil
}
