// Package memory - хранилище в памяти с теми же ограничениями, что и схема PostgreSQL:
// уникальные name и title, внешний ключ ad.user_id с каскадным удалением.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/domain"
)

var ErrClosed = errors.New("memory store is closed")

type state struct {
	users      map[int64]domain.User
	ads        map[int64]domain.Ad
	nextUserID int64
	nextAdID   int64
}

func (s *state) clone() *state {
	return &state{
		users:      maps.Clone(s.users),
		ads:        maps.Clone(s.ads),
		nextUserID: s.nextUserID,
		nextAdID:   s.nextAdID,
	}
}

// Store реализует ports.Store. Единицы работы выполняются по одной:
// fn получает копию состояния, которая заменяет основное только при успехе.
type Store struct {
	mu     sync.Mutex
	data   *state
	closed bool
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		data: &state{users: map[int64]domain.User{}, ads: map[int64]domain.Ad{}},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) WithUnit(ctx context.Context, fn func(ctx context.Context, uow ports.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	work := s.data.clone()
	if err := fn(ctx, &unit{st: work, now: s.now}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

type unit struct {
	st  *state
	now func() time.Time
}

func (u *unit) Users() ports.UserStorage { return userStorage{u} }
func (u *unit) Ads() ports.AdStorage     { return adStorage{u} }

type userStorage struct{ *unit }

func (s userStorage) GetUser(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.st.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &user, nil
}

func (s userStorage) CreateUser(_ context.Context, user *domain.User) (int64, error) {
	if s.nameTaken(user.Name, 0) {
		return 0, fmt.Errorf("user name %q: %w", user.Name, domain.ErrAlreadyExists)
	}
	s.st.nextUserID++
	id := s.st.nextUserID
	s.st.users[id] = domain.User{ID: id, Name: user.Name, PasswordHash: user.PasswordHash, CreationTime: s.now()}
	return id, nil
}

func (s userStorage) UpdateUser(_ context.Context, id int64, patch domain.UserPatch) error {
	user, ok := s.st.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if patch.Name != nil {
		if s.nameTaken(*patch.Name, id) {
			return fmt.Errorf("user name %q: %w", *patch.Name, domain.ErrAlreadyExists)
		}
		user.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	s.st.users[id] = user
	return nil
}

func (s userStorage) DeleteUser(_ context.Context, id int64) error {
	if _, ok := s.st.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	delete(s.st.users, id)
	// ON DELETE CASCADE
	for adID, ad := range s.st.ads {
		if ad.UserID == id {
			delete(s.st.ads, adID)
		}
	}
	return nil
}

func (s userStorage) nameTaken(name string, except int64) bool {
	for id, u := range s.st.users {
		if id != except && u.Name == name {
			return true
		}
	}
	return false
}

type adStorage struct{ *unit }

func (s adStorage) GetAd(_ context.Context, id int64) (*domain.Ad, error) {
	ad, ok := s.st.ads[id]
	if !ok {
		return nil, fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	return &ad, nil
}

func (s adStorage) CreateAd(_ context.Context, ad *domain.Ad) (int64, error) {
	if s.titleTaken(ad.Title, 0) {
		return 0, fmt.Errorf("ad title %q: %w", ad.Title, domain.ErrAlreadyExists)
	}
	if _, ok := s.st.users[ad.UserID]; !ok {
		return 0, fmt.Errorf("ad owner %d: %w", ad.UserID, domain.ErrInvalidReference)
	}
	s.st.nextAdID++
	id := s.st.nextAdID
	s.st.ads[id] = domain.Ad{
		ID:           id,
		Title:        ad.Title,
		Description:  ad.Description,
		CreationTime: s.now(),
		UserID:       ad.UserID,
	}
	return id, nil
}

func (s adStorage) UpdateAd(_ context.Context, id int64, patch domain.AdPatch) error {
	ad, ok := s.st.ads[id]
	if !ok {
		return fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	if patch.Title != nil {
		if s.titleTaken(*patch.Title, id) {
			return fmt.Errorf("ad title %q: %w", *patch.Title, domain.ErrAlreadyExists)
		}
		ad.Title = *patch.Title
	}
	if patch.Description != nil {
		ad.Description = *patch.Description
	}
	if patch.UserID != nil {
		if _, ok := s.st.users[*patch.UserID]; !ok {
			return fmt.Errorf("ad owner %d: %w", *patch.UserID, domain.ErrInvalidReference)
		}
		ad.UserID = *patch.UserID
	}
	s.st.ads[id] = ad
	return nil
}

func (s adStorage) DeleteAd(_ context.Context, id int64) error {
	if _, ok := s.st.ads[id]; !ok {
		return fmt.Errorf("ad %d: %w", id, domain.ErrNotFound)
	}
	delete(s.st.ads, id)
	return nil
}

func (s adStorage) titleTaken(title string, except int64) bool {
	for id, a := range s.st.ads {
		if id != except && a.Title == title {
			return true
		}
	}
	return false
}
