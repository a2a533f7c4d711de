// Package store holds the application state: companies, connections,
// interactions, reminders, notes and company timelines, plus the views and
// statistics derived from them.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/pkg/models"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateID   = errors.New("duplicate id")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidType   = errors.New("invalid type")
)

// Ensure Store implements the public interfaces.
var _ repository.CompanyRepo = (*Store)(nil)
var _ repository.ConnectionRepo = (*Store)(nil)
var _ repository.InteractionRepo = (*Store)(nil)
var _ repository.ReminderRepo = (*Store)(nil)
var _ repository.NoteRepo = (*Store)(nil)
var _ repository.StatsRepo = (*Store)(nil)
var _ repository.ProfileRepo = (*Store)(nil)

// Store is the single source of truth for one user's session. The zero value
// is not usable; call New.
type Store struct {
	mu sync.RWMutex

	clock  func() time.Time
	newID  func() string
	logger *zap.Logger

	profile      models.UserProfile
	companies    []models.Company
	connections  []models.Connection
	links        []models.Link
	interactions []models.Interaction
	reminders    []models.Reminder
	notes        []models.Note
	timeline     []models.TimelineEvent
	stats        models.UserStats

	lmu       sync.Mutex
	listeners map[int]Listener
	nextLID   int
}

type Option func(*Store)

// WithClock replaces time.Now as the source of "now".
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator replaces the UUID generator used for entities added without an ID.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		clock:     time.Now,
		newID:     uuid.NewString,
		logger:    zap.NewNop(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.clock()
}

// update runs fn under the write lock and, when it succeeds, publishes the
// changed slices to listeners after the lock is released.
func (s *Store) update(fn func() error, changed ...Slice) error {
	s.mu.Lock()
	err := fn()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.publish(changed...)
	return nil
}

// stamp returns now, but never a time before prev so updated_at only moves forward.
func (s *Store) stamp(prev time.Time) time.Time {
	now := s.clock()
	if now.Before(prev) {
		return prev
	}
	return now
}

func (s *Store) ensureID(id string, exists func(string) bool) (string, error) {
	if id == "" {
		return s.newID(), nil
	}
	if exists(id) {
		return "", ErrDuplicateID
	}
	return id, nil
}

func (s *Store) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) UpdateProfile(p models.UserProfile) models.UserProfile {
	_ = s.update(func() error {
		p.UpdatedAt = s.stamp(s.profile.UpdatedAt)
		s.profile = p
		return nil
	}, SliceProfile)
	return p
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
