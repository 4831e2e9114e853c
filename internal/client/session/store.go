// Package session owns the client's authentication state: the bearer token
// and the cached user record, persisted across restarts in a kv.Repository.
//
// The store never validates the token; expiry is enforced by the server.
// A nil repository models unavailable storage: every read is absent and
// every write is a no-op.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jabuspark/internal/client/models"
	"github.com/dmitrijs2005/jabuspark/internal/client/repositories/kv"
	"github.com/dmitrijs2005/jabuspark/internal/common"
	"github.com/dmitrijs2005/jabuspark/internal/logging"
)

// EventKind tells listeners what changed.
type EventKind int

const (
	EventSessionSet EventKind = iota + 1
	EventSessionCleared
)

func (k EventKind) String() string {
	switch k {
	case EventSessionSet:
		return "set"
	case EventSessionCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after every mutation.
type Event struct {
	Kind EventKind
}

// Listener is called synchronously, in subscription order, on the goroutine
// that mutated the store.
type Listener func(ctx context.Context, ev Event)

// Store is safe for concurrent use. Concurrent SetSession calls are
// last-write-wins.
type Store struct {
	repo kv.Repository
	log  logging.Logger

	mu        sync.Mutex
	listeners []subscription
	nextID    uint64
}

type subscription struct {
	id uint64
	fn Listener
}

// NewStore returns a Store over repo. repo may be nil.
func NewStore(repo kv.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{repo: repo, log: log.With("component", "session")}
}

// SetSession persists token and user in a single write, then notifies
// listeners. The user is stored as given; normalization happens on read.
func (s *Store) SetSession(ctx context.Context, token string, user models.User) error {
	if s.repo != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		err = s.repo.SetMany(ctx, map[string][]byte{
			common.TokenStorageKey: []byte(token),
			common.UserStorageKey:  raw,
		})
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	s.notify(ctx, Event{Kind: EventSessionSet})
	return nil
}

// ClearSession removes both keys, then notifies listeners.
func (s *Store) ClearSession(ctx context.Context) error {
	if s.repo != nil {
		if err := s.repo.DeleteMany(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	s.notify(ctx, Event{Kind: EventSessionCleared})
	return nil
}

// GetToken returns the stored token. Read failures are logged and reported
// as absent.
func (s *Store) GetToken(ctx context.Context) (string, bool) {
	raw, ok := s.read(ctx, common.TokenStorageKey)
	if !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// GetUser returns the stored user, normalized. An unparsable record is
// logged and reported as absent.
func (s *Store) GetUser(ctx context.Context) (*models.User, bool) {
	raw, ok := s.read(ctx, common.UserStorageKey)
	if !ok || len(raw) == 0 {
		return nil, false
	}

	var u *models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "stored user is malformed, ignoring", "error", err)
		return nil, false
	}
	if u == nil {
		return nil, false
	}

	n := u.Normalized()
	return &n, true
}

// IsAuthenticated reports whether a token is stored.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.GetToken(ctx)
	return ok
}

// Subscribe registers fn for change notifications. The returned function
// removes it and may be called more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) read(ctx context.Context, key string) ([]byte, bool) {
	if s.repo == nil {
		return nil, false
	}
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "session storage read failed", "key", key, "error", err)
		return nil, false
	}
	return raw, raw != nil
}

func (s *Store) notify(ctx context.Context, ev Event) {
	s.mu.Lock()
	subs := make([]subscription, len(s.listeners))
	copy(subs, s.listeners)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(ctx, ev)
	}
}
