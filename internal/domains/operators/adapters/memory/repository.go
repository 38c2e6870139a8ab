package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/operators/ports"
)

var (
	_ ports.Repository   = (*Repository)(nil)
	_ ports.SessionStore = (*SessionStore)(nil)
)

// Repository is an in-memory operator account adapter.
type Repository struct {
	mu        sync.RWMutex
	operators map[string]*domain.Operator
}

func NewRepository() *Repository {
	return &Repository{operators: map[string]*domain.Operator{}}
}

func (r *Repository) Save(_ context.Context, operator *domain.Operator) (*domain.Operator, error) {
	if operator == nil {
		return nil, errors.New("operator is nil")
	}
	clone := *operator
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operators[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	operator, ok := r.operators[username]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *operator
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.operators[username]; !ok {
		return ports.ErrNotFound
	}
	delete(r.operators, username)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Operator, 0, len(r.operators))
	for _, operator := range r.operators {
		clone := *operator
		list = append(list, &clone)
	}
	return list, nil
}

// SessionStore keeps sessions in memory with a TTL. Good enough for local
// runs; production uses the PostgreSQL store.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
}

type session struct {
	username  string
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{ttl: ttl, sessions: map[string]session{}}
}

func (s *SessionStore) Save(_ context.Context, username, token string) error {
	if username == "" || token == "" {
		return errors.New("username and token are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{username: username, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *SessionStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok || time.Now().After(sess.expiresAt) {
		return "", ports.ErrInvalidCredentials
	}
	return sess.username, nil
}

func (s *SessionStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if sess.username == username {
			delete(s.sessions, token)
		}
	}
	return nil
}
