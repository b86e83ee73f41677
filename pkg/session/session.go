package session

import (
	"sync"

	"github.com/RobinJosephDev/AdminUILinux/pkg/eventbus"
	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

// TokenStore persists the bearer token between runs. Implementations decide
// the medium (keychain, file, memory); Session does not care.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// MemoryStore is the default, non-persisting store.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryStore) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear() error {
	return m.SetToken("")
}

// Changed is published on the event bus whenever the session is
// authenticated or logged out.
type Changed struct {
	Token string
	Role  string
}

// Session is the explicit application-context object holding the current
// bearer token and role. Every API call reads the token from here; an empty
// token is a local precondition failure, no request is made.
type Session struct {
	mu    sync.Mutex
	store TokenStore
	role  string
	bus   eventbus.EventBus
}

func New(store TokenStore, bus eventbus.EventBus) *Session {
	if store == nil {
		store = &MemoryStore{}
	}
	return &Session{store: store, bus: bus}
}

// Token returns the current bearer token or serrors.ErrNoToken.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, err := s.store.Token()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", serrors.ErrNoToken
	}
	return token, nil
}

func (s *Session) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// Authenticate stores the token and role and broadcasts the change.
func (s *Session) Authenticate(token, role string) error {
	s.mu.Lock()
	if err := s.store.SetToken(token); err != nil {
		s.mu.Unlock()
		return err
	}
	s.role = role
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(&Changed{Token: token, Role: role})
	}
	return nil
}

// Logout clears the token and role and broadcasts the change.
func (s *Session) Logout() error {
	s.mu.Lock()
	if err := s.store.Clear(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.role = ""
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(&Changed{})
	}
	return nil
}
