package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/flyawayhq/flyaway/internal/domain"
)

// Store holds the current session in memory and mirrors it into one of two
// storage tiers. An empty session is a valid state (anonymous visitor); only
// login/logout write to the store, everything else reads.
type Store struct {
	mu        sync.RWMutex
	durable   Storage
	ephemeral Storage
	current   domain.Session
	log       *logrus.Logger
}

type persistedSession struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func NewStore(durable, ephemeral Storage, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{durable: durable, ephemeral: ephemeral, log: log}
}

// Restore populates the session from the durable tier first, then the
// ephemeral one. Both token and user must be present for the session to
// count; absence of either leaves the store empty without error.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tier := range []Storage{s.durable, s.ephemeral} {
		data, ok, err := tier.Read()
		if err != nil {
			s.log.WithError(err).Warn("session restore: unreadable tier")
			continue
		}
		if !ok {
			continue
		}
		var p persistedSession
		if err := json.Unmarshal(data, &p); err != nil {
			s.log.WithError(err).Warn("session restore: corrupt payload")
			continue
		}
		if p.Token == "" || p.User == nil {
			continue
		}
		s.current = domain.Session{Token: p.Token, User: p.User}
		return
	}
	s.current = domain.Session{}
}

// Establish sets the in-memory session and writes token and user together to
// exactly one tier: durable when remember is set, ephemeral otherwise.
func (s *Store) Establish(token string, user *domain.User, remember bool) error {
	if token == "" || user == nil {
		return errors.New("session requires both token and user")
	}

	data, err := json.Marshal(persistedSession{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tier := s.ephemeral
	if remember {
		tier = s.durable
	}
	if err := tier.Write(data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = domain.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Clear wipes both tiers and the in-memory session unconditionally. The
// in-memory session is dropped even when a tier fails to clear.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.current = domain.Session{}
	s.mu.Unlock()

	var errs []error
	if err := s.durable.Clear(); err != nil {
		errs = append(errs, err)
	}
	if err := s.ephemeral.Clear(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implements apiclient.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}
