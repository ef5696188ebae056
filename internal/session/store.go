package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bookmystars_client/internal/config"
	"bookmystars_client/internal/logger"
	"bookmystars_client/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Store persists the login session as a single JSON record on disk, the
// desktop analog of browser session storage. Accessors never fail: missing
// or unreadable data degrades to zero values so callers can treat "no
// session" and "broken session" the same way.
type Store struct {
	mu   sync.RWMutex
	path string
	ttl  time.Duration
}

func NewStore(cfg *config.Config) *Store {
	return &Store{
		path: cfg.Session.FilePath,
		ttl:  cfg.SessionTTL(),
	}
}

// SetUserSession persists user and token with the current timestamp,
// replacing any previous session.
func (s *Store) SetUserSession(user models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &models.Session{
		User:      user,
		Token:     token,
		Timestamp: time.Now().UnixMilli(),
	}
	return s.write(sess)
}

// GetUserSession returns the stored session, or nil when the file is
// absent, unreadable or not valid JSON.
func (s *Store) GetUserSession() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

// IsLoggedIn reports whether a session with a non-empty, unexpired token
// exists. Expiry is bounded by the configured TTL from login time and, when
// the token parses as a JWT carrying an exp claim, by that claim too.
func (s *Store) IsLoggedIn() bool {
	sess := s.GetUserSession()
	if sess == nil || sess.Token == "" {
		return false
	}
	if s.ttl > 0 {
		loginTime := time.UnixMilli(sess.Timestamp)
		if time.Since(loginTime) > s.ttl {
			return false
		}
	}
	return !tokenExpired(sess.Token)
}

// GetAuthToken returns the stored token, "" when no session exists.
func (s *Store) GetAuthToken() string {
	sess := s.GetUserSession()
	if sess == nil {
		return ""
	}
	return sess.Token
}

// GetProfessionalsID returns the professionals id, 0 when absent.
func (s *Store) GetProfessionalsID() int {
	sess := s.GetUserSession()
	if sess == nil {
		return 0
	}
	return sess.User.ProfessionalsID
}

// GetProfessionalsProfileID returns the umbrella profile id, 0 when absent.
func (s *Store) GetProfessionalsProfileID() int {
	sess := s.GetUserSession()
	if sess == nil {
		return 0
	}
	return sess.ProfessionalsProfileID
}

// SetProfessionalsProfileID merges the profile id into the existing session
// and re-persists it. No-op when no session exists.
func (s *Store) SetProfessionalsProfileID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.read()
	if sess == nil {
		return
	}
	sess.ProfessionalsProfileID = id
	if err := s.write(sess); err != nil {
		logger.WithError(err).Warn("failed to persist profile id to session")
	}
}

// ClearUserSession deletes the stored session.
func (s *Store) ClearUserSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.WithError(err).Warn("failed to remove session file")
	}
}

// Path returns the session file location (used by the watcher and tests).
func (s *Store) Path() string {
	return s.path
}

func (s *Store) read() *models.Session {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil
	}
	return &sess
}

func (s *Store) write(sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// tokenExpired checks the exp claim without verifying the signature: the
// client cannot know the signing key, it only needs to stop presenting
// tokens the server would reject anyway. Opaque tokens never expire here.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
