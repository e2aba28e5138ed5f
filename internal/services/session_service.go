package services

import (
	"sync"

	"go.uber.org/zap"

	"giftfinder/internal/models/response_models"
	"giftfinder/internal/repositories"
)

// SessionServiceInterface owns the single logical session of the running
// app: a bearer token plus user profile, persisted as one pair. The token is
// opaque and trusted until a backend call rejects it; there is no local
// expiry or refresh handling.
type SessionServiceInterface interface {
	Login(token string, user response_models.SessionUser) error
	Logout() error
	IsAuthenticated() bool
	CurrentUser() (response_models.SessionUser, bool)
	Token() string
}

type SessionService struct {
	sessionRepo repositories.SessionRepository
	logger      *zap.Logger

	mu            sync.RWMutex
	authenticated bool
	token         string
	user          response_models.SessionUser
}

// NewSessionService restores any persisted session before returning, so a
// restart behaves like a reload of an already logged-in tab. The backend is
// not contacted during restore.
func NewSessionService(sessionRepo repositories.SessionRepository, logger *zap.Logger) SessionServiceInterface {
	s := &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
	s.restore()
	return s
}

func (s *SessionService) restore() {
	token, user, ok, err := s.sessionRepo.Load()
	if err != nil {
		s.logger.Warn("session restore failed", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.token = token
	s.user = user
	s.logger.Info("session restored", zap.String("email", user.Email))
}

func (s *SessionService) Login(token string, user response_models.SessionUser) error {
	if err := s.sessionRepo.Save(token, user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.token = token
	s.user = user
	return nil
}

func (s *SessionService) Logout() error {
	if err := s.sessionRepo.Clear(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.token = ""
	s.user = response_models.SessionUser{}
	return nil
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *SessionService) CurrentUser() (response_models.SessionUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.authenticated
}

func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
