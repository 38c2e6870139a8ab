package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/operators/ports"
)

// Service exposes operator account use cases.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
	newID    func() string
}

func NewService(repo ports.Repository, sessions ports.SessionStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{repo: repo, sessions: sessions, newID: uuid.NewString}
}

func (s *Service) CreateOperator(ctx context.Context, username, password, displayName string) (*domain.Operator, error) {
	operator, err := domain.NewOperator(s.newID(), username, password)
	if err != nil {
		return nil, mapError(err)
	}
	operator.DisplayName = strings.TrimSpace(displayName)
	return s.repo.Save(ctx, operator)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) Delete(ctx context.Context, username string) error {
	_ = s.sessions.Delete(ctx, username)
	return s.repo.Delete(ctx, username)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", ports.ErrInvalidCredentials
	}
	operator, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", ports.ErrInvalidCredentials
	}
	if !operator.CheckPassword(password) {
		return "", ports.ErrInvalidCredentials
	}
	token := fmt.Sprintf("%s:%s:%d", username, s.newID(), time.Now().UnixNano())
	if err := s.sessions.Save(ctx, username, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, username string) {
	if strings.TrimSpace(username) == "" {
		return
	}
	_ = s.sessions.Delete(ctx, username)
}

// Authenticate resolves a bearer token to the owning username.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ports.ErrInvalidCredentials
	}
	return s.sessions.Lookup(ctx, token)
}

var _ ports.Service = (*Service)(nil)
