package sessionservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/domain"
)

type API interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (string, error)
	ChangeID(ctx context.Context, token string) (string, error)
}

type Repo interface {
	SessionToken(ctx context.Context, profileID string) (string, error)
	SetToken(ctx context.Context, profileID, token string) error
}

type Service struct {
	api  API
	repo Repo
}

func New(api API, repo Repo) *Service {
	return &Service{
		api:  api,
		repo: repo,
	}
}

var ErrEmptyCredentials = errors.New("username and password are required")

func (s *Service) Login(ctx context.Context, profileID, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		zap.L().Info("login rejected", zap.String("username", username), zap.Error(err))
		return err
	}
	return s.store(ctx, profileID, token)
}

// Register creates the account upstream and signs the profile in with the returned token.
func (s *Service) Register(ctx context.Context, profileID, username, email, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	token, err := s.api.Register(ctx, username, strings.TrimSpace(email), password)
	if err != nil {
		zap.L().Info("registration rejected", zap.String("username", username), zap.Error(err))
		return err
	}
	return s.store(ctx, profileID, token)
}

func (s *Service) Logout(ctx context.Context, profileID string) error {
	return s.store(ctx, profileID, "")
}

// Session reports the profile's session; an empty token means signed out.
func (s *Service) Session(ctx context.Context, profileID string) (domain.Session, error) {
	token, err := s.repo.SessionToken(ctx, profileID)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{ProfileID: profileID, Token: token}, nil
}

// RotateAPIKey asks the upstream for a new token. The old one stops working at once,
// so the profile switches to the new token before returning it.
func (s *Service) RotateAPIKey(ctx context.Context, session domain.Session) (string, error) {
	token, err := s.api.ChangeID(ctx, session.Token)
	if err != nil {
		zap.L().Error("failed to rotate api key", zap.String("profile", session.ProfileID), zap.Error(err))
		return "", err
	}
	if err := s.store(ctx, session.ProfileID, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) store(ctx context.Context, profileID, token string) error {
	if err := s.repo.SetToken(ctx, profileID, token); err != nil {
		zap.L().Error("failed to store session token", zap.String("profile", profileID), zap.Error(err))
		return err
	}
	return nil
}
