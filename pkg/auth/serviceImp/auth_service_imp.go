package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"krishi/entities"
	"krishi/pkg/apperr"
	"krishi/pkg/auth/repository"
	"krishi/pkg/auth/service"
	"krishi/pkg/auth/token"
)

type authService struct {
	repo   repository.UserRepository
	tokens *token.Issuer
	cost   int
	log    *zap.Logger
}

func New(repo repository.UserRepository, tokens *token.Issuer, bcryptCost int, log *zap.Logger) service.AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{repo: repo, tokens: tokens, cost: bcryptCost, log: log.Named("auth")}
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (s *authService) Register(ctx context.Context, in service.RegisterInput) error {
	email := normalizeEmail(in.Email)
	lang := in.PreferredLanguage
	if lang == "" {
		lang = "en"
	}

	// check-then-insert; the unique index on users.email catches a concurrent twin
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return fmt.Errorf("register %s: %w", email, apperr.ErrDuplicateEmail)
	case !errors.Is(err, apperr.ErrNotFound):
		return fmt.Errorf("lookup %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u := &entities.User{
		Name:              strings.TrimSpace(in.Name),
		Email:             email,
		Mobile:            in.Mobile,
		Password:          string(hash),
		PreferredLanguage: lang,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return fmt.Errorf("register %s: %w", email, err)
	}
	s.log.Info("user registered", zap.Uint("user_id", u.ID))
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup %s: %w", email, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", apperr.ErrInvalidCredentials
	}
	return s.tokens.Issue(token.Identity{UserID: u.ID, Email: u.Email})
}

func (s *authService) Profile(ctx context.Context, userID uint) (entities.PublicUser, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return entities.PublicUser{}, err
	}
	return u.Public(), nil
}
