package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/hash"
	"github.com/storeflow/storefront/internal/logging"
	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/repo"
	"github.com/storeflow/storefront/internal/tokens"
	"github.com/storeflow/storefront/internal/transport"
)

type AuthService struct {
	Users  *repo.UserRepo
	Tokens *repo.TokenRepo
	Events events.Publisher

	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, *transport.TokenPairResponse, error) {
	if _, err := s.Users.ByEmail(ctx, req.Email); err == nil {
		return nil, nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: pwHash,
		DisplayName:  req.DisplayName,
		Role:         models.RoleAuthenticated,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.publish(ctx, map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	}, user.ID)

	return user, pair, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*models.User, *transport.TokenPairResponse, error) {
	user, err := s.Users.ByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	pair, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.publish(ctx, map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"email":   user.Email,
	}, user.ID)

	return user, pair, nil
}

// Refresh verifies the presented token against the refresh secret and
// the stored-token table, revokes it and mints a fresh pair. Any
// verification failure is normalized to ErrUnauthorized.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*transport.TokenPairResponse, error) {
	claims, err := tokens.ParseRefreshToken(raw, s.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	stored, err := s.Tokens.Get(ctx, raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
		}
		return nil, err
	}
	if stored.Revoked || time.Now().Unix() > stored.ExpiresAt {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}
	user, err := s.Users.ByID(ctx, uint(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	if err := s.Tokens.Revoke(ctx, raw); err != nil {
		return nil, err
	}
	return s.issuePair(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, raw string) error {
	if _, err := tokens.ParseRefreshToken(raw, s.RefreshSecret); err != nil {
		return fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}
	return s.Tokens.Revoke(ctx, raw)
}

func (s *AuthService) issuePair(ctx context.Context, user *models.User) (*transport.TokenPairResponse, error) {
	sub := strconv.FormatUint(uint64(user.ID), 10)

	access, err := tokens.SignAccessToken(sub, user.Email, user.Role, s.AccessSecret, s.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := tokens.SignRefreshToken(sub, user.Role, s.RefreshSecret, s.RefreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.Tokens.Save(ctx, refresh, user.ID, time.Now().Add(s.RefreshTTL)); err != nil {
		return nil, err
	}
	return &transport.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) publish(ctx context.Context, event map[string]any, userID uint) {
	if s.Events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pctx, events.TopicUserEvents, strconv.FormatUint(uint64(userID), 10), event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "topic", events.TopicUserEvents, "error", err)
	}
}
