package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

const MinPasswordLength = 6

// ErrInvalidPassword is wrapped by every client-side password rejection.
var ErrInvalidPassword = errors.New("invalid password")

var (
	ErrEmptyPassword = fmt.Errorf("%w: please fill in all fields", ErrInvalidPassword)
	ErrShortPassword = fmt.Errorf("%w: new password must be at least %d characters", ErrInvalidPassword, MinPasswordLength)
)

// UpdateProfile returns the server-confirmed profile.
func (s *Service) UpdateProfile(ctx context.Context, p models.ProfileUpdate) (*models.UserProfile, error) {
	u, err := put[models.UserProfile](ctx, s.gw, endpointProfile, p)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword rejects empty or short passwords before calling the server.
func (s *Service) UpdatePassword(ctx context.Context, current, next string) error {
	if current == "" || next == "" {
		return ErrEmptyPassword
	}
	if len(next) < MinPasswordLength {
		return ErrShortPassword
	}
	_, err := put[rawData](ctx, s.gw, endpointPassword, models.PasswordUpdate{CurrentPassword: current, NewPassword: next})
	return err
}
