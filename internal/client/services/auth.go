package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
)

// MsgLoginFailed is reported when a rejected login carries no message.
const MsgLoginFailed = "Login failed"

// Login posts credentials. The returned data holds the bearer token and the
// basic user fields; favorites are usually missing and need a Me call.
func (s *Service) Login(ctx context.Context, email, password string) (*models.LoginData, error) {
	body := models.Credentials{Email: strings.TrimSpace(email), Password: password}
	var env models.Envelope[models.LoginData]
	err := s.gw.Post(ctx, endpointLogin, body, &env)
	data, err := unwrapOr(env, err, MsgLoginFailed)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// Me fetches the full profile of the token's owner.
func (s *Service) Me(ctx context.Context) (*models.UserProfile, error) {
	u, err := get[models.UserProfile](ctx, s.gw, endpointMe, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Register creates an account. The backend replies like Login does.
func (s *Service) Register(ctx context.Context, r models.Registration) (*models.LoginData, error) {
	r.Email = strings.TrimSpace(r.Email)
	data, err := post[models.LoginData](ctx, s.gw, endpointRegister, r)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// rawData is used where the payload shape is not ours to fix.
type rawData = json.RawMessage
