package backend

import (
	"context"
	"net/http"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

// CurrentIdentity reads the session behind token. An empty session body means
// the token is not signed in.
func (c *Client) CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	var body sessionBody
	if err := c.do(ctx, "get_session", http.MethodGet, "/auth/session", token, nil, &body); err != nil {
		return nil, err
	}

	if body.User == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := validate.Struct(&body); err != nil {
		return nil, &SchemaError{Resource: "session", Err: err}
	}

	return &domain.Identity{
		UserID:    body.User.ID,
		Email:     body.User.Email,
		Role:      body.User.Role,
		ExpiresAt: body.Expires,
	}, nil
}
