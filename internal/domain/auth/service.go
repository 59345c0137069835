package auth

import (
	"context"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Profile returns the user identified by the verified token on ctx.
	Profile(ctx context.Context) (user.Profile, error)
}
