package auth

import (
	"strings"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
)

// LoginRequest accepts the user's email as username. "email" is accepted as
// an alias.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Identifier returns the normalized login identifier.
func (r *LoginRequest) Identifier() string {
	id := r.Username
	if validator.IsEmpty(id) {
		id = r.Email
	}
	return strings.ToLower(strings.TrimSpace(id))
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier()) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginUser struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	User      LoginUser `json:"user"`
}
