package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest(t *testing.T) {
	req := LoginRequest{Username: "  Fred@Gmail.com ", Password: "123@"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "fred@gmail.com", req.Identifier())

	alias := LoginRequest{Email: "fred@gmail.com", Password: "123@"}
	assert.NoError(t, alias.Validate())
	assert.Equal(t, "fred@gmail.com", alias.Identifier())

	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "fred@gmail.com"}).Validate())
}
