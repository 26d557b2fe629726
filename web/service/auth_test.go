package service

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

func TestRegisterDefaultsToViewer(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AuthService{}
	assert.NoError(t, svc.Register("alice", "password1", ""))

	users := UserService{}
	all, err := users.List()
	assert.NoError(t, err)
	assert.Equal(t, model.RoleViewer, all[1].Role)

	// registration never hands out elevated roles silently
	err = svc.Register("bob", "password1", "superuser")
	assert.True(t, errors.Is(err, common.ErrValidation))

	err = svc.Register("alice", "password1", "")
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestLoginIssuesToken(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AuthService{}
	assert.NoError(t, svc.Register("alice", "password1", model.RoleEditor))

	tokenString, user, err := svc.Login("alice", "password1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(config.GetJWTSecret()), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, model.RoleEditor, claims["role"])
	assert.EqualValues(t, user.Id, claims["id"])
}

func TestLoginFailureIsUniform(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AuthService{}
	assert.NoError(t, svc.Register("alice", "password1", ""))

	_, _, errUnknownUser := svc.Login("nobody", "password1")
	_, _, errWrongPassword := svc.Login("alice", "wrong")

	assert.True(t, errors.Is(errUnknownUser, common.ErrUnauthenticated))
	assert.True(t, errors.Is(errWrongPassword, common.ErrUnauthenticated))
	// the message never reveals which half was wrong
	assert.Equal(t, errUnknownUser.Error(), errWrongPassword.Error())
}
