// Package service implements the business logic of the clubsite backend. Each
// resource has one service owning its queries, visibility scoping, transaction
// boundaries and cache invalidation; controllers stay thin.
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/util/crypto"
)

type AuthService struct{}

// Register creates an account with the default viewer role unless another
// valid role is requested.
func (s *AuthService) Register(username, password, role string) error {
	if username == "" || password == "" {
		return common.ValidationErrorf("username and password are required")
	}
	if role == "" {
		role = model.RoleViewer
	}
	if !model.ValidRole(role) {
		return common.ValidationErrorf("invalid role %q", role)
	}

	db := database.GetDB()
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: username already exists", common.ErrConflict)
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	return db.Create(user).Error
}

// Login verifies credentials and issues a signed bearer token. The error never
// distinguishes an unknown username from a wrong password.
func (s *AuthService) Login(username, password string) (string, *model.User, error) {
	if username == "" || password == "" {
		return "", nil, common.ValidationErrorf("username and password are required")
	}

	db := database.GetDB()
	var user model.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("%w: invalid credentials", common.ErrUnauthenticated)
	} else if err != nil {
		return "", nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return "", nil, fmt.Errorf("%w: invalid credentials", common.ErrUnauthenticated)
	}

	claims := jwt.MapClaims{
		"id":       user.Id,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(config.GetTokenLifetime()).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GetJWTSecret()))
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
