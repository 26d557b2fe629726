package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/util/crypto"
	"github.com/clubsite/server/web/entity"
)

const minPasswordLen = 6

type UserService struct{}

func (s *UserService) GetById(id int) (*model.User, error) {
	db := database.GetDB()
	var user model.User
	err := db.First(&user, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: user", common.ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]model.User, error) {
	db := database.GetDB()
	var users []model.User
	err := db.Order("id ASC").Find(&users).Error
	return users, err
}

func (s *UserService) Create(username, password, role, nickname string) (*model.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, common.ValidationErrorf("username, password and role are required")
	}
	if !model.ValidRole(role) {
		return nil, common.ValidationErrorf("invalid role %q", role)
	}

	db := database.GetDB()
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username already exists", common.ErrConflict)
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Nickname:     nickname,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateRole(id int, role string) error {
	if !model.ValidRole(role) {
		return common.ValidationErrorf("valid role is required")
	}
	db := database.GetDB()
	result := db.Model(&model.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user", common.ErrNotFound)
	}
	return nil
}

func (s *UserService) UpdateNickname(id int, nickname string) error {
	db := database.GetDB()
	result := db.Model(&model.User{}).Where("id = ?", id).Update("nickname", nickname)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user", common.ErrNotFound)
	}
	return nil
}

// UpdatePassword is the self-service password change: the old password must
// verify before the new one is accepted.
func (s *UserService) UpdatePassword(id int, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return common.ValidationErrorf("oldPassword and newPassword are required")
	}
	if len(newPassword) < minPasswordLen {
		return common.ValidationErrorf("password must be at least %d characters", minPasswordLen)
	}

	user, err := s.GetById(id)
	if err != nil {
		return err
	}
	if !crypto.CheckPasswordHash(user.PasswordHash, oldPassword) {
		return fmt.Errorf("%w: old password is incorrect", common.ErrUnauthenticated)
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(&model.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

// ResetPassword is the admin reset: no old password required.
func (s *UserService) ResetPassword(id int, newPassword string) error {
	if newPassword == "" {
		return common.ValidationErrorf("newPassword is required")
	}
	if len(newPassword) < minPasswordLen {
		return common.ValidationErrorf("password must be at least %d characters", minPasswordLen)
	}
	if _, err := s.GetById(id); err != nil {
		return err
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(&model.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

// Delete removes a user. Callers may never delete their own account.
func (s *UserService) Delete(id, callerId int) error {
	if id == callerId {
		return common.ValidationErrorf("you cannot delete your own account")
	}
	db := database.GetDB()
	result := db.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user", common.ErrNotFound)
	}
	return nil
}

// ImportCSV bulk-creates users from a CSV stream with the header row
// username,password,role,nickname. Rows missing mandatory fields or naming an
// existing username are skipped; each row gets its own outcome in the report.
func (s *UserService) ImportCSV(r io.Reader) ([]entity.ImportRowResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, common.ValidationErrorf("empty or unreadable CSV file")
	}
	if len(header) < 3 || strings.TrimSpace(header[0]) != "username" ||
		strings.TrimSpace(header[1]) != "password" || strings.TrimSpace(header[2]) != "role" {
		return nil, common.ValidationErrorf("CSV header must be username,password,role,nickname")
	}

	var results []entity.ImportRowResult
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			results = append(results, entity.ImportRowResult{Row: row, Outcome: "unparsable row, skipped"})
			continue
		}

		var username, password, role, nickname string
		if len(record) > 0 {
			username = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			password = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			role = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			nickname = strings.TrimSpace(record[3])
		}

		result := entity.ImportRowResult{Row: row, Username: username}
		switch {
		case username == "" || password == "" || role == "":
			result.Outcome = "missing mandatory field, skipped"
		case !model.ValidRole(role):
			result.Outcome = "unknown role, skipped"
		default:
			_, err := s.Create(username, password, role, nickname)
			switch {
			case err == nil:
				result.Outcome = "created"
			case errors.Is(err, common.ErrConflict):
				result.Outcome = "duplicate username, skipped"
			default:
				result.Outcome = "failed: " + err.Error()
			}
		}
		results = append(results, result)
	}
	return results, nil
}
