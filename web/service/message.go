package service

import (
	"fmt"

	"github.com/goccy/go-json"
	"gorm.io/gorm"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

type MessageService struct{}

func (s *MessageService) ListApproved() ([]model.Message, error) {
	db := database.GetDB()
	var rows []model.Message
	err := db.Where("status = ?", model.StatusApproved).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (s *MessageService) ListAll() ([]model.Message, error) {
	db := database.GetDB()
	var rows []model.Message
	err := db.Order("id DESC").Find(&rows).Error
	return rows, err
}

// CreatePublic stores a visitor message pending moderation. The captcha check
// happens before this is called.
func (s *MessageService) CreatePublic(author, content, qq string) (*model.Message, error) {
	return s.create(author, content, qq, model.StatusPending)
}

// CreateDirect stores a message added from the admin console, approved
// immediately.
func (s *MessageService) CreateDirect(author, content, qq string) (*model.Message, error) {
	return s.create(author, content, qq, model.StatusApproved)
}

func (s *MessageService) create(author, content, qq, status string) (*model.Message, error) {
	if author == "" || content == "" {
		return nil, common.ValidationErrorf("author and content are required")
	}
	row := &model.Message{Author: author, Content: content, QQ: qq, Status: status}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *MessageService) Update(id int, author, content, qq string) error {
	if author == "" || content == "" {
		return common.ValidationErrorf("author and content are required")
	}
	db := database.GetDB()
	result := db.Model(&model.Message{}).Where("id = ?", id).Updates(map[string]any{
		"author":  author,
		"content": content,
		"qq":      qq,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: message", common.ErrNotFound)
	}
	return nil
}

func (s *MessageService) UpdateStatus(id int, status string) error {
	if !model.ValidStatus(status) {
		return common.ValidationErrorf("valid status is required")
	}
	db := database.GetDB()
	result := db.Model(&model.Message{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: message", common.ErrNotFound)
	}
	return nil
}

func (s *MessageService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: message", common.ErrNotFound)
	}
	return nil
}

type importedMessage struct {
	Id      int    `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	QQ      string `json:"qq"`
	Status  string `json:"status"`
}

// Import replaces the whole message table with the contents of a JSON export.
// The truncate and all inserts run inside one transaction, so readers never
// observe a half-imported table.
func (s *MessageService) Import(data []byte) (int, error) {
	var imported []importedMessage
	if err := json.Unmarshal(data, &imported); err != nil {
		return 0, common.ValidationErrorf("invalid JSON file")
	}

	db := database.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Message{}).Error; err != nil {
			return err
		}
		for _, m := range imported {
			status := m.Status
			if !model.ValidStatus(status) {
				status = model.StatusApproved
			}
			row := model.Message{
				Id:      m.Id,
				Author:  m.Author,
				Content: m.Content,
				QQ:      m.QQ,
				Status:  status,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(imported), nil
}
