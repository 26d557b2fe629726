package service

import (
	"fmt"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

type FriendLinkService struct{}

func (s *FriendLinkService) List() ([]model.FriendLink, error) {
	db := database.GetDB()
	var rows []model.FriendLink
	err := db.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (s *FriendLinkService) Create(title, url, logo string) (*model.FriendLink, error) {
	if title == "" || url == "" {
		return nil, common.ValidationErrorf("title and url are required")
	}
	row := &model.FriendLink{Title: title, Url: url, Logo: logo}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *FriendLinkService) Update(id int, title, url, logo string) error {
	if title == "" || url == "" {
		return common.ValidationErrorf("title and url are required")
	}
	db := database.GetDB()
	result := db.Model(&model.FriendLink{}).Where("id = ?", id).Updates(map[string]any{
		"title": title,
		"url":   url,
		"logo":  logo,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: friend link", common.ErrNotFound)
	}
	return nil
}

func (s *FriendLinkService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.FriendLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: friend link", common.ErrNotFound)
	}
	return nil
}
