package service

import (
	"fmt"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

type FameMemberService struct{}

func (s *FameMemberService) List() ([]model.FameMember, error) {
	db := database.GetDB()
	var rows []model.FameMember
	err := db.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (s *FameMemberService) Create(name, description, image string) (*model.FameMember, error) {
	if name == "" {
		return nil, common.ValidationErrorf("name is required")
	}
	row := &model.FameMember{Name: name, Description: description, Image: image}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *FameMemberService) Update(id int, name, description, image string) error {
	if name == "" {
		return common.ValidationErrorf("name is required")
	}
	db := database.GetDB()
	result := db.Model(&model.FameMember{}).Where("id = ?", id).Updates(map[string]any{
		"name":        name,
		"description": description,
		"image":       image,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: fame member", common.ErrNotFound)
	}
	return nil
}

func (s *FameMemberService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.FameMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: fame member", common.ErrNotFound)
	}
	return nil
}
