package service

import (
	"fmt"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

type HistoryService struct{}

func (s *HistoryService) List() ([]model.HistoryEvent, error) {
	db := database.GetDB()
	var rows []model.HistoryEvent
	err := db.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (s *HistoryService) Create(title, date, description, image, link, dialogData string) (*model.HistoryEvent, error) {
	if title == "" {
		return nil, common.ValidationErrorf("title is required")
	}
	row := &model.HistoryEvent{
		Title:       title,
		Date:        date,
		Description: description,
		Image:       image,
		Link:        link,
		DialogData:  dialogData,
	}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *HistoryService) Update(id int, title, date, description, image, link, dialogData string) error {
	if title == "" {
		return common.ValidationErrorf("title is required")
	}
	db := database.GetDB()
	result := db.Model(&model.HistoryEvent{}).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"date":        date,
		"description": description,
		"image":       image,
		"link":        link,
		"dialog_data": dialogData,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: history event", common.ErrNotFound)
	}
	return nil
}

func (s *HistoryService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.HistoryEvent{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: history event", common.ErrNotFound)
	}
	return nil
}
