package service

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

type AdminHistoryService struct{}

func (s *AdminHistoryService) List() ([]model.AdminTerm, error) {
	db := database.GetDB()
	var terms []model.AdminTerm
	err := db.Preload("Members").Order("id ASC").Find(&terms).Error
	return terms, err
}

// Create writes the term and all its member rows in one transaction; a failure
// anywhere rolls the whole thing back.
func (s *AdminHistoryService) Create(title, term, description string, members []model.AdminTermMember) (*model.AdminTerm, error) {
	if title == "" || members == nil {
		return nil, common.ValidationErrorf("title and a list of members are required")
	}

	row := &model.AdminTerm{
		Title:       title,
		Term:        term,
		Description: description,
		Members:     members,
	}
	db := database.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Update rewrites the term and replaces its member child rows wholesale,
// inside one transaction. Partial member lists are never observable.
func (s *AdminHistoryService) Update(id int, title, term, description string, members []model.AdminTermMember) error {
	if title == "" || members == nil {
		return common.ValidationErrorf("title and a list of members are required")
	}

	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AdminTerm{}).Where("id = ?", id).Updates(map[string]any{
			"title":       title,
			"term":        term,
			"description": description,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: admin term", common.ErrNotFound)
		}

		if err := tx.Where("term_id = ?", id).Delete(&model.AdminTermMember{}).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].Id = 0
			members[i].TermId = id
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *AdminHistoryService) Delete(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("term_id = ?", id).Delete(&model.AdminTermMember{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.AdminTerm{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: admin term", common.ErrNotFound)
		}
		return nil
	})
}
