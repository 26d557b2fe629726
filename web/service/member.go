package service

import (
	"fmt"
	"math"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/entity"
)

const (
	defaultMemberPageSize = 18
	maxMemberPageSize     = 100
)

type MemberService struct{}

// List returns one page of members ordered by name.
func (s *MemberService) List(page, limit int) ([]model.Member, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultMemberPageSize
	}
	if limit > maxMemberPageSize {
		limit = maxMemberPageSize
	}

	db := database.GetDB()
	var total int64
	if err := db.Model(&model.Member{}).Count(&total).Error; err != nil {
		return nil, entity.Pagination{}, err
	}

	var rows []model.Member
	offset := (page - 1) * limit
	if err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, entity.Pagination{}, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	pagination := entity.Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	return rows, pagination, nil
}

func (s *MemberService) Create(name, logo, link string) (*model.Member, error) {
	if name == "" {
		return nil, common.ValidationErrorf("name is required")
	}
	row := &model.Member{Name: name, Logo: logo, Link: link}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (s *MemberService) Update(id int, name, logo, link string) error {
	if name == "" {
		return common.ValidationErrorf("name is required")
	}
	db := database.GetDB()
	result := db.Model(&model.Member{}).Where("id = ?", id).Updates(map[string]any{
		"name": name,
		"logo": logo,
		"link": link,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: member", common.ErrNotFound)
	}
	return nil
}

func (s *MemberService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Member{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: member", common.ErrNotFound)
	}
	return nil
}
