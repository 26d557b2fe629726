package service

import (
	"fmt"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/policy"
)

// WorkRow is a work joined with the display name of its submitter.
type WorkRow struct {
	model.Work
	Submitter string `json:"submitter"`
}

type WorkService struct{}

// List returns works scoped to the caller: anonymous and viewer callers get
// the full public set under the club/featured filters, editor and member
// callers get only their own rows, admins get everything.
func (s *WorkService) List(identity *policy.Identity, club string, featured *bool) ([]WorkRow, error) {
	db := database.GetDB()
	query := db.Model(&model.Work{}).
		Select("works.*, COALESCE(NULLIF(users.nickname, ''), users.username) AS submitter").
		Joins("LEFT JOIN users ON users.id = works.user_id")

	if identity != nil && identity.Role != model.RoleViewer && !identity.IsAdmin() {
		query = query.Where("works.user_id = ?", identity.Id)
	}
	if club != "" {
		query = query.Where("works.club = ?", club)
	}
	if featured != nil {
		query = query.Where("works.featured = ?", *featured)
	}

	var rows []WorkRow
	err := query.Order("works.id ASC").Find(&rows).Error
	return rows, err
}

// Create inserts a work owned by the caller. The featured flag is honored for
// admins only; anyone else gets an unfeatured row no matter what they sent.
func (s *WorkService) Create(identity policy.Identity, title, description, imageUrl, link, club string, featured bool) (*model.Work, error) {
	if title == "" {
		return nil, common.ValidationErrorf("title is required")
	}
	if !identity.IsAdmin() {
		featured = false
	}
	ownerId := identity.Id
	row := &model.Work{
		Title:       title,
		Description: description,
		ImageUrl:    imageUrl,
		Link:        link,
		Club:        club,
		Featured:    featured,
		UserId:      &ownerId,
	}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update rewrites a work with the same ownership scoping as news: non-admins
// reach only their own rows and cannot tell foreign rows from absent ones.
// Non-admin updates leave the featured flag untouched.
func (s *WorkService) Update(identity policy.Identity, id int, title, description, imageUrl, link, club string, featured *bool) error {
	if title == "" {
		return common.ValidationErrorf("title is required")
	}

	values := map[string]any{
		"title":       title,
		"description": description,
		"image_url":   imageUrl,
		"link":        link,
		"club":        club,
	}
	if identity.IsAdmin() && featured != nil {
		values["featured"] = *featured
	}

	db := database.GetDB()
	query := db.Model(&model.Work{}).Where("id = ?", id)
	if !identity.IsAdmin() {
		query = query.Where("user_id = ?", identity.Id)
	}
	result := query.Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: work", common.ErrNotFound)
	}
	return nil
}

// SetFeatured flips the featured flag, admin only by policy.
func (s *WorkService) SetFeatured(id int, featured bool) error {
	db := database.GetDB()
	result := db.Model(&model.Work{}).Where("id = ?", id).Update("featured", featured)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: work", common.ErrNotFound)
	}
	return nil
}

func (s *WorkService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Work{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: work", common.ErrNotFound)
	}
	return nil
}
