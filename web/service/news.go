package service

import (
	"fmt"
	"time"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/cache"
	"github.com/clubsite/server/web/policy"
)

type NewsService struct{}

// List applies the read-visibility scope for the caller:
//   - anonymous and viewer callers see approved articles only (served through
//     the response cache),
//   - editor and member callers see exactly their own rows, whatever the
//     status - not the public set,
//   - admin callers see everything unfiltered.
func (s *NewsService) List(identity *policy.Identity) ([]model.News, error) {
	if publicNewsScope(identity) {
		var cached []model.News
		if err := cache.GetJSON(cache.KeyNewsPublic, &cached); err == nil {
			return cached, nil
		}
		rows, err := s.listApproved()
		if err != nil {
			return nil, err
		}
		cache.SetJSON(cache.KeyNewsPublic, rows)
		return rows, nil
	}

	db := database.GetDB()
	var rows []model.News
	query := db.Model(&model.News{}).Order("date DESC")
	if !identity.IsAdmin() {
		query = query.Where("user_id = ?", identity.Id)
	}
	err := query.Find(&rows).Error
	return rows, err
}

func publicNewsScope(identity *policy.Identity) bool {
	return identity == nil || identity.Role == model.RoleViewer
}

func (s *NewsService) listApproved() ([]model.News, error) {
	db := database.GetDB()
	var rows []model.News
	err := db.Where("status = ?", model.StatusApproved).Order("date DESC").Find(&rows).Error
	return rows, err
}

// Create inserts an article owned by the caller. Articles by non-admins start
// pending review; admin articles are approved immediately.
func (s *NewsService) Create(identity policy.Identity, title string, date time.Time, author, image, summary, content string) (*model.News, error) {
	if title == "" || content == "" || date.IsZero() {
		return nil, common.ValidationErrorf("title, content and date are required")
	}

	status := model.StatusPending
	if identity.IsAdmin() {
		status = model.StatusApproved
	}
	ownerId := identity.Id
	row := &model.News{
		Title:   title,
		Date:    date,
		Author:  author,
		Image:   image,
		Summary: summary,
		Content: content,
		Status:  status,
		UserId:  &ownerId,
	}

	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	cache.Invalidate(cache.KeyNewsPublic)
	return row, nil
}

// Update rewrites an article. Non-admin callers can only reach rows they own;
// a row that exists but belongs to someone else reports not-found, exactly
// like a row that does not exist.
func (s *NewsService) Update(identity policy.Identity, id int, title string, date time.Time, author, image, summary, content string) error {
	if title == "" || content == "" || date.IsZero() {
		return common.ValidationErrorf("title, content and date are required")
	}

	db := database.GetDB()
	query := db.Model(&model.News{}).Where("id = ?", id)
	if !identity.IsAdmin() {
		query = query.Where("user_id = ?", identity.Id)
	}
	result := query.Updates(map[string]any{
		"title":   title,
		"date":    date,
		"author":  author,
		"image":   image,
		"summary": summary,
		"content": content,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: news article", common.ErrNotFound)
	}
	cache.Invalidate(cache.KeyNewsPublic)
	return nil
}

// UpdateStatus moves an article through the review workflow.
func (s *NewsService) UpdateStatus(id int, status string) error {
	if !model.ValidStatus(status) {
		return common.ValidationErrorf("valid status is required")
	}
	db := database.GetDB()
	result := db.Model(&model.News{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: news article", common.ErrNotFound)
	}
	cache.Invalidate(cache.KeyNewsPublic)
	return nil
}

func (s *NewsService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: news article", common.ErrNotFound)
	}
	cache.Invalidate(cache.KeyNewsPublic)
	return nil
}
