package service

import (
	"fmt"
	"time"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
	"github.com/clubsite/server/web/cache"
)

type AnnouncementService struct{}

// ListActive returns the announcements currently visible to the public:
// enabled and inside their display window. Served through the response cache.
func (s *AnnouncementService) ListActive() ([]model.Announcement, error) {
	var cached []model.Announcement
	if err := cache.GetJSON(cache.KeyAnnouncementsPublic, &cached); err == nil {
		return cached, nil
	}

	db := database.GetDB()
	now := time.Now()
	var rows []model.Announcement
	err := db.
		Where("enabled = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("updated_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	cache.SetJSON(cache.KeyAnnouncementsPublic, rows)
	return rows, nil
}

// ListAll is the admin-console listing, unfiltered.
func (s *AnnouncementService) ListAll() ([]model.Announcement, error) {
	db := database.GetDB()
	var rows []model.Announcement
	err := db.Order("id DESC").Find(&rows).Error
	return rows, err
}

func (s *AnnouncementService) Create(title, content, annType string, enabled, closeable bool, startAt, endAt *time.Time) (*model.Announcement, error) {
	if title == "" {
		return nil, common.ValidationErrorf("title is required")
	}
	if annType == "" {
		annType = "info"
	}
	row := &model.Announcement{
		Title:     title,
		Content:   content,
		Type:      annType,
		Enabled:   enabled,
		Closeable: closeable,
		StartAt:   startAt,
		EndAt:     endAt,
	}
	db := database.GetDB()
	if err := db.Create(row).Error; err != nil {
		return nil, err
	}
	cache.Invalidate(cache.KeyAnnouncementsPublic)
	return row, nil
}

// AnnouncementUpdate carries a partial update: nil fields stay untouched.
type AnnouncementUpdate struct {
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	Type      *string    `json:"type"`
	Enabled   *bool      `json:"enabled"`
	Closeable *bool      `json:"closeable"`
	StartAt   *time.Time `json:"start_at"`
	EndAt     *time.Time `json:"end_at"`
}

func (s *AnnouncementService) Update(id int, upd AnnouncementUpdate) error {
	values := map[string]any{}
	if upd.Title != nil {
		values["title"] = *upd.Title
	}
	if upd.Content != nil {
		values["content"] = *upd.Content
	}
	if upd.Type != nil {
		values["type"] = *upd.Type
	}
	if upd.Enabled != nil {
		values["enabled"] = *upd.Enabled
	}
	if upd.Closeable != nil {
		values["closeable"] = *upd.Closeable
	}
	if upd.StartAt != nil {
		values["start_at"] = *upd.StartAt
	}
	if upd.EndAt != nil {
		values["end_at"] = *upd.EndAt
	}
	if len(values) == 0 {
		return common.ValidationErrorf("no fields to update")
	}
	values["updated_at"] = time.Now()

	db := database.GetDB()
	result := db.Model(&model.Announcement{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: announcement", common.ErrNotFound)
	}
	cache.Invalidate(cache.KeyAnnouncementsPublic)
	return nil
}

func (s *AnnouncementService) Delete(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Announcement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: announcement", common.ErrNotFound)
	}
	cache.Invalidate(cache.KeyAnnouncementsPublic)
	return nil
}
