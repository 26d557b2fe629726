package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/util/common"
)

func TestAnnouncementActiveWindow(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AnnouncementService{}
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err := svc.Create("always on", "", "info", true, true, nil, nil)
	assert.NoError(t, err)
	_, err = svc.Create("disabled", "", "info", false, true, nil, nil)
	assert.NoError(t, err)
	_, err = svc.Create("expired", "", "info", true, true, nil, &past)
	assert.NoError(t, err)
	_, err = svc.Create("not yet", "", "info", true, true, &future, nil)
	assert.NoError(t, err)
	_, err = svc.Create("in window", "", "warning", true, false, &past, &future)
	assert.NoError(t, err)

	rows, err := svc.ListActive()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	titles := []string{rows[0].Title, rows[1].Title}
	assert.Contains(t, titles, "always on")
	assert.Contains(t, titles, "in window")

	all, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestAnnouncementCacheInvalidation(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AnnouncementService{}
	row, err := svc.Create("first", "", "info", true, true, nil, nil)
	assert.NoError(t, err)

	// prime the cache
	rows, err := svc.ListActive()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	// disabling must be visible on the very next public read
	enabled := false
	err = svc.Update(row.Id, AnnouncementUpdate{Enabled: &enabled})
	assert.NoError(t, err)
	rows, err = svc.ListActive()
	assert.NoError(t, err)
	assert.Len(t, rows, 0)
}

func TestAnnouncementPartialUpdate(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AnnouncementService{}
	row, err := svc.Create("title", "body", "info", true, true, nil, nil)
	assert.NoError(t, err)

	// empty update is rejected
	err = svc.Update(row.Id, AnnouncementUpdate{})
	assert.True(t, errors.Is(err, common.ErrValidation))

	// only the named field changes
	newTitle := "renamed"
	err = svc.Update(row.Id, AnnouncementUpdate{Title: &newTitle})
	assert.NoError(t, err)

	all, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Equal(t, "renamed", all[0].Title)
	assert.Equal(t, "body", all[0].Content)

	err = svc.Update(424242, AnnouncementUpdate{Title: &newTitle})
	assert.True(t, errors.Is(err, common.ErrNotFound))

	err = svc.Delete(row.Id)
	assert.NoError(t, err)
	err = svc.Delete(row.Id)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
