package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

func TestMessageModeration(t *testing.T) {
	setup(t)
	defer teardown()

	svc := MessageService{}

	visitor, err := svc.CreatePublic("guest", "hello there", "12345")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, visitor.Status)

	staff, err := svc.CreateDirect("staff", "welcome", "")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusApproved, staff.Status)

	// the public board shows approved messages only
	rows, err := svc.ListApproved()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "staff", rows[0].Author)

	all, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// approval publishes the visitor message
	err = svc.UpdateStatus(visitor.Id, model.StatusApproved)
	assert.NoError(t, err)
	rows, err = svc.ListApproved()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = svc.CreatePublic("", "no author", "")
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestMessageImportReplacesBoard(t *testing.T) {
	setup(t)
	defer teardown()

	svc := MessageService{}
	_, err := svc.CreateDirect("old", "to be replaced", "")
	assert.NoError(t, err)

	data := []byte(`[
		{"id": 1, "author": "a", "content": "first", "qq": "1", "status": "approved"},
		{"id": 2, "author": "b", "content": "second", "qq": "", "status": "pending"},
		{"id": 3, "author": "c", "content": "third", "qq": "", "status": "weird"}
	]`)
	count, err := svc.Import(data)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	all, err := svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	// an unknown status in the export lands as approved
	var third model.Message
	assert.NoError(t, database.GetDB().First(&third, 3).Error)
	assert.Equal(t, model.StatusApproved, third.Status)

	_, err = svc.Import([]byte(`{"not": "an array"}`))
	assert.True(t, errors.Is(err, common.ErrValidation))

	// the failed import left the table untouched
	all, err = svc.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
