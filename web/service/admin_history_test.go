package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/util/common"
)

func TestAdminTermLifecycle(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AdminHistoryService{}

	term, err := svc.Create("2024 committee", "2024", "", []model.AdminTermMember{
		{Name: "Alice", Position: "president"},
		{Name: "Bob", Position: "treasurer"},
	})
	assert.NoError(t, err)

	terms, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, terms, 1)
	assert.Len(t, terms[0].Members, 2)

	// an update replaces the member list wholesale
	err = svc.Update(term.Id, "2024 committee", "2024", "revised", []model.AdminTermMember{
		{Name: "Carol", Position: "president"},
	})
	assert.NoError(t, err)

	terms, err = svc.List()
	assert.NoError(t, err)
	assert.Len(t, terms[0].Members, 1)
	assert.Equal(t, "Carol", terms[0].Members[0].Name)

	// no orphaned member rows survive the replace
	var orphans int64
	database.GetDB().Model(&model.AdminTermMember{}).Count(&orphans)
	assert.EqualValues(t, 1, orphans)

	assert.NoError(t, svc.Delete(term.Id))
	database.GetDB().Model(&model.AdminTermMember{}).Count(&orphans)
	assert.EqualValues(t, 0, orphans)
}

func TestAdminTermUpdateRollsBackOnMissingTerm(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AdminHistoryService{}
	err := svc.Update(424242, "ghost", "2024", "", []model.AdminTermMember{{Name: "X"}})
	assert.True(t, errors.Is(err, common.ErrNotFound))

	var count int64
	database.GetDB().Model(&model.AdminTermMember{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAdminTermValidation(t *testing.T) {
	setup(t)
	defer teardown()

	svc := AdminHistoryService{}
	_, err := svc.Create("", "2024", "", []model.AdminTermMember{})
	assert.True(t, errors.Is(err, common.ErrValidation))
	_, err = svc.Create("committee", "2024", "", nil)
	assert.True(t, errors.Is(err, common.ErrValidation))

	// an empty member list is allowed, only a missing one is not
	_, err = svc.Create("committee", "2024", "", []model.AdminTermMember{})
	assert.NoError(t, err)
}
