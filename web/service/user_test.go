package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/util/common"
)

func TestUserCreateAndDuplicate(t *testing.T) {
	setup(t)
	defer teardown()

	svc := UserService{}
	user, err := svc.Create("alice", "password1", "member", "")
	assert.NoError(t, err)
	assert.NotEqual(t, "password1", user.PasswordHash)

	_, err = svc.Create("alice", "other", "editor", "")
	assert.True(t, errors.Is(err, common.ErrConflict))

	_, err = svc.Create("bob", "pw", "superuser", "")
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestUserSelfDeletionRefused(t *testing.T) {
	setup(t)
	defer teardown()

	svc := UserService{}
	user, err := svc.Create("alice", "password1", "member", "")
	assert.NoError(t, err)

	err = svc.Delete(user.Id, user.Id)
	assert.True(t, errors.Is(err, common.ErrValidation))

	// deleting someone else still works
	err = svc.Delete(user.Id, 1)
	assert.NoError(t, err)

	err = svc.Delete(424242, 1)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestUserPasswordChange(t *testing.T) {
	setup(t)
	defer teardown()

	svc := UserService{}
	user, err := svc.Create("alice", "password1", "member", "")
	assert.NoError(t, err)

	err = svc.UpdatePassword(user.Id, "wrong", "newpassword")
	assert.True(t, errors.Is(err, common.ErrUnauthenticated))

	err = svc.UpdatePassword(user.Id, "password1", "short")
	assert.True(t, errors.Is(err, common.ErrValidation))

	err = svc.UpdatePassword(user.Id, "password1", "newpassword")
	assert.NoError(t, err)

	// the new password now authenticates
	auth := AuthService{}
	_, _, err = auth.Login("alice", "newpassword")
	assert.NoError(t, err)
	_, _, err = auth.Login("alice", "password1")
	assert.True(t, errors.Is(err, common.ErrUnauthenticated))
}

func TestUserImportCSV(t *testing.T) {
	setup(t)
	defer teardown()

	svc := UserService{}
	_, err := svc.Create("existing", "password1", "member", "")
	assert.NoError(t, err)

	csvData := strings.Join([]string{
		"username,password,role,nickname",
		"alice,password1,member,Alice",
		"existing,password1,member,",
		",password1,member,",
		"carol,password1,wizard,",
		"dave,password1,editor,Dave",
	}, "\n")

	results, err := svc.ImportCSV(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Equal(t, "created", results[0].Outcome)
	assert.Equal(t, "duplicate username, skipped", results[1].Outcome)
	assert.Equal(t, "missing mandatory field, skipped", results[2].Outcome)
	assert.Equal(t, "unknown role, skipped", results[3].Outcome)
	assert.Equal(t, "created", results[4].Outcome)

	users, err := svc.List()
	assert.NoError(t, err)
	// seeded admin + existing + alice + dave
	assert.Len(t, users, 4)
}

func TestUserImportCSVBadHeader(t *testing.T) {
	setup(t)
	defer teardown()

	svc := UserService{}
	_, err := svc.ImportCSV(strings.NewReader("name,pass\nx,y"))
	assert.True(t, errors.Is(err, common.ErrValidation))
}
