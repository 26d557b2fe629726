package controller

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestAdminTermMemberRowsKeepOmittedDistinct(t *testing.T) {
	// a payload without a members field must stay nil so the service can
	// reject it, while an explicit empty list passes through
	var omitted adminTermReq
	assert.NoError(t, json.Unmarshal([]byte(`{"title":"committee"}`), &omitted))
	assert.Nil(t, omitted.memberRows())

	var empty adminTermReq
	assert.NoError(t, json.Unmarshal([]byte(`{"title":"committee","members":[]}`), &empty))
	assert.NotNil(t, empty.memberRows())
	assert.Len(t, empty.memberRows(), 0)

	var filled adminTermReq
	assert.NoError(t, json.Unmarshal([]byte(`{"title":"committee","members":[{"name":"Alice","position":"president"}]}`), &filled))
	rows := filled.memberRows()
	assert.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)
}
