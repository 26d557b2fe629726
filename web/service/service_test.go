package service

import (
	"os"
	"testing"
	"time"

	"github.com/op/go-logging"

	"github.com/clubsite/server/database"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/logger"
	"github.com/clubsite/server/web/cache"
	"github.com/clubsite/server/web/policy"
)

func setup(t *testing.T) {
	t.Setenv("CLUBSITE_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	dbPath := "test.db"
	os.Remove(dbPath)
	if err := database.InitDB(dbPath); err != nil {
		t.Fatal(err)
	}
	cache.SetStore(cache.NewMemoryStore(time.Minute))
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

// identities used across the service tests

func adminIdentity() policy.Identity {
	return policy.Identity{Id: 1, Username: "admin", Role: model.RoleAdmin}
}

func editorIdentity(id int) policy.Identity {
	return policy.Identity{Id: id, Username: "editor", Role: model.RoleEditor}
}

func memberIdentity(id int) policy.Identity {
	return policy.Identity{Id: id, Username: "member", Role: model.RoleMember}
}

func viewerIdentity(id int) policy.Identity {
	return policy.Identity{Id: id, Username: "viewer", Role: model.RoleViewer}
}
