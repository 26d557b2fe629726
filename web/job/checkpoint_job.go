// Package job contains the scheduled maintenance tasks of the server. Each
// job satisfies cron.Job and is registered by the web server on start.
package job

import (
	"github.com/clubsite/server/database"
	"github.com/clubsite/server/logger"
)

type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run flushes the SQLite WAL back into the main database file.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
