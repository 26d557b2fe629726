package job

import (
	"os"

	"github.com/clubsite/server/logger"
)

type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run rotates the application log: the current file is appended to the
// previous-generation file and then truncated.
func (j *ClearLogsJob) Run() {
	logFile := logger.LogFilePath()
	logFilePrev := logFile + ".prev"

	if err := os.Truncate(logFilePrev, 0); err != nil && !os.IsNotExist(err) {
		logger.Warning("clear logs job err:", err)
	}

	prev, err := os.OpenFile(logFilePrev, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	defer prev.Close()

	data, err := os.ReadFile(logFile)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	if _, err := prev.Write(data); err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	if err := os.Truncate(logFile, 0); err != nil {
		logger.Warning("clear logs job err:", err)
	}
}
