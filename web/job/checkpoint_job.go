// Package job contains the cron maintenance jobs scheduled by the web server.
package job

import (
	"gotodo/database"
	"gotodo/logger"
)

type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job. It flushes the sqlite WAL so the log file stays
// bounded on long-running deployments.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
