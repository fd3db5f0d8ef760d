package model

import "time"

// Deploy operation statuses recorded in the history database.
const (
	DeployRunning = "running"
	DeploySuccess = "success"
	DeployPartial = "partial"
	DeployError   = "error"
)

// DeployOperation is one verify/sync/build run recorded durably.
type DeployOperation struct {
	ID            int64
	Operation     string
	Parameters    string
	StartedAt     time.Time
	FinishedAt    *time.Time
	Status        string
	FilesUploaded int
}
