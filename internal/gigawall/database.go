package gigawall

import "gigawall/internal/model"

// HistoryDB records deploy operations across sessions.
type HistoryDB interface {
	// CreateDeployOperation inserts a new operation row and returns it with
	// its auto-increment ID and start timestamp populated.
	CreateDeployOperation(operation, parameters string) (*model.DeployOperation, error)

	// FinishDeployOperation stamps the finish time, final status and the
	// number of files uploaded.
	FinishDeployOperation(id int64, status string, filesUploaded int) error

	// RecentDeployOperations returns up to limit operations, newest first.
	RecentDeployOperations(limit int) ([]*model.DeployOperation, error)

	// Close closes the database connection.
	Close() error
}
