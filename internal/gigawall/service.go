package gigawall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gigawall/internal/model"
)

// buildEventType tags the repository_dispatch event fired by TriggerBuild.
const buildEventType = "deploy"

var (
	// ErrMissingToken is returned when a deploy is attempted without an
	// access token configured. No network call is made in this case.
	ErrMissingToken = errors.New("access token required to write repository files")

	// ErrNotVerified is returned when sync or build is attempted before a
	// successful VerifyConnection in this session.
	ErrNotVerified = errors.New("repository connection not verified")

	// ErrSyncInProgress guards against re-entrant full deploys.
	ErrSyncInProgress = errors.New("a deploy is already in progress")
)

// SyncService is the orchestration layer that mirrors the portal's project
// files and content catalog into a remote GitHub repository.
type SyncService struct {
	store     Store
	remote    RemoteRepository
	source    FileSource
	history   HistoryDB
	logger    Logger
	clock     Clock
	idgen     IDGenerator
	deployLog *DeployLog

	mu      sync.Mutex
	repo    *model.Repository // set by a successful VerifyConnection
	syncing bool
}

// NewSyncService creates a SyncService with the provided dependencies.
func NewSyncService(store Store, remote RemoteRepository, source FileSource, history HistoryDB, logger Logger, clock Clock, idgen IDGenerator) *SyncService {
	return &SyncService{
		store:     store,
		remote:    remote,
		source:    source,
		history:   history,
		logger:    logger,
		clock:     clock,
		idgen:     idgen,
		deployLog: NewDeployLog(clock),
	}
}

// DeployLog returns the user-facing operation log.
func (s *SyncService) DeployLog() *DeployLog {
	return s.deployLog
}

// Verified reports whether a repository connection has been confirmed in
// this session. Sync and build both require it.
func (s *SyncService) Verified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo != nil
}

// VerifyConnection checks that the configured repository exists and is
// reachable with the given credentials. On success the repository URL and
// token are persisted to the store so later sessions start from them.
func (s *SyncService) VerifyConnection(ctx context.Context, cfg model.RemoteConfig) (*model.Repository, error) {
	s.deployLog.Append(LogInfo, "Verifying repository access...")

	op, err := s.history.CreateDeployOperation("VerifyConnection", cfg.RepoURL)
	if err != nil {
		return nil, fmt.Errorf("recording deploy operation: %w", err)
	}

	repo, err := s.remote.GetRepository(ctx)
	if err != nil {
		s.deployLog.Append(LogError, fmt.Sprintf("Error: %s", err))
		s.finishOperation(op.ID, model.DeployError, 0)
		return nil, fmt.Errorf("verifying repository: %w", err)
	}

	if err := s.store.SetRepoURL(cfg.RepoURL); err != nil {
		s.finishOperation(op.ID, model.DeployError, 0)
		return nil, fmt.Errorf("persisting repository url: %w", err)
	}
	if err := s.store.SetToken(cfg.Token); err != nil {
		s.finishOperation(op.ID, model.DeployError, 0)
		return nil, fmt.Errorf("persisting access token: %w", err)
	}

	s.mu.Lock()
	s.repo = repo
	s.mu.Unlock()

	s.deployLog.Append(LogSuccess, "Connection established!")
	s.logger.Info("repository verified", "repo", repo.FullName)
	s.finishOperation(op.ID, model.DeploySuccess, 0)
	return repo, nil
}

// FullProjectSync uploads the entire project manifest to the remote
// repository, strictly one file at a time in declaration order. A failed
// file is logged and skipped; already-uploaded files stay uploaded. Returns
// the number of files uploaded and the manifest size.
func (s *SyncService) FullProjectSync(ctx context.Context) (uploaded, total int, err error) {
	cfg, err := s.store.GetRemoteConfig()
	if err != nil {
		return 0, 0, fmt.Errorf("reading remote config: %w", err)
	}
	if cfg.Token == "" {
		s.deployLog.Append(LogError, "Access token required to write repository files.")
		return 0, 0, ErrMissingToken
	}

	s.mu.Lock()
	if s.repo == nil {
		s.mu.Unlock()
		return 0, 0, ErrNotVerified
	}
	if s.syncing {
		s.mu.Unlock()
		return 0, 0, ErrSyncInProgress
	}
	s.syncing = true
	repoName := s.repo.Name
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	op, err := s.history.CreateDeployOperation("FullProjectSync", cfg.RepoURL)
	if err != nil {
		return 0, 0, fmt.Errorf("recording deploy operation: %w", err)
	}

	s.deployLog.Append(LogInfo, "Starting full project deploy to GitHub...")

	manifest := buildManifest(s.source, repoName, s.catalogSnapshot)
	total = len(manifest)

	for i, entry := range manifest {
		s.deployLog.Append(LogInfo, fmt.Sprintf("[%d/%d] Processing %s...", i+1, total, entry.path))

		content, err := entry.load()
		if err != nil {
			s.deployLog.Append(LogError, fmt.Sprintf("Failed to read %s locally.", entry.path))
			s.logger.Error("manifest read failed", "path", entry.path, "error", err)
			continue
		}

		if s.uploadOne(ctx, entry.path, content, fmt.Sprintf("Full deploy via Gigawall - %s", entry.path)) {
			uploaded++
		}
	}

	if uploaded == total {
		s.deployLog.Append(LogSuccess, "Project fully transferred!")
		s.deployLog.Append(LogSuccess, "The repository now holds the complete portal source.")
		s.finishOperation(op.ID, model.DeploySuccess, uploaded)
	} else {
		s.deployLog.Append(LogInfo, fmt.Sprintf("Deploy finished with warnings: %d/%d files uploaded.", uploaded, total))
		s.finishOperation(op.ID, model.DeployPartial, uploaded)
	}

	s.logger.Info("full deploy complete", "uploaded", uploaded, "total", total)
	return uploaded, total, nil
}

// SyncData uploads only the content catalog snapshot.
func (s *SyncService) SyncData(ctx context.Context) error {
	if !s.Verified() {
		return ErrNotVerified
	}

	op, err := s.history.CreateDeployOperation("SyncData", catalogPath)
	if err != nil {
		return fmt.Errorf("recording deploy operation: %w", err)
	}

	s.deployLog.Append(LogInfo, fmt.Sprintf("Syncing content catalog (%s)...", catalogPath))

	content, err := s.catalogSnapshot()
	if err != nil {
		s.finishOperation(op.ID, model.DeployError, 0)
		return fmt.Errorf("building catalog snapshot: %w", err)
	}

	if !s.uploadOne(ctx, catalogPath, content, "Update "+catalogPath) {
		s.finishOperation(op.ID, model.DeployError, 0)
		return fmt.Errorf("uploading %s failed", catalogPath)
	}

	s.deployLog.Append(LogSuccess, "Catalog synced!")
	s.finishOperation(op.ID, model.DeploySuccess, 1)
	return nil
}

// TriggerBuild fires a repository_dispatch event so the remote build
// workflow reruns. Fire-and-forget: completion is never polled.
func (s *SyncService) TriggerBuild(ctx context.Context) error {
	if !s.Verified() {
		return ErrNotVerified
	}

	op, err := s.history.CreateDeployOperation("TriggerBuild", buildEventType)
	if err != nil {
		return fmt.Errorf("recording deploy operation: %w", err)
	}

	s.deployLog.Append(LogInfo, "Triggering remote build...")

	if err := s.remote.Dispatch(ctx, buildEventType); err != nil {
		s.deployLog.Append(LogError, fmt.Sprintf("Build trigger failed: %s", err))
		s.finishOperation(op.ID, model.DeployError, 0)
		return fmt.Errorf("dispatching build event: %w", err)
	}

	s.deployLog.Append(LogSuccess, "Remote build triggered.")
	s.finishOperation(op.ID, model.DeploySuccess, 0)
	return nil
}

// History returns the most recent deploy operations, newest first.
func (s *SyncService) History(limit int) ([]*model.DeployOperation, error) {
	return s.history.RecentDeployOperations(limit)
}

// uploadOne uploads a single file, converting any failure into a deploy log
// entry and a false result so a running batch is never aborted.
func (s *SyncService) uploadOne(ctx context.Context, path string, content []byte, message string) bool {
	if err := s.remote.UploadFile(ctx, path, content, message); err != nil {
		s.deployLog.Append(LogError, fmt.Sprintf("Error at %s: %s", path, err))
		s.logger.Error("upload failed", "path", path, "error", err)
		return false
	}
	return true
}

// catalogSnapshot serializes the current content catalog for upload.
func (s *SyncService) catalogSnapshot() ([]byte, error) {
	content, err := s.store.GetContent()
	if err != nil {
		return nil, fmt.Errorf("reading content catalog: %w", err)
	}
	return json.MarshalIndent(content, "", "  ")
}

func (s *SyncService) finishOperation(id int64, status string, filesUploaded int) {
	if err := s.history.FinishDeployOperation(id, status, filesUploaded); err != nil {
		s.logger.Warn("finishing deploy operation", "id", id, "error", err)
	}
}
