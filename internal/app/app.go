package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"gigawall/internal/config"
	"gigawall/internal/database"
	"gigawall/internal/gigawall"
	"gigawall/internal/model"
	"gigawall/internal/remote"
	"gigawall/internal/source"
	"gigawall/internal/store"
)

// App is the application layer between the CLI and the service layer. It
// constructs all dependencies from config and manages their lifecycle on
// Close.
type App struct {
	cfg     *config.Config
	store   gigawall.Store
	history gigawall.HistoryDB
	logger  gigawall.Logger
	clock   gigawall.Clock
	idgen   gigawall.IDGenerator
	logFile *os.File

	// Built on first deploy-facing call; nil until then.
	service *gigawall.SyncService
}

// NewApp creates a fully wired App from the given config. operation
// identifies the CLI command being run (e.g. "Connect", "Deploy"). The
// caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	opID := time.Now().UTC().Format("20060102T150405Z")
	slogger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger.With("op", operation)}

	clock := gigawall.RealClock{}
	idgen := gigawall.UUIDGenerator{}

	st, err := store.Open(cfg.DataDir, logger, clock, idgen)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		st.Close()
		logFile.Close()
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	return &App{
		cfg:     cfg,
		store:   st,
		history: db,
		logger:  logger,
		clock:   clock,
		idgen:   idgen,
		logFile: logFile,
	}, nil
}

// syncService builds the deploy service bound to repoURL/token, falling
// back to the values stored by a previous connect when either is empty.
func (a *App) syncService(repoURL, token string) (*gigawall.SyncService, model.RemoteConfig, error) {
	stored, err := a.store.GetRemoteConfig()
	if err != nil {
		return nil, model.RemoteConfig{}, fmt.Errorf("reading stored remote config: %w", err)
	}
	if repoURL == "" {
		repoURL = stored.RepoURL
	}
	if token == "" {
		token = stored.Token
	}
	if repoURL == "" {
		return nil, model.RemoteConfig{}, fmt.Errorf("no repository configured: run connect first")
	}

	rr, err := remote.New(a.cfg.Remote, repoURL, token, a.logger)
	if err != nil {
		return nil, model.RemoteConfig{}, fmt.Errorf("creating remote: %w", err)
	}

	src := source.NewOSFileSource(a.cfg.ProjectDir)
	svc := gigawall.NewSyncService(a.store, rr, src, a.history, a.logger, a.clock, a.idgen)
	a.service = svc

	return svc, model.RemoteConfig{RepoURL: repoURL, Private: stored.Private, Token: token}, nil
}

// Connect verifies access to the repository and persists the confirmed URL
// and token. private marks the repository visibility in the local settings.
func (a *App) Connect(ctx context.Context, repoURL, token string, private bool) (*model.Repository, error) {
	svc, cfg, err := a.syncService(repoURL, token)
	if err != nil {
		return nil, err
	}

	repo, err := svc.VerifyConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := a.store.SetRepoPrivate(private); err != nil {
		return nil, fmt.Errorf("persisting visibility flag: %w", err)
	}
	return repo, nil
}

// Deploy verifies the connection and mirrors the full project manifest to
// the repository. Returns uploaded and total file counts.
func (a *App) Deploy(ctx context.Context) (uploaded, total int, err error) {
	svc, cfg, err := a.syncService("", "")
	if err != nil {
		return 0, 0, err
	}
	if _, err := svc.VerifyConnection(ctx, cfg); err != nil {
		return 0, 0, err
	}
	return svc.FullProjectSync(ctx)
}

// DeployData verifies the connection and uploads only the catalog snapshot.
func (a *App) DeployData(ctx context.Context) error {
	svc, cfg, err := a.syncService("", "")
	if err != nil {
		return err
	}
	if _, err := svc.VerifyConnection(ctx, cfg); err != nil {
		return err
	}
	return svc.SyncData(ctx)
}

// TriggerBuild verifies the connection and fires the remote build event.
func (a *App) TriggerBuild(ctx context.Context) error {
	svc, cfg, err := a.syncService("", "")
	if err != nil {
		return err
	}
	if _, err := svc.VerifyConnection(ctx, cfg); err != nil {
		return err
	}
	return svc.TriggerBuild(ctx)
}

// DeployLogEntries returns the deploy log of the current session, newest
// first. Empty when no deploy-facing command has run.
func (a *App) DeployLogEntries() []gigawall.LogEntry {
	if a.service == nil {
		return nil
	}
	return a.service.DeployLog().Entries()
}

// ListContent returns the content catalog, newest first.
func (a *App) ListContent() ([]model.Content, error) {
	return a.store.GetContent()
}

// AddContent publishes a new content item authored by the local profile.
func (a *App) AddContent(title, description string, contentType model.ContentType, url, category string, tags []string) (*model.Content, error) {
	item := model.Content{
		ID:          a.idgen.New(),
		Title:       title,
		Description: description,
		Type:        contentType,
		CreatorID:   a.cfg.Profile.UserID,
		URL:         url,
		CreatedAt:   a.clock.Now().UTC().Format(time.RFC3339),
		Tags:        tags,
		Category:    category,
	}
	if err := a.store.AddContent(item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Notifications returns the local profile's notifications, newest first.
func (a *App) Notifications() ([]model.Notification, error) {
	return a.store.GetNotifications(a.cfg.Profile.UserID)
}

// ToggleLike flips the like state of a content item and returns the new
// state.
func (a *App) ToggleLike(contentID string) (bool, error) {
	return a.store.ToggleLike(contentID)
}

// Comments returns the thread for a content item in post order.
func (a *App) Comments(contentID string) ([]model.Comment, error) {
	return a.store.GetComments(contentID)
}

// AddComment posts a comment on a content item as the local profile.
// Comments start in the pending moderation state.
func (a *App) AddComment(contentID, text string) (*model.Comment, error) {
	comment := model.Comment{
		ID:         a.idgen.New(),
		ContentID:  contentID,
		UserID:     a.cfg.Profile.UserID,
		UserName:   a.cfg.Profile.DisplayName,
		UserHandle: a.cfg.Profile.Handle,
		Text:       text,
		CreatedAt:  a.clock.Now().UTC().Format(time.RFC3339),
		Status:     model.CommentPending,
	}
	if err := a.store.AddComment(comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SendChatMessage appends a message to the chat transcript as the local
// profile.
func (a *App) SendChatMessage(text string) (*model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:         a.idgen.New(),
		SenderID:   a.cfg.Profile.UserID,
		SenderName: a.cfg.Profile.DisplayName,
		Text:       text,
		Timestamp:  a.clock.Now().UTC().Format(time.RFC3339),
	}
	if err := a.store.AddChatMessage(msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ChatHistory returns the chat transcript in send order.
func (a *App) ChatHistory() ([]model.ChatMessage, error) {
	return a.store.GetChatHistory()
}

// ClearChat wipes the chat transcript.
func (a *App) ClearChat() error {
	return a.store.ClearChat()
}

// History returns the most recent deploy operations, newest first.
func (a *App) History(limit int) ([]*model.DeployOperation, error) {
	return a.history.RecentDeployOperations(limit)
}

// Close releases all resources.
func (a *App) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing local store: %w", err)
	}
	if err := a.history.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing history database: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
