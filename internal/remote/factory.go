package remote

import (
	"fmt"

	"gigawall/internal/config"
	"gigawall/internal/gigawall"
	"gigawall/internal/github"
	"gigawall/internal/model"
)

// New creates a RemoteRepository based on the remote config type. repoURL
// and token come from the Local Store (or CLI flags), not from the config
// file, because they are user data.
func New(cfg config.RemoteConfig, repoURL, token string, logger gigawall.Logger) (gigawall.RemoteRepository, error) {
	switch cfg.Type {
	case "", "github":
		return github.New(repoURL, token, logger)
	case "memory":
		return NewMemoryRepository(model.Repository{
			Name:          "memory",
			FullName:      "memory/memory",
			DefaultBranch: "main",
		}), nil
	default:
		return nil, fmt.Errorf("unknown remote type: %s", cfg.Type)
	}
}
