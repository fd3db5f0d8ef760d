package testutil

import (
	"gigawall/internal/model"
	"gigawall/internal/remote"
)

// NewTestRemote creates an in-memory remote repository with test metadata.
func NewTestRemote() *remote.MemoryRepository {
	return remote.NewMemoryRepository(model.Repository{
		Name:          "site",
		FullName:      "acme/site",
		DefaultBranch: "main",
		HTMLURL:       "https://github.com/acme/site",
	})
}
