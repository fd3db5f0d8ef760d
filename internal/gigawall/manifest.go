package gigawall

import "fmt"

// catalogPath is where the content catalog snapshot lands in the repository.
const catalogPath = "data/catalog.json"

// projectFiles is the fixed, ordered list of portal source files mirrored to
// the remote repository on a full deploy. Files are uploaded in declaration
// order, one at a time.
var projectFiles = []string{
	"index.html",
	"index.tsx",
	"types.ts",
	"constants.tsx",
	"metadata.json",
	"manifest.json",
	"sw.js",
	"services/storageService.ts",
	"services/geminiService.ts",
	"components/Layout.tsx",
	"components/ContentCard.tsx",
	"components/ContentDetail.tsx",
	"components/ChatSystem.tsx",
	"components/CreatorStudio.tsx",
	"components/AdminPanel.tsx",
	"pages/Dashboard.tsx",
	"pages/Profile.tsx",
	"pages/Settings.tsx",
	"pages/NewsFeed.tsx",
	"pages/AccessPortal.tsx",
	"pages/Archive.tsx",
	"pages/PlatformStats.tsx",
	"pages/StaticPages.tsx",
}

// manifestEntry pairs a repository path with a lazy content loader, so a file
// that cannot be read locally fails only its own slot in the batch.
type manifestEntry struct {
	path string
	load func() ([]byte, error)
}

// buildManifest assembles the full deploy manifest: every known project file,
// the two workflow descriptors, a readme, and the content catalog snapshot.
func buildManifest(source FileSource, repoName string, catalog func() ([]byte, error)) []manifestEntry {
	entries := make([]manifestEntry, 0, len(projectFiles)+4)

	for _, p := range projectFiles {
		path := p
		entries = append(entries, manifestEntry{
			path: path,
			load: func() ([]byte, error) { return source.Read(path) },
		})
	}

	entries = append(entries,
		manifestEntry{
			path: ".github/workflows/deploy.yml",
			load: func() ([]byte, error) { return []byte(deployWorkflow), nil },
		},
		manifestEntry{
			path: ".github/workflows/build.yml",
			load: func() ([]byte, error) { return []byte(buildWorkflow), nil },
		},
		manifestEntry{
			path: "README.md",
			load: func() ([]byte, error) { return []byte(readme(repoName)), nil },
		},
		manifestEntry{
			path: catalogPath,
			load: catalog,
		},
	)

	return entries
}

// deployWorkflow publishes the repository to GitHub Pages on every push.
const deployWorkflow = `name: Deploy

on:
  push:
    branches: [main]
  workflow_dispatch:

permissions:
  contents: read
  pages: write
  id-token: write

jobs:
  deploy:
    runs-on: ubuntu-latest
    environment:
      name: github-pages
      url: ${{ steps.deployment.outputs.page_url }}
    steps:
      - uses: actions/checkout@v4
      - uses: actions/configure-pages@v5
      - uses: actions/upload-pages-artifact@v3
        with:
          path: .
      - id: deployment
        uses: actions/deploy-pages@v4
`

// buildWorkflow reruns the deploy when the portal fires a repository_dispatch
// event (see SyncService.TriggerBuild).
const buildWorkflow = `name: Build

on:
  repository_dispatch:
    types: [deploy]

permissions:
  contents: read

jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - run: echo "Rebuild triggered for ${{ github.event.action }}"
`

func readme(repoName string) string {
	return fmt.Sprintf(`# %s

Gigawall content portal, mirrored by its built-in deploy engine.

The portal source lives at the repository root; the published content catalog
is kept at %s and is refreshed on every data sync.
`, repoName, catalogPath)
}
