// Package github implements the small slice of the GitHub REST API the
// deploy engine needs: repository lookup, content create-or-update, and
// repository_dispatch.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"gigawall/internal/gigawall"
	"gigawall/internal/model"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second

	acceptHeader = "application/vnd.github.v3+json"
)

var repoURLPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ParseRepoURL extracts the owner and repository name from a GitHub URL.
// A single trailing slash is tolerated. ok is false when the URL does not
// point at a github.com repository.
func ParseRepoURL(url string) (owner, repo string, ok bool) {
	clean := strings.TrimSuffix(strings.TrimSpace(url), "/")
	m := repoURLPattern.FindStringSubmatch(clean)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Client talks to the GitHub API for a single owner/repo pair.
type Client struct {
	http    *http.Client
	baseURL string
	owner   string
	repo    string
	token   string
	logger  gigawall.Logger
}

// New creates a client for the repository identified by repoURL. The token
// may be empty; unauthenticated requests still work for public reads.
func New(repoURL, token string, logger gigawall.Logger) (*Client, error) {
	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return nil, fmt.Errorf("invalid repository url: %q", repoURL)
	}

	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
		owner:   owner,
		repo:    repo,
		token:   strings.TrimSpace(token),
		logger:  logger,
	}, nil
}

// do executes one API call against /repos/{owner}/{repo}{path}. Any status
// outside 2xx other than 404 is converted to an error carrying the
// API-reported message. The caller owns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/repos/%s/%s%s", c.baseURL, c.owner, c.repo, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("github request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if !successStatus(resp.StatusCode) && resp.StatusCode != http.StatusNotFound {
		defer resp.Body.Close()
		return nil, apiError(resp)
	}

	return resp, nil
}

func successStatus(code int) bool {
	return code >= 200 && code < 300
}

// apiError extracts the "message" field GitHub puts in error bodies,
// falling back to the bare status code when the body is not parseable.
func apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return fmt.Errorf("%s", payload.Message)
	}
	return fmt.Errorf("status %d", resp.StatusCode)
}

// GetRepository fetches the repository metadata. Doubles as the existence
// and authorization check run before any deploy.
func (c *Client) GetRepository(ctx context.Context) (*model.Repository, error) {
	resp, err := c.do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("repository not found: %s/%s", c.owner, c.repo)
	}

	var repo model.Repository
	if err := json.NewDecoder(resp.Body).Decode(&repo); err != nil {
		return nil, fmt.Errorf("decoding repository: %w", err)
	}
	return &repo, nil
}

// UploadFile creates or overwrites a single file via check-then-write:
// fetch the current revision's sha (404 means the file does not exist yet)
// and pass it forward on the PUT so the write succeeds either way. The
// window between check and write means a concurrent external edit is
// overwritten last-writer-wins.
func (c *Client) UploadFile(ctx context.Context, path string, content []byte, message string) error {
	sha, err := c.contentSHA(ctx, path)
	if err != nil {
		return err
	}

	body := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: message,
		// Base64 over the raw bytes; multi-byte text round-trips intact.
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	}

	resp, err := c.do(ctx, http.MethodPut, "/contents/"+path, body)
	if err != nil {
		return err
	}
	resp.Body.Close()

	c.logger.Debug("file uploaded", "path", path, "update", sha != "")
	return nil
}

// contentSHA returns the version token of the file at path, or "" when the
// file does not exist yet.
func (c *Client) contentSHA(ctx context.Context, path string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/contents/"+path, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var meta struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return "", fmt.Errorf("decoding content metadata: %w", err)
	}
	return meta.SHA, nil
}

// Dispatch fires a repository_dispatch event with the given event type.
func (c *Client) Dispatch(ctx context.Context, eventType string) error {
	body := struct {
		EventType string `json:"event_type"`
	}{EventType: eventType}

	resp, err := c.do(ctx, http.MethodPost, "/dispatches", body)
	if err != nil {
		return err
	}
	resp.Body.Close()

	c.logger.Debug("dispatch fired", "event_type", eventType)
	return nil
}

// Compile-time check that Client implements the service-facing interface.
var _ gigawall.RemoteRepository = (*Client)(nil)
