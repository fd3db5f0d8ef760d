package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gigawall/internal/gigawall"
)

func TestParseRepoURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{name: "plain https url", url: "https://github.com/acme/site", wantOwner: "acme", wantRepo: "site", wantOK: true},
		{name: "trailing slash", url: "https://github.com/acme/site/", wantOwner: "acme", wantRepo: "site", wantOK: true},
		{name: "surrounding whitespace", url: "  https://github.com/acme/site  ", wantOwner: "acme", wantRepo: "site", wantOK: true},
		{name: "no scheme", url: "github.com/acme/site", wantOwner: "acme", wantRepo: "site", wantOK: true},
		{name: "not a repository url", url: "not a url", wantOK: false},
		{name: "wrong host", url: "https://gitlab.com/acme/site", wantOK: false},
		{name: "empty", url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := ParseRepoURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("got %s/%s, want %s/%s", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

// newTestClient points a client for acme/site at the given test server.
func newTestClient(t *testing.T, srv *httptest.Server, token string) *Client {
	t.Helper()

	c, err := New("https://github.com/acme/site", token, gigawall.NewNopLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.baseURL = srv.URL
	c.http = srv.Client()
	return c
}

func TestNew_InvalidURL(t *testing.T) {
	t.Parallel()

	if _, err := New("not a url", "", gigawall.NewNopLogger()); err == nil {
		t.Error("New() error = nil, want invalid url error")
	}
}

func TestGetRepository(t *testing.T) {
	t.Run("decodes metadata", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/acme/site" {
				t.Errorf("path = %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok_abc" {
				t.Errorf("Authorization = %q", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"name":           "site",
				"full_name":      "acme/site",
				"private":        true,
				"default_branch": "main",
				"html_url":       "https://github.com/acme/site",
			})
		}))
		defer srv.Close()

		repo, err := newTestClient(t, srv, "tok_abc").GetRepository(context.Background())
		if err != nil {
			t.Fatalf("GetRepository() error = %v", err)
		}
		if repo.FullName != "acme/site" || !repo.Private || repo.DefaultBranch != "main" {
			t.Errorf("repo = %+v", repo)
		}
	})

	t.Run("404 is a clear not-found error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv, "").GetRepository(context.Background())
		if err == nil || !strings.Contains(err.Error(), "repository not found") {
			t.Errorf("error = %v, want repository not found", err)
		}
	})
}

func TestUploadFile(t *testing.T) {
	type putBody struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}

	t.Run("creates a new file without a sha", func(t *testing.T) {
		t.Parallel()

		var put putBody
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				w.WriteHeader(http.StatusNotFound)
			case http.MethodPut:
				if r.URL.Path != "/repos/acme/site/contents/index.html" {
					t.Errorf("path = %s", r.URL.Path)
				}
				json.NewDecoder(r.Body).Decode(&put)
				w.WriteHeader(http.StatusCreated)
			}
		}))
		defer srv.Close()

		c := newTestClient(t, srv, "tok_abc")
		content := []byte("Olá, mundo — café ☕")
		if err := c.UploadFile(context.Background(), "index.html", content, "Add index"); err != nil {
			t.Fatalf("UploadFile() error = %v", err)
		}

		if put.SHA != "" {
			t.Errorf("sha = %q, want empty on create", put.SHA)
		}
		if put.Message != "Add index" {
			t.Errorf("message = %q", put.Message)
		}
		decoded, err := base64.StdEncoding.DecodeString(put.Content)
		if err != nil {
			t.Fatalf("content is not valid base64: %v", err)
		}
		if string(decoded) != string(content) {
			t.Errorf("content round-trip = %q, want %q", decoded, content)
		}
	})

	t.Run("overwrite forwards the current sha", func(t *testing.T) {
		t.Parallel()

		var put putBody
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(map[string]string{"sha": "abc123"})
			case http.MethodPut:
				json.NewDecoder(r.Body).Decode(&put)
			}
		}))
		defer srv.Close()

		c := newTestClient(t, srv, "tok_abc")
		if err := c.UploadFile(context.Background(), "index.html", []byte("v2"), "Update index"); err != nil {
			t.Fatalf("UploadFile() error = %v", err)
		}
		if put.SHA != "abc123" {
			t.Errorf("sha = %q, want abc123", put.SHA)
		}
	})

	t.Run("surfaces the api error message", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid request"})
		}))
		defer srv.Close()

		err := newTestClient(t, srv, "tok_abc").UploadFile(context.Background(), "index.html", []byte("x"), "msg")
		if err == nil || !strings.Contains(err.Error(), "Invalid request") {
			t.Errorf("error = %v, want Invalid request", err)
		}
	})

	t.Run("falls back to the status code without a message", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("<html>oops</html>"))
		}))
		defer srv.Close()

		err := newTestClient(t, srv, "tok_abc").UploadFile(context.Background(), "index.html", []byte("x"), "msg")
		if err == nil || !strings.Contains(err.Error(), "status 500") {
			t.Errorf("error = %v, want status 500", err)
		}
	})
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	var body struct {
		EventType string `json:"event_type"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/acme/site/dispatches" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newTestClient(t, srv, "tok_abc").Dispatch(context.Background(), "deploy"); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if body.EventType != "deploy" {
		t.Errorf("event_type = %q, want deploy", body.EventType)
	}
}

func TestAuthorizationHeader(t *testing.T) {
	t.Run("omitted when no token is set", func(t *testing.T) {
		t.Parallel()

		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]string{"name": "site"})
		}))
		defer srv.Close()

		if _, err := newTestClient(t, srv, "").GetRepository(context.Background()); err != nil {
			t.Fatalf("GetRepository() error = %v", err)
		}
		if auth != "" {
			t.Errorf("Authorization = %q, want empty", auth)
		}
	})
}
