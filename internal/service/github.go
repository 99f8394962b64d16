package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DarkTheory001/DevNest/internal/model"
)

// GitHubService proxies the repository-hosting API for the dashboard's
// repo browser. All calls pass straight through; nothing is cached.
type GitHubService struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGitHubService(baseURL, token string) *GitHubService {
	return &GitHubService{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *GitHubService) ListRepositories(ctx context.Context) ([]model.GitHubRepo, error) {
	var repos []model.GitHubRepo
	if err := s.do(ctx, http.MethodGet, "/user/repos?sort=updated&per_page=100", nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetContents returns the raw contents response for a path: an object for a
// file, an array for a directory. The shape is passed through to the client
// untouched.
func (s *GitHubService) GetContents(ctx context.Context, owner, repo, path string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), path)
	var raw json.RawMessage
	if err := s.do(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *GitHubService) CreateRepository(ctx context.Context, name, description string, private bool) (*model.GitHubRepo, error) {
	body := map[string]interface{}{
		"name":        name,
		"description": description,
		"private":     private,
		"auto_init":   true,
	}
	repo := &model.GitHubRepo{}
	if err := s.do(ctx, http.MethodPost, "/user/repos", body, repo); err != nil {
		return nil, err
	}
	return repo, nil
}

func (s *GitHubService) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("github %s %s: status %d: %s", method, endpoint, resp.StatusCode, bytes.TrimSpace(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode github response: %w", err)
		}
	}
	return nil
}
