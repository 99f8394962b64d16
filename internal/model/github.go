package model

import "time"

// GitHubRepo is the subset of the hosting API's repository object that the
// dashboard consumes.
type GitHubRepo struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	FullName      string     `json:"full_name"`
	Private       bool       `json:"private"`
	Description   *string    `json:"description"`
	HTMLURL       string     `json:"html_url"`
	CloneURL      string     `json:"clone_url"`
	DefaultBranch string     `json:"default_branch"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type CreateRepoRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}
