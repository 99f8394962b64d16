package model

import "time"

// Project type and status values match the enums in the projects table.
const (
	ProjectTypeWebApp      = "web_app"
	ProjectTypeWhatsappBot = "whatsapp_bot"
	ProjectTypeAPI         = "api"
	ProjectTypeStaticSite  = "static_site"

	ProjectStatusActive   = "active"
	ProjectStatusInactive = "inactive"
	ProjectStatusBuilding = "building"
	ProjectStatusError    = "error"
)

func ValidProjectType(t string) bool {
	switch t {
	case ProjectTypeWebApp, ProjectTypeWhatsappBot, ProjectTypeAPI, ProjectTypeStaticSite:
		return true
	}
	return false
}

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusActive, ProjectStatusInactive, ProjectStatusBuilding, ProjectStatusError:
		return true
	}
	return false
}

type Project struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	Type          string            `json:"type"`
	Status        string            `json:"status"`
	RepositoryURL *string           `json:"repositoryUrl"`
	DeploymentURL *string           `json:"deploymentUrl"`
	WebhookSecret string            `json:"webhookSecret,omitempty"`
	EnvVariables  map[string]string `json:"envVariables"`
	Files         map[string]string `json:"files"`
	LastDeployed  *time.Time        `json:"lastDeployed"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	Type          string            `json:"type"`
	RepositoryURL *string           `json:"repositoryUrl"`
	EnvVariables  map[string]string `json:"envVariables"`
	Files         map[string]string `json:"files"`
}

// UpdateProjectRequest carries a partial update; nil fields are left untouched.
type UpdateProjectRequest struct {
	Name          *string            `json:"name"`
	Description   *string            `json:"description"`
	Status        *string            `json:"status"`
	RepositoryURL *string            `json:"repositoryUrl"`
	DeploymentURL *string            `json:"deploymentUrl"`
	EnvVariables  *map[string]string `json:"envVariables"`
	Files         *map[string]string `json:"files"`
	LastDeployed  *time.Time         `json:"lastDeployed"`
}
