package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjectStore struct {
	projects map[string]*model.Project
}

func newStubProjectStore() *stubProjectStore {
	return &stubProjectStore{projects: make(map[string]*model.Project)}
}

func (s *stubProjectStore) Create(_ context.Context, userID, webhookSecret string, req *model.CreateProjectRequest) (*model.Project, error) {
	p := &model.Project{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Type:          req.Type,
		Status:        model.ProjectStatusActive,
		WebhookSecret: webhookSecret,
	}
	s.projects[p.ID] = p
	return p, nil
}

func (s *stubProjectStore) GetByID(_ context.Context, id string) (*model.Project, error) {
	if p, ok := s.projects[id]; ok {
		return p, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubProjectStore) ListByUser(_ context.Context, userID string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubProjectStore) Update(_ context.Context, id, userID string, req *model.UpdateProjectRequest) (*model.Project, error) {
	p, ok := s.projects[id]
	if !ok || p.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	return p, nil
}

func (s *stubProjectStore) Delete(_ context.Context, id, userID string) error {
	p, ok := s.projects[id]
	if !ok || p.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(s.projects, id)
	return nil
}

func newProjectApp(store *stubProjectStore, userID string) *fiber.App {
	h := NewProjectHandler(store)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Get("/api/v1/projects/:id", h.Get)
	return app
}

func seedProject(store *stubProjectStore, ownerID, secret string) *model.Project {
	p := &model.Project{
		ID:            uuid.NewString(),
		UserID:        ownerID,
		Name:          "shop",
		Type:          model.ProjectTypeWebApp,
		Status:        model.ProjectStatusActive,
		WebhookSecret: secret,
	}
	store.projects[p.ID] = p
	return p
}

func TestProjectGetOwner(t *testing.T) {
	store := newStubProjectStore()
	p := seedProject(store, "u1", "s3cret")
	app := newProjectApp(store, "u1")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/projects/"+p.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var got model.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "s3cret", got.WebhookSecret)
}

// A project read by anyone other than its owner is indistinguishable from a
// missing project: the row carries the webhook secret and env variables.
func TestProjectGetForeignProjectIsNotFound(t *testing.T) {
	store := newStubProjectStore()
	p := seedProject(store, "owner", "s3cret")
	app := newProjectApp(store, "intruder")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/projects/"+p.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.False(t, strings.Contains(string(body), "s3cret"), "secret must not leak")
}

func TestProjectGetMissing(t *testing.T) {
	app := newProjectApp(newStubProjectStore(), "u1")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/projects/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
