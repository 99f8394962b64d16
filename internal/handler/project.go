package handler

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProjectStore is the slice of the project repository the handler needs.
type ProjectStore interface {
	Create(ctx context.Context, userID, webhookSecret string, req *model.CreateProjectRequest) (*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	ListByUser(ctx context.Context, userID string) ([]model.Project, error)
	Update(ctx context.Context, id, userID string, req *model.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id, userID string) error
}

type ProjectHandler struct {
	projectRepo ProjectStore
}

func NewProjectHandler(projectRepo ProjectStore) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	projects, err := h.projectRepo.ListByUser(c.Context(), userID)
	if err != nil {
		log.Printf("[Project] List error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch projects"})
	}

	if projects == nil {
		projects = []model.Project{}
	}
	return c.JSON(projects)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	if !model.ValidProjectType(req.Type) {
		return c.Status(400).JSON(fiber.Map{"error": "type must be one of web_app, whatsapp_bot, api, static_site"})
	}

	// Each project gets its own webhook secret at birth.
	secret := strings.ReplaceAll(uuid.NewString(), "-", "")

	project, err := h.projectRepo.Create(c.Context(), userID, secret, &req)
	if err != nil {
		log.Printf("[Project] Create error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create project"})
	}

	return c.Status(201).JSON(project)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	project, err := h.projectRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "project not found"})
		}
		log.Printf("[Project] Get error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch project"})
	}
	// Foreign projects look like missing ones; the row carries the webhook
	// secret and env variables, which never leave the owner's account.
	if project.UserID != userID {
		return c.Status(404).JSON(fiber.Map{"error": "project not found"})
	}

	return c.JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Status != nil && !model.ValidProjectStatus(*req.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "status must be one of active, inactive, building, error"})
	}

	project, err := h.projectRepo.Update(c.Context(), c.Params("id"), userID, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "project not found"})
		}
		log.Printf("[Project] Update error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update project"})
	}

	return c.JSON(project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.projectRepo.Delete(c.Context(), c.Params("id"), userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "project not found"})
		}
		log.Printf("[Project] Delete error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete project"})
	}

	return c.JSON(fiber.Map{"ok": true})
}
