package handler

import (
	"context"
	"errors"
	"log"

	"github.com/DarkTheory001/DevNest/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// BotStore is the slice of the bot repository the handler needs.
type BotStore interface {
	Create(ctx context.Context, req *model.CreateWhatsappBotRequest) (*model.WhatsappBot, error)
	GetByID(ctx context.Context, id string) (*model.WhatsappBot, error)
	GetByProject(ctx context.Context, projectID string) (*model.WhatsappBot, error)
	Update(ctx context.Context, id string, req *model.UpdateWhatsappBotRequest) (*model.WhatsappBot, error)
}

// ProjectGetter resolves project ownership for bot routes.
type ProjectGetter interface {
	GetByID(ctx context.Context, id string) (*model.Project, error)
}

type WhatsappBotHandler struct {
	botRepo     BotStore
	projectRepo ProjectGetter
}

func NewWhatsappBotHandler(botRepo BotStore, projectRepo ProjectGetter) *WhatsappBotHandler {
	return &WhatsappBotHandler{botRepo: botRepo, projectRepo: projectRepo}
}

// ownsProject returns true when the project exists and belongs to userID.
func (h *WhatsappBotHandler) ownsProject(c *fiber.Ctx, projectID, userID string) (bool, error) {
	project, err := h.projectRepo.GetByID(c.Context(), projectID)
	if err != nil {
		return false, err
	}
	return project.UserID == userID, nil
}

func (h *WhatsappBotHandler) Create(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.CreateWhatsappBotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ProjectID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "projectId is required"})
	}

	owns, err := h.ownsProject(c, req.ProjectID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "project not found"})
		}
		log.Printf("[Bot] Create ownership check error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create bot"})
	}
	if !owns {
		return c.Status(403).JSON(fiber.Map{"error": "project belongs to another user"})
	}

	bot, err := h.botRepo.Create(c.Context(), &req)
	if err != nil {
		log.Printf("[Bot] Create error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create bot"})
	}

	return c.Status(201).JSON(bot)
}

func (h *WhatsappBotHandler) GetByProject(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	projectID := c.Params("projectId")

	// The bot row carries the access token; foreign projects 404 so the
	// route leaks neither credentials nor project existence.
	owns, err := h.ownsProject(c, projectID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "project not found"})
		}
		log.Printf("[Bot] GetByProject ownership check error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch bot"})
	}
	if !owns {
		return c.Status(404).JSON(fiber.Map{"error": "project not found"})
	}

	bot, err := h.botRepo.GetByProject(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "bot not found"})
		}
		log.Printf("[Bot] GetByProject error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch bot"})
	}

	return c.JSON(bot)
}

func (h *WhatsappBotHandler) Update(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req model.UpdateWhatsappBotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	bot, err := h.botRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "bot not found"})
		}
		log.Printf("[Bot] Update fetch error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update bot"})
	}

	owns, err := h.ownsProject(c, bot.ProjectID, userID)
	if err != nil || !owns {
		return c.Status(403).JSON(fiber.Map{"error": "project belongs to another user"})
	}

	updated, err := h.botRepo.Update(c.Context(), bot.ID, &req)
	if err != nil {
		log.Printf("[Bot] Update error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update bot"})
	}

	return c.JSON(updated)
}
