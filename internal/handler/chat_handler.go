package handler

import (
	"log"
	"strconv"

	"github.com/DarkTheory001/DevNest/internal/model"
	"github.com/DarkTheory001/DevNest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatSvc      *service.ChatService
	defaultLimit int
}

func NewChatHandler(chatSvc *service.ChatService, defaultLimit int) *ChatHandler {
	if defaultLimit <= 0 || defaultLimit > 200 {
		defaultLimit = 50
	}
	return &ChatHandler{chatSvc: chatSvc, defaultLimit: defaultLimit}
}

// GetMessages returns the most recent chat messages, newest first, each
// joined with the sender's profile. Clients reverse for display.
// GET /api/v1/chat/messages?limit=50
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 || limit > 200 {
		limit = h.defaultLimit
	}

	msgs, err := h.chatSvc.History(c.Context(), limit)
	if err != nil {
		log.Printf("[Chat] History error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch chat messages"})
	}

	if msgs == nil {
		msgs = []model.ChatMessageWithUser{}
	}
	return c.JSON(msgs)
}
