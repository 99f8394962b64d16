package handler

import (
	"log"

	"github.com/DarkTheory001/DevNest/internal/model"
	"github.com/DarkTheory001/DevNest/internal/repository"
	"github.com/DarkTheory001/DevNest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	userRepo *repository.UserRepository
	wsHub    *service.WSHub
}

func NewAdminHandler(userRepo *repository.UserRepository, wsHub *service.WSHub) *AdminHandler {
	return &AdminHandler{userRepo: userRepo, wsHub: wsHub}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.ListAll(c.Context())
	if err != nil {
		log.Printf("[Admin] ListUsers error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch users"})
	}

	if users == nil {
		users = []model.User{}
	}
	return c.JSON(users)
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.userRepo.GetStats(c.Context())
	if err != nil {
		log.Printf("[Admin] Stats error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch stats"})
	}

	return c.JSON(fiber.Map{
		"totalUsers":        stats.TotalUsers,
		"totalProjects":     stats.TotalProjects,
		"totalTransactions": stats.TotalTransactions,
		"onlineConnections": h.wsHub.OnlineCount(),
	})
}
