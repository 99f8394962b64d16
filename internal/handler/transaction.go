package handler

import (
	"errors"
	"log"

	"github.com/DarkTheory001/DevNest/internal/model"
	"github.com/DarkTheory001/DevNest/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	coinSvc *service.CoinService
}

func NewTransactionHandler(coinSvc *service.CoinService) *TransactionHandler {
	return &TransactionHandler{coinSvc: coinSvc}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	txs, err := h.coinSvc.ListForUser(c.Context(), userID)
	if err != nil {
		log.Printf("[Coins] List error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch transactions"})
	}

	if txs == nil {
		txs = []model.Transaction{}
	}
	return c.JSON(txs)
}

// Create records an admin-issued transaction and applies it to the target
// user's balance. Admin status is enforced by middleware on the route.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	adminID, _ := c.Locals("user_id").(string)

	var req model.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.UserID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "userId is required"})
	}

	tx, err := h.coinSvc.Grant(c.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransactionType), errors.Is(err, service.ErrZeroAmount):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("[Coins] Grant error: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to create transaction"})
		}
	}

	return c.Status(201).JSON(tx)
}
