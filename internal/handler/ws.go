package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/DarkTheory001/DevNest/internal/model"
	"github.com/DarkTheory001/DevNest/internal/service"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const readDeadline = 60 * time.Second

type WSHandler struct {
	hub     *service.WSHub
	chatSvc *service.ChatService
	authSvc *service.AuthService
}

func NewWSHandler(hub *service.WSHub, chatSvc *service.ChatService, authSvc *service.AuthService) *WSHandler {
	return &WSHandler{hub: hub, chatSvc: chatSvc, authSvc: authSvc}
}

// Upgrade authenticates the handshake and binds the caller's identity to
// the connection. Event payloads never override it.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		token := c.Query("token")
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "token required"})
		}

		userID, email, err := h.authSvc.ValidateAccessToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("user_id", userID)
		c.Locals("email", email)
		return websocket.New(h.handleConnection)(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *WSHandler) handleConnection(c *websocket.Conn) {
	userID, _ := c.Locals("user_id").(string)
	email, _ := c.Locals("email").(string)

	client := &service.WSClient{
		Conn:   c,
		UserID: userID,
		Email:  email,
		Send:   make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	// Writer goroutine
	go func() {
		defer c.Close()
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader loop
	c.SetReadDeadline(time.Now().Add(readDeadline))
	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			break
		}

		// Reset deadline on any inbound frame
		c.SetReadDeadline(time.Now().Add(readDeadline))

		var event model.WSInbound
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Printf("WS: malformed event from %s: %v", email, err)
			continue
		}

		switch event.Type {
		case "chat_message":
			// Best effort: a bad message is logged and dropped, the
			// connection stays up either way.
			if _, err := h.chatSvc.PostMessage(context.Background(), client.UserID, event.Message); err != nil {
				log.Printf("WS: dropped chat_message from %s: %v", email, err)
			}
		case "ping":
			pong, _ := json.Marshal(model.WSPong{Type: "pong"})
			select {
			case client.Send <- pong:
			default:
			}
		default:
			log.Printf("WS: unknown event type %q from %s", event.Type, email)
		}
	}
}
