package model

import "time"

type WhatsappBot struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	PhoneNumber *string   `json:"phoneNumber"`
	AccessToken *string   `json:"accessToken"`
	WebhookURL  *string   `json:"webhookUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateWhatsappBotRequest struct {
	ProjectID   string  `json:"projectId"`
	PhoneNumber *string `json:"phoneNumber"`
	AccessToken *string `json:"accessToken"`
	WebhookURL  *string `json:"webhookUrl"`
}

type UpdateWhatsappBotRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	AccessToken *string `json:"accessToken"`
	WebhookURL  *string `json:"webhookUrl"`
	IsActive    *bool   `json:"isActive"`
}
