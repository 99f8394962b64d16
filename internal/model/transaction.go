package model

import "time"

const (
	TransactionTypeAdminGrant        = "admin_grant"
	TransactionTypeProjectDeployment = "project_deployment"
	TransactionTypeResourceUsage     = "resource_usage"
	TransactionTypeBonus             = "bonus"
)

func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeAdminGrant, TransactionTypeProjectDeployment,
		TransactionTypeResourceUsage, TransactionTypeBonus:
		return true
	}
	return false
}

type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AdminID   *string   `json:"adminId"`
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Reason    *string   `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTransactionRequest struct {
	UserID string  `json:"userId"`
	Type   string  `json:"type"`
	Amount int     `json:"amount"`
	Reason *string `json:"reason"`
}
