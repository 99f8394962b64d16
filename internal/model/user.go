package model

import "time"

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CoinBalance     int       `json:"coinBalance"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserStats is the aggregate counters shown on the admin dashboard.
type UserStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalProjects     int `json:"totalProjects"`
	TotalTransactions int `json:"totalTransactions"`
}
