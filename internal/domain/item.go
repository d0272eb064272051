package domain

import "time"

// Item status values
const (
	ItemStatusCompleted  = "completed"
	ItemStatusInProgress = "in-progress"
	ItemStatusPending    = "pending"
)

// Item is a sample record served by the items API
type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
