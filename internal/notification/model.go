package notification

import "time"

// Notification represents an in-app notification row. Push delivery is a
// separate sub-service behind the store; this package only records.
type Notification struct {
	ID                string    `json:"id"`
	RecipientID       string    `json:"recipient_id"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"is_read"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"` // e.g. "EXPENSE", "GROUP"
	RelatedEntityID   *string   `json:"related_entity_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
