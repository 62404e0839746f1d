package user

import "time"

// Profile represents an account holder's profile
type Profile struct {
	ID        string    `json:"id"`
	FullName  *string   `json:"full_name"`
	Email     *string   `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
