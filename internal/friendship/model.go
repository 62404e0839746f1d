package friendship

import "time"

// Status represents the state of a friendship edge
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Friendship is a directed edge between two users. UserID is the initiator;
// once accepted the relationship is treated as symmetric.
type Friendship struct {
	UserID    string    `json:"user_id"`
	FriendID  string    `json:"friend_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Friend is the other user on an edge, with profile fields joined in
type Friend struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Status    Status  `json:"status"`
	// Incoming is true when the other user initiated the request
	Incoming bool `json:"incoming"`
}
