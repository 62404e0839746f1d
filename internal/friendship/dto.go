package friendship

// SendRequestRequest represents the request to add a friend by email
type SendRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}
