package user

// CreateProfileRequest represents the request body for creating a profile
type CreateProfileRequest struct {
	FullName  string  `json:"full_name" validate:"required,min=1,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ProfileResponse represents the response for a single profile
type ProfileResponse struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Profile model to a ProfileResponse DTO
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
