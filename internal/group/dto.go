package group

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateGroupRequest represents the request to rename a group
type UpdateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt string    `json:"created_at"`
	Members   []*Member `json:"members,omitempty"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
