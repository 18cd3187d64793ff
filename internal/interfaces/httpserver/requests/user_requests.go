package requests

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string     `json:"name" binding:"required" example:"Alice"`
	Email string     `json:"email" binding:"required" example:"alice@example.com"`
	Date  *Timestamp `json:"date" swaggertype:"string" example:"2024-01-01"`
}

// UpdateUserRequest is the body of PUT /users/:id. Absent fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string    `json:"name"`
	Email *string    `json:"email"`
	Date  *Timestamp `json:"date" swaggertype:"string"`
}
