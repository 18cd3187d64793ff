package requests

// CreateMessageRequest is the body of POST /chats/:id/users/:userId/messages.
type CreateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReplyRequest is the body of POST /messages/:id/reply.
type ReplyRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// DeleteMessageRequest is the body of DELETE /chats/:id/users/:userId/messages.
type DeleteMessageRequest struct {
	MessageID uint `json:"messageId" binding:"required"`
}
