package requests

// CreateChatRequest is the body of POST /chats.
type CreateChatRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}

// ChatMemberRequest names a single user to add to or remove from a chat.
type ChatMemberRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// AddChatUsersRequest is the body of PUT /chats/:id/addUsers.
type AddChatUsersRequest struct {
	NewUsers []uint `json:"newUsers" binding:"required"`
}

// RemoveChatUsersRequest is the body of PUT /chats/:id/removeUsers.
type RemoveChatUsersRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}
