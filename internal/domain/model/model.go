// Package model holds the entities shared by the user, chat and message
// domains. Relation fields are nil when the relation was not loaded and are
// omitted from JSON in that case; a loaded but empty relation renders as [].
package model

import "time"

// User is a chat participant and message author.
type User struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Date     time.Time `json:"date"`
	Chats    []Chat    `json:"chats,omitzero"`
	Messages []Message `json:"messages,omitzero"`
}

// Chat groups a set of member users and the messages posted to it.
type Chat struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Users     []User    `json:"users,omitzero"`
	Messages  []Message `json:"messages,omitzero"`
}

// MemberIDs returns the ids of the loaded members.
func (c *Chat) MemberIDs() []uint {
	ids := make([]uint, 0, len(c.Users))
	for _, u := range c.Users {
		ids = append(ids, u.ID)
	}
	return ids
}

// Message is a post in a chat. ParentID is set for replies.
type Message struct {
	ID       uint      `json:"id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sentAt"`
	ChatID   uint      `json:"chatId"`
	UserID   uint      `json:"userId"`
	ParentID *uint     `json:"parentId"`
	Chat     *Chat     `json:"chat,omitzero"`
	User     *User     `json:"user,omitzero"`
	Replies  []Message `json:"replies,omitzero"`
}
