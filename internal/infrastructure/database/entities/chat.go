package entities

import (
	"time"

	"jan-server/services/chat-api/internal/domain/model"
)

// Chat is the persisted representation of a chat.
type Chat struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Users     []User    `gorm:"many2many:chat_members;constraint:OnDelete:CASCADE"`
	Messages  []Message `gorm:"foreignKey:ChatID;constraint:OnDelete:RESTRICT"`
}

func (Chat) TableName() string {
	return "chats"
}

// ChatMember is one row of the membership join table. The composite primary
// key keeps membership a set.
type ChatMember struct {
	ChatID    uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMember) TableName() string {
	return "chat_members"
}

// EtoD converts the row to the domain model. Relations that were not
// preloaded stay nil.
func (c *Chat) EtoD() *model.Chat {
	out := &model.Chat{
		ID:        c.ID,
		CreatedAt: c.CreatedAt.UTC(),
	}
	if c.Users != nil {
		out.Users = make([]model.User, len(c.Users))
		for i := range c.Users {
			out.Users[i] = *c.Users[i].EtoD()
		}
	}
	if c.Messages != nil {
		out.Messages = messagesEtoD(c.Messages)
	}
	return out
}
