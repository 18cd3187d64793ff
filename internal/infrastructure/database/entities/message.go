package entities

import (
	"time"

	"jan-server/services/chat-api/internal/domain/model"
)

// Message is the persisted representation of a chat message. ParentID links a
// reply to the message it answers.
type Message struct {
	ID       uint      `gorm:"primaryKey"`
	Content  string    `gorm:"type:text;not null"`
	SentAt   time.Time `gorm:"not null;index"`
	ChatID   uint      `gorm:"not null;index"`
	UserID   uint      `gorm:"not null;index"`
	ParentID *uint     `gorm:"index"`
	Chat     *Chat     `gorm:"foreignKey:ChatID"`
	User     *User     `gorm:"foreignKey:UserID"`
	Replies  []Message `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
}

func (Message) TableName() string {
	return "messages"
}

// EtoD converts the row to the domain model. Relations that were not
// preloaded stay nil.
func (m *Message) EtoD() *model.Message {
	out := &model.Message{
		ID:       m.ID,
		Content:  m.Content,
		SentAt:   m.SentAt.UTC(),
		ChatID:   m.ChatID,
		UserID:   m.UserID,
		ParentID: m.ParentID,
	}
	if m.Chat != nil {
		out.Chat = m.Chat.EtoD()
	}
	if m.User != nil {
		out.User = m.User.EtoD()
	}
	if m.Replies != nil {
		out.Replies = messagesEtoD(m.Replies)
	}
	return out
}

// NewSchemaMessage creates a row from the domain model.
func NewSchemaMessage(m *model.Message) *Message {
	return &Message{
		ID:       m.ID,
		Content:  m.Content,
		SentAt:   m.SentAt,
		ChatID:   m.ChatID,
		UserID:   m.UserID,
		ParentID: m.ParentID,
	}
}

func messagesEtoD(rows []Message) []model.Message {
	out := make([]model.Message, len(rows))
	for i := range rows {
		out[i] = *rows[i].EtoD()
	}
	return out
}
