package entities

import (
	"time"

	"jan-server/services/chat-api/internal/domain/model"
)

// User is the persisted representation of a chat participant.
type User struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Date     time.Time `gorm:"not null"`
	Chats    []Chat    `gorm:"many2many:chat_members;constraint:OnDelete:CASCADE"`
	Messages []Message `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (User) TableName() string {
	return "users"
}

// EtoD converts the row to the domain model. Relations that were not
// preloaded stay nil.
func (u *User) EtoD() *model.User {
	out := &model.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Date:  u.Date.UTC(),
	}
	if u.Chats != nil {
		out.Chats = make([]model.Chat, len(u.Chats))
		for i := range u.Chats {
			out.Chats[i] = *u.Chats[i].EtoD()
		}
	}
	if u.Messages != nil {
		out.Messages = messagesEtoD(u.Messages)
	}
	return out
}

// NewSchemaUser creates a row from the domain model.
func NewSchemaUser(u *model.User) *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Date:  u.Date,
	}
}
