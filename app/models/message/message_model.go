// Package message holds the public guestbook entries.
package message

import (
	"casamento/app/models"
)

// Message is one guestbook entry. There is no moderation workflow; what is
// posted is shown.
type Message struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(100)" json:"name"`
	Content string `gorm:"type:text" json:"content"`
	Email   string `gorm:"type:varchar(255)" json:"email,omitempty"`

	models.CommonTimestampsField
}

// TableName sets the table name.
func (Message) TableName() string {
	return "messages"
}
