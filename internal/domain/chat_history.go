package domain

import "time"

// ChatHistory is a single persisted chat message owned by a user.
// IsUser distinguishes the user's own messages from assistant replies.
type ChatHistory struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"not null"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
}
