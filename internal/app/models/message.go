package models

import "time"

// Message represents directed text between two users. Immutable once
// created except for the read flag.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	Read       bool      `json:"read" db:"read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Conversation summarizes the exchange with a single counterpart
type Conversation struct {
	Counterpart *User    `json:"counterpart"`
	LastMessage *Message `json:"lastMessage"`
	UnreadCount int      `json:"unreadCount"`
}
