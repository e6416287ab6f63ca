package dto

// SendMessageRequest is the payload for sending a message
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required,gt=0"`
	Content    string `json:"content" binding:"required"`
}

// MarkReadResponse reports how many messages were marked read
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
