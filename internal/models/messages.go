package models

import "time"

// MessageData - модель сообщения в переписке по заказу
type MessageData struct {
	ID          int64
	OrderID     int64
	SenderUUID  *string
	SenderLogin string
	Message     string
	IsInternal  bool
	CreatedAt   time.Time
}

// MessageRequest - текст сообщения, приходит извне
type MessageRequest struct {
	Message string `json:"message"`
}

// MessageResponse - сообщение для выдачи
type MessageResponse struct {
	ID         int64  `json:"id"`
	Sender     string `json:"sender"`
	Message    string `json:"message"`
	IsInternal bool   `json:"is_internal"`
	CreatedAt  string `json:"created_at"`
}
