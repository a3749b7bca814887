package storage

import (
	"context"
	"fmt"

	"github.com/atelierhub/atelier-orders/internal/models"
)

const (
	InsertMessage = `INSERT INTO ORDER_MESSAGES (order_id, sender_id, message, is_internal, created_at)
					 VALUES ($1, $2, $3, $4, NOW());`
	// служебные заметки без отправителя (например, от воркера контроля сроков)
	InsertSystemMessage = `INSERT INTO ORDER_MESSAGES (order_id, sender_id, message, is_internal, created_at)
						   VALUES ($1, NULL, $2, $3, NOW());`
	GetMessagesByOrder = `SELECT m.id, m.order_id, m.sender_id, COALESCE(u.login, 'unknown'), m.message, m.is_internal, m.created_at
						  FROM ORDER_MESSAGES m
						  LEFT JOIN USERS u ON u.id = m.sender_id
						  WHERE m.order_id = $1 AND (m.is_internal = FALSE OR $2)
						  ORDER BY m.created_at;`
)

type MessageDatabase struct {
	DB *Database
}

// Создание хранилища
func NewMessagesStorage(db *Database) MessagesStorage {
	return &MessageDatabase{DB: db}
}

func (s *MessageDatabase) AddMessage(ctx context.Context, orderID int64, senderUUID *string, message string, isInternal bool) error {
	_, err := s.DB.Pool.Exec(ctx, InsertMessage, orderID, senderUUID, message, isInternal)
	if err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}
	return nil
}

// GetMessages - переписка по заказу в хронологическом порядке.
// Внутренние заметки выдаются только при includeInternal.
func (s *MessageDatabase) GetMessages(ctx context.Context, orderID int64, includeInternal bool) ([]models.MessageData, error) {
	var messages []models.MessageData
	rows, err := s.DB.Pool.Query(ctx, GetMessagesByOrder, orderID, includeInternal)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var message models.MessageData
		err := rows.Scan(
			&message.ID,
			&message.OrderID,
			&message.SenderUUID,
			&message.SenderLogin,
			&message.Message,
			&message.IsInternal,
			&message.CreatedAt,
		)
		if err != nil {
			return messages, fmt.Errorf("failed scan message data: %w", err)
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
