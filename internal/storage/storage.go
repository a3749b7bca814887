package storage

import (
	"context"
	"errors"

	"github.com/atelierhub/atelier-orders/internal/models"
)

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string, phone string) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
}

type OrdersStorage interface {
	AddOrder(ctx context.Context, customerUUID string, title string, items []models.OrderItemData) (int64, error)
	GetOrder(ctx context.Context, orderID int64) (*models.OrderData, error)
	GetUserOrders(ctx context.Context, customerUUID string) ([]models.OrderData, error)
	GetAllOrders(ctx context.Context) ([]models.OrderData, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItemData, error)
	UpdatePricing(ctx context.Context, orderID int64, totalPrice int64, depositAmount int64) error
	UpdateStatus(ctx context.Context, orderID int64, status string, actorUUID string, auditNote string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
	MarkOverdueOrders(ctx context.Context, limit int) ([]int64, error)
}

type MessagesStorage interface {
	AddMessage(ctx context.Context, orderID int64, senderUUID *string, message string, isInternal bool) error
	GetMessages(ctx context.Context, orderID int64, includeInternal bool) ([]models.MessageData, error)
}

type PaymentsStorage interface {
	AddPayment(ctx context.Context, payment models.PaymentData) (int64, error)
	GetPayments(ctx context.Context, orderID int64) ([]models.PaymentData, error)
}

type FilesStorage interface {
	AddFile(ctx context.Context, file models.FileData) (int64, error)
	GetFiles(ctx context.Context, orderID int64) ([]models.FileData, error)
}

type Storage struct {
	Users    UsersStorage
	Orders   OrdersStorage
	Messages MessagesStorage
	Payments PaymentsStorage
	Files    FilesStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:    NewUsersStorage(db),
		Orders:   NewOrdersStorage(db),
		Messages: NewMessagesStorage(db),
		Payments: NewPaymentsStorage(db),
		Files:    NewFilesStorage(db),
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")
)
