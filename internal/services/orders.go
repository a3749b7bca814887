package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/atelierhub/atelier-orders/internal/validators"
	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

type OrdersService interface {
	GetUserOrders(ctx context.Context, login string) ([]models.OrderData, error)
	CreateOrder(ctx context.Context, login string, request models.CreateOrderRequest) (int64, error)
	GetOrderDetail(ctx context.Context, login string, orderID int64) (*models.OrderDetail, error)
	AddMessage(ctx context.Context, login string, orderID int64, text string) error
	AttachFile(ctx context.Context, login string, orderID int64, fileName string, size int64, fileType string) (string, error)
	MarkOverdueOrders(ctx context.Context, limit int) ([]int64, error)
}

type Orders struct {
	Users    storage.UsersStorage
	Orders   storage.OrdersStorage
	Messages storage.MessagesStorage
	Payments storage.PaymentsStorage
	Files    storage.FilesStorage
}

// Создание сервиса
func NewOrders(store storage.Storage) OrdersService {
	return &Orders{
		Users:    store.Users,
		Orders:   store.Orders,
		Messages: store.Messages,
		Payments: store.Payments,
		Files:    store.Files,
	}
}

// GetUserOrders - список заказов пользователя, новые впереди
func (s *Orders) GetUserOrders(ctx context.Context, login string) ([]models.OrderData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}
	return s.Orders.GetUserOrders(ctx, user.UserUUID)
}

// CreateOrder - создание заказа с позициями одной транзакцией.
// Владелец всегда берётся из токена, подменить его запросом нельзя.
func (s *Orders) CreateOrder(ctx context.Context, login string, request models.CreateOrderRequest) (int64, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return 0, err
	}

	items := make([]models.OrderItemData, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, models.OrderItemData{
			ProductType: validators.TruncateField(item.ProductType, 80),
			Qty:         item.Qty,
			SizeRange:   validators.TruncateField(item.SizeRange, 120),
			FabricType:  validators.TruncateField(item.FabricType, 120),
			Notes:       strings.TrimSpace(item.Notes),
		})
	}

	return s.Orders.AddOrder(ctx, user.UserUUID, strings.TrimSpace(request.Title), items)
}

// getOwnOrder - заказ по идентификатору, только для владельца.
// Чужой заказ неотличим от несуществующего, чтобы не раскрывать его наличие.
func (s *Orders) getOwnOrder(ctx context.Context, login string, orderID int64) (*models.OrderData, *models.UserData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, nil, err
	}
	order, err := s.Orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, err
	}
	if order.CustomerUUID != user.UserUUID {
		return nil, nil, ErrOrderNotFound
	}
	return order, user, nil
}

// GetOrderDetail - заказ с позициями, перепиской (без внутренних заметок),
// журналом платежей и вложениями
func (s *Orders) GetOrderDetail(ctx context.Context, login string, orderID int64) (*models.OrderDetail, error) {
	order, _, err := s.getOwnOrder(ctx, login, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.Orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	messages, err := s.Messages.GetMessages(ctx, orderID, false)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.GetPayments(ctx, orderID)
	if err != nil {
		return nil, err
	}
	files, err := s.Files.GetFiles(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &models.OrderDetail{
		Order:    *order,
		Items:    items,
		Messages: messages,
		Payments: payments,
		Files:    files,
	}, nil
}

// AddMessage - сообщение пользователя в переписку по своему заказу
func (s *Orders) AddMessage(ctx context.Context, login string, orderID int64, text string) error {
	_, user, err := s.getOwnOrder(ctx, login, orderID)
	if err != nil {
		return err
	}
	return s.Messages.AddMessage(ctx, orderID, &user.UserUUID, text, false)
}

// AttachFile - регистрация вложения к своему заказу.
// Возвращает ключ, под которым содержимое кладётся в каталог вложений.
func (s *Orders) AttachFile(ctx context.Context, login string, orderID int64, fileName string, size int64, fileType string) (string, error) {
	_, user, err := s.getOwnOrder(ctx, login, orderID)
	if err != nil {
		return "", err
	}

	if !models.ValidFileType(fileType) {
		fileType = models.FileTypeOther
	}
	storageKey := uuid.New().String() + strings.ToLower(filepath.Ext(fileName))

	_, err = s.Files.AddFile(ctx, models.FileData{
		OrderID:      orderID,
		UploaderUUID: &user.UserUUID,
		FileName:     fileName,
		StorageKey:   storageKey,
		FileType:     fileType,
		Size:         size,
	})
	if err != nil {
		return "", err
	}
	return storageKey, nil
}

// MarkOverdueOrders - пачка просроченных заказов для воркера контроля сроков
func (s *Orders) MarkOverdueOrders(ctx context.Context, limit int) ([]int64, error) {
	return s.Orders.MarkOverdueOrders(ctx, limit)
}
