package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atelierhub/atelier-orders/internal/auth"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/atelierhub/atelier-orders/internal/validators"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrNoPermission = errors.New("no permission")
)

type StaffService interface {
	ListOrders(ctx context.Context, login string) ([]models.OrderData, error)
	GetOrderDetail(ctx context.Context, login string, orderID int64) (*models.StaffOrderDetail, error)
	SetPricing(ctx context.Context, login string, orderID int64, totalPrice int64, depositAmount int64) error
	ChangeStatus(ctx context.Context, login string, orderID int64, status string) error
	AddInternalNote(ctx context.Context, login string, orderID int64, text string) error
	RecordPayment(ctx context.Context, login string, orderID int64, request models.PaymentRequest) (int64, error)
	GetDashboard(ctx context.Context, login string) (*models.DashboardData, error)
}

type Staff struct {
	Users    storage.UsersStorage
	Orders   storage.OrdersStorage
	Messages storage.MessagesStorage
	Payments storage.PaymentsStorage
	Files    storage.FilesStorage
}

// Создание сервиса
func NewStaff(store storage.Storage) StaffService {
	return &Staff{
		Users:    store.Users,
		Orders:   store.Orders,
		Messages: store.Messages,
		Payments: store.Payments,
		Files:    store.Files,
	}
}

// requireCapability - общая проверка: сотрудник и нужное разрешение.
// Проверка идёт до любой бизнес-логики, при отказе ничего не меняется.
func (s *Staff) requireCapability(ctx context.Context, login string, capability auth.Capability) (*models.UserData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}
	if !auth.IsStaffRole(user) {
		logger.Warn("Not a staff user", login)
		return nil, ErrForbidden
	}
	if !auth.HasCapability(user, capability) {
		logger.Warn("Missing capability", login)
		return nil, ErrNoPermission
	}
	return user, nil
}

// ListOrders - все заказы мастерской, новые впереди
func (s *Staff) ListOrders(ctx context.Context, login string) ([]models.OrderData, error) {
	if _, err := s.requireCapability(ctx, login, auth.CapViewAllOrders); err != nil {
		return nil, err
	}
	return s.Orders.GetAllOrders(ctx)
}

// GetOrderDetail - заказ целиком, включая внутренние заметки,
// плюс вычисленные на момент чтения права вызывающего сотрудника
func (s *Staff) GetOrderDetail(ctx context.Context, login string, orderID int64) (*models.StaffOrderDetail, error) {
	user, err := s.requireCapability(ctx, login, auth.CapViewAllOrders)
	if err != nil {
		return nil, err
	}

	order, err := s.Orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := s.Orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	messages, err := s.Messages.GetMessages(ctx, orderID, true)
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

	return &models.StaffOrderDetail{
		OrderDetail: models.OrderDetail{
			Order:    *order,
			Items:    items,
			Messages: messages,
			Payments: payments,
			Files:    files,
		},
		CanSetPricing:    auth.HasCapability(user, auth.CapSetPricing),
		CanChangeStatus:  auth.HasCapability(user, auth.CapChangeOrderStatus),
		CanViewFinancial: auth.HasCapability(user, auth.CapViewFinancialReports),
	}, nil
}

// SetPricing - перезапись цены и предоплаты заказа, история не ведётся
func (s *Staff) SetPricing(ctx context.Context, login string, orderID int64, totalPrice int64, depositAmount int64) error {
	if _, err := s.requireCapability(ctx, login, auth.CapSetPricing); err != nil {
		return err
	}
	err := s.Orders.UpdatePricing(ctx, orderID, totalPrice, depositAmount)
	if errors.Is(err, storage.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// ChangeStatus - смена статуса заказа со служебной заметкой аудита.
// Статус и заметка пишутся атомарно: либо обе записи, либо ни одной.
func (s *Staff) ChangeStatus(ctx context.Context, login string, orderID int64, status string) error {
	user, err := s.requireCapability(ctx, login, auth.CapChangeOrderStatus)
	if err != nil {
		return err
	}
	auditNote := fmt.Sprintf("Status changed to: %s", models.OrderStatusLabel(status))
	err = s.Orders.UpdateStatus(ctx, orderID, status, user.UserUUID, auditNote)
	if errors.Is(err, storage.ErrOrderNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// AddInternalNote - внутренняя заметка сотрудника, клиенту не видна
func (s *Staff) AddInternalNote(ctx context.Context, login string, orderID int64, text string) error {
	user, err := s.requireCapability(ctx, login, auth.CapViewAllOrders)
	if err != nil {
		return err
	}
	if _, err := s.Orders.GetOrder(ctx, orderID); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.Messages.AddMessage(ctx, orderID, &user.UserUUID, text, true)
}

// RecordPayment - запись в журнал платежей.
// paid_at выставляется только если платёж регистрируется сразу оплаченным.
func (s *Staff) RecordPayment(ctx context.Context, login string, orderID int64, request models.PaymentRequest) (int64, error) {
	if _, err := s.requireCapability(ctx, login, auth.CapViewFinancialReports); err != nil {
		return 0, err
	}
	if _, err := s.Orders.GetOrder(ctx, orderID); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return 0, ErrOrderNotFound
		}
		return 0, err
	}

	method := validators.TruncateField(request.Method, validators.MaxMethodLength)
	if method == "" {
		method = "card"
	}

	var paidAt *time.Time
	if request.Status == models.PaymentStatusPaid {
		now := time.Now()
		paidAt = &now
	}

	return s.Payments.AddPayment(ctx, models.PaymentData{
		OrderID: orderID,
		Amount:  request.Amount,
		Method:  method,
		Status:  request.Status,
		RefCode: strings.TrimSpace(request.RefCode),
		PaidAt:  paidAt,
	})
}

// GetDashboard - счётчики заказов по статусам для панели сотрудника
func (s *Staff) GetDashboard(ctx context.Context, login string) (*models.DashboardData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}
	if !auth.IsStaffRole(user) {
		return nil, ErrForbidden
	}

	counts, err := s.Orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	// на панели всегда ровно шесть нетерминальных статусов, пустые с нулём
	stats := make(map[string]int, len(models.ActiveOrderStatuses()))
	for _, status := range models.ActiveOrderStatuses() {
		stats[status] = counts[status]
	}
	return &models.DashboardData{
		StatusCounts:     stats,
		CanSetPricing:    auth.HasCapability(user, auth.CapSetPricing),
		CanChangeStatus:  auth.HasCapability(user, auth.CapChangeOrderStatus),
		CanViewFinancial: auth.HasCapability(user, auth.CapViewFinancialReports),
	}, nil
}
