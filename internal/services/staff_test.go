package services

import (
	"context"
	"testing"
	"time"

	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func staffUser(uuid string, login string, groups ...models.GroupData) *models.UserData {
	return &models.UserData{UserUUID: uuid, Login: login, Groups: groups}
}

var (
	managerGroup = models.GroupData{
		Name: "Workshop Manager",
		Capabilities: []string{
			"view_all_orders", "change_order_status", "set_pricing", "view_financial_reports",
		},
	}
	operatorGroup = models.GroupData{
		Name:         "Order Operator",
		Capabilities: []string{"view_all_orders", "change_order_status"},
	}
	accountantGroup = models.GroupData{
		Name:         "Accountant",
		Capabilities: []string{"view_all_orders", "view_financial_reports"},
	}
)

func TestStaffService_ChangeStatus(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, _, _, _ := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	staff := NewStaff(store)

	testCases := []struct {
		TestName      string
		Login         string
		Status        string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Customer is not staff #1",
			Login:    "customer",
			Status:   models.OrderStatusConfirmed,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "customer").Return(staffUser("9", "customer"), nil)
			},
			ExpectedError: ErrForbidden,
		},
		{
			TestName: "Error. Accountant cannot change status #2",
			Login:    "accountant",
			Status:   models.OrderStatusConfirmed,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "accountant").Return(staffUser("8", "accountant", accountantGroup), nil)
			},
			ExpectedError: ErrNoPermission,
		},
		{
			TestName: "Error. Order not found #3",
			Login:    "operator",
			Status:   models.OrderStatusConfirmed,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "operator").Return(staffUser("2", "operator", operatorGroup), nil)
				mockOrders.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.OrderStatusConfirmed, "2", "Status changed to: Confirmed").Return(storage.ErrOrderNotFound)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			TestName: "Success. Audit note carries the status label #4",
			Login:    "operator",
			Status:   models.OrderStatusProduction,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "operator").Return(staffUser("2", "operator", operatorGroup), nil)
				mockOrders.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.OrderStatusProduction, "2", "Status changed to: In production").Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := staff.ChangeStatus(ctx, tc.Login, 5, tc.Status)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestStaffService_SetPricing(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, _, _, _ := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	staff := NewStaff(store)

	testCases := []struct {
		TestName      string
		Login         string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Operator cannot set pricing #1",
			Login:    "operator",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "operator").Return(staffUser("2", "operator", operatorGroup), nil)
			},
			ExpectedError: ErrNoPermission,
		},
		{
			TestName: "Success. Manager overwrites pricing #2",
			Login:    "manager",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "manager").Return(staffUser("1", "manager", managerGroup), nil)
				mockOrders.EXPECT().UpdatePricing(gomock.Any(), int64(5), int64(150000), int64(50000)).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := staff.SetPricing(ctx, tc.Login, 5, 150000, 50000)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestStaffService_RecordPayment(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, _, mockPayments, _ := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	staff := NewStaff(store)

	order := &models.OrderData{ID: 5, CustomerUUID: "9", Status: models.OrderStatusConfirmed}

	testCases := []struct {
		TestName      string
		Login         string
		Request       models.PaymentRequest
		SetupMocks    func()
		ExpectedID    int64
		ExpectedError error
	}{
		{
			TestName: "Error. Operator cannot record payments #1",
			Login:    "operator",
			Request:  models.PaymentRequest{Amount: 100, Status: models.PaymentStatusPaid},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "operator").Return(staffUser("2", "operator", operatorGroup), nil)
			},
			ExpectedError: ErrNoPermission,
		},
		{
			TestName: "Success. Paid payment gets a timestamp #2",
			Login:    "accountant",
			Request:  models.PaymentRequest{Amount: 50000, Method: "cash", Status: models.PaymentStatusPaid, RefCode: " RC-1 "},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "accountant").Return(staffUser("8", "accountant", accountantGroup), nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(order, nil)
				mockPayments.EXPECT().AddPayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payment models.PaymentData) (int64, error) {
						if payment.PaidAt == nil {
							t.Errorf("Expected paid_at to be set for paid payment")
						}
						if payment.Method != "cash" {
							t.Errorf("Expected method 'cash', got %q", payment.Method)
						}
						if payment.RefCode != "RC-1" {
							t.Errorf("Expected trimmed ref code 'RC-1', got %q", payment.RefCode)
						}
						return int64(3), nil
					})
			},
			ExpectedID:    3,
			ExpectedError: nil,
		},
		{
			TestName: "Success. Pending payment has no timestamp and default method #3",
			Login:    "accountant",
			Request:  models.PaymentRequest{Amount: 100000, Status: models.PaymentStatusPending},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "accountant").Return(staffUser("8", "accountant", accountantGroup), nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(order, nil)
				mockPayments.EXPECT().AddPayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payment models.PaymentData) (int64, error) {
						if payment.PaidAt != nil {
							t.Errorf("Expected paid_at to stay empty for pending payment")
						}
						if payment.Method != "card" {
							t.Errorf("Expected default method 'card', got %q", payment.Method)
						}
						return int64(4), nil
					})
			},
			ExpectedID:    4,
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			paymentID, err := staff.RecordPayment(ctx, tc.Login, 5, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if paymentID != tc.ExpectedID {
				t.Errorf("Expected payment id %d, got %d", tc.ExpectedID, paymentID)
			}
		})
	}
}

func TestStaffService_GetDashboard(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, _, _, _ := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	staff := NewStaff(store)

	counts := map[string]int{"new": 2, "production": 1}
	zeroFilled := map[string]int{
		"new":        2,
		"review":     0,
		"quoted":     0,
		"confirmed":  0,
		"production": 1,
		"ready":      0,
	}

	testCases := []struct {
		TestName      string
		Login         string
		SetupMocks    func()
		ExpectedData  *models.DashboardData
		ExpectedError error
	}{
		{
			TestName: "Error. Customer has no dashboard #1",
			Login:    "customer",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "customer").Return(staffUser("9", "customer"), nil)
			},
			ExpectedError: ErrForbidden,
		},
		{
			TestName: "Success. Operator sees zero-filled counts without financial flag #2",
			Login:    "operator",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "operator").Return(staffUser("2", "operator", operatorGroup), nil)
				mockOrders.EXPECT().CountByStatus(gomock.Any()).Return(counts, nil)
			},
			ExpectedData: &models.DashboardData{
				StatusCounts:    zeroFilled,
				CanChangeStatus: true,
			},
			ExpectedError: nil,
		},
		{
			TestName: "Success. Terminal statuses never reach the panel #3",
			Login:    "manager",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "manager").Return(staffUser("1", "manager", managerGroup), nil)
				mockOrders.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int{
					"new":       2,
					"delivered": 5,
					"canceled":  3,
				}, nil)
			},
			ExpectedData: &models.DashboardData{
				StatusCounts: map[string]int{
					"new":        2,
					"review":     0,
					"quoted":     0,
					"confirmed":  0,
					"production": 0,
					"ready":      0,
				},
				CanSetPricing:    true,
				CanChangeStatus:  true,
				CanViewFinancial: true,
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			data, err := staff.GetDashboard(ctx, tc.Login)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedData, data)
			if len(diff) != 0 {
				t.Errorf("expected dashboard mismatch:\n %s", diff)
			}
		})
	}
}

func TestStaffService_GetOrderDetail(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, mockMessages, mockPayments, mockFiles := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	staff := NewStaff(store)

	order := &models.OrderData{ID: 5, CustomerUUID: "9", CustomerLogin: "mda", Status: models.OrderStatusReview}

	mockUsers.EXPECT().GetUser(gomock.Any(), "operator").Return(staffUser("2", "operator", operatorGroup), nil)
	mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(order, nil)
	mockOrders.EXPECT().GetOrderItems(gomock.Any(), int64(5)).Return(nil, nil)
	mockMessages.EXPECT().GetMessages(gomock.Any(), int64(5), true).Return([]models.MessageData{
		{ID: 1, OrderID: 5, SenderLogin: "operator", Message: "fabric ordered", IsInternal: true},
	}, nil)
	mockPayments.EXPECT().GetPayments(gomock.Any(), int64(5)).Return(nil, nil)
	mockFiles.EXPECT().GetFiles(gomock.Any(), int64(5)).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	detail, err := staff.GetOrderDetail(ctx, "operator", 5)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if !detail.CanChangeStatus {
		t.Errorf("Expected can_change_status for operator")
	}
	if detail.CanSetPricing || detail.CanViewFinancial {
		t.Errorf("Expected pricing and financial flags to stay off for operator")
	}
	if len(detail.Messages) != 1 || !detail.Messages[0].IsInternal {
		t.Errorf("Expected the internal note to be included for staff")
	}
}
