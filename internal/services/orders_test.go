package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/atelierhub/atelier-orders/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func newOrdersMocks(t *testing.T) (*gomock.Controller, storage.Storage, *mocks.MockUsersStorage, *mocks.MockOrdersStorage, *mocks.MockMessagesStorage, *mocks.MockPaymentsStorage, *mocks.MockFilesStorage) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersStorage(ctrl)
	orders := mocks.NewMockOrdersStorage(ctrl)
	messages := mocks.NewMockMessagesStorage(ctrl)
	payments := mocks.NewMockPaymentsStorage(ctrl)
	files := mocks.NewMockFilesStorage(ctrl)
	store := storage.Storage{
		Users:    users,
		Orders:   orders,
		Messages: messages,
		Payments: payments,
		Files:    files,
	}
	return ctrl, store, users, orders, messages, payments, files
}

func TestOrdersService_CreateOrder(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, _, _, _ := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(store)

	testCases := []struct {
		TestName      string
		Login         string
		Request       models.CreateOrderRequest
		SetupMocks    func()
		ExpectedID    int64
		ExpectedError error
	}{
		{
			TestName: "Error. User not found #1",
			Login:    "mda",
			Request:  models.CreateOrderRequest{Title: "Uniform batch"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			TestName: "Error. Add order failure #2",
			Login:    "mda",
			Request:  models.CreateOrderRequest{Title: "Uniform batch"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserUUID: "1", Login: "mda"}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), "1", "Uniform batch", gomock.Any()).Return(int64(0), errors.New("failed to add order"))
			},
			ExpectedError: errors.New("failed to add order"),
		},
		{
			TestName: "Success. Title trimmed, item fields truncated #3",
			Login:    "mda",
			Request: models.CreateOrderRequest{
				Title: "  Uniform batch  ",
				Items: []models.OrderItemRequest{
					{ProductType: " shirt ", Qty: 50, SizeRange: "M-XL", FabricType: "cotton", Notes: " urgent "},
				},
			},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserUUID: "1", Login: "mda"}, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), "1", "Uniform batch", []models.OrderItemData{
					{ProductType: "shirt", Qty: 50, SizeRange: "M-XL", FabricType: "cotton", Notes: "urgent"},
				}).Return(int64(7), nil)
			},
			ExpectedID:    7,
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			orderID, err := orders.CreateOrder(ctx, tc.Login, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			if orderID != tc.ExpectedID {
				t.Errorf("Expected order id %d, got %d", tc.ExpectedID, orderID)
			}
		})
	}
}

func TestOrdersService_GetOrderDetail(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, mockMessages, mockPayments, mockFiles := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(store)

	owner := &models.UserData{UserUUID: "1", Login: "mda"}
	ownOrder := &models.OrderData{ID: 5, CustomerUUID: "1", Title: "Uniform batch", Status: models.OrderStatusNew}

	testCases := []struct {
		TestName       string
		Login          string
		OrderID        int64
		SetupMocks     func()
		ExpectedError  error
		ExpectedDetail *models.OrderDetail
	}{
		{
			TestName: "Error. Order not found #1",
			Login:    "mda",
			OrderID:  5,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(owner, nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(nil, storage.ErrOrderNotFound)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			TestName: "Error. Foreign order is indistinguishable from missing #2",
			Login:    "mda",
			OrderID:  5,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(owner, nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(&models.OrderData{ID: 5, CustomerUUID: "2"}, nil)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			TestName: "Success. Internal notes are not requested #3",
			Login:    "mda",
			OrderID:  5,
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(owner, nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(ownOrder, nil)
				mockOrders.EXPECT().GetOrderItems(gomock.Any(), int64(5)).Return([]models.OrderItemData{
					{ID: 1, OrderID: 5, ProductType: "shirt", Qty: 50},
				}, nil)
				mockMessages.EXPECT().GetMessages(gomock.Any(), int64(5), false).Return([]models.MessageData{
					{ID: 1, OrderID: 5, SenderLogin: "mda", Message: "hello"},
				}, nil)
				mockPayments.EXPECT().GetPayments(gomock.Any(), int64(5)).Return(nil, nil)
				mockFiles.EXPECT().GetFiles(gomock.Any(), int64(5)).Return(nil, nil)
			},
			ExpectedError: nil,
			ExpectedDetail: &models.OrderDetail{
				Order: *ownOrder,
				Items: []models.OrderItemData{
					{ID: 1, OrderID: 5, ProductType: "shirt", Qty: 50},
				},
				Messages: []models.MessageData{
					{ID: 1, OrderID: 5, SenderLogin: "mda", Message: "hello"},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			detail, err := orders.GetOrderDetail(ctx, tc.Login, tc.OrderID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedDetail, detail)
			if len(diff) != 0 {
				t.Errorf("expected detail mismatch:\n %s", diff)
			}
		})
	}
}

func TestOrdersService_AddMessage(t *testing.T) {
	ctrl, store, mockUsers, mockOrders, mockMessages, _, _ := newOrdersMocks(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(store)

	owner := &models.UserData{UserUUID: "1", Login: "mda"}
	senderUUID := "1"

	testCases := []struct {
		TestName      string
		Login         string
		OrderID       int64
		Text          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Foreign order #1",
			Login:    "mda",
			OrderID:  5,
			Text:     "hello",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(owner, nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(&models.OrderData{ID: 5, CustomerUUID: "2"}, nil)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			TestName: "Success. Message is never internal #2",
			Login:    "mda",
			OrderID:  5,
			Text:     "hello",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(owner, nil)
				mockOrders.EXPECT().GetOrder(gomock.Any(), int64(5)).Return(&models.OrderData{ID: 5, CustomerUUID: "1"}, nil)
				mockMessages.EXPECT().AddMessage(gomock.Any(), int64(5), &senderUUID, "hello", false).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := orders.AddMessage(ctx, tc.Login, tc.OrderID, tc.Text)

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
