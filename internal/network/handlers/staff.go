package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/atelierhub/atelier-orders/internal/helpers"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/services"
	"github.com/atelierhub/atelier-orders/internal/validators"
	"go.uber.org/zap"
)

// StaffOrdersHandler — все заказы мастерской (требует view_all_orders)
func StaffOrdersHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orders, err := s.ListOrders(r.Context(), login)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		JSONResponse(w, map[string]interface{}{
			"orders": toOrderResponses(orders, true),
		})
	})
}

// StaffOrderDetailHandler — заказ целиком, включая внутренние заметки
// и вычисленные права вызывающего сотрудника
func StaffOrderDetailHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID, err := orderIDParam(r)
		if err != nil {
			JSONError(w, "invalid order id", http.StatusBadRequest)
			return
		}

		detail, err := s.GetOrderDetail(r.Context(), login, orderID)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		JSONResponse(w, map[string]interface{}{
			"order":              toOrderResponse(detail.Order, true),
			"items":              toItemResponses(detail.Items),
			"messages":           toMessageResponses(detail.Messages),
			"payments":           toPaymentResponses(detail.Payments),
			"files":              toFileResponses(detail.Files),
			"can_set_pricing":    detail.CanSetPricing,
			"can_change_status":  detail.CanChangeStatus,
			"can_view_financial": detail.CanViewFinancial,
		})
	})
}

// StaffSetPricingHandler — установка цены заказа (требует set_pricing)
func StaffSetPricingHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID, err := orderIDParam(r)
		if err != nil {
			JSONError(w, "invalid order id", http.StatusBadRequest)
			return
		}
		var request models.PricingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			JSONError(w, "Invalid JSON payload.", http.StatusBadRequest)
			return
		}

		if err := validators.CheckPricing(request.TotalPrice, request.DepositAmount); err != nil {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.SetPricing(r.Context(), login, orderID, request.TotalPrice, request.DepositAmount); err != nil {
			HandleServiceError(w, err)
			return
		}
		JSONResponse(w, map[string]interface{}{})
	})
}

// StaffChangeStatusHandler — смена статуса заказа (требует change_order_status)
func StaffChangeStatusHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID, err := orderIDParam(r)
		if err != nil {
			JSONError(w, "invalid order id", http.StatusBadRequest)
			return
		}
		var request models.StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			JSONError(w, "Invalid JSON payload.", http.StatusBadRequest)
			return
		}

		status := strings.TrimSpace(request.Status)
		if !models.ValidOrderStatus(status) {
			JSONError(w, "invalid status", http.StatusBadRequest)
			return
		}

		if err := s.ChangeStatus(r.Context(), login, orderID, status); err != nil {
			HandleServiceError(w, err)
			return
		}

		logger.Info("Order status changed", "order_id", orderID, "status", status, "actor", login)
		JSONResponse(w, map[string]interface{}{})
	})
}

// StaffAddNoteHandler — внутренняя заметка сотрудника (требует view_all_orders)
func StaffAddNoteHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID, err := orderIDParam(r)
		if err != nil {
			JSONError(w, "invalid order id", http.StatusBadRequest)
			return
		}
		var request models.MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			JSONError(w, "Invalid JSON payload.", http.StatusBadRequest)
			return
		}

		text := strings.TrimSpace(request.Message)
		if err := validators.CheckMessage(text); err != nil {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.AddInternalNote(r.Context(), login, orderID, text); err != nil {
			HandleServiceError(w, err)
			return
		}
		JSONResponse(w, map[string]interface{}{})
	})
}

// StaffAddPaymentHandler — запись платежа в журнал (требует view_financial_reports)
func StaffAddPaymentHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orderID, err := orderIDParam(r)
		if err != nil {
			JSONError(w, "invalid order id", http.StatusBadRequest)
			return
		}
		var request models.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			JSONError(w, "Invalid JSON payload.", http.StatusBadRequest)
			return
		}

		if request.Status == "" {
			request.Status = models.PaymentStatusPaid
		}
		if err := validators.CheckPayment(request); err != nil {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		paymentID, err := s.RecordPayment(r.Context(), login, orderID, request)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		logger.Info("Payment recorded", "order_id", orderID, "payment_id", paymentID)
		JSONResponse(w, map[string]interface{}{
			"payment_id": paymentID,
		})
	})
}

// StaffDashboardHandler — счётчики заказов по статусам для панели сотрудника
func StaffDashboardHandler(s services.StaffService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		dashboard, err := s.GetDashboard(r.Context(), login)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		JSONResponse(w, map[string]interface{}{
			"stats": dashboard.StatusCounts,
			"perms": map[string]bool{
				"set_pricing":            dashboard.CanSetPricing,
				"change_order_status":    dashboard.CanChangeStatus,
				"view_financial_reports": dashboard.CanViewFinancial,
			},
		})
	})
}
