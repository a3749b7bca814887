package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atelierhub/atelier-orders/internal/helpers"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/services"
	"github.com/atelierhub/atelier-orders/internal/validators"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// orderIDParam - идентификатор заказа из пути запроса
func orderIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// MyOrdersHandler — список заказов текущего пользователя
func MyOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		orders, err := s.GetUserOrders(r.Context(), login)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		JSONResponse(w, map[string]interface{}{
			"orders": toOrderResponses(orders, false),
		})
	})
}

// CreateOrderHandler — создание заказа с позициями
func CreateOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		login, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			JSONError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		var request models.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			JSONError(w, "Invalid JSON payload.", http.StatusBadRequest)
			return
		}

		// проверка входных данных до обращения к хранилищу
		if err := validators.CheckTitle(strings.TrimSpace(request.Title)); err != nil {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := validators.CheckItems(request.Items); err != nil {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		orderID, err := s.CreateOrder(r.Context(), login, request)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		logger.Info("Order created", "order_id", orderID, "customer", login)
		JSONResponse(w, map[string]interface{}{
			"order_id": orderID,
		})
	})
}

// OrderDetailHandler — заказ пользователя с позициями, перепиской и платежами.
// Внутренние заметки в выдачу не попадают.
func OrderDetailHandler(s services.OrdersService) http.HandlerFunc {
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
			"order":    toOrderResponse(detail.Order, false),
			"items":    toItemResponses(detail.Items),
			"messages": toMessageResponses(detail.Messages),
			"payments": toPaymentResponses(detail.Payments),
			"files":    toFileResponses(detail.Files),
		})
	})
}

// AddMessageHandler — сообщение пользователя в переписку по своему заказу
func AddMessageHandler(s services.OrdersService) http.HandlerFunc {
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

		if err := s.AddMessage(r.Context(), login, orderID, text); err != nil {
			HandleServiceError(w, err)
			return
		}
		JSONResponse(w, map[string]interface{}{})
	})
}

// UploadFileHandler — загрузка вложения к своему заказу.
// Файл проходит проверку расширения и размера до записи на диск.
func UploadFileHandler(s services.OrdersService, uploadDir string) http.HandlerFunc {
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

		if err := r.ParseMultipartForm(validators.MaxUploadSizeBytes); err != nil {
			logger.Warn("Invalid multipart form:", zap.Error(err))
			JSONError(w, "Invalid upload.", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			JSONError(w, "file required", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				logger.Error("Error to close upload:", zap.Error(err))
			}
		}()

		if err := validators.CheckUpload(header.Filename, header.Size); err != nil {
			JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		fileType := r.FormValue("type")
		storageKey, err := s.AttachFile(r.Context(), login, orderID, header.Filename, header.Size, fileType)
		if err != nil {
			HandleServiceError(w, err)
			return
		}

		if err := saveUpload(file, uploadDir, storageKey); err != nil {
			logger.Error("Failed to save upload:", zap.Error(err))
			JSONError(w, "Server error", http.StatusInternalServerError)
			return
		}

		logger.Info("File attached", "order_id", orderID, "key", storageKey)
		JSONResponse(w, map[string]interface{}{})
	})
}

func saveUpload(src io.Reader, uploadDir string, storageKey string) error {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(uploadDir, storageKey))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
