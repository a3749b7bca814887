package handlers

import (
	"time"

	"github.com/atelierhub/atelier-orders/internal/models"
)

// toOrderResponse - заказ для выдачи; логин клиента только для сотрудников
func toOrderResponse(order models.OrderData, withCustomer bool) models.OrderResponse {
	response := models.OrderResponse{
		ID:            order.ID,
		Title:         order.Title,
		Status:        order.Status,
		StatusLabel:   models.OrderStatusLabel(order.Status),
		TotalPrice:    order.TotalPrice,
		DepositAmount: order.DepositAmount,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
	if withCustomer {
		response.Customer = order.CustomerLogin
	}
	return response
}

func toOrderResponses(orders []models.OrderData, withCustomer bool) []models.OrderResponse {
	responses := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order, withCustomer))
	}
	return responses
}

func toItemResponses(items []models.OrderItemData) []models.OrderItemResponse {
	responses := make([]models.OrderItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, models.OrderItemResponse{
			ID:          item.ID,
			ProductType: item.ProductType,
			Qty:         item.Qty,
			SizeRange:   item.SizeRange,
			FabricType:  item.FabricType,
			Notes:       item.Notes,
		})
	}
	return responses
}

// toMessageResponses - переписка для выдачи.
// Флаг is_internal присутствует всегда; у клиента внутренние заметки
// отфильтрованы ещё на выборке, поэтому там он всегда false.
func toMessageResponses(messages []models.MessageData) []models.MessageResponse {
	responses := make([]models.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, models.MessageResponse{
			ID:         message.ID,
			Sender:     message.SenderLogin,
			Message:    message.Message,
			IsInternal: message.IsInternal,
			CreatedAt:  message.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses
}

func toPaymentResponses(payments []models.PaymentData) []models.PaymentResponse {
	responses := make([]models.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, models.PaymentResponse{
			ID:          payment.ID,
			Amount:      payment.Amount,
			Method:      payment.Method,
			Status:      payment.Status,
			StatusLabel: models.PaymentStatusLabel(payment.Status),
			CreatedAt:   payment.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses
}

func toFileResponses(files []models.FileData) []models.FileResponse {
	responses := make([]models.FileResponse, 0, len(files))
	for _, file := range files {
		responses = append(responses, models.FileResponse{
			ID:        file.ID,
			FileName:  file.FileName,
			FileType:  file.FileType,
			Size:      file.Size,
			CreatedAt: file.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses
}
