package models

import "time"

// Статусы платежа
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// paymentStatusLabels - отображаемые названия статусов платежа
var paymentStatusLabels = map[string]string{
	PaymentStatusPending:  "Pending",
	PaymentStatusPaid:     "Paid",
	PaymentStatusFailed:   "Failed",
	PaymentStatusRefunded: "Refunded",
}

// ValidPaymentStatus проверяет, что строка является одним из статусов платежа
func ValidPaymentStatus(status string) bool {
	_, ok := paymentStatusLabels[status]
	return ok
}

// PaymentStatusLabel возвращает отображаемое название статуса платежа
func PaymentStatusLabel(status string) string {
	if label, ok := paymentStatusLabels[status]; ok {
		return label
	}
	return status
}

// PaymentData - запись журнала платежей по заказу (только добавление)
type PaymentData struct {
	ID        int64
	OrderID   int64
	Amount    int64
	Method    string
	Status    string
	RefCode   string
	PaidAt    *time.Time
	CreatedAt time.Time
}

// PaymentRequest - запрос на регистрацию платежа, приходит извне
type PaymentRequest struct {
	Amount  int64  `json:"amount"`
	Method  string `json:"method"`
	Status  string `json:"status"`
	RefCode string `json:"ref_code"`
}

// PaymentResponse - платеж для выдачи
type PaymentResponse struct {
	ID          int64  `json:"id"`
	Amount      int64  `json:"amount"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	CreatedAt   string `json:"created_at"`
}
