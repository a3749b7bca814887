package models

import "time"

// Статусы жизненного цикла заказа
const (
	OrderStatusNew        = "new"
	OrderStatusReview     = "review"
	OrderStatusQuoted     = "quoted"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProduction = "production"
	OrderStatusReady      = "ready"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
)

// orderStatusLabels - отображаемые названия статусов
var orderStatusLabels = map[string]string{
	OrderStatusNew:        "New",
	OrderStatusReview:     "In review",
	OrderStatusQuoted:     "Quote issued",
	OrderStatusConfirmed:  "Confirmed",
	OrderStatusProduction: "In production",
	OrderStatusReady:      "Ready for delivery",
	OrderStatusDelivered:  "Delivered",
	OrderStatusCanceled:   "Canceled",
}

// ValidOrderStatus проверяет, что строка является одним из статусов заказа
func ValidOrderStatus(status string) bool {
	_, ok := orderStatusLabels[status]
	return ok
}

// OrderStatusLabel возвращает отображаемое название статуса
func OrderStatusLabel(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return status
}

// TerminalOrderStatus - статус, из которого заказ больше не движется
func TerminalOrderStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCanceled
}

// ActiveOrderStatuses - нетерминальные статусы в порядке жизненного цикла
func ActiveOrderStatuses() []string {
	return []string{
		OrderStatusNew,
		OrderStatusReview,
		OrderStatusQuoted,
		OrderStatusConfirmed,
		OrderStatusProduction,
		OrderStatusReady,
	}
}

// OrderData - модель заказа из хранилища
type OrderData struct {
	ID            int64
	CustomerUUID  string
	CustomerLogin string
	Title         string
	Status        string
	DeadlineDate  *time.Time
	TotalPrice    int64
	DepositAmount int64
	AssignedUUID  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItemData - модель позиции заказа
type OrderItemData struct {
	ID          int64
	OrderID     int64
	ProductType string
	Qty         int
	SizeRange   string
	FabricType  string
	Notes       string
}

// OrderItemRequest - позиция заказа в запросе на создание
type OrderItemRequest struct {
	ProductType string `json:"product_type"`
	Qty         int    `json:"qty"`
	SizeRange   string `json:"size_range"`
	FabricType  string `json:"fabric_type"`
	Notes       string `json:"notes"`
}

// CreateOrderRequest - запрос на создание заказа с позициями
type CreateOrderRequest struct {
	Title string             `json:"title"`
	Items []OrderItemRequest `json:"items"`
}

// OrderResponse - модель заказа для выдачи клиенту
type OrderResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Customer      string `json:"customer,omitempty"`
	Status        string `json:"status"`
	StatusLabel   string `json:"status_label"`
	TotalPrice    int64  `json:"total_price"`
	DepositAmount int64  `json:"deposit_amount"`
	CreatedAt     string `json:"created_at"`
}

// OrderItemResponse - позиция заказа для выдачи
type OrderItemResponse struct {
	ID          int64  `json:"id"`
	ProductType string `json:"product_type"`
	Qty         int    `json:"qty"`
	SizeRange   string `json:"size_range"`
	FabricType  string `json:"fabric_type"`
	Notes       string `json:"notes"`
}

// PricingRequest - запрос на установку цены заказа
type PricingRequest struct {
	TotalPrice    int64 `json:"total_price"`
	DepositAmount int64 `json:"deposit_amount"`
}

// StatusRequest - запрос на смену статуса заказа
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderDetail - агрегат заказа с дочерними записями
type OrderDetail struct {
	Order    OrderData
	Items    []OrderItemData
	Messages []MessageData
	Payments []PaymentData
	Files    []FileData
}

// StaffOrderDetail - агрегат заказа для сотрудника с вычисленными правами
type StaffOrderDetail struct {
	OrderDetail
	CanSetPricing    bool
	CanChangeStatus  bool
	CanViewFinancial bool
}

// DashboardData - счётчики заказов по нетерминальным статусам
type DashboardData struct {
	StatusCounts     map[string]int
	CanSetPricing    bool
	CanChangeStatus  bool
	CanViewFinancial bool
}
