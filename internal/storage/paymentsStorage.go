package storage

import (
	"context"
	"fmt"

	"github.com/atelierhub/atelier-orders/internal/models"
)

const (
	InsertPayment = `INSERT INTO PAYMENTS (order_id, amount, method, status, ref_code, paid_at, created_at)
					 VALUES ($1, $2, $3, $4, $5, $6, NOW())
					 RETURNING id;`
	GetPaymentsByOrder = `SELECT id, order_id, amount, method, status, ref_code, paid_at, created_at
						  FROM PAYMENTS
						  WHERE order_id = $1
						  ORDER BY created_at DESC;`
)

type PaymentDatabase struct {
	DB *Database
}

// Создание хранилища
func NewPaymentsStorage(db *Database) PaymentsStorage {
	return &PaymentDatabase{DB: db}
}

// AddPayment - добавление записи в журнал платежей.
// Журнал только пополняется, изменение и удаление записей не предусмотрено.
func (s *PaymentDatabase) AddPayment(ctx context.Context, payment models.PaymentData) (int64, error) {
	var paymentID int64
	err := s.DB.Pool.QueryRow(ctx, InsertPayment,
		payment.OrderID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.RefCode,
		payment.PaidAt,
	).Scan(&paymentID)
	if err != nil {
		return 0, fmt.Errorf("failed to add payment: %w", err)
	}
	return paymentID, nil
}

func (s *PaymentDatabase) GetPayments(ctx context.Context, orderID int64) ([]models.PaymentData, error) {
	var payments []models.PaymentData
	rows, err := s.DB.Pool.Query(ctx, GetPaymentsByOrder, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var payment models.PaymentData
		err := rows.Scan(
			&payment.ID,
			&payment.OrderID,
			&payment.Amount,
			&payment.Method,
			&payment.Status,
			&payment.RefCode,
			&payment.PaidAt,
			&payment.CreatedAt,
		)
		if err != nil {
			return payments, fmt.Errorf("failed scan payment data: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
