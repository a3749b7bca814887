package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	InsertOrder = `INSERT INTO ORDERS (customer_id, title, status, total_price, deposit_amount, created_at, updated_at)
				   VALUES ($1, $2, $3, 0, 0, NOW(), NOW())
				   RETURNING id;`
	InsertOrderItem = `INSERT INTO ORDER_ITEMS (order_id, product_type, qty, size_range, fabric_type, notes)
					   VALUES ($1, $2, $3, $4, $5, $6);`
	GetOrderByID = `SELECT o.id, o.customer_id, u.login, o.title, o.status, o.deadline_date,
						   o.total_price, o.deposit_amount, o.assigned_to, o.created_at, o.updated_at
					FROM ORDERS o
					JOIN USERS u ON u.id = o.customer_id
					WHERE o.id = $1;`
	GetOrdersByCustomer = `SELECT o.id, o.customer_id, u.login, o.title, o.status, o.deadline_date,
								  o.total_price, o.deposit_amount, o.assigned_to, o.created_at, o.updated_at
						   FROM ORDERS o
						   JOIN USERS u ON u.id = o.customer_id
						   WHERE o.customer_id = $1
						   ORDER BY o.created_at DESC;`
	GetOrdersAll = `SELECT o.id, o.customer_id, u.login, o.title, o.status, o.deadline_date,
						   o.total_price, o.deposit_amount, o.assigned_to, o.created_at, o.updated_at
					FROM ORDERS o
					JOIN USERS u ON u.id = o.customer_id
					ORDER BY o.created_at DESC;`
	GetItemsByOrder = `SELECT id, order_id, product_type, qty, size_range, fabric_type, notes
					   FROM ORDER_ITEMS
					   WHERE order_id = $1
					   ORDER BY id;`
	UpdateOrderPricing = `UPDATE ORDERS
						  SET total_price = $1,
							  deposit_amount = $2,
							  updated_at = NOW()
						  WHERE id = $3
						  RETURNING id;`
	UpdateOrderStatus = `UPDATE ORDERS
						 SET status = $1,
							 updated_at = NOW()
						 WHERE id = $2
						 RETURNING id;`
	CountOrdersByStatus = `SELECT status, COUNT(*)
						   FROM ORDERS
						   WHERE status NOT IN ('delivered', 'canceled')
						   GROUP BY status;`
	ClaimOverdueOrders  = `UPDATE ORDERS
						   SET overdue_notified = TRUE,
							   updated_at = NOW()
						   WHERE id IN (
							   SELECT id FROM ORDERS
							   WHERE deadline_date < CURRENT_DATE
								 AND status NOT IN ('delivered', 'canceled')
								 AND NOT overdue_notified
							   ORDER BY deadline_date
							   LIMIT $1
							   FOR UPDATE SKIP LOCKED
						   )
						   RETURNING id;`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

// AddOrder - создание заказа вместе с позициями в одной транзакции.
// Если хоть одна позиция не вставилась, заказ не создаётся.
func (s *OrderDatabase) AddOrder(ctx context.Context, customerUUID string, title string, items []models.OrderItemData) (int64, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddOrder. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var orderID int64
	err = tx.QueryRow(ctx, InsertOrder, customerUUID, title, models.OrderStatusNew).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to add order: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, InsertOrderItem, orderID, item.ProductType, item.Qty, item.SizeRange, item.FabricType, item.Notes)
		if err != nil {
			return 0, fmt.Errorf("failed to add order item: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("AddOrder. Commit failed: %w", err)
	}
	return orderID, nil
}

func (s *OrderDatabase) GetOrder(ctx context.Context, orderID int64) (*models.OrderData, error) {
	order, err := scanOrder(s.DB.Pool.QueryRow(ctx, GetOrderByID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderDatabase) GetUserOrders(ctx context.Context, customerUUID string) ([]models.OrderData, error) {
	return s.queryOrders(ctx, GetOrdersByCustomer, customerUUID)
}

func (s *OrderDatabase) GetAllOrders(ctx context.Context) ([]models.OrderData, error) {
	return s.queryOrders(ctx, GetOrdersAll)
}

func (s *OrderDatabase) GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItemData, error) {
	var items []models.OrderItemData
	rows, err := s.DB.Pool.Query(ctx, GetItemsByOrder, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item models.OrderItemData
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductType, &item.Qty, &item.SizeRange, &item.FabricType, &item.Notes)
		if err != nil {
			return items, fmt.Errorf("failed scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *OrderDatabase) UpdatePricing(ctx context.Context, orderID int64, totalPrice int64, depositAmount int64) error {
	var updatedID int64
	err := s.DB.Pool.QueryRow(ctx, UpdateOrderPricing, totalPrice, depositAmount, orderID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order pricing: %w", err)
	}
	return nil
}

// UpdateStatus - смена статуса заказа и служебная запись аудита в одной транзакции.
// Либо меняются обе записи, либо ни одной.
func (s *OrderDatabase) UpdateStatus(ctx context.Context, orderID int64, status string, actorUUID string, auditNote string) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("UpdateStatus. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var updatedID int64
	err = tx.QueryRow(ctx, UpdateOrderStatus, status, orderID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	_, err = tx.Exec(ctx, InsertMessage, orderID, actorUUID, auditNote, true)
	if err != nil {
		return fmt.Errorf("failed to add audit note: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateStatus. Commit failed: %w", err)
	}
	return nil
}

// CountByStatus - счётчики заказов по нетерминальным статусам
func (s *OrderDatabase) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	rows, err := s.DB.Pool.Query(ctx, CountOrdersByStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return counts, fmt.Errorf("failed scan order counts: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// MarkOverdueOrders - помечает просроченные заказы и добавляет по служебной
// заметке на каждый в одной транзакции. Возвращает идентификаторы помеченных.
func (s *OrderDatabase) MarkOverdueOrders(ctx context.Context, limit int) ([]int64, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("MarkOverdueOrders. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var orderIDs []int64
	rows, err := tx.Query(ctx, ClaimOverdueOrders, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim overdue orders: %w", err)
	}
	for rows.Next() {
		var orderID int64
		if err = rows.Scan(&orderID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed scan overdue order id: %w", err)
		}
		orderIDs = append(orderIDs, orderID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to claim overdue orders: %w", err)
	}

	for _, orderID := range orderIDs {
		_, err = tx.Exec(ctx, InsertSystemMessage, orderID, "Deadline passed", true)
		if err != nil {
			return nil, fmt.Errorf("failed to add overdue note: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("MarkOverdueOrders. Commit failed: %w", err)
	}
	return orderIDs, nil
}

func (s *OrderDatabase) queryOrders(ctx context.Context, query string, args ...interface{}) ([]models.OrderData, error) {
	var orders []models.OrderData
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*models.OrderData, error) {
	var order models.OrderData
	err := row.Scan(
		&order.ID,
		&order.CustomerUUID,
		&order.CustomerLogin,
		&order.Title,
		&order.Status,
		&order.DeadlineDate,
		&order.TotalPrice,
		&order.DepositAmount,
		&order.AssignedUUID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
