package worker

import (
	"context"
	"sync"
	"time"

	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "deadline-watcher",
		Timeout: 30 * time.Second, // через 30 сек пробуем снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 неудачных обращений к хранилищу подряд
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// DeadlineWatcher - воркер контроля сроков заказов.
// Периодически помечает заказы с прошедшим сроком и оставляет по ним
// внутреннюю заметку для сотрудников.
type DeadlineWatcher struct {
	Orders       services.OrdersService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewDeadlineWatcher - конструктор воркера контроля сроков
func NewDeadlineWatcher(orders services.OrdersService, cfg config.WatcherConfig) *DeadlineWatcher {
	return &DeadlineWatcher{
		Orders:       orders,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *DeadlineWatcher) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *DeadlineWatcher) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *DeadlineWatcher) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("DeadlineWatcher signal stop")
			return
		case <-ticker.C:
			w.ProcessOverdue(ctx)
		}
	}
}

// ProcessOverdue - обработка пачки просроченных заказов
func (w *DeadlineWatcher) ProcessOverdue(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		orderIDs, err := w.Orders.MarkOverdueOrders(ctx, w.BatchSize)
		if err != nil {
			return nil, err
		}
		if len(orderIDs) > 0 {
			logger.Info("Marked overdue orders", "ids", orderIDs)
		}
		return nil, nil
	})

	if err != nil {
		logger.Error("Error overdue processing", err)
	}
}
