package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"github.com/avc/orderchat/internal/service"
	"go.uber.org/zap"
)

// ErrDispatcherStopped возвращается Enqueue после Stop
var ErrDispatcherStopped = errors.New("dispatcher stopped")

// ExchangeRunner выполняет вторую фазу обмена с сервисом заказов
type ExchangeRunner interface {
	CompleteExchange(ctx context.Context, ex *service.Exchange) error
	AbortExchange(ex *service.Exchange, cause error)
}

// Dispatcher выполняет обмены с сервисом заказов в фоне,
// чтобы HTTP-обработчик не ждал ответа
type Dispatcher struct {
	workers int
	queue   chan *service.Exchange
	runner  ExchangeRunner
	logger  *zap.Logger
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher создает новый Dispatcher
func NewDispatcher(workers, queueSize int, runner ExchangeRunner, logger *zap.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		workers: workers,
		queue:   make(chan *service.Exchange, queueSize),
		runner:  runner,
		logger:  logger,
	}
}

// Start запускает воркеры
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx, i)
	}
}

// Enqueue ставит обмен в очередь без блокировки.
// При ошибке обмен остается в полете, вызывающий должен его прервать.
func (d *Dispatcher) Enqueue(ex *service.Exchange) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherStopped
	}

	select {
	case d.queue <- ex:
		return nil
	default:
		d.logger.Warn("dispatch queue is full", zap.String("session_id", ex.SessionID))
		return domain.ErrQueueFull
	}
}

// Stop закрывает очередь и ждет, пока воркеры обработают оставшиеся обмены
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// worker выполняет обмены из очереди
func (d *Dispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()

	d.logger.Debug("dispatcher worker started", zap.Int("worker_id", id))

	for ex := range d.queue {
		// После отмены контекста оставшиеся обмены прерываются, чтобы сессия не зависла в AwaitingResponse
		if err := ctx.Err(); err != nil {
			d.runner.AbortExchange(ex, err)
			continue
		}
		d.process(ctx, ex)
	}

	d.logger.Debug("dispatcher worker stopped", zap.Int("worker_id", id))
}

// process выполняет один обмен
func (d *Dispatcher) process(ctx context.Context, ex *service.Exchange) {
	waited := time.Since(ex.StartedAt)

	if err := d.runner.CompleteExchange(ctx, ex); err != nil {
		d.logger.Debug("exchange finished with error",
			zap.String("session_id", ex.SessionID),
			zap.Duration("queued", waited),
			zap.Error(err),
		)
		return
	}

	d.logger.Debug("exchange finished",
		zap.String("session_id", ex.SessionID),
		zap.Duration("queued", waited),
	)
}
