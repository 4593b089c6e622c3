package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shestoi/paypal-checkout/internal/repository"
)

// MemoryRepository реализует RefundRepository используя in-memory хранилище
// Записи живут до перезапуска процесса: ни TTL, ни вытеснения нет.
// После рестарта реестр пуст — для production нужен postgres вариант
type MemoryRepository struct {
	mu       sync.RWMutex
	requests map[string]repository.RefundRequest // ключ = captureID
}

// NewMemoryRepository создаёт новый in-memory реестр refund заявок
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		requests: make(map[string]repository.RefundRequest),
	}
}

// Reserve резервирует refund для captureID
// Проверка и вставка выполняются под одним мьютексом: из двух конкурентных
// вызовов для одного capture токен получит ровно один
func (r *MemoryRepository) Reserve(ctx context.Context, captureID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[captureID]; exists {
		return "", repository.ErrAlreadyRefunded
	}

	requestID := uuid.NewString()
	r.requests[captureID] = repository.RefundRequest{
		CaptureID: captureID,
		RequestID: requestID,
		CreatedAt: time.Now().Unix(),
	}

	return requestID, nil
}

// GetByCaptureID получает заявку по captureID из памяти
// Защищён мьютексом для безопасного доступа из разных горутин
func (r *MemoryRepository) GetByCaptureID(ctx context.Context, captureID string) (repository.RefundRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, exists := r.requests[captureID]
	if !exists {
		return repository.RefundRequest{}, repository.ErrNotFound
	}

	return request, nil
}
