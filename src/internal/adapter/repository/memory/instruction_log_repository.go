package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
)

// InstructionLogRepository keeps the most recent journal entries in process
// memory. It is used when no database is configured.
type InstructionLogRepository struct {
	mu       sync.Mutex
	capacity int
	nextID   int
	entries  []domain.InstructionLog
	refs     map[string]struct{}
}

// NewInstructionLogRepository keeps at most capacity entries, dropping the
// oldest first. A capacity of zero or less keeps everything.
func NewInstructionLogRepository(capacity int) *InstructionLogRepository {
	return &InstructionLogRepository{capacity: capacity, refs: make(map[string]struct{})}
}

func (r *InstructionLogRepository) Create(_ context.Context, entry domain.InstructionLog) (domain.InstructionLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.refs[entry.Reference]; exists {
		return domain.InstructionLog{}, domain.ErrDuplicateReference
	}

	r.nextID++
	entry.ID = strconv.Itoa(r.nextID)
	entry.CreatedAt = time.Now().UTC()
	r.entries = append(r.entries, entry)
	r.refs[entry.Reference] = struct{}{}

	if r.capacity > 0 && len(r.entries) > r.capacity {
		evicted := r.entries[0]
		delete(r.refs, evicted.Reference)
		r.entries = append(r.entries[:0:0], r.entries[1:]...)
	}

	return entry, nil
}

// Entries returns a copy of the journal in insertion order.
func (r *InstructionLogRepository) Entries() []domain.InstructionLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.InstructionLog, len(r.entries))
	copy(out, r.entries)
	return out
}
