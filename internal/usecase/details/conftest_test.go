package details

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// mockRepo counts calls and optionally blocks the detail fetch so tests can
// interleave concurrent callers deterministically.
type mockRepo struct {
	detailFn func(ctx context.Context, id string) (domain.Restaurant, error)
	dishFn   func(ctx context.Context, id string, page, pageSize int) ([]domain.MenuItem, domain.Pagination, error)
	reviewFn func(ctx context.Context, id string, page, pageSize int) ([]domain.Review, domain.Pagination, error)

	detailCalls atomic.Int64
	dishCalls   atomic.Int64
	reviewCalls atomic.Int64

	// When release is set, Details for blockID (or every id when blockID is
	// empty) blocks until release is closed. started is closed once the
	// first blocked call is in flight.
	release     chan struct{}
	blockID     string
	startedOnce sync.Once
	started     chan struct{}
}

func newMockRepo() *mockRepo {
	return &mockRepo{started: make(chan struct{})}
}

func (m *mockRepo) Details(ctx context.Context, id string) (domain.Restaurant, error) {
	m.detailCalls.Add(1)
	if m.release != nil && (m.blockID == "" || id == m.blockID) {
		m.startedOnce.Do(func() { close(m.started) })
		<-m.release
	}
	if m.detailFn != nil {
		return m.detailFn(ctx, id)
	}
	return domain.Restaurant{ID: id, Name: "Detail " + id}, nil
}

func (m *mockRepo) Dishes(
	ctx context.Context, id string, page, pageSize int,
) ([]domain.MenuItem, domain.Pagination, error) {
	m.dishCalls.Add(1)
	if m.dishFn != nil {
		return m.dishFn(ctx, id, page, pageSize)
	}
	return []domain.MenuItem{{Name: "pho", Price: "70000"}},
		domain.Pagination{Page: page, PageSize: pageSize, Total: 7}, nil
}

func (m *mockRepo) Reviews(
	ctx context.Context, id string, page, pageSize int,
) ([]domain.Review, domain.Pagination, error) {
	m.reviewCalls.Add(1)
	if m.reviewFn != nil {
		return m.reviewFn(ctx, id, page, pageSize)
	}
	return []domain.Review{{ReviewerName: "an", Rating: 5}},
		domain.Pagination{Page: page, PageSize: pageSize, Total: 4}, nil
}

func f(v float64) *float64 { return &v }
