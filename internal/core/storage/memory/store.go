package memory

import (
	"context"
	"sync"
	"time"

	v1 "github.com/emis-lab/aggregate-query/internal/api/v1"
	"github.com/emis-lab/aggregate-query/internal/core/storage"
	"github.com/google/uuid"
)

// Store is an in-memory implementation of storage.AggregateQueryStore.
// Useful for testing and development.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	order   []int64
	queries map[int64]*v1.AggregateQuery
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of posted_at/patched_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		queries: make(map[int64]*v1.AggregateQuery),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Store) Create(ctx context.Context, user uuid.UUID, model v1.Model) (*v1.AggregateQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// ids are never reused, even after deletes
	s.nextID++
	now := s.timestamp()
	q := &v1.AggregateQuery{
		ID:            s.nextID,
		User:          user,
		Model:         model.Clone(),
		PostedAt:      now,
		PatchedAt:     now,
		EditStatus:    v1.EditStatusDraft,
		ExecuteStatus: v1.ExecuteStatusPending,
	}
	s.queries[q.ID] = q
	s.order = append(s.order, q.ID)

	return q.Clone(), nil
}

func (s *Store) Get(ctx context.Context, id int64) (*v1.AggregateQuery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, exists := s.queries[id]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return q.Clone(), nil
}

func (s *Store) List(ctx context.Context) ([]*v1.AggregateQuery, error) {
	return s.filter(func(*v1.AggregateQuery) bool { return true }), nil
}

func (s *Store) ListByUser(ctx context.Context, user uuid.UUID) ([]*v1.AggregateQuery, error) {
	return s.filter(func(q *v1.AggregateQuery) bool { return q.User == user }), nil
}

func (s *Store) filter(keep func(*v1.AggregateQuery) bool) []*v1.AggregateQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*v1.AggregateQuery, 0, len(s.order))
	for _, id := range s.order {
		q := s.queries[id]
		if keep(q) {
			result = append(result, q.Clone())
		}
	}
	return result
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, patch v1.StatusPatch) (*v1.AggregateQuery, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q, exists := s.queries[id]
	if !exists {
		return nil, storage.ErrNotFound
	}

	now := s.timestamp()
	// every patch moves patched_at forward, whatever the clock says
	if !now.After(q.PatchedAt) {
		now = q.PatchedAt.Add(time.Microsecond)
	}
	patch.Apply(q, now)

	return q.Clone(), nil
}

func (s *Store) Delete(ctx context.Context, id int64) (*v1.AggregateQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, exists := s.queries[id]
	if !exists {
		return nil, storage.ErrNotFound
	}

	delete(s.queries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return q, nil
}

// Ping always succeeds; there is no backend to reach.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
