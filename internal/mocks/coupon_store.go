package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/store"
	"golang.org/x/text/cases"
)

// MockCouponStore implements store.CouponStore for testing
type MockCouponStore struct {
	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, coupon *domain.Coupon) error
	GetByIDFn   func(ctx context.Context, id int) (*domain.Coupon, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Coupon, error)
	ListFn      func(ctx context.Context) ([]*domain.Coupon, error)
	SearchFn    func(ctx context.Context, filter store.CouponFilter) ([]*domain.Coupon, error)
	UpdateFn    func(ctx context.Context, coupon *domain.Coupon) error
	DeleteFn    func(ctx context.Context, id int) error

	// Err, when set, is returned by every method without a function override
	Err error

	mu      sync.Mutex
	coupons map[int]*domain.Coupon
	nextID  int
}

// Ensure MockCouponStore implements store.CouponStore
var _ store.CouponStore = (*MockCouponStore)(nil)

// NewMockCouponStore creates an in-memory store holding copies of seed.
func NewMockCouponStore(seed ...*domain.Coupon) *MockCouponStore {
	m := &MockCouponStore{coupons: make(map[int]*domain.Coupon), nextID: 1}
	for _, c := range seed {
		cp := *c
		if cp.ID == 0 {
			cp.ID = m.nextID
		}
		if cp.ID >= m.nextID {
			m.nextID = cp.ID + 1
		}
		m.coupons[cp.ID] = &cp
	}
	return m
}

// Len returns the number of stored coupons.
func (m *MockCouponStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.coupons)
}

// Create implements store.CouponStore.
func (m *MockCouponStore) Create(ctx context.Context, coupon *domain.Coupon) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, coupon)
	}
	if m.Err != nil {
		return m.Err
	}
	if err := coupon.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	coupon.ID = m.nextID
	m.nextID++
	cp := *coupon
	m.coupons[cp.ID] = &cp
	return nil
}

// GetByID implements store.CouponStore.
func (m *MockCouponStore) GetByID(ctx context.Context, id int) (*domain.Coupon, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.coupons[id]
	if !ok {
		return nil, store.ErrCouponNotFound
	}
	cp := *c
	return &cp, nil
}

// GetByName implements store.CouponStore.
func (m *MockCouponStore) GetByName(ctx context.Context, name string) (*domain.Coupon, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	for _, c := range m.sorted() {
		if c.HasName(name) {
			return c, nil
		}
	}
	return nil, store.ErrCouponNotFound
}

// List implements store.CouponStore.
func (m *MockCouponStore) List(ctx context.Context) ([]*domain.Coupon, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sorted(), nil
}

// Search implements store.CouponStore.
func (m *MockCouponStore) Search(ctx context.Context, filter store.CouponFilter) ([]*domain.Coupon, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	fold := cases.Fold()
	needle := fold.String(filter.NameContains)

	matched := make([]*domain.Coupon, 0)
	for _, c := range m.sorted() {
		if strings.Contains(fold.String(c.Name), needle) {
			matched = append(matched, c)
		}
	}

	if filter.Offset >= len(matched) {
		return []*domain.Coupon{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Update implements store.CouponStore.
func (m *MockCouponStore) Update(ctx context.Context, coupon *domain.Coupon) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, coupon)
	}
	if m.Err != nil {
		return m.Err
	}
	if err := coupon.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.coupons[coupon.ID]; !ok {
		return store.ErrCouponNotFound
	}
	cp := *coupon
	m.coupons[cp.ID] = &cp
	return nil
}

// Delete implements store.CouponStore.
func (m *MockCouponStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.coupons[id]; !ok {
		return store.ErrCouponNotFound
	}
	delete(m.coupons, id)
	return nil
}

// sorted returns copies of all coupons ordered by id.
func (m *MockCouponStore) sorted() []*domain.Coupon {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Coupon, 0, len(m.coupons))
	for _, c := range m.coupons {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
