package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

var (
	discardLogger = zerolog.Nop()
	errCacheDown  = errors.New("cache down")
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubMenuRepo struct {
	items   []domain.MenuItem
	listErr error
	saveErr error
	saved   []domain.MenuItem
	deleted []int64
}

func (r *stubMenuRepo) List(_ context.Context, f ports.MenuFilter) ([]domain.MenuItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	// Mirrors the real Mongo query filters.
	return filterSlice(r.items, func(m domain.MenuItem) bool { return matchMenuItem(m, f) }), nil
}

func (r *stubMenuRepo) SaveAll(_ context.Context, items []domain.MenuItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = items
	return nil
}

func (r *stubMenuRepo) Upsert(_ context.Context, item domain.MenuItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, item)
	return nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id int64) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type stubUserRepo struct {
	users         []domain.User
	listErr       error
	restaurantID  int64
	restaurantErr error
	admin         *domain.User
	adminErr      error
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return filterSlice(r.users, func(u domain.User) bool { return matchUser(u, f) }), nil
}

func (r *stubUserRepo) FindRestaurantID(_ context.Context, _ int64) (int64, error) {
	if r.restaurantErr != nil {
		return 0, r.restaurantErr
	}
	return r.restaurantID, nil
}

func (r *stubUserRepo) FindAdminByRestaurant(_ context.Context, _ int64) (*domain.User, error) {
	if r.adminErr != nil {
		return nil, r.adminErr
	}
	return r.admin, nil
}

type stubRoleRepo struct {
	roles   []domain.Role
	listErr error
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.roles, nil
}

type stubReservationRepo struct {
	inserted  []domain.Reservation
	insertErr error
	listed    []domain.Reservation
	listErr   error
	lastScope int64
}

func (r *stubReservationRepo) Insert(_ context.Context, res *domain.Reservation) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *res)
	return nil
}

func (r *stubReservationRepo) List(_ context.Context, restaurantID int64) ([]domain.Reservation, error) {
	r.lastScope = restaurantID
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listed, nil
}

type stubNotificationRepo struct {
	inserted    []domain.Notification
	insertErr   error
	unread      []domain.Notification
	unreadErr   error
	markedRead  int
	markReadErr error
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *n)
	return nil
}

func (r *stubNotificationRepo) ListUnread(_ context.Context, _ string, _ int64) ([]domain.Notification, error) {
	if r.unreadErr != nil {
		return nil, r.unreadErr
	}
	return r.unread, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, _ string, _ int64) error {
	if r.markReadErr != nil {
		return r.markReadErr
	}
	r.markedRead++
	return nil
}

func (r *stubNotificationRepo) EnsureSchema(_ context.Context) error {
	return nil
}

// ---------------------------------------------------------------------------
// In-memory cache stub
// ---------------------------------------------------------------------------

// memCache is a map-per-namespace stand-in for the Redis cache with the
// same upsert semantics.
type memCache struct {
	mu      sync.Mutex
	stores  map[string]map[string][]byte
	failing bool
}

func newMemCache() *memCache {
	return &memCache{stores: make(map[string]map[string][]byte)}
}

func (c *memCache) Put(_ context.Context, store string, records []ports.CacheRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errCacheDown
	}
	ns, ok := c.stores[store]
	if !ok {
		ns = make(map[string][]byte)
		c.stores[store] = ns
	}
	for _, record := range records {
		ns[record.ID] = record.Data
	}
	return nil
}

func (c *memCache) GetAll(_ context.Context, store string) ([][]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return nil, errCacheDown
	}
	out := make([][]byte, 0, len(c.stores[store]))
	for _, data := range c.stores[store] {
		out = append(out, data)
	}
	return out, nil
}

func (c *memCache) Delete(_ context.Context, store string, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errCacheDown
	}
	delete(c.stores[store], id)
	return nil
}

func (c *memCache) size(store string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stores[store])
}

// ---------------------------------------------------------------------------
// Notifier stub
// ---------------------------------------------------------------------------

type captureNotifier struct {
	events []ports.NewReservationEvent
}

func (n *captureNotifier) Notify(event ports.NewReservationEvent) {
	n.events = append(n.events, event)
}
