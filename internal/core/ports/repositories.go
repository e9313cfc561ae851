package ports

import (
	"context"

	"github.com/websap/websap-api/internal/core/domain"
)

// MenuFilter carries the query parameters accepted by the public menu
// endpoint. A nil Available means "both".
type MenuFilter struct {
	Search    string
	Category  string
	Available *bool
}

// UserFilter carries the query parameters accepted by the admin user
// list. SearchTerm is a case-insensitive substring match on name and
// email; Role and Status are exact matches.
type UserFilter struct {
	SearchTerm string
	Role       string
	Status     string
}

// MenuRepository is the authoritative store for dishes.
type MenuRepository interface {
	List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error)
	// SaveAll upserts every item by id, replacing previous versions.
	SaveAll(ctx context.Context, items []domain.MenuItem) error
	Upsert(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the authoritative store for staff accounts.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	// FindRestaurantID returns the restaurant the user belongs to, or
	// zero when the user has none assigned.
	FindRestaurantID(ctx context.Context, userID int64) (int64, error)
	// FindAdminByRestaurant returns one administrator of the given
	// restaurant, used for reservation email notifications.
	FindAdminByRestaurant(ctx context.Context, restaurantID int64) (*domain.User, error)
}

// RoleRepository is the authoritative store for permission groups.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
}

// ReservationRepository persists reservations. There is no offline
// fallback for writes: reservations exist only in the primary store.
type ReservationRepository interface {
	Insert(ctx context.Context, r *domain.Reservation) error
	// List returns reservations newest first. When restaurantID is
	// non-zero, only reservations for that restaurant (or with no
	// restaurant assigned) are returned.
	List(ctx context.Context, restaurantID int64) ([]domain.Reservation, error)
}

// NotificationRepository persists staff notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListUnread returns unread notifications of the given type
	// addressed to the user or to everyone, newest first.
	ListUnread(ctx context.Context, notifType string, userID int64) ([]domain.Notification, error)
	// MarkRead marks all matching unread notifications as read.
	MarkRead(ctx context.Context, notifType string, userID int64) error
	// EnsureSchema creates the collection indexes. Run once at startup,
	// never on the request path.
	EnsureSchema(ctx context.Context) error
}
