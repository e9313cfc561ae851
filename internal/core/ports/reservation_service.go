package ports

import (
	"context"

	"github.com/websap/websap-api/internal/core/domain"
)

// Actor is the authenticated identity injected by the auth middleware.
type Actor struct {
	UserID       int64
	Email        string
	Roles        []string
	RestaurantID int64
}

// CreateReservationInput carries the fields accepted by the WhatsApp
// reservation intake. Name, Phone, Date and Time are required; the
// rest are optional and defaulted by the service.
type CreateReservationInput struct {
	Name         string
	Phone        string
	Email        string
	Date         string
	Time         string
	PartySize    int
	Notes        string
	CreatedBy    int64
	RestaurantID int64
}

// NotificationsResult is the envelope for the unread-notifications
// poll. A storage failure degrades to an empty successful result.
type NotificationsResult struct {
	Success bool
	Has     bool
	Count   int
	Items   []domain.Notification
	Message string
}

// ReservationService handles WhatsApp-originated reservation intake
// and the staff notification feed.
type ReservationService interface {
	// Create validates and persists a reservation, then triggers
	// best-effort notification side effects. It returns the new
	// reservation id.
	Create(ctx context.Context, in CreateReservationInput, actor Actor) (string, error)
	// List returns reservations visible to the actor, newest first,
	// and marks matching unread notifications as read (best-effort).
	List(ctx context.Context, actor Actor) ([]domain.Reservation, error)
	Notifications(ctx context.Context, actor Actor) NotificationsResult
}

// NewReservationEvent is handed to the notification pipeline after a
// reservation is persisted.
type NewReservationEvent struct {
	Reservation domain.Reservation
	UserID      int64
}

// ReservationNotifier accepts reservation events for asynchronous,
// best-effort processing. Enqueueing never fails; processing failures
// are logged downstream and never affect the originating request.
type ReservationNotifier interface {
	Notify(event NewReservationEvent)
}

// NotificationProcessor performs the actual side effects for one
// reservation event: the notification record insert and the admin
// email intent.
type NotificationProcessor interface {
	Process(ctx context.Context, event NewReservationEvent) error
}
