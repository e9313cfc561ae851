package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/websap/websap-api/internal/api/metrics"
	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

const defaultPartySize = 2

// ReservationService persists WhatsApp-originated reservations and
// drives the staff notification feed. The reservation insert is the
// only fatal step; every side effect is best-effort.
type ReservationService struct {
	repo      ports.ReservationRepository
	userRepo  ports.UserRepository
	notifRepo ports.NotificationRepository
	notifier  ports.ReservationNotifier
	log       zerolog.Logger
}

func NewReservationService(
	repo ports.ReservationRepository,
	userRepo ports.UserRepository,
	notifRepo ports.NotificationRepository,
	notifier ports.ReservationNotifier,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		repo:      repo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		notifier:  notifier,
		log:       log,
	}
}

// Create validates the required fields, persists the reservation and
// enqueues the notification side effects. Validation failure inserts
// nothing.
func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput, actor ports.Actor) (string, error) {
	if in.Name == "" || in.Phone == "" || in.Date == "" || in.Time == "" {
		return "", domain.ErrMissingFields
	}

	restaurantID := in.RestaurantID
	if restaurantID == 0 && actor.UserID != 0 {
		id, err := s.userRepo.FindRestaurantID(ctx, actor.UserID)
		if err != nil {
			s.log.Warn().Err(err).Int64("user_id", actor.UserID).Msg("could not resolve restaurant for reservation")
		} else {
			restaurantID = id
		}
	}

	createdBy := in.CreatedBy
	if createdBy == 0 {
		createdBy = actor.UserID
	}

	partySize := in.PartySize
	if partySize <= 0 {
		partySize = defaultPartySize
	}
	notes := in.Notes
	if notes == "" {
		notes = "Reserva desde WhatsApp"
	}

	reservation := domain.Reservation{
		ID:           newReservationID(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Date:         in.Date,
		Time:         in.Time,
		PartySize:    partySize,
		Notes:        notes,
		Status:       domain.ReservationPending,
		Origin:       domain.OriginWhatsApp,
		CreatedBy:    createdBy,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, &reservation); err != nil {
		return "", fmt.Errorf("insert reservation: %w", err)
	}

	s.log.Info().
		Str("reservation_id", reservation.ID).
		Str("fecha", reservation.Date).
		Str("hora", reservation.Time).
		Msg("reservation created")
	metrics.ReservationsCreatedTotal.WithLabelValues(reservation.Origin).Inc()

	s.notifier.Notify(ports.NewReservationEvent{
		Reservation: reservation,
		UserID:      actor.UserID,
	})

	return reservation.ID, nil
}

// List returns reservations visible to the actor and marks matching
// unread notifications as read. The mark-read step never fails the
// listing.
func (s *ReservationService) List(ctx context.Context, actor ports.Actor) ([]domain.Reservation, error) {
	restaurantID := actor.RestaurantID
	if restaurantID == 0 && actor.UserID != 0 {
		id, err := s.userRepo.FindRestaurantID(ctx, actor.UserID)
		if err != nil {
			s.log.Warn().Err(err).Int64("user_id", actor.UserID).Msg("could not resolve restaurant for listing")
		} else {
			restaurantID = id
		}
	}

	reservations, err := s.repo.List(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	if actor.UserID != 0 {
		if err := s.notifRepo.MarkRead(ctx, domain.NotificationTypeNew, actor.UserID); err != nil {
			s.log.Warn().Err(err).Msg("failed to mark reservation notifications as read")
		}
	}

	return reservations, nil
}

// Notifications returns the unread reservation notifications for the
// actor. Storage errors degrade to an empty successful result so the
// frontend poll never breaks.
func (s *ReservationService) Notifications(ctx context.Context, actor ports.Actor) ports.NotificationsResult {
	items, err := s.notifRepo.ListUnread(ctx, domain.NotificationTypeNew, actor.UserID)
	if err != nil {
		s.log.Warn().Err(err).Msg("notification store unavailable")
		return ports.NotificationsResult{
			Success: true,
			Items:   []domain.Notification{},
			Message: "Tabla de notificaciones no disponible",
		}
	}

	return ports.NotificationsResult{
		Success: true,
		Has:     len(items) > 0,
		Count:   len(items),
		Items:   items,
	}
}

// newReservationID mints ids in the whatsapp_<millis>_<rand> format
// the frontend already parses.
func newReservationID() string {
	suffix := make([]byte, 5)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("whatsapp_%d_%d", time.Now().UnixMilli(), time.Now().UnixNano()%1_000_000_000)
	}
	return fmt.Sprintf("whatsapp_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
