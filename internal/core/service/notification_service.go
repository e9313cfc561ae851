package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/websap/websap-api/internal/api/metrics"
	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

// NotificationService performs the side effects for a persisted
// reservation: the in-app notification record and the email intent to
// the restaurant administrator. Errors returned here are logged by the
// dispatcher and never reach the request that created the reservation.
type NotificationService struct {
	notifRepo ports.NotificationRepository
	userRepo  ports.UserRepository
	log       zerolog.Logger
}

func NewNotificationService(
	notifRepo ports.NotificationRepository,
	userRepo ports.UserRepository,
	log zerolog.Logger,
) *NotificationService {
	return &NotificationService{notifRepo: notifRepo, userRepo: userRepo, log: log}
}

// notificationPayload is the JSON blob stored in the datos column for
// the frontend to render the alert without a second round trip.
type notificationPayload struct {
	ReservationID string `json:"reservaId"`
	Name          string `json:"nombre"`
	Phone         string `json:"telefono"`
	Date          string `json:"fecha"`
	Time          string `json:"hora"`
	PartySize     int    `json:"personas"`
}

// Process inserts the notification record and logs the admin email
// intent. The email lookup is itself best-effort: its failure does not
// fail Process.
func (s *NotificationService) Process(ctx context.Context, ev ports.NewReservationEvent) error {
	r := ev.Reservation

	payload, err := json.Marshal(notificationPayload{
		ReservationID: r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		Date:          r.Date,
		Time:          r.Time,
		PartySize:     r.PartySize,
	})
	if err != nil {
		return fmt.Errorf("encode notification payload: %w", err)
	}

	notification := domain.Notification{
		Type:      domain.NotificationTypeNew,
		Message:   fmt.Sprintf("Nueva reserva de %s para el %s a las %s", r.Name, r.Date, r.Time),
		Payload:   string(payload),
		UserID:    ev.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifRepo.Insert(ctx, &notification); err != nil {
		metrics.NotificationsFailedTotal.Inc()
		return fmt.Errorf("insert notification: %w", err)
	}
	metrics.NotificationsDispatchedTotal.Inc()

	// Email intent only: delivery is not implemented, the lookup and
	// log line document who would have been notified.
	if r.RestaurantID != 0 {
		admin, err := s.userRepo.FindAdminByRestaurant(ctx, r.RestaurantID)
		if err != nil {
			s.log.Warn().Err(err).Int64("restaurante_id", r.RestaurantID).Msg("no administrator found for reservation email")
		} else {
			s.log.Info().
				Str("email", admin.Email).
				Str("reservation_id", r.ID).
				Msg("would send reservation email to administrator")
		}
	}

	return nil
}
