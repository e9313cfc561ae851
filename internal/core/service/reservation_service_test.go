package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

func validReservationInput() ports.CreateReservationInput {
	return ports.CreateReservationInput{
		Name:  "Ana Torres",
		Phone: "+34600111222",
		Date:  "2026-09-15",
		Time:  "21:00",
	}
}

func newTestReservationService(repo *stubReservationRepo, userRepo *stubUserRepo, notifRepo *stubNotificationRepo, notifier *captureNotifier) *ReservationService {
	if repo == nil {
		repo = &stubReservationRepo{}
	}
	if userRepo == nil {
		userRepo = &stubUserRepo{}
	}
	if notifRepo == nil {
		notifRepo = &stubNotificationRepo{}
	}
	if notifier == nil {
		notifier = &captureNotifier{}
	}
	return NewReservationService(repo, userRepo, notifRepo, notifier, discardLogger)
}

func TestReservationService_Create_Success(t *testing.T) {
	repo := &stubReservationRepo{}
	notifier := &captureNotifier{}
	svc := newTestReservationService(repo, nil, nil, notifier)

	id, err := svc.Create(context.Background(), validReservationInput(), ports.Actor{UserID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(id, "whatsapp_") {
		t.Errorf("reservation id format wrong: %s", id)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}

	stored := repo.inserted[0]
	if stored.Status != domain.ReservationPending {
		t.Errorf("expected status %q, got %q", domain.ReservationPending, stored.Status)
	}
	if stored.Origin != domain.OriginWhatsApp {
		t.Errorf("expected origin %q, got %q", domain.OriginWhatsApp, stored.Origin)
	}
	if stored.PartySize != 2 {
		t.Errorf("expected default party size 2, got %d", stored.PartySize)
	}
	if stored.Notes != "Reserva desde WhatsApp" {
		t.Errorf("expected default notes, got %q", stored.Notes)
	}
	if stored.CreatedBy != 5 {
		t.Errorf("expected created_by 5, got %d", stored.CreatedBy)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestReservationService_Create_MissingFields(t *testing.T) {
	repo := &stubReservationRepo{}
	notifier := &captureNotifier{}
	svc := newTestReservationService(repo, nil, nil, notifier)

	for _, tc := range []struct {
		name string
		mut  func(*ports.CreateReservationInput)
	}{
		{"nombre", func(in *ports.CreateReservationInput) { in.Name = "" }},
		{"telefono", func(in *ports.CreateReservationInput) { in.Phone = "" }},
		{"fecha", func(in *ports.CreateReservationInput) { in.Date = "" }},
		{"hora", func(in *ports.CreateReservationInput) { in.Time = "" }},
	} {
		in := validReservationInput()
		tc.mut(&in)
		_, err := svc.Create(context.Background(), in, ports.Actor{})
		if !errors.Is(err, domain.ErrMissingFields) {
			t.Errorf("missing %s: expected ErrMissingFields, got %v", tc.name, err)
		}
	}

	// Validation failure must insert nothing and enqueue nothing.
	if len(repo.inserted) != 0 {
		t.Errorf("expected no inserts, got %d", len(repo.inserted))
	}
	if len(notifier.events) != 0 {
		t.Errorf("expected no events, got %d", len(notifier.events))
	}
}

func TestReservationService_Create_EnqueuesNotification(t *testing.T) {
	notifier := &captureNotifier{}
	svc := newTestReservationService(nil, &stubUserRepo{restaurantID: 3}, nil, notifier)

	id, err := svc.Create(context.Background(), validReservationInput(), ports.Actor{UserID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(notifier.events))
	}
	event := notifier.events[0]
	if event.Reservation.ID != id {
		t.Errorf("event carries wrong reservation: %q != %q", event.Reservation.ID, id)
	}
	if event.UserID != 5 {
		t.Errorf("expected event user 5, got %d", event.UserID)
	}
	if event.Reservation.RestaurantID != 3 {
		t.Errorf("expected resolved restaurant 3, got %d", event.Reservation.RestaurantID)
	}
}

func TestReservationService_Create_RestaurantLookupFailureIsNonFatal(t *testing.T) {
	userRepo := &stubUserRepo{restaurantErr: errStoreDown}
	svc := newTestReservationService(nil, userRepo, nil, nil)

	id, err := svc.Create(context.Background(), validReservationInput(), ports.Actor{UserID: 5})
	if err != nil {
		t.Fatalf("restaurant lookup failure must not fail creation: %v", err)
	}
	if id == "" {
		t.Fatal("expected a reservation id")
	}
}

func TestReservationService_Create_InsertFailure(t *testing.T) {
	repo := &stubReservationRepo{insertErr: errStoreDown}
	notifier := &captureNotifier{}
	svc := newTestReservationService(repo, nil, nil, notifier)

	_, err := svc.Create(context.Background(), validReservationInput(), ports.Actor{})
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if len(notifier.events) != 0 {
		t.Errorf("failed insert must not enqueue events, got %d", len(notifier.events))
	}
}

func TestReservationService_Create_UniqueIDs(t *testing.T) {
	repo := &stubReservationRepo{}
	svc := newTestReservationService(repo, nil, nil, nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := svc.Create(context.Background(), validReservationInput(), ports.Actor{})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[id] {
			t.Fatalf("duplicate reservation id %q", id)
		}
		seen[id] = true
	}
}

func TestReservationService_List_ScopesToActorRestaurant(t *testing.T) {
	repo := &stubReservationRepo{listed: []domain.Reservation{{ID: "whatsapp_1_aa"}}}
	svc := newTestReservationService(repo, nil, nil, nil)

	_, err := svc.List(context.Background(), ports.Actor{UserID: 5, RestaurantID: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastScope != 9 {
		t.Errorf("expected listing scoped to restaurant 9, got %d", repo.lastScope)
	}
}

func TestReservationService_List_MarksNotificationsRead(t *testing.T) {
	notifRepo := &stubNotificationRepo{}
	svc := newTestReservationService(nil, nil, notifRepo, nil)

	if _, err := svc.List(context.Background(), ports.Actor{UserID: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifRepo.markedRead != 1 {
		t.Errorf("expected one mark-read pass, got %d", notifRepo.markedRead)
	}
}

func TestReservationService_List_MarkReadFailureIsNonFatal(t *testing.T) {
	notifRepo := &stubNotificationRepo{markReadErr: errStoreDown}
	repo := &stubReservationRepo{listed: []domain.Reservation{{ID: "whatsapp_1_aa"}}}
	svc := newTestReservationService(repo, nil, notifRepo, nil)

	reservations, err := svc.List(context.Background(), ports.Actor{UserID: 5})
	if err != nil {
		t.Fatalf("mark-read failure must not fail the listing: %v", err)
	}
	if len(reservations) != 1 {
		t.Errorf("expected 1 reservation, got %d", len(reservations))
	}
}

func TestReservationService_Notifications_Success(t *testing.T) {
	notifRepo := &stubNotificationRepo{unread: []domain.Notification{
		{ID: "n1", Type: domain.NotificationTypeNew},
		{ID: "n2", Type: domain.NotificationTypeNew},
	}}
	svc := newTestReservationService(nil, nil, notifRepo, nil)

	result := svc.Notifications(context.Background(), ports.Actor{UserID: 5})

	if !result.Success {
		t.Fatal("expected success")
	}
	if !result.Has || result.Count != 2 {
		t.Errorf("expected 2 unread notifications, got has=%v count=%d", result.Has, result.Count)
	}
}

func TestReservationService_Notifications_StoreFailureDegrades(t *testing.T) {
	notifRepo := &stubNotificationRepo{unreadErr: errStoreDown}
	svc := newTestReservationService(nil, nil, notifRepo, nil)

	result := svc.Notifications(context.Background(), ports.Actor{UserID: 5})

	if !result.Success {
		t.Fatal("a broken notification store must degrade, not fail")
	}
	if result.Has || result.Count != 0 {
		t.Errorf("expected empty degraded result, got %+v", result)
	}
	if result.Message == "" {
		t.Error("degraded result should carry an explanatory message")
	}
}
