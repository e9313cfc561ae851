package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

func sampleEvent() ports.NewReservationEvent {
	return ports.NewReservationEvent{
		Reservation: domain.Reservation{
			ID:           "whatsapp_1700000000000_abcde12345",
			Name:         "Ana Torres",
			Phone:        "+34600111222",
			Date:         "2026-09-15",
			Time:         "21:00",
			PartySize:    4,
			RestaurantID: 3,
		},
		UserID: 5,
	}
}

func TestNotificationService_Process_InsertsRecord(t *testing.T) {
	notifRepo := &stubNotificationRepo{}
	userRepo := &stubUserRepo{admin: &domain.User{ID: 1, Email: "admin@rest.example"}}
	svc := NewNotificationService(notifRepo, userRepo, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifRepo.inserted) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifRepo.inserted))
	}
	n := notifRepo.inserted[0]
	if n.Type != domain.NotificationTypeNew {
		t.Errorf("expected type %q, got %q", domain.NotificationTypeNew, n.Type)
	}
	if n.UserID != 5 {
		t.Errorf("expected user 5, got %d", n.UserID)
	}
	if n.Read {
		t.Error("new notifications must start unread")
	}
	if !strings.Contains(n.Message, "Ana Torres") {
		t.Errorf("message should name the guest: %q", n.Message)
	}
}

func TestNotificationService_Process_PayloadShape(t *testing.T) {
	notifRepo := &stubNotificationRepo{}
	svc := NewNotificationService(notifRepo, &stubUserRepo{}, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(notifRepo.inserted[0].Payload), &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	for _, key := range []string{"reservaId", "nombre", "telefono", "fecha", "hora", "personas"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("payload missing key %q", key)
		}
	}
}

func TestNotificationService_Process_InsertFailure(t *testing.T) {
	notifRepo := &stubNotificationRepo{insertErr: errStoreDown}
	svc := NewNotificationService(notifRepo, &stubUserRepo{}, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err == nil {
		t.Fatal("expected error when the insert fails")
	}
}

func TestNotificationService_Process_AdminLookupFailureIsNonFatal(t *testing.T) {
	notifRepo := &stubNotificationRepo{}
	userRepo := &stubUserRepo{adminErr: errStoreDown}
	svc := NewNotificationService(notifRepo, userRepo, discardLogger)

	if err := svc.Process(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("admin lookup failure must not fail processing: %v", err)
	}
	if len(notifRepo.inserted) != 1 {
		t.Errorf("notification must still be inserted, got %d", len(notifRepo.inserted))
	}
}

func TestNotificationService_Process_NoRestaurantSkipsLookup(t *testing.T) {
	notifRepo := &stubNotificationRepo{}
	userRepo := &stubUserRepo{adminErr: errStoreDown}
	svc := NewNotificationService(notifRepo, userRepo, discardLogger)

	ev := sampleEvent()
	ev.Reservation.RestaurantID = 0
	if err := svc.Process(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
