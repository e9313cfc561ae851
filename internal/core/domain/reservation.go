package domain

import "time"

// Reservation statuses and origins.
const (
	ReservationPending  = "pendiente"
	OriginWhatsApp      = "whatsapp"
	NotificationTypeNew = "nueva_reserva"
)

// Reservation is a table reservation received through the WhatsApp
// intake channel or entered by staff.
type Reservation struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"nombre" bson:"nombre"`
	Phone        string    `json:"telefono" bson:"telefono"`
	Email        string    `json:"email" bson:"email"`
	Date         string    `json:"fecha" bson:"fecha"`
	Time         string    `json:"hora" bson:"hora"`
	PartySize    int       `json:"personas" bson:"personas"`
	Notes        string    `json:"notas" bson:"notas"`
	Status       string    `json:"estado" bson:"estado"`
	Origin       string    `json:"origen" bson:"origen"`
	CreatedBy    int64     `json:"created_by,omitempty" bson:"created_by,omitempty"`
	RestaurantID int64     `json:"restaurante_id,omitempty" bson:"restaurante_id,omitempty"`
	CreatedAt    time.Time `json:"creado_en" bson:"creado_en"`
}

// Notification is an in-app alert for staff. UserID zero means the
// notification is addressed to everyone.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Type      string    `json:"tipo" bson:"tipo"`
	Message   string    `json:"mensaje" bson:"mensaje"`
	Payload   string    `json:"datos" bson:"datos"`
	Read      bool      `json:"leido" bson:"leido"`
	UserID    int64     `json:"usuario_id,omitempty" bson:"usuario_id,omitempty"`
	CreatedAt time.Time `json:"creado_en" bson:"creado_en"`
}
