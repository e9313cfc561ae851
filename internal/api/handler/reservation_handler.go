package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

type ReservationHandler struct {
	reservationService ports.ReservationService
}

func NewReservationHandler(reservationService ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

type createReservationRequest struct {
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	Email     string `json:"email"`
	Date      string `json:"fecha"`
	Time      string `json:"hora"`
	PartySize int    `json:"personas"`
	Notes     string `json:"notas"`
}

type createReservationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ReservationID string `json:"reservationId"`
}

type reservationListResponse struct {
	Success      bool                 `json:"success"`
	Reservations []domain.Reservation `json:"reservas"`
}

type notificationsResponse struct {
	Success          bool                  `json:"success"`
	HasNotifications bool                  `json:"hayNotificaciones"`
	Count            int                   `json:"cantidad"`
	Notifications    []domain.Notification `json:"notificaciones"`
	Message          string                `json:"message,omitempty"`
}

// Create registers a WhatsApp-originated reservation. Notification
// side effects run asynchronously and never affect this response.
//
// @Summary      Create reservation
// @Tags         whatsapp
// @Accept       json
// @Produce      json
// @Param        body  body      createReservationRequest  true  "Reservation"
// @Success      200   {object}  createReservationResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/whatsapp/reservas [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid payload"})
	}

	id, err := h.reservationService.Create(c.Request().Context(), ports.CreateReservationInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Notes:     req.Notes,
	}, actor)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   "Faltan datos obligatorios (nombre, teléfono, fecha, hora)",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, createReservationResponse{
		Success:       true,
		Message:       "Reserva recibida correctamente",
		ReservationID: id,
	})
}

// List returns the reservations visible to the caller, newest first.
//
// @Summary      List reservations
// @Tags         whatsapp
// @Produce      json
// @Success      200  {object}  reservationListResponse
// @Router       /api/whatsapp/reservas [get]
func (h *ReservationHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	reservations, err := h.reservationService.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reservationListResponse{
		Success:      true,
		Reservations: reservations,
	})
}

// Notifications is the unread-notifications poll used by the admin UI.
//
// @Summary      Unread reservation notifications
// @Tags         whatsapp
// @Produce      json
// @Success      200  {object}  notificationsResponse
// @Router       /api/whatsapp/notificaciones [get]
func (h *ReservationHandler) Notifications(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	result := h.reservationService.Notifications(c.Request().Context(), actor)
	return c.JSON(http.StatusOK, notificationsResponse{
		Success:          result.Success,
		HasNotifications: result.Has,
		Count:            result.Count,
		Notifications:    result.Items,
		Message:          result.Message,
	})
}
