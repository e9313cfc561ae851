package domain

import "errors"

var ErrInvalidCredentials = errors.New("credenciales inválidas")
var ErrMissingFields = errors.New("faltan datos obligatorios")
var ErrMenuItemNotFound = errors.New("plato no encontrado")
var ErrUserNotFound = errors.New("usuario no encontrado")
var ErrReservationNotFound = errors.New("reserva no encontrada")
var ErrForbidden = errors.New("acceso no autorizado")
