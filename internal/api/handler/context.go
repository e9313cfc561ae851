package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/ports"
)

// actorFromContext extracts the identity injected by the Auth
// middleware and performs a fast-fail check before any service call:
// an empty roles slice proves the middleware did not run.
func actorFromContext(c echo.Context) (ports.Actor, error) {
	roles, _ := c.Get("roles").([]string)
	if len(roles) == 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(int64)
	email, _ := c.Get("email").(string)
	restaurantID, _ := c.Get("restaurante_id").(int64)

	return ports.Actor{
		UserID:       userID,
		Email:        email,
		Roles:        roles,
		RestaurantID: restaurantID,
	}, nil
}
