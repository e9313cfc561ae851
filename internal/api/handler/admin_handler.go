package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

type AdminHandler struct {
	fetchService ports.FetchService
}

func NewAdminHandler(fetchService ports.FetchService) *AdminHandler {
	return &AdminHandler{fetchService: fetchService}
}

type userListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    []domain.User `json:"data"`
	Source  domain.Source `json:"source"`
}

type roleListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    []domain.Role `json:"data"`
	Source  domain.Source `json:"source"`
}

// Users lists staff accounts through the tiered fetch.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        searchTerm  query  string  false  "Substring match on name/email"
// @Param        role        query  string  false  "Exact role"
// @Param        status      query  string  false  "Exact status"
// @Success      200  {object}  userListResponse
// @Router       /api/admin/usuarios [get]
func (h *AdminHandler) Users(c echo.Context) error {
	filter := ports.UserFilter{
		SearchTerm: c.QueryParam("searchTerm"),
		Role:       c.QueryParam("role"),
		Status:     c.QueryParam("status"),
	}

	result := h.fetchService.Users(c.Request().Context(), filter)
	return c.JSON(http.StatusOK, userListResponse{
		Success: result.Success,
		Message: result.Message,
		Data:    result.Data,
		Source:  result.Source,
	})
}

// Roles lists permission groups through the tiered fetch.
//
// @Summary      List roles
// @Tags         admin
// @Produce      json
// @Success      200  {object}  roleListResponse
// @Router       /api/admin/roles [get]
func (h *AdminHandler) Roles(c echo.Context) error {
	result := h.fetchService.Roles(c.Request().Context())
	return c.JSON(http.StatusOK, roleListResponse{
		Success: result.Success,
		Message: result.Message,
		Data:    result.Data,
		Source:  result.Source,
	})
}
