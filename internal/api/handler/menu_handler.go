package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

// dataSourceHeader tells the frontend when a response was not served
// by the real store: "simulated" for the local cache,
// "simulated-fallback" for the static dataset.
const dataSourceHeader = "X-Data-Source"

type MenuHandler struct {
	fetchService ports.FetchService
	menuService  ports.MenuService
}

func NewMenuHandler(fetchService ports.FetchService, menuService ports.MenuService) *MenuHandler {
	return &MenuHandler{fetchService: fetchService, menuService: menuService}
}

type saveMenuRequest struct {
	Items []domain.MenuItem `json:"items"`
}

type dishRequest struct {
	Name        string  `json:"nombre" validate:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio" validate:"gte=0"`
	Category    string  `json:"categoria" validate:"required"`
	Available   bool    `json:"disponible"`
	Image       string  `json:"imagen"`
}

func (r dishRequest) toDomain() domain.MenuItem {
	return domain.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Available:   r.Available,
		Image:       r.Image,
	}
}

type saveMenuResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Fallback bool   `json:"fallback,omitempty"`
}

type menuItemResponse struct {
	Success bool            `json:"success"`
	Plato   domain.MenuItem `json:"plato"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// List returns the menu through the tiered fetch. The payload shape is
// the same regardless of which tier answered; the header marks
// degraded sources.
//
// @Summary      Public menu
// @Tags         menu
// @Produce      json
// @Param        search      query  string  false  "Substring match on name/description"
// @Param        categoria   query  string  false  "Exact category"
// @Param        disponible  query  bool    false  "Availability"
// @Success      200  {array}  domain.MenuItem
// @Router       /api/public/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	filter := ports.MenuFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("categoria"),
	}
	if raw := c.QueryParam("disponible"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &available
		}
	}

	result := h.fetchService.MenuItems(c.Request().Context(), filter)
	switch result.Source {
	case domain.SourceCache:
		c.Response().Header().Set(dataSourceHeader, "simulated")
	case domain.SourceDummy:
		c.Response().Header().Set(dataSourceHeader, "simulated-fallback")
	}

	return c.JSON(http.StatusOK, result.Data)
}

// Save bulk-upserts the whole menu.
//
// @Summary      Save menu
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      saveMenuRequest  true  "Menu items"
// @Success      200   {object}  saveMenuResponse
// @Router       /api/public/menu/save [post]
func (h *MenuHandler) Save(c echo.Context) error {
	var req saveMenuRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid payload"})
	}

	result, err := h.menuService.Save(c.Request().Context(), req.Items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saveMenuResponse{
		Success:  result.Success,
		Message:  result.Message,
		Fallback: result.Fallback,
	})
}

// Create adds a single dish.
//
// @Summary      Create dish
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        body  body      dishRequest  true  "Dish"
// @Success      201   {object}  menuItemResponse
// @Router       /api/admin/platos [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.menuService.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, menuItemResponse{Success: true, Plato: created})
}

// Update replaces a dish by id.
//
// @Summary      Update dish
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Dish id"
// @Param        body  body      dishRequest  true  "Dish"
// @Success      200   {object}  statusResponse
// @Router       /api/admin/platos/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req dishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := req.toDomain()
	item.ID = id

	if err := h.menuService.Update(c.Request().Context(), item); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "Plato actualizado"})
}

// Delete removes a dish by id.
//
// @Summary      Delete dish
// @Tags         menu
// @Produce      json
// @Param        id  path  int  true  "Dish id"
// @Success      200  {object}  statusResponse
// @Router       /api/admin/platos/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.menuService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "Plato eliminado"})
}
