package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    *domain.AuthUser `json:"user"`
	Token   string           `json:"token"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

type verifyTokenResponse struct {
	Valid bool `json:"valid"`
}

// Login authenticates against the demo credential set and returns a
// placeholder session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid payload"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "Usuario y contraseña son requeridos"})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "error": "Credenciales inválidas"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login exitoso",
		User:    user,
		Token:   token,
	})
}

// VerifyToken reports whether a session token is still accepted.
//
// @Summary      Verify session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyTokenRequest  true  "Token to check"
// @Success      200   {object}  verifyTokenResponse
// @Router       /api/auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req verifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid payload"})
	}

	return c.JSON(http.StatusOK, verifyTokenResponse{
		Valid: h.authService.VerifyToken(req.Token),
	})
}
