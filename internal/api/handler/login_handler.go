package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/metrics"
	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

type LoginHandler struct {
	service ports.LoginService
}

func NewLoginHandler(service ports.LoginService) *LoginHandler {
	return &LoginHandler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *domain.UserAdmin `json:"user"`
}

// Login authenticates an administrator and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *LoginHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}
