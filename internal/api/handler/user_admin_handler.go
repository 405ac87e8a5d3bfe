package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/metrics"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

// UserAdminHandler handles HTTP requests for administrator accounts.
// The password hash is stripped from every response by the domain
// type's JSON tags.
type UserAdminHandler struct {
	service ports.UserAdminService
}

func NewUserAdminHandler(service ports.UserAdminService) *UserAdminHandler {
	return &UserAdminHandler{service: service}
}

type createUserAdminRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type updateUserAdminRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

type alterPasswordRequest struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// Create handles POST /useradmin/create.
//
// @Summary      Register a new administrator
// @Tags         useradmin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserAdminRequest  true  "Administrator details"
// @Success      200   {object}  domain.UserAdmin
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /useradmin/create [post]
func (h *UserAdminHandler) Create(c echo.Context) error {
	var req createUserAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), act, ports.CreateUserAdminInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user_admin", "create").Inc()
	return c.JSON(http.StatusOK, user)
}

func (h *UserAdminHandler) SearchAll(c echo.Context) error {
	users, err := h.service.SearchAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserAdminHandler) SearchByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.SearchByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserAdminHandler) SearchByUsername(c echo.Context) error {
	user, err := h.service.SearchByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserAdminHandler) Update(c echo.Context) error {
	var req updateUserAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), act, ports.UpdateUserAdminInput{
		ID:       req.ID,
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user_admin", "update").Inc()
	return c.JSON(http.StatusOK, user)
}

func (h *UserAdminHandler) AlterPassword(c echo.Context) error {
	var req alterPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.service.AlterPassword(c.Request().Context(), act, ports.AlterPasswordInput{
		ID:       req.ID,
		Password: req.Password,
	}); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user_admin", "alterPassword").Inc()
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /useradmin/delete/:id. Accounts are deactivated,
// not erased, so audit entries stay attributable.
func (h *UserAdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), act, id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user_admin", "delete").Inc()
	return c.NoContent(http.StatusOK)
}
