package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/metrics"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

type AssociationHandler struct {
	service ports.AssociationService
}

func NewAssociationHandler(service ports.AssociationService) *AssociationHandler {
	return &AssociationHandler{service: service}
}

type associationRequest struct {
	CompanyID  int64 `json:"company_id"`
	CategoryID int64 `json:"category_id"`
}

// Create handles POST /associate/create. Linking a company for the
// first time also flips its associate flag, which shows up as a second
// audit entry on the company.
//
// @Summary      Associate a company with a category
// @Tags         associate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      associationRequest  true  "Company and category ids"
// @Success      200   {object}  domain.Association
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /associate/create [post]
func (h *AssociationHandler) Create(c echo.Context) error {
	var req associationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	link, err := h.service.Create(c.Request().Context(), act, ports.AssociationInput{
		CompanyID:  req.CompanyID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("association", "create").Inc()
	return c.JSON(http.StatusOK, link)
}

func (h *AssociationHandler) SearchAll(c echo.Context) error {
	grouped, err := h.service.SearchAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grouped)
}

func (h *AssociationHandler) SearchByCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	grouped, err := h.service.SearchByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grouped)
}

func (h *AssociationHandler) SearchByCompany(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	grouped, err := h.service.SearchByCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grouped)
}

func (h *AssociationHandler) Delete(c echo.Context) error {
	var req associationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), act, ports.AssociationInput{
		CompanyID:  req.CompanyID,
		CategoryID: req.CategoryID,
	}); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("association", "delete").Inc()
	return c.NoContent(http.StatusOK)
}
