package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/metrics"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type createCompanyRequest struct {
	Name string `json:"name"`
}

type updateCompanyRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Associate bool   `json:"associate"`
	Active    bool   `json:"active"`
}

// Create handles POST /company/create.
//
// @Summary      Create a company
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      200   {object}  domain.Company
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /company/create [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	company, err := h.service.Create(c.Request().Context(), act, ports.CreateCompanyInput{Name: req.Name})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("company", "create").Inc()
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) SearchAll(c echo.Context) error {
	companies, err := h.service.SearchAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) SearchByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	company, err := h.service.SearchByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) SearchByName(c echo.Context) error {
	company, err := h.service.SearchByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	company, err := h.service.Update(c.Request().Context(), act, ports.UpdateCompanyInput{
		ID:        req.ID,
		Name:      req.Name,
		Associate: req.Associate,
		Active:    req.Active,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("company", "update").Inc()
	return c.JSON(http.StatusOK, company)
}

// ChangeStatus handles DELETE /company/changestatus/:id, flipping the
// active flag.
func (h *CompanyHandler) ChangeStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	company, err := h.service.ChangeStatus(c.Request().Context(), act, id)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("company", "changeStatus").Inc()
	return c.JSON(http.StatusOK, company)
}
