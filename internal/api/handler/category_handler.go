package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/metrics"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type updateCategoryRequest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), act, ports.CreateCategoryInput{Name: req.Name})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) SearchAll(c echo.Context) error {
	categories, err := h.service.SearchAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) SearchByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.service.SearchByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) SearchByName(c echo.Context) error {
	category, err := h.service.SearchByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	category, err := h.service.Update(c.Request().Context(), act, ports.UpdateCategoryInput{
		ID:     req.ID,
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) ChangeStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	act, err := actor(c)
	if err != nil {
		return err
	}

	category, err := h.service.ChangeStatus(c.Request().Context(), act, id)
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("category", "changeStatus").Inc()
	return c.JSON(http.StatusOK, category)
}
