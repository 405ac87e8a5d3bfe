package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/core/ports"
)

// LogsHandler exposes the audit trail read-only.
type LogsHandler struct {
	service ports.AuditService
}

func NewLogsHandler(service ports.AuditService) *LogsHandler {
	return &LogsHandler{service: service}
}

func (h *LogsHandler) UserAdminLogs(c echo.Context) error {
	entries, err := h.service.UserAdminLogs(c.Request().Context(), nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) UserAdminLogsByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.service.UserAdminLogs(c.Request().Context(), &id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) CompanyLogs(c echo.Context) error {
	entries, err := h.service.CompanyLogs(c.Request().Context(), nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) CompanyLogsByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.service.CompanyLogs(c.Request().Context(), &id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) CategoryLogs(c echo.Context) error {
	entries, err := h.service.CategoryLogs(c.Request().Context(), nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) CategoryLogsByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.service.CategoryLogs(c.Request().Context(), &id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) AssociationLogs(c echo.Context) error {
	entries, err := h.service.AssociationLogs(c.Request().Context(), ports.AssociationFilter{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) AssociationLogsByCompany(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.service.AssociationLogs(c.Request().Context(), ports.AssociationFilter{CompanyID: &id})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LogsHandler) AssociationLogsByCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.service.AssociationLogs(c.Request().Context(), ports.AssociationFilter{CategoryID: &id})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
