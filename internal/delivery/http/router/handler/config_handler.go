package handler

import (
	"net/http"

	"nexstock/config"
	"nexstock/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck responds to liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// uiConfig is the subset of server configuration the front-end renders from.
type uiConfig struct {
	Categories          []string `json:"categories"`
	PageSize            int      `json:"pageSize"`
	DefaultMinThreshold int      `json:"defaultMinThreshold"`
}

// ConfigHandler serves UI defaults derived from server configuration.
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler is the constructor for ConfigHandler.
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// UIConfig returns the categories and view defaults the UI needs.
func (h *ConfigHandler) UIConfig(c echo.Context) error {
	return response.Success(c, http.StatusOK, uiConfig{
		Categories:          h.cfg.Inventory.Categories,
		PageSize:            h.cfg.Inventory.PageSize,
		DefaultMinThreshold: h.cfg.Inventory.DefaultMinThreshold,
	}, "")
}
