package handler

import (
	"net/http"

	"github.com/FrancoCalegari/demobodega/internal/core"
	"github.com/FrancoCalegari/demobodega/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type SettingsHandler struct {
	Settings *service.SettingsService
	Stats    *service.StatsService
}

func NewSettingsHandler(settings *service.SettingsService, stats *service.StatsService) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Stats: stats}
}

// Get handles GET /api/settings (public: feeds the WhatsApp booking link)
func (h *SettingsHandler) Get(e *pbCore.RequestEvent) error {
	settings, err := h.Settings.Get()
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, settings)
}

// Update handles PUT /api/settings (admin only)
func (h *SettingsHandler) Update(e *pbCore.RequestEvent) error {
	var settings core.Settings
	if err := e.BindBody(&settings); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	if err := h.Settings.Update(settings); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}

// DashboardStats handles GET /api/admin/stats (admin only)
func (h *SettingsHandler) DashboardStats(e *pbCore.RequestEvent) error {
	stats, err := h.Stats.GetDashboardStats()
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, stats)
}
