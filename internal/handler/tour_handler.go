package handler

import (
	"net/http"

	"github.com/FrancoCalegari/demobodega/internal/core"
	"github.com/FrancoCalegari/demobodega/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type TourHandler struct {
	Tours *service.TourService
}

func NewTourHandler(tours *service.TourService) *TourHandler {
	return &TourHandler{Tours: tours}
}

// List handles GET /api/tours
func (h *TourHandler) List(e *pbCore.RequestEvent) error {
	views, err := h.Tours.AssembleAll()
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, views)
}

// Get handles GET /api/tours/{id}
func (h *TourHandler) Get(e *pbCore.RequestEvent) error {
	view, err := h.Tours.Assemble(e.Request.PathValue("id"))
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, view)
}

// Create handles POST /api/tours (admin only)
func (h *TourHandler) Create(e *pbCore.RequestEvent) error {
	var input core.TourInput
	if err := e.BindBody(&input); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	id, err := h.Tours.Decompose("", input)
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true, "id": id})
}

// Update handles PUT /api/tours/{id} (admin only)
func (h *TourHandler) Update(e *pbCore.RequestEvent) error {
	var input core.TourInput
	if err := e.BindBody(&input); err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
	}

	if _, err := h.Tours.Decompose(e.Request.PathValue("id"), input); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /api/tours/{id} (admin only)
func (h *TourHandler) Delete(e *pbCore.RequestEvent) error {
	if err := h.Tours.Remove(e.Request.PathValue("id")); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}
