package handler

import (
	"net/http"
	"strconv"

	"github.com/FrancoCalegari/demobodega/internal/service"
	"github.com/FrancoCalegari/demobodega/pkg/mediaupload"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type GalleryHandler struct {
	Gallery  *service.GalleryService
	Uploader *mediaupload.Client
}

func NewGalleryHandler(gallery *service.GalleryService, uploader *mediaupload.Client) *GalleryHandler {
	return &GalleryHandler{Gallery: gallery, Uploader: uploader}
}

// List handles GET /api/gallery (public)
func (h *GalleryHandler) List(e *pbCore.RequestEvent) error {
	images, err := h.Gallery.List()
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, images)
}

// Create handles POST /api/gallery (admin only): one multipart image plus
// alt text and display order, uploaded straight to Cloudinary.
func (h *GalleryHandler) Create(e *pbCore.RequestEvent) error {
	file, header, err := e.Request.FormFile("image")
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "No image provided"})
	}
	defer file.Close()

	if !h.Uploader.Configured() {
		return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Media storage not configured"})
	}

	result, err := h.Uploader.Upload(file, mediaupload.FolderGallery, header.Header.Get("Content-Type"))
	if err != nil {
		return apiError(e, err)
	}

	displayOrder, _ := strconv.Atoi(e.Request.FormValue("displayOrder"))

	image, err := h.Gallery.Add(result.Path, e.Request.FormValue("alt"), displayOrder, result.PublicID)
	if err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true, "id": image.ID})
}

// Delete handles DELETE /api/gallery/{id} (admin only)
func (h *GalleryHandler) Delete(e *pbCore.RequestEvent) error {
	if err := h.Gallery.Delete(e.Request.PathValue("id")); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true})
}
