package handler

import (
	"net/http"

	"github.com/FrancoCalegari/demobodega/pkg/mediaupload"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type UploadHandler struct {
	Uploader *mediaupload.Client
}

func NewUploadHandler(uploader *mediaupload.Client) *UploadHandler {
	return &UploadHandler{Uploader: uploader}
}

// UploadTour handles POST /api/upload/tour (admin only). Accepts image or
// video; the response tells the form which one Cloudinary saw.
func (h *UploadHandler) UploadTour(e *pbCore.RequestEvent) error {
	return h.upload(e, mediaupload.FolderTours)
}

// UploadGallery handles POST /api/upload/gallery (admin only)
func (h *UploadHandler) UploadGallery(e *pbCore.RequestEvent) error {
	return h.upload(e, mediaupload.FolderGallery)
}

func (h *UploadHandler) upload(e *pbCore.RequestEvent, folder string) error {
	file, header, err := e.Request.FormFile("media")
	if err != nil {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "No file provided"})
	}
	defer file.Close()

	if !h.Uploader.Configured() {
		return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Media storage not configured"})
	}

	result, err := h.Uploader.Upload(file, folder, header.Header.Get("Content-Type"))
	if err != nil {
		return apiError(e, err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"path":     result.Path,
		"publicId": result.PublicID,
		"type":     result.Type,
	})
}

// Destroy handles DELETE /api/upload/{publicId} (admin only). The type
// query parameter selects image or video.
func (h *UploadHandler) Destroy(e *pbCore.RequestEvent) error {
	publicID := e.Request.PathValue("publicId")
	if publicID == "" {
		return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing public id"})
	}

	if !h.Uploader.Configured() {
		return e.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Media storage not configured"})
	}

	if err := h.Uploader.Destroy(publicID, e.Request.URL.Query().Get("type")); err != nil {
		return apiError(e, err)
	}
	return e.JSON(http.StatusOK, map[string]any{"success": true, "message": "File deleted successfully"})
}
