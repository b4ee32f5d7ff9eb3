package service

import (
	"log"

	"github.com/FrancoCalegari/demobodega/internal/core"
)

const tableGallery = "gallery"

// GalleryService manages the public image gallery. Deleting an image also
// destroys the Cloudinary asset so the media account does not accumulate
// orphans.
type GalleryService struct {
	store     core.RecordStore
	destroyer core.AssetDestroyer // nil when Cloudinary is not configured
}

func NewGalleryService(store core.RecordStore, destroyer core.AssetDestroyer) *GalleryService {
	return &GalleryService{store: store, destroyer: destroyer}
}

func galleryFromRow(row core.Row) core.GalleryImage {
	return core.GalleryImage{
		ID:           row.ID(),
		ImagePath:    row.String("image_path"),
		Alt:          row.String("alt"),
		DisplayOrder: row.Int("display_order"),
		PublicID:     row.String("public_id"),
	}
}

// List returns every gallery image sorted by display_order.
func (s *GalleryService) List() ([]core.GalleryImage, error) {
	rows, err := s.store.FetchMany(tableGallery, nil, "+display_order")
	if err != nil {
		return nil, err
	}

	images := make([]core.GalleryImage, len(rows))
	for i, row := range rows {
		images[i] = galleryFromRow(row)
	}
	return images, nil
}

// Add records an already-uploaded image.
func (s *GalleryService) Add(imagePath, alt string, displayOrder int, publicID string) (*core.GalleryImage, error) {
	if imagePath == "" {
		return nil, &core.ValidationError{Field: "image", Reason: "required"}
	}

	row, err := s.store.Insert(tableGallery, map[string]any{
		"image_path":    imagePath,
		"alt":           alt,
		"display_order": displayOrder,
		"public_id":     publicID,
	})
	if err != nil {
		return nil, err
	}

	image := galleryFromRow(row)
	return &image, nil
}

// Delete destroys the remote asset first, then the row. A failed remote
// destroy is logged but does not keep the row alive: a stale Cloudinary
// asset is recoverable, a dangling gallery entry is user-visible.
func (s *GalleryService) Delete(id string) error {
	row, err := s.store.FetchOne(tableGallery, core.Filter{"id": id})
	if err != nil {
		return err
	}
	if row == nil {
		return core.ErrNotFound
	}

	if publicID := row.String("public_id"); publicID != "" && s.destroyer != nil {
		if err := s.destroyer.Destroy(publicID, "image"); err != nil {
			log.Printf("[GALLERY_SERVICE] failed to destroy asset %s: %v", publicID, err)
		}
	}

	return s.store.DeleteRows(tableGallery, core.Filter{"id": id})
}
