// Package app provides the dependency injection container: every service
// is wired once here, against the single RecordStore seam.
package app

import (
	"log"

	"github.com/FrancoCalegari/demobodega/internal/adapter/repository"
	domain "github.com/FrancoCalegari/demobodega/internal/core"
	"github.com/FrancoCalegari/demobodega/internal/service"
	"github.com/FrancoCalegari/demobodega/pkg/mediaupload"
	"github.com/FrancoCalegari/demobodega/pkg/middleware"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
type Container struct {
	PB *pocketbase.PocketBase

	// Data access seam
	Store domain.RecordStore

	// Domain services
	Tours    *service.TourService
	Auth     *service.AuthService
	Users    *service.UserService
	Gallery  *service.GalleryService
	Settings *service.SettingsService
	Stats    *service.StatsService

	// External media storage (nil-safe when unconfigured)
	Uploader *mediaupload.Client

	// Session signing key
	SessionSecret []byte
}

// NewContainer wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) *Container {
	c := &Container{
		PB:            pb,
		SessionSecret: middleware.SessionSecret(),
	}

	c.Store = repository.NewRecordStore(pb)

	uploader, err := mediaupload.New()
	if err != nil {
		// Uploads are disabled but the catalog still serves.
		log.Printf("[APP] Cloudinary not configured: %v", err)
	} else {
		log.Println("[APP] Cloudinary configured")
	}
	c.Uploader = uploader

	master := domain.LoadMasterCredential()

	c.Tours = service.NewTourService(c.Store)
	c.Auth = service.NewAuthService(c.Store, master)
	c.Users = service.NewUserService(c.Store, master)
	c.Gallery = service.NewGalleryService(c.Store, c.Uploader)
	c.Settings = service.NewSettingsService(c.Store)
	c.Stats = service.NewStatsService(c.Store)

	return c
}
