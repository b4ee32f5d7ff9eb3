package app

import (
	"os"

	internalApp "github.com/FrancoCalegari/demobodega/internal/app"
	"github.com/FrancoCalegari/demobodega/internal/handler"
	"github.com/FrancoCalegari/demobodega/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// ---------------------------------------------------------
		// 1. HANDLERS
		// ---------------------------------------------------------
		tours := handler.NewTourHandler(c.Tours)
		auth := handler.NewAuthHandler(c.Auth, c.SessionSecret)
		users := handler.NewUserHandler(c.Users)
		gallery := handler.NewGalleryHandler(c.Gallery, c.Uploader)
		upload := handler.NewUploadHandler(c.Uploader)
		settings := handler.NewSettingsHandler(c.Settings, c.Stats)

		guard := middleware.RequireAdmin(c.SessionSecret)

		// ---------------------------------------------------------
		// 2. PUBLIC API
		// ---------------------------------------------------------
		api := se.Router.Group("/api")

		api.GET("/tours", tours.List)
		api.GET("/tours/{id}", tours.Get)
		api.GET("/gallery", gallery.List)
		api.GET("/settings", settings.Get)

		api.POST("/auth/login", auth.Login)
		api.POST("/auth/logout", auth.Logout)
		api.GET("/auth/check", auth.Check)

		// ---------------------------------------------------------
		// 3. ADMIN API (session-gated)
		// ---------------------------------------------------------
		api.POST("/tours", tours.Create).BindFunc(guard)
		api.PUT("/tours/{id}", tours.Update).BindFunc(guard)
		api.DELETE("/tours/{id}", tours.Delete).BindFunc(guard)

		api.GET("/users", users.List).BindFunc(guard)
		api.POST("/users", users.Create).BindFunc(guard)
		api.PUT("/users/{id}", users.Update).BindFunc(guard)
		api.DELETE("/users/{id}", users.Delete).BindFunc(guard)

		api.POST("/gallery", gallery.Create).BindFunc(guard)
		api.DELETE("/gallery/{id}", gallery.Delete).BindFunc(guard)

		api.POST("/upload/tour", upload.UploadTour).BindFunc(guard)
		api.POST("/upload/gallery", upload.UploadGallery).BindFunc(guard)
		api.DELETE("/upload/{publicId}", upload.Destroy).BindFunc(guard)

		api.PUT("/settings", settings.Update).BindFunc(guard)
		api.GET("/admin/stats", settings.DashboardStats).BindFunc(guard)

		// ---------------------------------------------------------
		// 4. STATIC FRONT END (public page + admin dashboard)
		// ---------------------------------------------------------
		se.Router.GET("/{path...}", apis.Static(os.DirFS("./public"), true))

		return se.Next()
	})
}
