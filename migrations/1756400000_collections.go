package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Creates the full catalog schema: the tours table, its three ordered
// child tables, the 0-or-1 tour_details side table, the tour-independent
// gallery, admin users and the settings singleton.
func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("tours"); err == nil {
			return nil // already initialized
		}

		// 1. Tours
		tours := core.NewBaseCollection("tours")
		tours.Fields.Add(&core.TextField{Name: "title", Required: true})
		tours.Fields.Add(&core.TextField{Name: "subtitle"})
		tours.Fields.Add(&core.TextField{Name: "image"})
		tours.Fields.Add(&core.TextField{Name: "price", Required: true})
		tours.Fields.Add(&core.TextField{Name: "price_currency"})
		tours.Fields.Add(&core.NumberField{Name: "min_guests"})
		tours.Fields.Add(&core.TextField{Name: "description"})
		tours.Fields.Add(&core.TextField{Name: "duration"})
		tours.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		tours.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		if err := app.Save(tours); err != nil {
			return err
		}

		// 2. Features (ordered bullet strings)
		features := core.NewBaseCollection("features")
		features.Fields.Add(&core.RelationField{
			Name:          "tour_id",
			CollectionId:  tours.Id,
			Required:      true,
			MaxSelect:     1,
			CascadeDelete: true,
		})
		features.Fields.Add(&core.TextField{Name: "feature", Required: true})
		features.Fields.Add(&core.NumberField{Name: "display_order"})
		features.AddIndex("idx_features_tour", false, "tour_id", "")
		if err := app.Save(features); err != nil {
			return err
		}

		// 3. Wineries (ordered stops)
		wineries := core.NewBaseCollection("wineries")
		wineries.Fields.Add(&core.RelationField{
			Name:          "tour_id",
			CollectionId:  tours.Id,
			Required:      true,
			MaxSelect:     1,
			CascadeDelete: true,
		})
		wineries.Fields.Add(&core.TextField{Name: "name", Required: true})
		wineries.Fields.Add(&core.TextField{Name: "image"})
		wineries.Fields.Add(&core.TextField{Name: "location"})
		wineries.Fields.Add(&core.TextField{Name: "instagram"})
		wineries.Fields.Add(&core.NumberField{Name: "display_order"})
		wineries.AddIndex("idx_wineries_tour", false, "tour_id", "")
		if err := app.Save(wineries); err != nil {
			return err
		}

		// 4. Menu steps (ordered rich-text fragments)
		menuSteps := core.NewBaseCollection("menu_steps")
		menuSteps.Fields.Add(&core.RelationField{
			Name:          "tour_id",
			CollectionId:  tours.Id,
			Required:      true,
			MaxSelect:     1,
			CascadeDelete: true,
		})
		menuSteps.Fields.Add(&core.TextField{Name: "step", Required: true})
		menuSteps.Fields.Add(&core.NumberField{Name: "display_order"})
		menuSteps.AddIndex("idx_menu_steps_tour", false, "tour_id", "")
		if err := app.Save(menuSteps); err != nil {
			return err
		}

		// 5. Tour details (0-or-1 per tour, enforced by the unique index)
		details := core.NewBaseCollection("tour_details")
		details.Fields.Add(&core.RelationField{
			Name:          "tour_id",
			CollectionId:  tours.Id,
			Required:      true,
			MaxSelect:     1,
			CascadeDelete: true,
		})
		details.Fields.Add(&core.TextField{Name: "menu_image"})
		details.AddIndex("idx_tour_details_tour", true, "tour_id", "")
		if err := app.Save(details); err != nil {
			return err
		}

		// 6. Gallery
		gallery := core.NewBaseCollection("gallery")
		gallery.Fields.Add(&core.TextField{Name: "image_path", Required: true})
		gallery.Fields.Add(&core.TextField{Name: "alt"})
		gallery.Fields.Add(&core.NumberField{Name: "display_order"})
		gallery.Fields.Add(&core.TextField{Name: "public_id"})
		gallery.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		if err := app.Save(gallery); err != nil {
			return err
		}

		// 7. Users (application admins, not PocketBase superusers)
		users := core.NewBaseCollection("users")
		users.Fields.Add(&core.TextField{Name: "username", Required: true})
		users.Fields.Add(&core.TextField{Name: "password", Required: true})
		users.Fields.Add(&core.TextField{Name: "role"})
		users.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		users.AddIndex("idx_users_username", true, "username", "")
		if err := app.Save(users); err != nil {
			return err
		}

		// 8. Settings singleton
		settings := core.NewBaseCollection("settings")
		settings.Fields.Add(&core.TextField{Name: "site_name"})
		settings.Fields.Add(&core.TextField{Name: "whatsapp_number"})
		settings.Fields.Add(&core.TextField{Name: "booking_message"})
		return app.Save(settings)

	}, func(app core.App) error {
		names := []string{
			"settings", "users", "gallery",
			"tour_details", "menu_steps", "wineries", "features", "tours",
		}
		for _, name := range names {
			if collection, err := app.FindCollectionByNameOrId(name); err == nil {
				if err := app.Delete(collection); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
