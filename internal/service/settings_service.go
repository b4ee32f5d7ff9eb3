package service

import (
	"github.com/FrancoCalegari/demobodega/internal/core"
)

const tableSettings = "settings"

// Defaults served before an admin has saved anything.
var defaultSettings = core.Settings{
	SiteName:       "Valzoe Tour",
	WhatsappNumber: "5492613022740",
	BookingMessage: "Hola! Quiero reservar el tour",
}

// SettingsService reads and writes the singleton site configuration row.
type SettingsService struct {
	store core.RecordStore
}

func NewSettingsService(store core.RecordStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the stored settings, or the defaults when none exist yet.
func (s *SettingsService) Get() (*core.Settings, error) {
	row, err := s.store.FetchOne(tableSettings, nil)
	if err != nil {
		return nil, err
	}
	if row == nil {
		settings := defaultSettings
		return &settings, nil
	}

	return &core.Settings{
		ID:             row.ID(),
		SiteName:       row.String("site_name"),
		WhatsappNumber: row.String("whatsapp_number"),
		BookingMessage: row.String("booking_message"),
	}, nil
}

// Update replaces the singleton row, creating it on first save.
func (s *SettingsService) Update(settings core.Settings) error {
	fields := map[string]any{
		"site_name":       settings.SiteName,
		"whatsapp_number": settings.WhatsappNumber,
		"booking_message": settings.BookingMessage,
	}

	existing, err := s.store.FetchOne(tableSettings, nil)
	if err != nil {
		return err
	}
	if existing == nil {
		_, err := s.store.Insert(tableSettings, fields)
		return err
	}

	_, err = s.store.Update(tableSettings, fields, core.Filter{"id": existing.ID()})
	return err
}
