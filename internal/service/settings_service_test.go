package service

import (
	"testing"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsBeforeFirstSave(t *testing.T) {
	svc := NewSettingsService(newFakeStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, defaultSettings.WhatsappNumber, settings.WhatsappNumber)
}

func TestSettingsSingletonReplacedNotDuplicated(t *testing.T) {
	store := newFakeStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Update(core.Settings{SiteName: "Valzoe", WhatsappNumber: "111"}))
	require.NoError(t, svc.Update(core.Settings{SiteName: "Valzoe", WhatsappNumber: "222"}))

	count, _ := store.Count(tableSettings, nil)
	assert.EqualValues(t, 1, count)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "222", settings.WhatsappNumber)
}

func TestDashboardStats(t *testing.T) {
	store := newFakeStore()
	tours := NewTourService(store)
	users := NewUserService(store, testMaster)
	gallery := NewGalleryService(store, nil)
	stats := NewStatsService(store)

	_, err := tours.Decompose("", demoInput())
	require.NoError(t, err)
	_, err = users.Create("carla", "pw", "")
	require.NoError(t, err)
	_, err = gallery.Add("a.jpg", "", 0, "")
	require.NoError(t, err)
	_, err = gallery.Add("b.jpg", "", 1, "")
	require.NoError(t, err)

	got, err := stats.GetDashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Tours)
	assert.EqualValues(t, 2, got.GalleryImages)
	assert.EqualValues(t, 1, got.Users)
}
