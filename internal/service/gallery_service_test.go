package service

import (
	"fmt"
	"testing"

	"github.com/FrancoCalegari/demobodega/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDestroyer struct {
	destroyed []string
	fail      bool
}

func (d *fakeDestroyer) Destroy(publicID, resourceType string) error {
	if d.fail {
		return fmt.Errorf("cloudinary down")
	}
	d.destroyed = append(d.destroyed, publicID)
	return nil
}

func TestGalleryListOrdered(t *testing.T) {
	store := newFakeStore()
	svc := NewGalleryService(store, nil)

	// Inserted out of order on purpose
	for _, img := range []struct {
		path  string
		order int
	}{{"c.jpg", 2}, {"a.jpg", 0}, {"b.jpg", 1}} {
		_, err := svc.Add(img.path, "", img.order, "")
		require.NoError(t, err)
	}

	images, err := svc.List()
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "a.jpg", images[0].ImagePath)
	assert.Equal(t, "b.jpg", images[1].ImagePath)
	assert.Equal(t, "c.jpg", images[2].ImagePath)
}

func TestGalleryDeleteDestroysAsset(t *testing.T) {
	store := newFakeStore()
	destroyer := &fakeDestroyer{}
	svc := NewGalleryService(store, destroyer)

	image, err := svc.Add("https://res.cloudinary.com/demo/a.jpg", "alt", 0, "valzoe-tour/gallery/a")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(image.ID))
	assert.Equal(t, []string{"valzoe-tour/gallery/a"}, destroyer.destroyed)

	count, _ := store.Count(tableGallery, nil)
	assert.Zero(t, count)
}

func TestGalleryDeleteSurvivesDestroyFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewGalleryService(store, &fakeDestroyer{fail: true})

	image, err := svc.Add("a.jpg", "", 0, "pub-id")
	require.NoError(t, err)

	// The row still goes away; the stale remote asset is only logged.
	require.NoError(t, svc.Delete(image.ID))
	count, _ := store.Count(tableGallery, nil)
	assert.Zero(t, count)
}

func TestGalleryDeleteNotFound(t *testing.T) {
	svc := NewGalleryService(newFakeStore(), nil)
	assert.ErrorIs(t, svc.Delete("missing"), core.ErrNotFound)
}
