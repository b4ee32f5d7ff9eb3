package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/FrancoCalegari/demobodega/internal/core"
)

// Child tables of a tour. Every row carries a tour_id back-reference and,
// except for tour_details, a dense zero-based display_order.
const (
	tableTours       = "tours"
	tableFeatures    = "features"
	tableWineries    = "wineries"
	tableMenuSteps   = "menu_steps"
	tableTourDetails = "tour_details"
)

// TourService assembles the scattered rows of a tour into the nested
// document the front end consumes, and decomposes admin form payloads
// back into per-table writes.
type TourService struct {
	store core.RecordStore
}

func NewTourService(store core.RecordStore) *TourService {
	return &TourService{store: store}
}

// Assemble returns the full nested view of one tour, or core.ErrNotFound.
// Child lists come back sorted ascending by display_order.
func (s *TourService) Assemble(tourID string) (*core.TourView, error) {
	tour, err := s.store.FetchOne(tableTours, core.Filter{"id": tourID})
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, core.ErrNotFound
	}
	return s.assembleRow(tour)
}

// AssembleAll returns every tour in creation order, each fully assembled.
func (s *TourService) AssembleAll() ([]core.TourView, error) {
	tours, err := s.store.FetchMany(tableTours, nil, "+created")
	if err != nil {
		return nil, err
	}

	views := make([]core.TourView, 0, len(tours))
	for _, tour := range tours {
		view, err := s.assembleRow(tour)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *TourService) assembleRow(tour core.Row) (*core.TourView, error) {
	tourID := tour.ID()
	byTour := core.Filter{"tour_id": tourID}

	featureRows, err := s.store.FetchMany(tableFeatures, byTour, "+display_order")
	if err != nil {
		return nil, err
	}
	features := make([]string, len(featureRows))
	for i, row := range featureRows {
		features[i] = row.String("feature")
	}

	wineryRows, err := s.store.FetchMany(tableWineries, byTour, "+display_order")
	if err != nil {
		return nil, err
	}
	wineries := make([]core.Winery, len(wineryRows))
	for i, row := range wineryRows {
		wineries[i] = core.Winery{
			Name:      row.String("name"),
			Image:     row.String("image"),
			Location:  row.String("location"),
			Instagram: row.String("instagram"),
		}
	}

	stepRows, err := s.store.FetchMany(tableMenuSteps, byTour, "+display_order")
	if err != nil {
		return nil, err
	}
	steps := make([]string, len(stepRows))
	for i, row := range stepRows {
		steps[i] = row.String("step")
	}

	var menuImage *string
	detail, err := s.store.FetchOne(tableTourDetails, byTour)
	if err != nil {
		return nil, err
	}
	if detail != nil {
		img := detail.String("menu_image")
		menuImage = &img
	}

	image := tour.String("image")

	return &core.TourView{
		ID:            tourID,
		Title:         tour.String("title"),
		Subtitle:      tour.String("subtitle"),
		Image:         image,
		Media:         ClassifyMedia(image),
		Price:         tour.String("price"),
		PriceCurrency: tour.String("price_currency"),
		MinGuests:     tour.Int("min_guests"),
		Description:   tour.String("description"),
		Duration:      tour.String("duration"),
		Features:      features,
		Details: core.TourDetails{
			MenuImage: menuImage,
			MenuSteps: steps,
			Wineries:  wineries,
		},
	}, nil
}

// Decompose writes a nested tour payload back to the store. With an empty
// tourID it creates the tour and returns the new id; otherwise it updates
// the existing one. Child collections are always fully replaced, never
// diffed, so display_order stays dense and re-running the same input is
// safe. The whole sequence runs in one transaction where the store offers
// one; otherwise a mid-sequence failure surfaces as PartialWriteError.
func (s *TourService) Decompose(tourID string, input core.TourInput) (string, error) {
	if err := validateTourInput(input); err != nil {
		return "", err
	}

	resultID := tourID

	err := s.store.RunInTransaction(func(tx core.RecordStore) error {
		scalar := map[string]any{
			"title":          input.Title,
			"subtitle":       input.Subtitle,
			"image":          input.Image,
			"price":          input.Price,
			"price_currency": input.PriceCurrency,
			"min_guests":     input.MinGuests,
			"description":    input.Description,
			"duration":       input.Duration,
		}

		if resultID == "" {
			row, err := tx.Insert(tableTours, scalar)
			if err != nil {
				return fmt.Errorf("insert tour: %w", err)
			}
			resultID = row.ID()
		} else {
			affected, err := tx.Update(tableTours, scalar, core.Filter{"id": resultID})
			if err != nil {
				return fmt.Errorf("update tour %s: %w", resultID, err)
			}
			if affected == 0 {
				return core.ErrNotFound
			}
		}

		// Parent row is committed from here on: wrap child failures so a
		// non-transactional backend reports the partial state honestly.
		if err := s.replaceChildren(tx, resultID, input); err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if pw, ok := err.(*core.PartialWriteError); ok {
			log.Printf("[TOUR_SERVICE] partial write on tour %s at step %s: %v", pw.TourID, pw.Step, pw.Err)
		}
		return "", err
	}
	return resultID, nil
}

// replaceChildren deletes and re-inserts every child collection of the
// tour, assigning display_order from array position.
func (s *TourService) replaceChildren(tx core.RecordStore, tourID string, input core.TourInput) error {
	byTour := core.Filter{"tour_id": tourID}

	if err := tx.DeleteRows(tableFeatures, byTour); err != nil {
		return &core.PartialWriteError{TourID: tourID, Step: "clear features", Err: err}
	}
	for i, feature := range input.Features {
		_, err := tx.Insert(tableFeatures, map[string]any{
			"tour_id":       tourID,
			"feature":       feature,
			"display_order": i,
		})
		if err != nil {
			return &core.PartialWriteError{TourID: tourID, Step: "insert features", Err: err}
		}
	}

	if err := tx.DeleteRows(tableWineries, byTour); err != nil {
		return &core.PartialWriteError{TourID: tourID, Step: "clear wineries", Err: err}
	}
	for i, winery := range input.Wineries {
		_, err := tx.Insert(tableWineries, map[string]any{
			"tour_id":       tourID,
			"name":          winery.Name,
			"image":         winery.Image,
			"location":      winery.Location,
			"instagram":     winery.Instagram,
			"display_order": i,
		})
		if err != nil {
			return &core.PartialWriteError{TourID: tourID, Step: "insert wineries", Err: err}
		}
	}

	if err := tx.DeleteRows(tableMenuSteps, byTour); err != nil {
		return &core.PartialWriteError{TourID: tourID, Step: "clear menu steps", Err: err}
	}
	for i, step := range input.MenuSteps {
		_, err := tx.Insert(tableMenuSteps, map[string]any{
			"tour_id":       tourID,
			"step":          step,
			"display_order": i,
		})
		if err != nil {
			return &core.PartialWriteError{TourID: tourID, Step: "insert menu steps", Err: err}
		}
	}

	// tour_details is 0-or-1: always drop, re-insert only when supplied.
	if err := tx.DeleteRows(tableTourDetails, byTour); err != nil {
		return &core.PartialWriteError{TourID: tourID, Step: "clear details", Err: err}
	}
	if input.MenuImage != "" {
		_, err := tx.Insert(tableTourDetails, map[string]any{
			"tour_id":    tourID,
			"menu_image": input.MenuImage,
		})
		if err != nil {
			return &core.PartialWriteError{TourID: tourID, Step: "insert details", Err: err}
		}
	}

	return nil
}

// Remove deletes a tour and every child row referencing it. Children are
// deleted explicitly first so backends without cascading relations end up
// just as clean.
func (s *TourService) Remove(tourID string) error {
	tour, err := s.store.FetchOne(tableTours, core.Filter{"id": tourID})
	if err != nil {
		return err
	}
	if tour == nil {
		return core.ErrNotFound
	}

	return s.store.RunInTransaction(func(tx core.RecordStore) error {
		byTour := core.Filter{"tour_id": tourID}
		for _, table := range []string{tableFeatures, tableWineries, tableMenuSteps, tableTourDetails} {
			if err := tx.DeleteRows(table, byTour); err != nil {
				return fmt.Errorf("delete %s of tour %s: %w", table, tourID, err)
			}
		}
		return tx.DeleteRows(tableTours, core.Filter{"id": tourID})
	})
}

func validateTourInput(input core.TourInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return &core.ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(input.Price) == "" {
		return &core.ValidationError{Field: "price", Reason: "required"}
	}
	if input.MinGuests < 0 {
		return &core.ValidationError{Field: "minGuests", Reason: "must not be negative"}
	}
	return nil
}
